package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestDealQuery_ToSQL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		query         DealQuery
		wantCountSQL  string
		wantArgs      []any
		wantDataHas   []string // substrings that must appear in dataSQL
		wantDataNotIn []string // substrings that must NOT appear
	}{
		{
			name:  "empty query uses defaults",
			query: DealQuery{},
			wantDataHas: []string{
				"FROM deals",
				"ORDER BY demand_rank DESC, profit_estimate DESC, source_id ASC",
				"LIMIT 50",
				"OFFSET 0",
			},
			wantDataNotIn: []string{"WHERE"},
			wantCountSQL:  "SELECT COUNT(*) FROM deals",
		},
		{
			name:         "search filter",
			query:        DealQuery{SearchID: ptr("6f1c")},
			wantDataHas:  []string{"WHERE search_id = $1"},
			wantCountSQL: "SELECT COUNT(*) FROM deals WHERE search_id = $1",
			wantArgs:     []any{"6f1c"},
		},
		{
			name:         "verdict filter",
			query:        DealQuery{Verdict: ptr("profitable")},
			wantDataHas:  []string{"WHERE verdict = $1"},
			wantCountSQL: "SELECT COUNT(*) FROM deals WHERE verdict = $1",
			wantArgs:     []any{"profitable"},
		},
		{
			name:         "min profit filter",
			query:        DealQuery{MinProfit: ptr(25.0)},
			wantDataHas:  []string{"WHERE profit_estimate >= $1"},
			wantCountSQL: "SELECT COUNT(*) FROM deals WHERE profit_estimate >= $1",
			wantArgs:     []any{25.0},
		},
		{
			name: "all filters with correct parameter numbering",
			query: DealQuery{
				SearchID:  ptr("6f1c"),
				Verdict:   ptr("marginal"),
				MinProfit: ptr(10.0),
			},
			wantCountSQL: "SELECT COUNT(*) FROM deals WHERE search_id = $1 AND verdict = $2 AND profit_estimate >= $3",
			wantArgs:     []any{"6f1c", "marginal", 10.0},
		},
		{
			name:        "order by profit",
			query:       DealQuery{OrderBy: "profit"},
			wantDataHas: []string{"ORDER BY profit_estimate DESC, source_id ASC"},
		},
		{
			name:        "order by evaluated_at",
			query:       DealQuery{OrderBy: "evaluated_at"},
			wantDataHas: []string{"ORDER BY evaluated_at DESC"},
		},
		{
			name:          "invalid order by falls back to default",
			query:         DealQuery{OrderBy: "DROP TABLE deals; --"},
			wantDataHas:   []string{"ORDER BY demand_rank DESC"},
			wantDataNotIn: []string{"DROP TABLE"},
		},
		{
			name:        "custom limit and offset",
			query:       DealQuery{Limit: 25, Offset: 100},
			wantDataHas: []string{"LIMIT 25", "OFFSET 100"},
		},
		{
			name:        "negative limit defaults to 50",
			query:       DealQuery{Limit: -10},
			wantDataHas: []string{"LIMIT 50"},
		},
		{
			name:        "limit exceeding max is capped",
			query:       DealQuery{Limit: 1000},
			wantDataHas: []string{"LIMIT 500"},
		},
		{
			name:        "negative offset defaults to 0",
			query:       DealQuery{Offset: -5},
			wantDataHas: []string{"OFFSET 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q := tt.query
			dataSQL, countSQL, args := q.ToSQL()

			for _, s := range tt.wantDataHas {
				assert.Contains(t, dataSQL, s, "dataSQL should contain %q", s)
			}

			for _, s := range tt.wantDataNotIn {
				assert.NotContains(t, dataSQL, s, "dataSQL should not contain %q", s)
			}

			if tt.wantCountSQL != "" {
				assert.Equal(t, tt.wantCountSQL, countSQL)
			}

			if tt.wantArgs != nil {
				require.Len(t, args, len(tt.wantArgs))
				assert.Equal(t, tt.wantArgs, args)
			} else {
				assert.Empty(t, args)
			}
		})
	}
}

func TestMigrationFiles(t *testing.T) {
	t.Parallel()

	names, err := migrationFiles()
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, "001_initial_schema.sql", names[0])
	assert.IsNonDecreasing(t, names)
}
