package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/localflipper/internal/config"
	"github.com/donaldgifford/localflipper/internal/ebay"
	"github.com/donaldgifford/localflipper/internal/export"
	"github.com/donaldgifford/localflipper/pkg/logger"
	score "github.com/donaldgifford/localflipper/pkg/scorer"
	domain "github.com/donaldgifford/localflipper/pkg/types"
)

var (
	evalFormat string
	evalOutDir string
)

// evalCase is one listing to evaluate. Comparables are looked up on eBay
// when omitted.
type evalCase struct {
	Listing     domain.ListingRecord      `json:"listing"`
	Comparables *domain.ComparableSaleSet `json:"comparables,omitempty"`
	LocalSupply int                       `json:"local_supply"`
}

type evalOutcome struct {
	SourceID string                   `json:"source_id"`
	Result   *domain.EvaluationResult `json:"result,omitempty"`
	Error    string                   `json:"error,omitempty"`
}

var evaluateFileCmd = &cobra.Command{
	Use:   "evaluate-file <path>",
	Short: "Evaluate listings from a JSON file without the database",
	Long: "Reads one listing case or an array of them, each with a listing, optional\n" +
		"comparables and local_supply, and prints the evaluations. Without a config\n" +
		"file the default scoring parameters are used.",
	Args: cobra.ExactArgs(1),
	RunE: runEvaluateFile,
}

func init() {
	evaluateFileCmd.Flags().StringVar(&evalFormat, "format", "json", "output format (json, csv)")
	evaluateFileCmd.Flags().StringVar(&evalOutDir, "out-dir", "", "with --format csv, write a timestamped file here instead of stdout")
	rootCmd.AddCommand(evaluateFileCmd)
}

func runEvaluateFile(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = config.Default()
	} else if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	data, err := os.ReadFile(args[0]) //nolint:gosec // path from CLI argument
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	cases, err := decodeCases(data)
	if err != nil {
		return err
	}

	market, _ := newMarket(cfg, log)
	outcomes, deals := evaluateCases(cmd.Context(), cases, market, cfg.FuelParams(), cfg.ScorerParams())

	out := cmd.OutOrStdout()
	switch evalFormat {
	case "csv":
		term := filepath.Base(args[0])
		now := time.Now()
		for i := range deals {
			deals[i].SearchTerm = term
			deals[i].EvaluatedAt = now
		}
		if evalOutDir == "" {
			return export.WriteCSV(out, deals)
		}
		path, err := export.WriteFile(evalOutDir, "evaluate", now, deals)
		if err != nil {
			return err
		}
		log.Info("wrote evaluations", "path", path, "rows", len(deals))
		return nil
	case "json":
		return writeJSON(out, outcomes)
	default:
		return fmt.Errorf("unknown format %q", evalFormat)
	}
}

// decodeCases accepts either a single case object or an array of cases.
func decodeCases(data []byte) ([]evalCase, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New("input is empty")
	}

	if trimmed[0] == '[' {
		var cases []evalCase
		if err := json.Unmarshal(trimmed, &cases); err != nil {
			return nil, fmt.Errorf("decoding cases: %w", err)
		}
		return cases, nil
	}

	var c evalCase
	if err := json.Unmarshal(trimmed, &c); err != nil {
		return nil, fmt.Errorf("decoding case: %w", err)
	}
	return []evalCase{c}, nil
}

// evaluateCases evaluates every case. A failing case is reported in its
// outcome and left out of the returned deals.
func evaluateCases(
	ctx context.Context,
	cases []evalCase,
	market ebay.MarketData,
	fuel score.FuelParams,
	params score.Params,
) ([]evalOutcome, []domain.Deal) {
	outcomes := make([]evalOutcome, 0, len(cases))
	deals := make([]domain.Deal, 0, len(cases))

	for i := range cases {
		c := &cases[i]
		o := evalOutcome{SourceID: c.Listing.SourceID}

		var comps domain.ComparableSaleSet
		if c.Comparables != nil {
			comps = *c.Comparables
		} else {
			var err error
			comps, err = market.Comparables(ctx, c.Listing.Title)
			if err != nil {
				o.Error = "fetching comparables: " + err.Error()
				outcomes = append(outcomes, o)
				continue
			}
		}

		res, err := score.Evaluate(&c.Listing, comps, c.LocalSupply, fuel, params)
		if err != nil {
			o.Error = err.Error()
			outcomes = append(outcomes, o)
			continue
		}

		o.Result = &res
		outcomes = append(outcomes, o)
		deals = append(deals, domain.Deal{Listing: c.Listing, Evaluation: res})
	}

	return outcomes, deals
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
