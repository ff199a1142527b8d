package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"

	apiclient "github.com/donaldgifford/localflipper/internal/api/client"
	domain "github.com/donaldgifford/localflipper/pkg/types"
)

const timeLayout = "2006-01-02 15:04"

var stdout io.Writer = os.Stdout

func renderTable(w io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	hdr := make([]any, len(header))
	for i, h := range header {
		hdr[i] = h
	}
	table.Header(hdr...)
	for _, r := range rows {
		cells := make([]any, len(r))
		for i, c := range r {
			cells[i] = c
		}
		if err := table.Append(cells...); err != nil {
			return err
		}
	}
	return table.Render()
}

func printSearchTable(w io.Writer, searches []domain.SavedSearch) error {
	rows := make([][]string, 0, len(searches))
	for i := range searches {
		s := &searches[i]
		lastRun := "-"
		if s.LastRunAt != nil {
			lastRun = s.LastRunAt.Local().Format(timeLayout)
		}
		rows = append(rows, []string{
			s.ID,
			s.Name,
			truncate(s.Query, 30),
			orDash(s.Site),
			strconv.Itoa(s.RadiusMi),
			strconv.FormatBool(s.Enabled),
			lastRun,
		})
	}
	return renderTable(w, []string{"ID", "NAME", "QUERY", "SITE", "RADIUS", "ENABLED", "LAST RUN"}, rows)
}

func printSearchDetail(w io.Writer, s *domain.SavedSearch) error {
	maxPrice := "-"
	if s.MaxPrice != nil {
		maxPrice = money(*s.MaxPrice)
	}
	rows := [][]string{
		{"ID", s.ID},
		{"Name", s.Name},
		{"Query", s.Query},
		{"Site", orDash(s.Site)},
		{"Postal code", orDash(s.PostalCode)},
		{"Radius", fmt.Sprintf("%d mi", s.RadiusMi)},
		{"Max price", maxPrice},
		{"Max results", strconv.Itoa(s.MaxResults)},
		{"Enabled", strconv.FormatBool(s.Enabled)},
	}
	return renderTable(w, []string{"FIELD", "VALUE"}, rows)
}

func printRunsTable(w io.Writer, runs []domain.SearchRun) error {
	rows := make([][]string, 0, len(runs))
	for i := range runs {
		r := &runs[i]
		completed := "-"
		if r.CompletedAt != nil {
			completed = r.CompletedAt.Local().Format(timeLayout)
		}
		rows = append(rows, []string{
			r.ID,
			r.Status,
			r.StartedAt.Local().Format(timeLayout),
			completed,
			strconv.Itoa(r.Listings),
			strconv.Itoa(r.Deals),
			truncate(r.ErrorText, 40),
		})
	}
	return renderTable(w, []string{"RUN", "STATUS", "STARTED", "COMPLETED", "LISTINGS", "DEALS", "ERROR"}, rows)
}

func printRunSummaries(w io.Writer, runs []apiclient.RunSummary) error {
	rows := make([][]string, 0, len(runs))
	for i := range runs {
		r := &runs[i]
		rows = append(rows, []string{
			r.SearchID,
			r.RunID,
			strconv.Itoa(r.Listings),
			strconv.Itoa(r.Evaluated),
			strconv.Itoa(r.Skipped),
			strconv.Itoa(len(r.Deals)),
		})
	}
	return renderTable(w, []string{"SEARCH", "RUN", "LISTINGS", "EVALUATED", "SKIPPED", "DEALS"}, rows)
}

func printDealsTable(w io.Writer, deals []domain.Deal) error {
	rows := make([][]string, 0, len(deals))
	for i := range deals {
		d := &deals[i]
		rows = append(rows, []string{
			truncate(d.Listing.Title, 36),
			money(d.Listing.AskingPrice),
			money(d.Evaluation.FairValue),
			money(d.Evaluation.ProfitEstimate),
			fmt.Sprintf("%.0f%%", d.Evaluation.MarginPct),
			string(d.Evaluation.Demand),
			string(d.Evaluation.Verdict),
			fmt.Sprintf("%.1f", d.Listing.DistanceMiles),
		})
	}
	return renderTable(w, []string{"TITLE", "ASKING", "FAIR", "PROFIT", "MARGIN", "DEMAND", "VERDICT", "MILES"}, rows)
}

func printEvaluation(w io.Writer, res *domain.EvaluationResult, source string) error {
	flags := "-"
	if len(res.SellerFlags) > 0 {
		flags = fmt.Sprint(res.SellerFlags)
	}
	rows := [][]string{
		{"Verdict", string(res.Verdict)},
		{"Demand", string(res.Demand)},
		{"Condition", string(res.Condition)},
		{"Fair value", money(res.FairValue)},
		{"Buy range", money(res.BuyRangeLow) + " - " + money(res.BuyRangeHigh)},
		{"Travel cost", money(res.TravelCost)},
		{"Profit", money(res.ProfitEstimate)},
		{"Margin", fmt.Sprintf("%.1f%%", res.MarginPct)},
		{"Comparables", fmt.Sprintf("%d (%s)", res.ComparableCount, source)},
		{"Seller", string(res.SellerRating)},
		{"Seller flags", flags},
	}
	return renderTable(w, []string{"FIELD", "VALUE"}, rows)
}

func outputJSON(v any) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func money(v float64) string {
	if v < 0 {
		return fmt.Sprintf("-$%.2f", -v)
	}
	return fmt.Sprintf("$%.2f", v)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
