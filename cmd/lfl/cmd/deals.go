package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/localflipper/internal/api/client"
	"github.com/donaldgifford/localflipper/internal/export"
)

func dealsCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "deals",
		Short: "Browse and export deals",
		Long:  "Browse deals found by saved search runs, best first, or export them as CSV.",
	}

	root.AddCommand(dealsListCmd(), dealsExportCmd())
	return root
}

func addDealFilterFlags(cmd *cobra.Command, f *apiclient.DealFilter) {
	cmd.Flags().StringVar(&f.SearchID, "search", "", "only deals from this saved search ID")
	cmd.Flags().StringVar(&f.Verdict, "verdict", "", "only deals with this verdict (profitable, marginal, not_profitable)")
	cmd.Flags().Float64Var(&f.MinProfit, "min-profit", 0, "minimum profit estimate")
	cmd.Flags().StringVar(&f.OrderBy, "order-by", "", "sort order (rank, profit, evaluated_at)")
}

func dealsListCmd() *cobra.Command {
	var f apiclient.DealFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List deals",
		Example: `  lfl deals list --verdict profitable
  lfl deals list --min-profit 50 --limit 10 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			page, err := newClient().ListDeals(cmd.Context(), f)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(page)
			}
			if len(page.Deals) == 0 {
				fmt.Fprintln(stdout, "No deals found.")
				return nil
			}
			if err := printDealsTable(stdout, page.Deals); err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Showing %d-%d of %d\n", page.Offset+1, page.Offset+len(page.Deals), page.Total)
			return nil
		},
	}

	addDealFilterFlags(cmd, &f)
	cmd.Flags().IntVar(&f.Limit, "limit", 50, "number of deals")
	cmd.Flags().IntVar(&f.Offset, "offset", 0, "pagination offset")
	return cmd
}

func dealsExportCmd() *cobra.Command {
	var (
		f   apiclient.DealFilter
		dir string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export deals as CSV",
		Long: "Downloads matching deals as CSV into a timestamped file under --dir.\n" +
			"Use --dir - to write to stdout.",
		Example: `  lfl deals export --verdict profitable --dir ./exports
  lfl deals export --dir - > deals.csv`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := newClient().ExportDeals(cmd.Context(), f)
			if err != nil {
				return err
			}
			if dir == "-" {
				_, err := stdout.Write(data)
				return err
			}

			if err := os.MkdirAll(dir, 0o750); err != nil {
				return fmt.Errorf("creating export dir: %w", err)
			}
			mode := f.Verdict
			path := filepath.Join(dir, export.Filename(mode, time.Now()))
			if err := os.WriteFile(path, data, 0o600); err != nil {
				return fmt.Errorf("writing export: %w", err)
			}
			fmt.Fprintf(stdout, "Exported deals to %s\n", path)
			return nil
		},
	}

	addDealFilterFlags(cmd, &f)
	cmd.Flags().StringVar(&dir, "dir", ".", "output directory, or - for stdout")
	return cmd
}
