package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/localflipper/internal/api/client"
)

func searchesCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "searches",
		Aliases: []string{"search"},
		Short:   "Manage saved searches",
		Long: "Manage saved local-marketplace searches. Enabled searches run on the\n" +
			"server's schedule and can be run on demand with 'lfl run'.",
	}

	root.AddCommand(
		searchListCmd(),
		searchGetCmd(),
		searchCreateCmd(),
		searchEnableCmd(true),
		searchEnableCmd(false),
		searchDeleteCmd(),
		searchRunsCmd(),
	)

	return root
}

func searchListCmd() *cobra.Command {
	var enabledOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved searches",
		Example: `  lfl searches list
  lfl searches list --enabled --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			searches, err := newClient().ListSearches(cmd.Context(), enabledOnly)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(searches)
			}
			if len(searches) == 0 {
				fmt.Fprintln(stdout, "No saved searches found.")
				return nil
			}
			return printSearchTable(stdout, searches)
		},
	}

	cmd.Flags().BoolVar(&enabledOnly, "enabled", false, "only list enabled searches")
	return cmd
}

func searchGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show saved search details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newClient().GetSearch(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(s)
			}
			return printSearchDetail(stdout, s)
		},
	}
}

func searchCreateCmd() *cobra.Command {
	var (
		req      apiclient.SearchRequest
		maxPrice float64
		disabled bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a saved search",
		Long: "Create a saved search. It is enabled by default and runs on the next\n" +
			"scheduled cycle.",
		Example: `  lfl searches create --name "Consoles" --query "xbox series x" \
    --site redding --postal 96001 --radius 40 --max-price 300`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if req.Name == "" || req.Query == "" {
				return fmt.Errorf("--name and --query are required")
			}
			if cmd.Flags().Changed("max-price") {
				req.MaxPrice = &maxPrice
			}
			if disabled {
				enabled := false
				req.Enabled = &enabled
			}

			created, err := newClient().CreateSearch(cmd.Context(), req)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(created)
			}
			fmt.Fprintf(stdout, "Created search %s (%s)\n", created.ID, created.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "display name (required)")
	cmd.Flags().StringVar(&req.Query, "query", "", "marketplace search terms (required)")
	cmd.Flags().StringVar(&req.Site, "site", "", "marketplace site or region")
	cmd.Flags().StringVar(&req.PostalCode, "postal", "", "search origin postal code")
	cmd.Flags().IntVar(&req.RadiusMi, "radius", 0, "search radius in miles")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "skip listings above this price")
	cmd.Flags().IntVar(&req.MaxResults, "max-results", 0, "listings fetched per run")
	cmd.Flags().BoolVar(&disabled, "disabled", false, "create the search disabled")
	return cmd
}

func searchEnableCmd(enable bool) *cobra.Command {
	use, short, verb := "enable <id>", "Enable a saved search", "Enabled"
	if !enable {
		use, short, verb = "disable <id>", "Disable a saved search", "Disabled"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newClient().SetSearchEnabled(cmd.Context(), args[0], enable)
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "%s search %s (%s)\n", verb, s.ID, s.Name)
			return nil
		},
	}
}

func searchDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved search",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newClient().DeleteSearch(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Deleted search %s\n", args[0])
			return nil
		},
	}
}

func searchRunsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs <id>",
		Short: "Show a saved search's recent runs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := newClient().ListRuns(cmd.Context(), args[0], limit)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(runs)
			}
			if len(runs) == 0 {
				fmt.Fprintln(stdout, "No runs recorded.")
				return nil
			}
			return printRunsTable(stdout, runs)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "number of runs to show")
	return cmd
}
