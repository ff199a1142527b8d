package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/localflipper/internal/api/client"
)

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [search-id]",
		Short: "Run saved searches now",
		Long: "Runs one saved search, or every enabled search when no ID is given.\n" +
			"Running all searches also sends pending deal alerts.",
		Example: `  lfl run
  lfl run 3f1c...`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()

			if len(args) == 1 {
				sum, err := c.RunSearch(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if jsonOutput() {
					return outputJSON(sum)
				}
				if err := printRunSummaries(stdout, []apiclient.RunSummary{*sum}); err != nil {
					return err
				}
				if len(sum.Deals) > 0 {
					return printDealsTable(stdout, sum.Deals)
				}
				return nil
			}

			res, err := c.RunAll(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(res)
			}
			if len(res.Runs) == 0 {
				fmt.Fprintln(stdout, "No searches ran.")
			} else if err := printRunSummaries(stdout, res.Runs); err != nil {
				return err
			}
			if res.Errors != "" {
				fmt.Fprintln(os.Stderr, "Some searches failed:\n"+res.Errors)
			}
			return nil
		},
	}
}
