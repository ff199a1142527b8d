package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/localflipper/internal/api/client"
	score "github.com/donaldgifford/localflipper/pkg/scorer"
)

func evaluateCmd() *cobra.Command {
	var (
		req       apiclient.EvaluateRequest
		compsFile string
		fuelPrice float64
		mpg       float64
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate a single listing",
		Long: "Asks the server to evaluate one listing. Comparables are fetched live\n" +
			"from eBay unless --comparables names a JSON file of comparable sales.",
		Example: `  lfl evaluate --title "xbox series x" --price 250 --distance 18 --condition "like new"
  lfl evaluate --title "ps5" --price 300 --distance 5 --comparables comps.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if req.Listing.Title == "" {
				return fmt.Errorf("--title is required")
			}
			if compsFile != "" {
				data, err := os.ReadFile(compsFile) //nolint:gosec // path from CLI flag
				if err != nil {
					return fmt.Errorf("reading comparables: %w", err)
				}
				if err := json.Unmarshal(data, &req.Comparables); err != nil {
					return fmt.Errorf("decoding comparables: %w", err)
				}
			}
			if cmd.Flags().Changed("fuel-price") || cmd.Flags().Changed("mpg") {
				req.Fuel = &score.FuelParams{PricePerGallon: fuelPrice, MPG: mpg}
			}
			if req.Listing.Source == "" {
				req.Listing.Source = "cli"
			}

			resp, err := newClient().Evaluate(cmd.Context(), &req)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			return printEvaluation(stdout, &resp.Result, resp.ComparablesSource)
		},
	}

	def := score.DefaultFuelParams()
	cmd.Flags().StringVar(&req.Listing.Title, "title", "", "listing title (required)")
	cmd.Flags().StringVar(&req.Listing.Description, "description", "", "seller description")
	cmd.Flags().Float64Var(&req.Listing.AskingPrice, "price", 0, "asking price")
	cmd.Flags().Float64Var(&req.Listing.DistanceMiles, "distance", 0, "one-way distance in miles")
	cmd.Flags().StringVar(&req.Listing.RawCondition, "condition", "", "condition as written by the seller")
	cmd.Flags().StringVar(&req.Listing.URL, "url", "", "listing URL")
	cmd.Flags().IntVar(&req.LocalSupply, "supply", 0, "competing local listings")
	cmd.Flags().StringVar(&compsFile, "comparables", "", "JSON file with comparable sales")
	cmd.Flags().Float64Var(&fuelPrice, "fuel-price", def.PricePerGallon, "fuel price per gallon")
	cmd.Flags().Float64Var(&mpg, "mpg", def.MPG, "vehicle miles per gallon")
	return cmd
}

func cleanCmd() *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "clean <text>",
		Short: "Clean seller-written text",
		Long:  "Strips emoji, contact details and repeated punctuation, and rates the seller.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().Clean(cmd.Context(), title, args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			fmt.Fprintln(stdout, resp.Cleaned)
			fmt.Fprintf(stdout, "Seller: %s", resp.SellerRating)
			if len(resp.SellerFlags) > 0 {
				fmt.Fprintf(stdout, " %v", resp.SellerFlags)
			}
			fmt.Fprintln(stdout)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "listing title, used for the seller rating")
	return cmd
}

func quotaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quota",
		Short: "Show eBay API quota usage",
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := newClient().Quota(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(q)
			}
			if !q.Enabled {
				fmt.Fprintln(stdout, "eBay comparables are not configured on the server.")
				return nil
			}
			fmt.Fprintf(stdout, "Used %d of %d (%d remaining), resets %s\n",
				q.Used, q.Limit, q.Remaining, q.ResetAt.Local().Format(timeLayout))
			return nil
		},
	}
}
