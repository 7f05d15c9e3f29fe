package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func runsCmd() *cobra.Command {
	runsRoot := &cobra.Command{
		Use:   "runs",
		Short: "View and trigger monitoring runs",
	}

	runsRoot.AddCommand(
		runsListCmd(),
		runsTriggerCmd(),
	)

	return runsRoot
}

func runsListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent monitoring runs",
		Example: `  price-guardian runs list
  price-guardian runs list --limit 50 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := newClient()
			runs, err := c.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(runs)
			}
			if len(runs) == 0 {
				fmt.Println("No runs recorded.")
				return nil
			}
			return printRunsTable(runs)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "max runs to return (server default when 0)")

	return cmd
}

func runsTriggerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trigger",
		Short: "Start a monitoring run and wait for it to finish",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := newClient()
			run, err := c.TriggerRun(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(run)
			}
			fmt.Printf("Run %s %s: %d products, %d competitors, %d changes, %d notifications\n",
				run.ID,
				run.Status,
				run.ProductsChecked,
				run.CompetitorsChecked,
				run.PriceChanges,
				run.NotificationsSent,
			)
			if run.ErrorText != "" {
				fmt.Printf("  error: %s\n", run.ErrorText)
			}
			return nil
		},
	}
}
