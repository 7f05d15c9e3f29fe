package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func stateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Show tracked entity counts and the last run",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := newClient()
			state, err := c.GetState(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(state)
			}
			fmt.Printf("Products:    %d (%d activated)\n", state.Products, state.Activated)
			fmt.Printf("Competitors: %d\n", state.Competitors)
			if state.LastRun == nil {
				fmt.Println("Last run:    none")
				return nil
			}
			fmt.Printf("Last run:    %s %s (started %s)\n",
				state.LastRun.ID,
				state.LastRun.Status,
				state.LastRun.StartedAt.Format("2006-01-02 15:04:05"),
			)
			return nil
		},
	}
}
