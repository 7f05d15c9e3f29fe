package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func auditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "audit <product-id>",
		Short: "Show a price audit report for a product",
		Long: "Print a point-in-time audit of a product: the recorded client price\n" +
			"and each competitor's last observed price with the gap against the\n" +
			"client. The report reads stored state only and never fetches.",
		Args: cobra.ExactArgs(1),
		Example: `  price-guardian audit 5f6e...
  price-guardian audit 5f6e... --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			report, err := c.GetAudit(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(map[string]string{"report": report})
			}
			fmt.Println(report)
			return nil
		},
	}
}
