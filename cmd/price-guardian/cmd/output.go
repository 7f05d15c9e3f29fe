package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/viper"

	apiclient "github.com/pricewar-labs/price-guardian/internal/api/client"
	"github.com/pricewar-labs/price-guardian/internal/api/handlers"
	domain "github.com/pricewar-labs/price-guardian/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printProductTable(products []handlers.ProductView) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tNAME\tCHANNEL\tCLIENT PRICE\tCOMPETITORS\n")
	for i := range products {
		p := &products[i]
		tw.writef("%s\t%s\t%s\t%s\t%d\n",
			p.ID,
			truncate(p.Name, 40),
			channelText(p.ChannelID),
			priceText(p.ClientPrice),
			len(p.Competitors),
		)
	}
	return tw.finish()
}

func printProductDetail(p *handlers.ProductView) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", p.ID)
	tw.writef("Name:\t%s\n", p.Name)
	tw.writef("Base URL:\t%s\n", p.BaseURL)
	tw.writef("Channel:\t%s\n", channelText(p.ChannelID))
	tw.writef("Activated:\t%s\n", channelText(p.ActivatedChannelID))
	tw.writef("Client Price:\t%s\n", priceText(p.ClientPrice))
	if p.ClientCheckedAt != nil {
		tw.writef("Client Checked:\t%s\n", p.ClientCheckedAt.Format("2006-01-02 15:04:05"))
	}
	if err := tw.finish(); err != nil {
		return err
	}
	if len(p.Competitors) == 0 {
		fmt.Println("\nNo competitors tracked.")
		return nil
	}
	fmt.Println("\nCompetitors:")
	tw = newTabWriter(os.Stdout)
	tw.writef("NAME\tLAST PRICE\tGAP\tURL\n")
	for i := range p.Competitors {
		c := &p.Competitors[i]
		tw.writef("%s\t%s\t%s\t%s\n",
			c.Name,
			priceText(c.LastPrice),
			c.Gap,
			truncate(c.URL, 60),
		)
	}
	return tw.finish()
}

func printRunsTable(runs []domain.Run) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tSTATUS\tSTARTED\tCOMPLETED\tPRODUCTS\tCHANGES\tSENT\tERROR\n")
	for i := range runs {
		r := &runs[i]
		completed := "-"
		if r.CompletedAt != nil {
			completed = r.CompletedAt.Format("2006-01-02 15:04:05")
		}
		tw.writef("%s\t%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
			r.ID,
			r.Status,
			r.StartedAt.Format("2006-01-02 15:04:05"),
			completed,
			r.ProductsChecked,
			r.PriceChanges,
			r.NotificationsSent,
			truncate(r.ErrorText, 40),
		)
	}
	return tw.finish()
}

func priceText(p *float64) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("$%.2f", *p)
}

func channelText(id string) string {
	if id == "" {
		return "-"
	}
	return id
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func newClient() *apiclient.Client {
	return apiclient.New(viper.GetString("server"))
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
