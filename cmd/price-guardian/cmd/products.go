package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pricewar-labs/price-guardian/internal/config"
	"github.com/pricewar-labs/price-guardian/internal/store"
	domain "github.com/pricewar-labs/price-guardian/pkg/types"
)

func productsCmd() *cobra.Command {
	productsRoot := &cobra.Command{
		Use:   "products",
		Short: "Manage tracked products",
	}

	productsRoot.AddCommand(
		productsListCmd(),
		productsGetCmd(),
		productsCreateCmd(),
		productsAddCompetitorCmd(),
	)

	return productsRoot
}

func productsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tracked products",
		Example: `  price-guardian products list
  price-guardian products list --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := newClient()
			resp, err := c.ListProducts(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			if len(resp.Products) == 0 {
				fmt.Println("No products tracked.")
				return nil
			}
			return printProductTable(resp.Products)
		},
	}
}

func productsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <product-id>",
		Short: "Show a product with its competitors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			p, err := c.GetProduct(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(p)
			}
			return printProductDetail(p)
		},
	}
}

func productsCreateCmd() *cobra.Command {
	var (
		name    string
		baseURL string
		channel string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a product for monitoring",
		Long: "Register a product directly in the store. The product is picked up\n" +
			"on the next monitoring pass; assigning a channel triggers an\n" +
			"activation notification on that pass.",
		Example: `  price-guardian products create --name "Mechanical Keyboard" \
    --base-url https://shop.example.com/products/keeb --channel C0123456789`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			p := &domain.Product{
				Name:      name,
				BaseURL:   baseURL,
				ChannelID: channel,
			}
			if err := st.CreateProduct(cmd.Context(), p); err != nil {
				return fmt.Errorf("creating product: %w", err)
			}
			fmt.Printf("Created product %s\n", p.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "product name")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "client storefront product URL")
	cmd.Flags().StringVar(&channel, "channel", "", "notification channel ID")
	cobra.CheckErr(cmd.MarkFlagRequired("name"))
	cobra.CheckErr(cmd.MarkFlagRequired("base-url"))

	return cmd
}

func productsAddCompetitorCmd() *cobra.Command {
	var (
		name string
		url  string
	)

	cmd := &cobra.Command{
		Use:   "add-competitor <product-id>",
		Short: "Track a competitor page for a product",
		Args:  cobra.ExactArgs(1),
		Example: `  price-guardian products add-competitor 5f6e... \
    --name rival-shop --url https://rival.example.com/products/keeb`,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			c := &domain.Competitor{
				ProductID: args[0],
				Name:      name,
				URL:       url,
			}
			if err := st.CreateCompetitor(cmd.Context(), c); err != nil {
				return fmt.Errorf("creating competitor: %w", err)
			}
			fmt.Printf("Created competitor %s\n", c.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "competitor name")
	cmd.Flags().StringVar(&url, "url", "", "competitor product URL")
	cobra.CheckErr(cmd.MarkFlagRequired("name"))
	cobra.CheckErr(cmd.MarkFlagRequired("url"))

	return cmd
}

// openStore connects to the database for the admin commands that write
// directly instead of going through the read-only API.
func openStore(ctx context.Context) (*store.PostgresStore, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN(), cfg.Database.PoolSize)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return st, nil
}
