package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/minhvu-dev/shopee-track/internal/marketplace"
	"github.com/minhvu-dev/shopee-track/internal/ui"
)

var priceCmd = &cobra.Command{
	Use:   "price [url]",
	Short: "Check the current price of a product",
	Args:  cobra.ExactArgs(1),
	RunE:  runPrice,
}

func init() {
	priceCmd.Flags().String("var1", "", "First variation label, e.g. color")
	priceCmd.Flags().String("var2", "", "Second variation label, e.g. size")
	priceCmd.Flags().String("format", "table", "Output format: json, table")
	rootCmd.AddCommand(priceCmd)
}

func runPrice(cmd *cobra.Command, args []string) error {
	initMarketplaces()

	url := args[0]
	var1, _ := cmd.Flags().GetString("var1")
	var2, _ := cmd.Flags().GetString("var2")
	format, _ := cmd.Flags().GetString("format")
	marketplaceName, _ := cmd.Flags().GetString("marketplace")

	source, err := marketplace.Get(marketplaceName)
	if err != nil {
		return err
	}

	spin := ui.NewSpinner()
	spin.Start(fmt.Sprintf("Checking price on %s...", marketplaceName))
	ctx := marketplace.WithProgress(context.Background(), spin.Update)
	price, err := source.GetPrice(ctx, url, var1, var2)
	spin.Stop()
	if err != nil {
		return fmt.Errorf("price check failed: %w", err)
	}

	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(map[string]any{
			"url":        url,
			"var1":       var1,
			"var2":       var2,
			"price":      price,
			"checked_at": time.Now().Format(time.RFC3339),
		})
	default:
		label := url
		if var1 != "" {
			label += " [" + var1
			if var2 != "" {
				label += " / " + var2
			}
			label += "]"
		}
		fmt.Fprintf(os.Stdout, "%s\n  Price: %s\n", label, formatPrice(price))
	}

	return nil
}
