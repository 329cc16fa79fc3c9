package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/minhvu-dev/shopee-track/internal/marketplace"
)

var idsCmd = &cobra.Command{
	Use:   "ids [url]",
	Short: "Extract shop and item IDs from a product URL",
	Args:  cobra.ExactArgs(1),
	RunE:  runIDs,
}

func init() {
	rootCmd.AddCommand(idsCmd)
}

func runIDs(cmd *cobra.Command, args []string) error {
	initMarketplaces()

	marketplaceName, _ := cmd.Flags().GetString("marketplace")
	source, err := marketplace.Get(marketplaceName)
	if err != nil {
		return err
	}

	shopID, itemID, err := source.ExtractIDs(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]string{
		"shop_id": shopID,
		"item_id": itemID,
	})
}
