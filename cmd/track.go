package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/minhvu-dev/shopee-track/internal/models"
	"github.com/minhvu-dev/shopee-track/internal/tracker"
	"github.com/minhvu-dev/shopee-track/internal/ui"
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Track prices for every product in a spreadsheet",
	Long:  "Reads product links and variation labels from a workbook, checks each price concurrently, then writes today's price column and refreshed discounts back to the file.",
	RunE:  runTrack,
}

func init() {
	trackCmd.Flags().StringP("file", "f", "", "Path to the .xlsx workbook (required)")
	trackCmd.Flags().IntP("threads", "t", 0, "Concurrent price checks (default 4)")
	trackCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(trackCmd)
}

func runTrack(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("file")
	workers, _ := cmd.Flags().GetInt("threads")
	if workers <= 0 {
		workers = cfg.Workers
	}

	pool := tracker.NewPool(workers, newPriceSource)
	store := tracker.NewStore()

	bar := ui.NewProgressBar("Checking", 0)
	hooks := &tracker.RunHooks{
		OnStart:  bar.SetTotal,
		OnResult: func(res models.Result) { bar.Increment(!res.OK()) },
	}

	fmt.Fprintf(os.Stderr, "Tracking %s with %d workers\n", path, workers)
	job, err := tracker.Run(context.Background(), store, pool, path, hooks)
	if err != nil {
		return fmt.Errorf("track failed: %w", err)
	}
	bar.Finish()

	fmt.Fprintf(os.Stdout, "Done: %d checked, %d failed\n", job.Total, job.Failed)
	if job.Failed > 0 {
		for _, res := range job.Results {
			if !res.OK() {
				fmt.Fprintf(os.Stdout, "  row %d: %s: %v\n", res.Row.Index, res.Row.URL, res.Err)
			}
		}
	}
	return nil
}
