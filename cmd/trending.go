package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// trendingCmd represents the trending command
var trendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "List currently trending media",
	RunE:  runTrending,
}

func init() {
	rootCmd.AddCommand(trendingCmd)
	addListFlags(trendingCmd)
}

func runTrending(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	f, err := resolveFilter()
	if err != nil {
		return err
	}

	resp, err := client.Trending(ctx, resolveMediaType(), offsetFlag, resolveLimit(cmd), resolveRating())
	if err != nil {
		return fmt.Errorf("trending failed: %w", err)
	}

	items := resp.Data
	if f != nil {
		items = f.Apply(items)
	}

	return printMedia(items)
}
