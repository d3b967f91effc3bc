package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// randomCmd represents the random command
var randomCmd = &cobra.Command{
	Use:   "random [tag]",
	Short: "Fetch a single random item, optionally limited to a tag",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRandom,
}

func init() {
	rootCmd.AddCommand(randomCmd)
	randomCmd.Flags().StringVarP(&ratingFlag, "rating", "r", "", "content rating (g, pg, pg-13, r)")
	randomCmd.Flags().StringVarP(&mediaTypeFlag, "media-type", "m", "", "media type (gif, sticker, text, video)")
	randomCmd.Flags().BoolVar(&jsonOut, "json", false, "print the result as JSON")
}

func runRandom(cmd *cobra.Command, args []string) error {
	var tag string
	if len(args) == 1 {
		tag = args[0]
	}

	resp, err := client.Random(context.Background(), tag, resolveMediaType(), resolveRating())
	if err != nil {
		return fmt.Errorf("random failed: %w", err)
	}

	return printSingle(resp.Data)
}
