package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <id> [id...]",
	Short: "Fetch items by their IDs",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().BoolVar(&jsonOut, "json", false, "print results as JSON")
}

func runGet(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if len(args) == 1 {
		resp, err := client.GifByID(ctx, args[0])
		if err != nil {
			return fmt.Errorf("get failed: %w", err)
		}
		return printSingle(resp.Data)
	}

	resp, err := client.GifsByIDs(ctx, args)
	if err != nil {
		return fmt.Errorf("get failed: %w", err)
	}
	return printMedia(resp.Data)
}
