package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// suggestCmd represents the suggest command
var suggestCmd = &cobra.Command{
	Use:   "suggest <term>",
	Short: "Show related search terms for a term",
	Args:  cobra.ExactArgs(1),
	RunE:  runSuggest,
}

func init() {
	rootCmd.AddCommand(suggestCmd)
	suggestCmd.Flags().BoolVar(&jsonOut, "json", false, "print results as JSON")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	resp, err := client.TermSuggestions(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("suggest failed: %w", err)
	}

	if jsonOut {
		return printJSON(resp.Data)
	}

	if len(resp.Data) == 0 {
		fmt.Println("No suggestions.")
		return nil
	}
	for _, suggestion := range resp.Data {
		fmt.Println(suggestion.Name)
	}
	return nil
}
