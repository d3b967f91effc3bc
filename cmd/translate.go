package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// translateCmd represents the translate command
var translateCmd = &cobra.Command{
	Use:   "translate <phrase>",
	Short: "Convert a word or phrase into a single item",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)
	translateCmd.Flags().StringVarP(&ratingFlag, "rating", "r", "", "content rating (g, pg, pg-13, r)")
	translateCmd.Flags().StringVarP(&mediaTypeFlag, "media-type", "m", "", "media type (gif, sticker, text, video)")
	translateCmd.Flags().StringVar(&langFlag, "lang", "", "2-letter language code")
	translateCmd.Flags().BoolVar(&jsonOut, "json", false, "print the result as JSON")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	term := strings.Join(args, " ")

	resp, err := client.Translate(context.Background(), term, resolveMediaType(), resolveRating(), resolveLang())
	if err != nil {
		return fmt.Errorf("translate failed: %w", err)
	}

	return printSingle(resp.Data)
}
