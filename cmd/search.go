package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/gifseek/giphy"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query> [query...]",
	Short: "Search for media matching one or more queries",
	Long: `Search the Giphy library. Multiple queries are fetched concurrently and
their results are printed in query order.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	addListFlags(searchCmd)
	searchCmd.Flags().StringVar(&langFlag, "lang", "", "2-letter language code")
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	f, err := resolveFilter()
	if err != nil {
		return err
	}

	mediaType := resolveMediaType()
	limit := resolveLimit(cmd)
	rating := resolveRating()
	lang := resolveLang()

	var items []giphy.Media

	if len(args) == 1 {
		resp, err := client.Search(ctx, args[0], mediaType, offsetFlag, limit, rating, lang)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		if resp.Pagination != nil {
			logger.Debug().
				Int("total", resp.Pagination.TotalCount).
				Int("count", resp.Pagination.Count).
				Msg("Search results")
		}
		items = resp.Data
	} else {
		responses, err := client.SearchMany(ctx, args, mediaType, offsetFlag, limit, rating, lang)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		for _, resp := range responses {
			items = append(items, resp.Data...)
		}
	}

	if f != nil {
		items = f.Apply(items)
	}

	return printMedia(items)
}
