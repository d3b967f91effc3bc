package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/gifseek/giphy"
)

var (
	sortFlag    string
	showContent bool
)

// categoriesCmd represents the categories command
var categoriesCmd = &cobra.Command{
	Use:   "categories [category]",
	Short: "Browse the category tree",
	Long: `List the top-level categories, the subcategories of one category, or,
with --content, the media belonging to a category.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
	addListFlags(categoriesCmd)
	categoriesCmd.Flags().StringVar(&sortFlag, "sort", "giphy", "category sort order")
	categoriesCmd.Flags().StringVar(&langFlag, "lang", "", "2-letter language code (with --content)")
	categoriesCmd.Flags().BoolVar(&showContent, "content", false, "list the media in the category instead of its subcategories")
}

func runCategories(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	mediaType := resolveMediaType()
	limit := resolveLimit(cmd)

	if len(args) == 0 {
		resp, err := client.Categories(ctx, mediaType, sortFlag, offsetFlag, limit)
		if err != nil {
			return fmt.Errorf("categories failed: %w", err)
		}
		return printCategories(resp.Data)
	}

	category := args[0]

	if showContent {
		f, err := resolveFilter()
		if err != nil {
			return err
		}
		resp, err := client.CategoryContent(ctx, mediaType, category, offsetFlag, limit, resolveRating(), resolveLang())
		if err != nil {
			return fmt.Errorf("category content failed: %w", err)
		}
		items := resp.Data
		if f != nil {
			items = f.Apply(items)
		}
		return printMedia(items)
	}

	resp, err := client.Subcategories(ctx, mediaType, category, sortFlag, offsetFlag, limit)
	if err != nil {
		return fmt.Errorf("subcategories failed: %w", err)
	}
	return printCategories(resp.Data)
}

func printCategories(categories []giphy.Category) error {
	if jsonOut {
		return printJSON(categories)
	}

	if len(categories) == 0 {
		fmt.Println("No categories.")
		return nil
	}
	for _, cat := range categories {
		if len(cat.Subcategories) == 0 {
			fmt.Println(cat.Name)
			continue
		}
		names := make([]string, 0, len(cat.Subcategories))
		for _, sub := range cat.Subcategories {
			names = append(names, sub.Name)
		}
		fmt.Printf("%s: %s\n", cat.Name, strings.Join(names, ", "))
	}
	return nil
}
