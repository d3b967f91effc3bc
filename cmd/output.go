package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/s0up4200/gifseek/giphy"
)

// displayURL picks the URL to show for an item: the configured rendition when
// available, else the canonical page URL.
func displayURL(m giphy.Media) string {
	if img, ok := m.Rendition(client.Rendition()); ok && img.URL != "" {
		return img.URL
	}
	return m.URL
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// printMedia renders a list of items as a table or as JSON.
func printMedia(items []giphy.Media) error {
	if jsonOut {
		return printJSON(items)
	}

	if len(items) == 0 {
		fmt.Println("No results.")
		return nil
	}

	fmt.Println(strings.Repeat("━", 110))
	fmt.Printf("%-20s %-36s %-6s %s\n", "ID", "TITLE", "RATING", "URL")
	fmt.Println(strings.Repeat("━", 110))
	for _, item := range items {
		fmt.Printf("%-20s %-36s %-6s %s\n",
			truncate(item.ID, 20),
			truncate(item.Title, 36),
			item.Rating,
			displayURL(item))
	}
	fmt.Printf("\n%d result(s)\n", len(items))
	return nil
}

// printSingle renders one item, or a notice when the API had no match.
func printSingle(m *giphy.Media) error {
	if jsonOut {
		return printJSON(m)
	}

	if m == nil {
		fmt.Println("No result.")
		return nil
	}

	fmt.Printf("ID:     %s\n", m.ID)
	if m.Title != "" {
		fmt.Printf("Title:  %s\n", m.Title)
	}
	if m.Rating != "" {
		fmt.Printf("Rating: %s\n", m.Rating)
	}
	if m.Username != "" {
		fmt.Printf("By:     %s\n", m.Username)
	}
	fmt.Printf("URL:    %s\n", displayURL(*m))
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
