package giphy

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// SearchConcurrency bounds the number of in-flight searches in SearchMany.
const SearchConcurrency = 5

// SearchMany runs one search per query with bounded concurrency. Results are
// returned in query order regardless of completion order; the first failing
// search cancels the rest.
func (c *Client) SearchMany(ctx context.Context, queries []string, mediaType MediaType, offset, limit int, rating, lang string) ([]*MediaListResponse, error) {
	if len(queries) == 0 {
		return nil, nil
	}

	results := make([]*MediaListResponse, len(queries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(SearchConcurrency)

	for i, query := range queries {
		i, query := i, query
		g.Go(func() error {
			resp, err := c.Search(ctx, query, mediaType, offset, limit, rating, lang)
			if err != nil {
				return fmt.Errorf("search %q: %w", query, err)
			}
			results[i] = resp
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	c.logger.Debug().Int("queries", len(queries)).Msg("Completed concurrent searches")
	return results, nil
}
