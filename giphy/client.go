package giphy

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://api.giphy.com/v1"

	// DefaultRendition is the rendition used when formatting results for
	// display and no other rendition was configured.
	DefaultRendition = "original"

	defaultTimeout = 30 * time.Second
)

// Client wraps the Giphy REST API. All methods are safe for concurrent use;
// each call owns its request and result, and the shared http.Client supports
// concurrent calls on its own.
type Client struct {
	baseURL    string
	apiKey     string
	rendition  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new Giphy client.
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	client := &Client{
		baseURL:   DefaultBaseURL,
		apiKey:    apiKey,
		rendition: DefaultRendition,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}

	for _, opt := range opts {
		opt(client)
	}
	client.baseURL = strings.TrimRight(client.baseURL, "/")

	return client, nil
}

// Rendition returns the rendition name configured for display.
func (c *Client) Rendition() string {
	return c.rendition
}

// Do issues the request described by spec on a background goroutine and
// delivers the outcome to completion. The returned Operation exposes Cancel,
// State and Done for callers that manage the call themselves.
func (c *Client) Do(ctx context.Context, spec RequestSpec, completion CompletionFunc) *Operation {
	op := newOperation(spec, c.httpClient, c.logger, completion)
	op.Start(ctx)
	return op
}

// execute runs an endpoint to completion under ctx and returns the parsed
// top-level object.
func (c *Client) execute(ctx context.Context, e Endpoint) (map[string]any, error) {
	spec := BuildRequest(e, c.apiKey, c.baseURL)
	c.logger.Debug().Str("method", spec.Method).Str("url", spec.URL).Msg("Making Giphy API request")

	var (
		body  map[string]any
		opErr error
	)
	op := c.Do(ctx, spec, func(b map[string]any, resp *http.Response, err error) {
		body = b
		opErr = err
	})
	<-op.Done()

	if opErr != nil {
		return nil, opErr
	}
	return body, nil
}

// Search searches for media matching query.
func (c *Client) Search(ctx context.Context, query string, mediaType MediaType, offset, limit int, rating, lang string) (*MediaListResponse, error) {
	body, err := c.execute(ctx, SearchEndpoint{
		Query:  query,
		Type:   mediaType,
		Offset: offset,
		Limit:  limit,
		Rating: rating,
		Lang:   lang,
	})
	if err != nil {
		return nil, err
	}
	resp, merr := mapMediaListResponse(body)
	if merr != nil {
		return nil, merr
	}
	return resp, nil
}

// Trending lists currently trending media.
func (c *Client) Trending(ctx context.Context, mediaType MediaType, offset, limit int, rating string) (*MediaListResponse, error) {
	body, err := c.execute(ctx, TrendingEndpoint{
		Type:   mediaType,
		Offset: offset,
		Limit:  limit,
		Rating: rating,
	})
	if err != nil {
		return nil, err
	}
	resp, merr := mapMediaListResponse(body)
	if merr != nil {
		return nil, merr
	}
	return resp, nil
}

// Translate converts a word or phrase into a single item.
func (c *Client) Translate(ctx context.Context, term string, mediaType MediaType, rating, lang string) (*MediaResponse, error) {
	body, err := c.execute(ctx, TranslateEndpoint{
		Term:   term,
		Type:   mediaType,
		Rating: rating,
		Lang:   lang,
	})
	if err != nil {
		return nil, err
	}
	resp, merr := mapMediaResponse(body)
	if merr != nil {
		return nil, merr
	}
	return resp, nil
}

// Random fetches a single random item, optionally limited to a tag.
func (c *Client) Random(ctx context.Context, tag string, mediaType MediaType, rating string) (*MediaResponse, error) {
	body, err := c.execute(ctx, RandomEndpoint{
		Tag:    tag,
		Type:   mediaType,
		Rating: rating,
	})
	if err != nil {
		return nil, err
	}
	resp, merr := mapMediaResponse(body)
	if merr != nil {
		return nil, merr
	}
	return resp, nil
}

// GifByID fetches a single item by ID.
func (c *Client) GifByID(ctx context.Context, id string) (*MediaResponse, error) {
	body, err := c.execute(ctx, GetEndpoint{ID: id})
	if err != nil {
		return nil, err
	}
	resp, merr := mapMediaResponse(body)
	if merr != nil {
		return nil, merr
	}
	return resp, nil
}

// GifsByIDs fetches multiple items by ID in one call.
func (c *Client) GifsByIDs(ctx context.Context, ids []string) (*MediaListResponse, error) {
	body, err := c.execute(ctx, GetAllEndpoint{IDs: ids})
	if err != nil {
		return nil, err
	}
	resp, merr := mapMediaListResponse(body)
	if merr != nil {
		return nil, merr
	}
	return resp, nil
}

// TermSuggestions fetches related search terms for term.
func (c *Client) TermSuggestions(ctx context.Context, term string) (*TermSuggestionsResponse, error) {
	body, err := c.execute(ctx, TermSuggestionsEndpoint{Term: term})
	if err != nil {
		return nil, err
	}
	resp, merr := mapTermSuggestionsResponse(body)
	if merr != nil {
		return nil, merr
	}
	return resp, nil
}

// Categories lists top-level categories.
func (c *Client) Categories(ctx context.Context, mediaType MediaType, sort string, offset, limit int) (*CategoriesResponse, error) {
	body, err := c.execute(ctx, CategoriesEndpoint{
		Type:   mediaType,
		Sort:   sort,
		Offset: offset,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}
	resp, merr := mapCategoriesResponse(body)
	if merr != nil {
		return nil, merr
	}
	return resp, nil
}

// Subcategories lists the subcategories of a category.
func (c *Client) Subcategories(ctx context.Context, mediaType MediaType, category, sort string, offset, limit int) (*CategoriesResponse, error) {
	body, err := c.execute(ctx, SubcategoriesEndpoint{
		Type:     mediaType,
		Category: category,
		Sort:     sort,
		Offset:   offset,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}
	resp, merr := mapCategoriesResponse(body)
	if merr != nil {
		return nil, merr
	}
	return resp, nil
}

// CategoryContent lists the media belonging to a category.
func (c *Client) CategoryContent(ctx context.Context, mediaType MediaType, category string, offset, limit int, rating, lang string) (*MediaListResponse, error) {
	body, err := c.execute(ctx, CategoryContentEndpoint{
		Type:     mediaType,
		Category: category,
		Offset:   offset,
		Limit:    limit,
		Rating:   rating,
		Lang:     lang,
	})
	if err != nil {
		return nil, err
	}
	resp, merr := mapMediaListResponse(body)
	if merr != nil {
		return nil, merr
	}
	return resp, nil
}
