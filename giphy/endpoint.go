package giphy

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Endpoint describes one API operation together with the exact parameters
// needed to build its request. The set of implementations below is closed;
// every operation the API offers has its own type so a descriptor can never
// carry a partial parameter set.
type Endpoint interface {
	// request returns the HTTP method, the relative path, and the query
	// parameters in the order they must appear on the wire.
	request() (method, path string, query []queryParam)
}

// queryParam is a single key/value pair. Order matters on the wire, which
// rules out url.Values (Encode sorts keys alphabetically).
type queryParam struct {
	key   string
	value string
}

// SearchEndpoint searches for media matching a query string.
type SearchEndpoint struct {
	Query  string
	Type   MediaType
	Offset int
	Limit  int
	Rating string
	Lang   string
}

func (e SearchEndpoint) request() (string, string, []queryParam) {
	return http.MethodGet, e.Type.plural() + "/search", []queryParam{
		{"q", e.Query},
		{"offset", strconv.Itoa(e.Offset)},
		{"limit", strconv.Itoa(e.Limit)},
		{"rating", e.Rating},
		{"lang", e.Lang},
	}
}

// TrendingEndpoint lists currently trending media.
type TrendingEndpoint struct {
	Type   MediaType
	Offset int
	Limit  int
	Rating string
}

func (e TrendingEndpoint) request() (string, string, []queryParam) {
	return http.MethodGet, e.Type.plural() + "/trending", []queryParam{
		{"offset", strconv.Itoa(e.Offset)},
		{"limit", strconv.Itoa(e.Limit)},
		{"rating", e.Rating},
	}
}

// TranslateEndpoint converts a word or phrase into a single item.
type TranslateEndpoint struct {
	Term   string
	Type   MediaType
	Rating string
	Lang   string
}

func (e TranslateEndpoint) request() (string, string, []queryParam) {
	return http.MethodGet, e.Type.plural() + "/translate", []queryParam{
		{"s", e.Term},
		{"rating", e.Rating},
		{"lang", e.Lang},
	}
}

// RandomEndpoint fetches a single random item, optionally limited to a tag.
type RandomEndpoint struct {
	Tag    string
	Type   MediaType
	Rating string
}

func (e RandomEndpoint) request() (string, string, []queryParam) {
	return http.MethodGet, e.Type.plural() + "/random", []queryParam{
		{"tag", e.Tag},
		{"rating", e.Rating},
	}
}

// GetEndpoint fetches a single item by ID.
type GetEndpoint struct {
	ID string
}

func (e GetEndpoint) request() (string, string, []queryParam) {
	return http.MethodGet, "gifs/" + url.PathEscape(e.ID), nil
}

// GetAllEndpoint fetches multiple items by ID in one call.
type GetAllEndpoint struct {
	IDs []string
}

func (e GetAllEndpoint) request() (string, string, []queryParam) {
	return http.MethodGet, "gifs", []queryParam{
		{"ids", strings.Join(e.IDs, ",")},
	}
}

// TermSuggestionsEndpoint fetches related search terms for a term.
type TermSuggestionsEndpoint struct {
	Term string
}

func (e TermSuggestionsEndpoint) request() (string, string, []queryParam) {
	return http.MethodGet, "queries/suggest/" + url.PathEscape(e.Term), nil
}

// CategoriesEndpoint lists top-level categories.
type CategoriesEndpoint struct {
	Type   MediaType
	Sort   string
	Offset int
	Limit  int
}

func (e CategoriesEndpoint) request() (string, string, []queryParam) {
	return http.MethodGet, e.Type.plural() + "/categories", []queryParam{
		{"sort", e.Sort},
		{"offset", strconv.Itoa(e.Offset)},
		{"limit", strconv.Itoa(e.Limit)},
	}
}

// SubcategoriesEndpoint lists the subcategories of a category.
type SubcategoriesEndpoint struct {
	Type     MediaType
	Category string
	Sort     string
	Offset   int
	Limit    int
}

func (e SubcategoriesEndpoint) request() (string, string, []queryParam) {
	return http.MethodGet, e.Type.plural() + "/categories/" + url.PathEscape(e.Category), []queryParam{
		{"sort", e.Sort},
		{"offset", strconv.Itoa(e.Offset)},
		{"limit", strconv.Itoa(e.Limit)},
	}
}

// CategoryContentEndpoint lists the media belonging to a category.
type CategoryContentEndpoint struct {
	Type     MediaType
	Category string
	Offset   int
	Limit    int
	Rating   string
	Lang     string
}

func (e CategoryContentEndpoint) request() (string, string, []queryParam) {
	return http.MethodGet, e.Type.plural() + "/categories/" + url.PathEscape(e.Category), []queryParam{
		{"offset", strconv.Itoa(e.Offset)},
		{"limit", strconv.Itoa(e.Limit)},
		{"rating", e.Rating},
		{"lang", e.Lang},
	}
}

// RequestSpec is a fully-resolved request: method, absolute URL including the
// query string, headers, and an optional body. It is built once and consumed
// exactly once by the executor.
type RequestSpec struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    []byte
}

// BuildRequest resolves an endpoint against a base URL and API key. It is
// total: every well-formed endpoint value yields a spec. The api_key is
// always the first query parameter, followed by the endpoint's own
// parameters in their documented order.
func BuildRequest(e Endpoint, apiKey, baseURL string) RequestSpec {
	method, path, params := e.request()

	var q strings.Builder
	q.WriteString("api_key=")
	q.WriteString(url.QueryEscape(apiKey))
	for _, p := range params {
		q.WriteByte('&')
		q.WriteString(p.key)
		q.WriteByte('=')
		q.WriteString(url.QueryEscape(p.value))
	}

	return RequestSpec{
		Method: method,
		URL:    strings.TrimRight(baseURL, "/") + "/" + path + "?" + q.String(),
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	}
}
