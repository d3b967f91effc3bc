package giphy

// MediaType identifies which kind of media an endpoint operates on.
type MediaType string

const (
	MediaTypeGif     MediaType = "gif"
	MediaTypeSticker MediaType = "sticker"
	MediaTypeText    MediaType = "text"
	MediaTypeVideo   MediaType = "video"
)

// plural returns the path segment form of the media type ("gif" -> "gifs").
func (m MediaType) plural() string {
	return string(m) + "s"
}

// Meta is the status envelope the API attaches to every response, success and
// error alike.
type Meta struct {
	Status     int
	Msg        string
	ResponseID string
}

// Pagination describes the window of a list response.
type Pagination struct {
	TotalCount int
	Count      int
	Offset     int
}

// Image is a single rendition of a media item. The API serializes dimensions
// as strings, so they are kept as-is.
type Image struct {
	URL    string
	Width  string
	Height string
}

// Media is one item returned by the API.
type Media struct {
	ID               string
	Type             MediaType
	URL              string
	Slug             string
	Title            string
	Rating           string
	Username         string
	Source           string
	EmbedURL         string
	ImportDatetime   string
	TrendingDatetime string
	Images           map[string]Image
}

// Rendition looks up a named rendition ("original", "fixed_height", ...).
func (m *Media) Rendition(name string) (Image, bool) {
	img, ok := m.Images[name]
	return img, ok
}

// Subcategory is a nested entry of a top-level category.
type Subcategory struct {
	Name        string
	NameEncoded string
}

// Category is one entry of the categories listing. The API decorates each
// category with a representative item.
type Category struct {
	Name          string
	NameEncoded   string
	Subcategories []Subcategory
	Gif           *Media
}

// TermSuggestion is one entry of the term-suggestions listing.
type TermSuggestion struct {
	Name string
}

// MediaResponse wraps a single-item response. Data is nil when the API
// answered with meta only.
type MediaResponse struct {
	Meta Meta
	Data *Media
}

// MediaListResponse wraps a list response. Data and Pagination are nil when
// the API answered with meta only.
type MediaListResponse struct {
	Meta       Meta
	Data       []Media
	Pagination *Pagination
}

// CategoriesResponse wraps a categories or subcategories listing.
type CategoriesResponse struct {
	Meta       Meta
	Data       []Category
	Pagination *Pagination
}

// TermSuggestionsResponse wraps a term-suggestions listing.
type TermSuggestionsResponse struct {
	Meta Meta
	Data []TermSuggestion
}
