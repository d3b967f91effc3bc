package giphy

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildRequest(t *testing.T) {
	tests := []struct {
		name     string
		endpoint Endpoint
		wantURL  string
	}{
		{
			name: "search",
			endpoint: SearchEndpoint{
				Query:  "cats",
				Type:   MediaTypeGif,
				Offset: 0,
				Limit:  25,
				Rating: "g",
				Lang:   "en",
			},
			wantURL: "https://api.giphy.com/v1/gifs/search?api_key=key&q=cats&offset=0&limit=25&rating=g&lang=en",
		},
		{
			name: "search escapes the query",
			endpoint: SearchEndpoint{
				Query:  "cats & dogs",
				Type:   MediaTypeSticker,
				Offset: 50,
				Limit:  10,
				Rating: "pg",
				Lang:   "es",
			},
			wantURL: "https://api.giphy.com/v1/stickers/search?api_key=key&q=cats+%26+dogs&offset=50&limit=10&rating=pg&lang=es",
		},
		{
			name: "trending",
			endpoint: TrendingEndpoint{
				Type:   MediaTypeGif,
				Offset: 0,
				Limit:  25,
				Rating: "g",
			},
			wantURL: "https://api.giphy.com/v1/gifs/trending?api_key=key&offset=0&limit=25&rating=g",
		},
		{
			name: "translate",
			endpoint: TranslateEndpoint{
				Term:   "good morning",
				Type:   MediaTypeGif,
				Rating: "g",
				Lang:   "en",
			},
			wantURL: "https://api.giphy.com/v1/gifs/translate?api_key=key&s=good+morning&rating=g&lang=en",
		},
		{
			name: "random",
			endpoint: RandomEndpoint{
				Tag:    "dance",
				Type:   MediaTypeSticker,
				Rating: "pg-13",
			},
			wantURL: "https://api.giphy.com/v1/stickers/random?api_key=key&tag=dance&rating=pg-13",
		},
		{
			name:     "get by id",
			endpoint: GetEndpoint{ID: "xT4uQulxzV39haRFjG"},
			wantURL:  "https://api.giphy.com/v1/gifs/xT4uQulxzV39haRFjG?api_key=key",
		},
		{
			name:     "get by id escapes the path segment",
			endpoint: GetEndpoint{ID: "abc/../def"},
			wantURL:  "https://api.giphy.com/v1/gifs/abc%2F..%2Fdef?api_key=key",
		},
		{
			name:     "get many by id",
			endpoint: GetAllEndpoint{IDs: []string{"a1", "b2", "c3"}},
			wantURL:  "https://api.giphy.com/v1/gifs?api_key=key&ids=a1%2Cb2%2Cc3",
		},
		{
			name:     "term suggestions",
			endpoint: TermSuggestionsEndpoint{Term: "feliz navidad"},
			wantURL:  "https://api.giphy.com/v1/queries/suggest/feliz%20navidad?api_key=key",
		},
		{
			name: "categories",
			endpoint: CategoriesEndpoint{
				Type:   MediaTypeGif,
				Sort:   "giphy",
				Offset: 0,
				Limit:  25,
			},
			wantURL: "https://api.giphy.com/v1/gifs/categories?api_key=key&sort=giphy&offset=0&limit=25",
		},
		{
			name: "subcategories",
			endpoint: SubcategoriesEndpoint{
				Type:     MediaTypeGif,
				Category: "tv & movies",
				Sort:     "giphy",
				Offset:   0,
				Limit:    25,
			},
			wantURL: "https://api.giphy.com/v1/gifs/categories/tv%20&%20movies?api_key=key&sort=giphy&offset=0&limit=25",
		},
		{
			name: "category content",
			endpoint: CategoryContentEndpoint{
				Type:     MediaTypeGif,
				Category: "actions",
				Offset:   0,
				Limit:    25,
				Rating:   "g",
				Lang:     "en",
			},
			wantURL: "https://api.giphy.com/v1/gifs/categories/actions?api_key=key&offset=0&limit=25&rating=g&lang=en",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := BuildRequest(tt.endpoint, "key", "https://api.giphy.com/v1")
			assert.Equal(t, http.MethodGet, spec.Method)
			assert.Equal(t, tt.wantURL, spec.URL)
			assert.Equal(t, "application/json", spec.Headers["Content-Type"])
			assert.Nil(t, spec.Body)
		})
	}
}

func TestBuildRequestEveryKind(t *testing.T) {
	// One value per operation type. When a new endpoint type is added it
	// belongs in this list.
	endpoints := []Endpoint{
		SearchEndpoint{Query: "q", Type: MediaTypeGif, Limit: 1, Rating: "g", Lang: "en"},
		TrendingEndpoint{Type: MediaTypeGif, Limit: 1, Rating: "g"},
		TranslateEndpoint{Term: "t", Type: MediaTypeGif, Rating: "g", Lang: "en"},
		RandomEndpoint{Tag: "t", Type: MediaTypeGif, Rating: "g"},
		GetEndpoint{ID: "id"},
		GetAllEndpoint{IDs: []string{"id"}},
		TermSuggestionsEndpoint{Term: "t"},
		CategoriesEndpoint{Type: MediaTypeGif, Sort: "giphy", Limit: 1},
		SubcategoriesEndpoint{Type: MediaTypeGif, Category: "c", Sort: "giphy", Limit: 1},
		CategoryContentEndpoint{Type: MediaTypeGif, Category: "c", Limit: 1, Rating: "g", Lang: "en"},
	}

	for _, e := range endpoints {
		spec := BuildRequest(e, "the-key", "https://api.giphy.com/v1/")
		assert.Equal(t, http.MethodGet, spec.Method)
		assert.Truef(t, strings.HasPrefix(spec.URL, "https://api.giphy.com/v1/"), "URL %q not under base", spec.URL)

		// api_key is always the first query parameter.
		_, query, found := strings.Cut(spec.URL, "?")
		assert.True(t, found)
		assert.Truef(t, strings.HasPrefix(query, "api_key=the-key"), "query %q does not lead with api_key", query)
	}
}

func TestBuildRequestTrimsBaseURL(t *testing.T) {
	spec := BuildRequest(GetEndpoint{ID: "x"}, "k", "http://localhost:8080/v1/")
	assert.Equal(t, "http://localhost:8080/v1/gifs/x?api_key=k", spec.URL)
}

func TestMediaTypePlural(t *testing.T) {
	cases := map[MediaType]string{
		MediaTypeGif:     "gifs",
		MediaTypeSticker: "stickers",
		MediaTypeText:    "texts",
		MediaTypeVideo:   "videos",
	}
	for mt, want := range cases {
		if got := mt.plural(); got != want {
			t.Fatalf("plural(%q) = %q, want %q", mt, got, want)
		}
	}
}
