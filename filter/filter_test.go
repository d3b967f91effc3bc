package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/gifseek/giphy"
)

func sampleItems() []giphy.Media {
	return []giphy.Media{
		{
			ID:               "cat1",
			Title:            "Excited Cat",
			Rating:           "g",
			Username:         "catlady",
			TrendingDatetime: "2024-03-01 12:00:00",
			Images: map[string]giphy.Image{
				"original":     {URL: "https://g/cat1.gif"},
				"fixed_height": {URL: "https://g/cat1-fh.gif"},
			},
		},
		{
			ID:               "dog1",
			Title:            "Serious Dog",
			Rating:           "pg",
			Username:         "dogdude",
			TrendingDatetime: "0000-00-00 00:00:00",
			Images: map[string]giphy.Image{
				"original": {URL: "https://g/dog1.gif"},
			},
		},
		{
			ID:     "cat2",
			Title:  "Sleepy Cat",
			Rating: "g",
		},
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name       string
		expression string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"unparseable", `Media.Rating == `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.expression)
			require.Error(t, err)

			var cerr *CompilationError
			require.ErrorAs(t, err, &cerr)
		})
	}
}

func TestFilterApply(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		wantIDs    []string
	}{
		{
			name:       "by rating",
			expression: `Media.Rating == "g"`,
			wantIDs:    []string{"cat1", "cat2"},
		},
		{
			name:       "title contains",
			expression: `contains(Media.Title, "cat")`,
			wantIDs:    []string{"cat1", "cat2"},
		},
		{
			name:       "trending only",
			expression: `isTrending()`,
			wantIDs:    []string{"cat1"},
		},
		{
			name:       "trended after a date",
			expression: `trendedAfter("2024-01-01")`,
			wantIDs:    []string{"cat1"},
		},
		{
			name:       "by rendition",
			expression: `hasRendition("fixed_height")`,
			wantIDs:    []string{"cat1"},
		},
		{
			name:       "by user",
			expression: `byUser("DogDude")`,
			wantIDs:    []string{"dog1"},
		},
		{
			name:       "combined",
			expression: `Media.Rating == "g" and not isTrending()`,
			wantIDs:    []string{"cat2"},
		},
		{
			name:       "no matches",
			expression: `Media.Rating == "r"`,
			wantIDs:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)
			assert.Equal(t, tt.expression, f.Expression())

			matched := f.Apply(sampleItems())
			var ids []string
			for _, m := range matched {
				ids = append(ids, m.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestParseAPITime(t *testing.T) {
	cases := map[string]bool{
		"2024-03-01 12:00:00": false,
		"0000-00-00 00:00:00": true,
		"":                    true,
		"not a date":          true,
	}
	for input, wantZero := range cases {
		if got := parseAPITime(input).IsZero(); got != wantZero {
			t.Fatalf("parseAPITime(%q).IsZero() = %v, want %v", input, got, wantZero)
		}
	}
}
