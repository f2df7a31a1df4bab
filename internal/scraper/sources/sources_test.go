package sources

import (
	"testing"

	"design-vacancy-parser/internal/scraper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := map[string]string{
		"siteA":   "geekjob",
		"geekjob": "geekjob",
		"siteB":   "hh",
		"HH":      "hh",
		"siteC":   "habr",
		" habr ":  "habr",
	}
	for input, want := range tests {
		src, err := Lookup(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, src.Name)
		assert.NotNil(t, src.ListingURL)
		assert.NotEmpty(t, src.Entries)
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("linkedin")
	assert.ErrorIs(t, err, scraper.ErrUnknownSource)
}
