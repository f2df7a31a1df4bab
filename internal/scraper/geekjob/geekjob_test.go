package geekjob

import (
	"testing"

	"design-vacancy-parser/internal/scraper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingURL(t *testing.T) {
	assert.Equal(t, "https://geekjob.ru/vacancies?q=ui+%D0%B4%D0%B8%D0%B7%D0%B0%D0%B9%D0%BD%D0%B5%D1%80&page=3", ListingURL("ui дизайнер", 3))
}

func TestSource_CompanyFallsBackToSpan(t *testing.T) {
	src := Source()
	located, err := scraper.LocateHTML(`<section>
		<div class="vacancy-card">
			<a href="/vacancy/65f0a1b2c3"><h3>Графический дизайнер</h3></a>
			<span>Типография «Север»</span>
			<div class="date">01.03.2026</div>
		</div>
	</section>`, src.Entries)
	require.NoError(t, err)
	require.Len(t, located.Entries, 1)

	v, ok := scraper.NewExtractor(src).Extract(located.Entries[0])
	require.True(t, ok)
	assert.Equal(t, "Графический дизайнер", v.Title)
	assert.Equal(t, "Типография «Север»", v.Company)

	url, id := scraper.Normalize(v.URL, src.BaseURL, src.IDMarker)
	assert.Equal(t, "https://geekjob.ru/vacancy/65f0a1b2c3", url)
	assert.Equal(t, "65f0a1b2c3", id)
}
