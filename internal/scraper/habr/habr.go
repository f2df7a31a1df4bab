package habr

import (
	"net/url"
	"strconv"

	"design-vacancy-parser/internal/scraper"
)

const (
	Name     = "habr"
	BaseURL  = "https://career.habr.com"
	IDMarker = "/vacancies/"
)

func ListingURL(query string, page int) string {
	params := url.Values{}
	params.Add("q", query)
	params.Add("page", strconv.Itoa(page))
	return BaseURL + "/vacancies?" + params.Encode()
}

func Source() scraper.Source {
	return scraper.Source{
		Name:        Name,
		DisplayName: "Habr",
		BaseURL:     BaseURL,
		IDMarker:    IDMarker,
		ListingURL:  ListingURL,
		Entries:     scraper.GenericEntries(IDMarker),
		Fields: scraper.FieldSelectors{
			Title:       []string{".vacancy-card__title", ".vacancy-title", "h3"},
			Company:     []string{".vacancy-card__company-title", ".vacancy-card__company", ".company-name"},
			Location:    []string{".vacancy-card__meta", ".vacancy-card__location", ".location"},
			Salary:      []string{".vacancy-card__salary", ".salary"},
			Description: []string{".vacancy-card__skills", ".vacancy-card__description", ".description"},
			PublishedAt: []string{".vacancy-card__date time", ".vacancy-card__date", ".date"},
		},
	}
}
