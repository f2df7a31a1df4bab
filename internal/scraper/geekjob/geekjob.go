package geekjob

import (
	"fmt"
	"net/url"

	"design-vacancy-parser/internal/scraper"
)

const (
	Name     = "geekjob"
	BaseURL  = "https://geekjob.ru"
	IDMarker = "/vacancy/"
)

func ListingURL(query string, page int) string {
	return fmt.Sprintf("%s/vacancies?q=%s&page=%d", BaseURL, url.QueryEscape(query), page)
}

// Source is the geekjob.ru profile. Cards have no stable class names,
// so it relies on the generic entry chain.
func Source() scraper.Source {
	return scraper.Source{
		Name:        Name,
		DisplayName: "Geekjob",
		BaseURL:     BaseURL,
		IDMarker:    IDMarker,
		ListingURL:  ListingURL,
		Entries:     scraper.GenericEntries(IDMarker),
		Fields: scraper.FieldSelectors{
			Title:       []string{"h3", ".title", ".job-title", ".vacancy-title"},
			Company:     []string{".company", ".employer", ".job-company", "span"},
			Location:    []string{".location", ".city", ".job-location"},
			Salary:      []string{".salary", ".job-salary", ".wage"},
			Description: []string{".description", ".job-description", ".vacancy-description"},
			PublishedAt: []string{".date", ".published", ".job-date", "time"},
		},
	}
}
