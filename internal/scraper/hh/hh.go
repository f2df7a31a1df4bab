package hh

import (
	"net/url"
	"strconv"

	"design-vacancy-parser/internal/scraper"
)

const (
	Name     = "hh"
	BaseURL  = "https://hh.ru"
	IDMarker = "/vacancy/"
	//area 1 is Moscow
	area    = "1"
	perPage = "50"
)

// ListingURL builds the search page URL. hh.ru pages are 0-based.
func ListingURL(query string, page int) string {
	params := url.Values{}
	params.Add("text", query)
	params.Add("area", area)
	params.Add("page", strconv.Itoa(page-1))
	params.Add("per_page", perPage)
	return BaseURL + "/search/vacancy?" + params.Encode()
}

func Source() scraper.Source {
	return scraper.Source{
		Name:        Name,
		DisplayName: "HH.ru",
		BaseURL:     BaseURL,
		IDMarker:    IDMarker,
		ListingURL:  ListingURL,
		Entries: append([]scraper.Matcher{
			//data-qa can carry extra tokens such as vacancy-serp__vacancy_premium
			scraper.CSS("[data-qa~='vacancy-serp__vacancy']"),
			scraper.CSS(".vacancy-serp-item"),
		}, scraper.GenericEntries(IDMarker)...),
		Fields: scraper.FieldSelectors{
			Title:       []string{"[data-qa='serp-item__title']", "a[data-qa='vacancy-serp__vacancy-title']", "h2", "h3"},
			Company:     []string{"[data-qa='vacancy-serp__vacancy-employer']", "[data-qa='vacancy-serp__vacancy-employer-text']", ".company"},
			Location:    []string{"[data-qa='vacancy-serp__vacancy-address']", ".location"},
			Salary:      []string{"[data-qa='vacancy-serp__vacancy-compensation']", "[data-qa='vacancy-salary']", ".salary"},
			Description: []string{"[data-qa='vacancy-serp__vacancy_snippet_responsibility']", "[data-qa='vacancy-serp__vacancy_snippet_requirement']", ".description"},
			PublishedAt: []string{"[data-qa='vacancy-serp__vacancy-date']", ".date"},
		},
	}
}
