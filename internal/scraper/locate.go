package scraper

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Matcher selects candidate entry nodes from a rendered page
type Matcher struct {
	Name  string
	Match func(doc *goquery.Selection) *goquery.Selection
}

// CSS builds a Matcher from a CSS selector
func CSS(selector string) Matcher {
	return Matcher{
		Name: selector,
		Match: func(doc *goquery.Selection) *goquery.Selection {
			return doc.Find(selector)
		},
	}
}

// GenericEntries is the fallback chain shared by all sources, most specific first.
// The last matcher is a bare link to a listing detail page.
func GenericEntries(marker string) []Matcher {
	return []Matcher{
		CSS(".vacancy-card"),
		CSS(".vacancy-item"),
		CSS(".job-card"),
		CSS("[data-testid*='vacancy']"),
		CSS(".vacancy-list .vacancy"),
		CSS(".jobs-list .job"),
		CSS(".vacancy"),
		CSS(".search-result-item"),
		CSS(".job-item"),
		CSS(fmt.Sprintf("a[href*='%s']", marker)),
	}
}

// Located is the result of walking the matcher chain
type Located struct {
	//Matcher is the name of the matcher that produced Entries, empty when nothing matched
	Matcher string
	Entries []*goquery.Selection
}

// Locate returns the matches of the first matcher that yields at least one node.
// An empty result means no entries were found on the page; it is not an error.
func Locate(doc *goquery.Selection, chain []Matcher) Located {
	for _, m := range chain {
		sel := m.Match(doc)
		if sel == nil || sel.Length() == 0 {
			continue
		}
		entries := make([]*goquery.Selection, 0, sel.Length())
		sel.Each(func(_ int, s *goquery.Selection) {
			entries = append(entries, s)
		})
		return Located{Matcher: m.Name, Entries: entries}
	}
	return Located{}
}

// LocateHTML parses a rendered page and runs Locate over it
func LocateHTML(html string, chain []Matcher) (Located, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Located{}, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return Locate(doc.Selection, chain), nil
}
