package scraper

import (
	"strings"
	"time"

	"design-vacancy-parser/internal/filter"
	"design-vacancy-parser/internal/models"

	"github.com/PuerkitoBio/goquery"
)

// Extractor pulls vacancy fields out of one entry node
type Extractor struct {
	src Source
	now func() time.Time
}

func NewExtractor(src Source) *Extractor {
	return &Extractor{src: src, now: time.Now}
}

// WithClock overrides the time used as the published date fallback
func (e *Extractor) WithClock(now func() time.Time) *Extractor {
	e.now = now
	return e
}

// Extract returns the vacancy for entry, or false when the entry has no title.
// URL holds the raw detail link; Normalize turns it into an absolute URL and id.
func (e *Extractor) Extract(entry *goquery.Selection) (models.Vacancy, bool) {
	fields := e.src.Fields
	anchor := firstAnchor(entry)

	title := firstText(entry, fields.Title)
	if title == "" && anchor != nil {
		title = cleanText(anchor.Text())
	}
	if title == "" {
		return models.Vacancy{}, false
	}

	var href string
	if anchor != nil {
		href, _ = anchor.Attr("href")
	}

	return models.Vacancy{
		Source:      e.src.Name,
		URL:         strings.TrimSpace(href),
		Title:       title,
		Company:     orDefault(firstText(entry, fields.Company), models.NotSpecified),
		Location:    orDefault(firstText(entry, fields.Location), models.NotSpecified),
		Salary:      firstText(entry, fields.Salary),
		Description: firstText(entry, fields.Description),
		PublishedAt: filter.ParsePublishedDate(firstText(entry, fields.PublishedAt), e.now()),
		Status:      models.StatusPending,
	}, true
}

// firstAnchor returns the entry itself when it is a link, otherwise its first descendant link
func firstAnchor(entry *goquery.Selection) *goquery.Selection {
	if goquery.NodeName(entry) == "a" {
		return entry
	}
	a := entry.Find("a[href]").First()
	if a.Length() == 0 {
		return nil
	}
	return a
}

// firstText returns the text of the first selector with a non-blank match
func firstText(entry *goquery.Selection, selectors []string) string {
	for _, sel := range selectors {
		found := entry.Find(sel).First()
		if found.Length() == 0 {
			continue
		}
		if text := cleanText(found.Text()); text != "" {
			return text
		}
	}
	return ""
}

func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
