package filter

import (
	"regexp"
	"strings"
	"time"
)

var (
	ruDateRegex  = regexp.MustCompile(`\b(\d{2}\.\d{2}\.\d{4})\b`)
	isoDateRegex = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})`)
)

// ParsePublishedDate reads a listing date in dd.mm.yyyy form (yyyy-mm-dd is accepted too).
// Missing or unparseable text falls back to now; this is an approximation, not an error.
func ParsePublishedDate(text string, now time.Time) time.Time {
	text = strings.TrimSpace(text)
	if text == "" {
		return now
	}

	//Case 1: dd.mm.yyyy, optionally surrounded by words ("опубликовано 01.02.2026")
	if match := ruDateRegex.FindStringSubmatch(text); match != nil {
		if t, err := time.ParseInLocation("02.01.2006", match[1], now.Location()); err == nil {
			return t
		}
	}

	//Case 2: ISO "2026-01-27" or 2026-01-27T...
	if match := isoDateRegex.FindStringSubmatch(text); match != nil {
		if t, err := time.ParseInLocation("2006-01-02", match[1], now.Location()); err == nil {
			return t
		}
	}

	return now
}
