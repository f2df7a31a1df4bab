package scraper

import (
	"regexp"
	"strings"
)

var schemeRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*:`)

// Normalize resolves a raw detail link against the source base URL
// and extracts the external id that follows marker.
// It never fails: unusable input yields empty strings.
func Normalize(rawHref, baseURL, marker string) (absURL, externalID string) {
	href := strings.TrimSpace(rawHref)
	if href == "" {
		return "", ""
	}

	absURL = resolve(href, baseURL)
	return absURL, ExtractID(absURL, marker)
}

// ExtractID returns the path segment right after marker, without query or further segments
func ExtractID(link, marker string) string {
	if marker == "" {
		return ""
	}
	idx := strings.Index(link, marker)
	if idx < 0 {
		return ""
	}
	rest := link[idx+len(marker):]
	if cut := strings.IndexAny(rest, "/?#"); cut >= 0 {
		rest = rest[:cut]
	}
	return rest
}

func resolve(href, baseURL string) string {
	if schemeRegex.MatchString(href) {
		return href
	}
	base := strings.TrimRight(baseURL, "/")

	//scheme-relative: //host/path
	if strings.HasPrefix(href, "//") {
		scheme := "https"
		if m := schemeRegex.FindString(base); m != "" {
			scheme = strings.TrimSuffix(m, ":")
		}
		return scheme + ":" + href
	}

	if !strings.HasPrefix(href, "/") {
		href = "/" + href
	}
	return base + href
}
