// Package sources maps the source names accepted by the invoker to site profiles.
package sources

import (
	"fmt"
	"sort"
	"strings"

	"design-vacancy-parser/internal/scraper"
	"design-vacancy-parser/internal/scraper/geekjob"
	"design-vacancy-parser/internal/scraper/habr"
	"design-vacancy-parser/internal/scraper/hh"
)

var registry = map[string]func() scraper.Source{
	"sitea":      geekjob.Source,
	geekjob.Name: geekjob.Source,
	"siteb":      hh.Source,
	hh.Name:      hh.Source,
	"sitec":      habr.Source,
	habr.Name:    habr.Source,
}

// Lookup resolves a source by enum value (siteA, siteB, siteC) or by site name
func Lookup(name string) (scraper.Source, error) {
	build, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return scraper.Source{}, fmt.Errorf("%w: %q (known: %s)", scraper.ErrUnknownSource, name, strings.Join(Names(), ", "))
	}
	return build(), nil
}

// Names lists the site names in stable order
func Names() []string {
	names := []string{geekjob.Name, hh.Name, habr.Name}
	sort.Strings(names)
	return names
}
