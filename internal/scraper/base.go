// Shared types for every listing source:
// the renderer capability, the source profile and its selector lists.

package scraper

import (
	"context"
	"errors"
)

var ErrUnknownSource = errors.New("unknown source")

// Renderer turns a URL into fully rendered HTML.
// One Renderer owns one browser session and is not safe for concurrent navigations.
type Renderer interface {
	Render(ctx context.Context, url string) (string, error)
	Close() error
}

// RendererFactory acquires a fresh Renderer for one run
type RendererFactory interface {
	Acquire(ctx context.Context) (Renderer, error)
}

// RendererFactoryFunc adapts a plain function to RendererFactory
type RendererFactoryFunc func(ctx context.Context) (Renderer, error)

func (f RendererFactoryFunc) Acquire(ctx context.Context) (Renderer, error) {
	return f(ctx)
}

// FieldSelectors lists candidate sub-selectors per field, in priority order.
// All selectors are evaluated relative to the entry node.
type FieldSelectors struct {
	Title       []string
	Company     []string
	Location    []string
	Salary      []string
	Description []string
	PublishedAt []string
}

// Source describes one listing site
type Source struct {
	//Name is the tag stored in Vacancy.Source (geekjob, hh, habr)
	Name string
	//DisplayName is used in run messages (Geekjob, HH.ru, Habr)
	DisplayName string
	BaseURL     string
	//IDMarker is the path token preceding the external id, e.g. "/vacancy/"
	IDMarker   string
	ListingURL func(query string, page int) string
	Entries    []Matcher
	Fields     FieldSelectors
}
