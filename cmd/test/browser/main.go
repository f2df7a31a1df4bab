package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"design-vacancy-parser/internal/browser"
	"design-vacancy-parser/internal/config"
	"design-vacancy-parser/internal/logger"
	"design-vacancy-parser/internal/scraper"
	"design-vacancy-parser/internal/scraper/sources"

	"github.com/spf13/pflag"
)

func main() {
	source := pflag.String("source", "geekjob", "Source profile used to locate entries")
	query := pflag.String("query", "дизайнер", "Search query")
	backend := pflag.String("renderer", config.BackendPlaywright, "Renderer backend: playwright or rod")
	headful := pflag.Bool("headful", false, "Show the browser window")
	pflag.Parse()

	fmt.Println("🌐 Testing renderer...")
	lg := logger.Init("info", false)

	src, err := sources.Lookup(*source)
	if err != nil {
		log.Fatalf("Unknown source: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	opts := browser.Options{
		Headless:    !*headful,
		SettleDelay: 3 * time.Second,
		Cookies:     browser.LoadSourceCookies(".cookies", src.Name, lg),
	}
	var factory scraper.RendererFactory = browser.NewPlaywright(opts, lg)
	if *backend == config.BackendRod {
		factory = browser.NewRod(opts, lg)
	}

	renderer, err := factory.Acquire(ctx)
	if err != nil {
		log.Fatalf("Failed to acquire renderer: %v", err)
	}
	defer renderer.Close()
	fmt.Println("✅ Browser started")

	url := src.ListingURL(*query, 1)
	fmt.Printf("🔍 Navigating to %s...\n", url)
	html, err := renderer.Render(ctx, url)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	fmt.Printf("✅ Rendered %d bytes\n", len(html))

	located, err := scraper.LocateHTML(html, src.Entries)
	if err != nil {
		log.Fatalf("Failed to parse page: %v", err)
	}
	if len(located.Entries) == 0 {
		fmt.Println("📭 No entries found, selectors may be outdated")
		return
	}
	fmt.Printf("📦 %d entries via %q\n", len(located.Entries), located.Matcher)

	extractor := scraper.NewExtractor(src)
	for i, entry := range located.Entries {
		if i == 5 {
			break
		}
		v, ok := extractor.Extract(entry)
		if !ok {
			fmt.Printf("   %d: <no title>\n", i)
			continue
		}
		link, id := scraper.Normalize(v.URL, src.BaseURL, src.IDMarker)
		fmt.Printf("   %d: %s | %s | id=%s %s\n", i, v.Title, v.Company, id, link)
	}
	fmt.Println("✨ Test complete!")
}
