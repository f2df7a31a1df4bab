package main

import (
	"fmt"
	"log"

	"design-vacancy-parser/internal/config"
	"design-vacancy-parser/internal/filter"
)

func main() {
	fmt.Println("🔧 Testing config loading...")
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	fmt.Printf("✅ Config loaded successfully!\n")
	fmt.Printf("   Source: %s, query: %s, pages: %d\n", cfg.Source, cfg.Query, cfg.Pages)
	fmt.Printf("   Renderer: %s (headless: %t, settle: %s)\n", cfg.Renderer.Backend, cfg.Renderer.Headless, cfg.Renderer.SettleDelay)
	fmt.Printf("   Moderation chat: %t\n", cfg.ModerationEnabled())
	fmt.Printf("   Cookies Path: %s\n", cfg.CookiesPath)

	keywords, err := filter.LoadKeywords(cfg.KeywordsPath)
	if err != nil {
		log.Fatalf("Failed to load keywords: %v", err)
	}
	fmt.Printf("   Keywords: %d include, %d exclude\n", len(keywords.Include()), len(keywords.Exclude()))
}
