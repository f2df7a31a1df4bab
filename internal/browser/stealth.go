package browser

import (
	"context"
	"math/rand"
	"time"

	"github.com/playwright-community/playwright-go"
)

// RandomDelay returns a random duration between min and max milliseconds
func RandomDelay(min, max int) time.Duration {
	if min >= max {
		return time.Duration(min) * time.Millisecond
	}
	return time.Duration(rand.Intn(max-min+1)+min) * time.Millisecond
}

// HumanScroll simulates human-like scrolling so lazy-loaded cards get rendered
func HumanScroll(ctx context.Context, page playwright.Page) error {
	// Scroll down in steps
	for i := 0; i < 5; i++ {
		if _, err := page.Evaluate("window.scrollBy(0, window.innerHeight / 2)"); err != nil {
			return err
		}
		if err := settle(ctx, RandomDelay(300, 800)); err != nil {
			return err
		}
	}
	// Scroll to bottom to trigger lazy loading
	_, err := page.Evaluate("window.scrollTo(0, document.body.scrollHeight)")
	return err
}
