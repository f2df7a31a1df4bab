package browser

import (
	"context"
	"errors"
	"fmt"
	"time"

	"design-vacancy-parser/internal/scraper"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
)

// DefaultUserAgent is a desktop Chrome user agent
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Options configures both renderer backends
type Options struct {
	Headless          bool
	NavigationTimeout time.Duration
	//SettleDelay is waited after navigation so dynamic content can load
	SettleDelay time.Duration
	UserAgent   string
	//HumanScroll scrolls the page before reading it to trigger lazy loading
	HumanScroll bool
	//ScreenshotDir enables failure screenshots when set (playwright only)
	ScreenshotDir string
	Cookies       []Cookie
}

func (o Options) withDefaults() Options {
	if o.NavigationTimeout <= 0 {
		o.NavigationTimeout = 30 * time.Second
	}
	if o.UserAgent == "" {
		o.UserAgent = DefaultUserAgent
	}
	return o
}

// PlaywrightManager launches one Chromium session per Acquire call
type PlaywrightManager struct {
	opts Options
	log  logrus.FieldLogger
}

func NewPlaywright(opts Options, log logrus.FieldLogger) *PlaywrightManager {
	return &PlaywrightManager{opts: opts.withDefaults(), log: log}
}

// Acquire starts playwright, launches a browser and opens a page with cookies applied
func (pm *PlaywrightManager) Acquire(ctx context.Context) (scraper.Renderer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(pm.opts.Headless),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("could not launch browser: %w", err)
	}

	browserCtx, err := browser.NewContext(playwright.BrowserNewContextOptions{
		UserAgent: playwright.String(pm.opts.UserAgent),
		Locale:    playwright.String("ru-RU"),
	})
	if err != nil {
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("could not create browser context: %w", err)
	}

	if len(pm.opts.Cookies) > 0 {
		if err := browserCtx.AddCookies(ToPlaywright(pm.opts.Cookies)); err != nil {
			pm.log.WithError(err).Warn("⚠️ Could not apply cookies, continuing without them")
		} else {
			pm.log.Infof("🍪 Applied %d cookies", len(pm.opts.Cookies))
		}
	}

	page, err := browserCtx.NewPage()
	if err != nil {
		browserCtx.Close()
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("could not create page: %w", err)
	}

	session := &playwrightSession{
		pw:         pw,
		browser:    browser,
		browserCtx: browserCtx,
		page:       page,
		opts:       pm.opts,
		log:        pm.log,
	}
	if pm.opts.ScreenshotDir != "" {
		session.shots = NewScreenShotDebugger(pm.opts.ScreenshotDir, pm.log)
	}
	pm.log.Info("✅ Browser initialized successfully!")
	return session, nil
}

type playwrightSession struct {
	pw         *playwright.Playwright
	browser    playwright.Browser
	browserCtx playwright.BrowserContext
	page       playwright.Page
	opts       Options
	log        logrus.FieldLogger
	shots      *ScreenShotDebugger
}

func (s *playwrightSession) Render(ctx context.Context, url string) (string, error) {
	timeout, err := navigationTimeout(ctx, s.opts.NavigationTimeout)
	if err != nil {
		return "", err
	}

	if _, err := s.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(float64(timeout.Milliseconds())),
	}); err != nil {
		if s.shots != nil {
			s.shots.CaptureAndLog(s.page, "navigation-failed", "🚨 Navigation failed: "+url)
		}
		return "", fmt.Errorf("error navigating to %s: %w", url, err)
	}

	if err := settle(ctx, s.opts.SettleDelay); err != nil {
		return "", err
	}

	if s.opts.HumanScroll {
		if err := HumanScroll(ctx, s.page); err != nil {
			s.log.WithError(err).Debug("Scroll failed, reading page as is")
		}
	}

	html, err := s.page.Content()
	if err != nil {
		return "", fmt.Errorf("failed to get HTML: %w", err)
	}
	return html, nil
}

// Close releases page, context, browser and the playwright driver
func (s *playwrightSession) Close() error {
	var errs []error
	if err := s.browserCtx.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close context: %w", err))
	}
	if err := s.browser.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close browser: %w", err))
	}
	if err := s.pw.Stop(); err != nil {
		errs = append(errs, fmt.Errorf("stop playwright: %w", err))
	}
	return errors.Join(errs...)
}

// navigationTimeout caps the configured timeout by the context deadline
func navigationTimeout(ctx context.Context, configured time.Duration) (time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < configured {
			if left <= 0 {
				return 0, context.DeadlineExceeded
			}
			return left, nil
		}
	}
	return configured, nil
}

// settle waits d or until ctx is done
func settle(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
