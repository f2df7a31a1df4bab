package browser

import (
	"context"
	"fmt"

	"design-vacancy-parser/internal/scraper"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/sirupsen/logrus"
)

// RodManager is the go-rod renderer backend. It drives a locally launched Chromium over CDP.
type RodManager struct {
	opts Options
	log  logrus.FieldLogger
}

func NewRod(opts Options, log logrus.FieldLogger) *RodManager {
	return &RodManager{opts: opts.withDefaults(), log: log}
}

func (rm *RodManager) Acquire(ctx context.Context) (scraper.Renderer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l := launcher.New().Headless(rm.opts.Headless).Leakless(false)
	controlURL, err := l.Context(ctx).Launch()
	if err != nil {
		return nil, fmt.Errorf("could not launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("could not connect to browser: %w", err)
	}

	if len(rm.opts.Cookies) > 0 {
		if err := browser.SetCookies(ToRod(rm.opts.Cookies)); err != nil {
			rm.log.WithError(err).Warn("⚠️ Could not apply cookies, continuing without them")
		}
	}

	rm.log.Info("✅ Rod browser initialized successfully!")
	return &rodSession{launcher: l, browser: browser, opts: rm.opts}, nil
}

type rodSession struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	opts     Options
}

// Render opens a fresh tab per URL so a broken page never leaks into the next one
func (s *rodSession) Render(ctx context.Context, url string) (string, error) {
	timeout, err := navigationTimeout(ctx, s.opts.NavigationTimeout)
	if err != nil {
		return "", err
	}

	tab, err := s.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", fmt.Errorf("could not open tab: %w", err)
	}
	defer tab.Close()

	page := tab.Context(ctx)
	if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{
		UserAgent:      s.opts.UserAgent,
		AcceptLanguage: "ru-RU,ru;q=0.8,en-US;q=0.5,en;q=0.3",
	}); err != nil {
		return "", fmt.Errorf("could not set user agent: %w", err)
	}

	nav := page.Timeout(timeout)
	if err := nav.Navigate(url); err != nil {
		return "", fmt.Errorf("error navigating to %s: %w", url, err)
	}
	if err := nav.WaitLoad(); err != nil {
		return "", fmt.Errorf("page %s did not load: %w", url, err)
	}

	if err := settle(ctx, s.opts.SettleDelay); err != nil {
		return "", err
	}

	html, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("failed to get HTML: %w", err)
	}
	return html, nil
}

func (s *rodSession) Close() error {
	err := s.browser.Close()
	s.launcher.Kill()
	s.launcher.Cleanup()
	return err
}
