package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"design-vacancy-parser/internal/browser"
	"design-vacancy-parser/internal/config"
	"design-vacancy-parser/internal/dedup"
	"design-vacancy-parser/internal/models"
	"design-vacancy-parser/internal/scraper"
	"design-vacancy-parser/internal/telegram"

	"github.com/sirupsen/logrus"
)

func newRendererFactory(cfg *config.Config, cookies []browser.Cookie, log logrus.FieldLogger) scraper.RendererFactory {
	opts := browser.Options{
		Headless:          cfg.Renderer.Headless,
		NavigationTimeout: cfg.Renderer.NavigationTimeout,
		SettleDelay:       cfg.Renderer.SettleDelay,
		HumanScroll:       cfg.Renderer.HumanScroll,
		ScreenshotDir:     cfg.Renderer.ScreenshotDir,
		Cookies:           cookies,
	}
	if cfg.Renderer.Backend == config.BackendRod {
		return browser.NewRod(opts, log)
	}
	return browser.NewPlaywright(opts, log)
}

// sink receives vacancies handed off by a run
type sink interface {
	Name() string
	Deliver(vacancies []models.Vacancy) error
}

type fileSink struct {
	dir string
	now func() time.Time
	log logrus.FieldLogger
}

func (s fileSink) Name() string { return "file" }

// Deliver writes vacancies-YYYY-MM-DD_HH-MM-SS.json into dir
func (s fileSink) Deliver(vacancies []models.Vacancy) error {
	if len(vacancies) == 0 {
		s.log.Info("ℹ️ No vacancies to save.")
		return nil
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create results directory: %w", err)
	}

	filename := fmt.Sprintf("vacancies-%s.json", s.now().Format("2006-01-02_15-04-05"))
	path := filepath.Join(s.dir, filename)

	data, err := json.MarshalIndent(vacancies, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal vacancies: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write results file: %w", err)
	}
	s.log.Infof("📁 Results saved to %s", path)
	return nil
}

type telegramSink struct {
	bot   *telegram.Bot
	pause time.Duration
	log   logrus.FieldLogger
}

func (s telegramSink) Name() string { return "telegram" }

func (s telegramSink) Deliver(vacancies []models.Vacancy) error {
	if len(vacancies) == 0 {
		return nil
	}
	failed := 0
	for _, v := range vacancies {
		if err := s.bot.SendVacancy(v); err != nil {
			s.log.WithError(err).Warnf("⚠️ Failed to send vacancy %s to Telegram", v.Key())
			failed++
		}
		//delay to avoid 429
		time.Sleep(s.pause)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d vacancies were not sent", failed, len(vacancies))
	}
	return s.bot.SendStatus(fmt.Sprintf("✅ %d new vacancies waiting for moderation", len(vacancies)))
}

func newSinks(cfg *config.Config, log logrus.FieldLogger) []sink {
	sinks := []sink{fileSink{dir: cfg.ResultsPath, now: time.Now, log: log}}
	if !cfg.ModerationEnabled() {
		return sinks
	}
	bot, err := telegram.NewBot(cfg.TelegramToken, cfg.TelegramChatID)
	if err != nil {
		log.WithError(err).Warn("⚠️ Moderation chat disabled")
		return sinks
	}
	log.Info("🤖 Telegram Bot initialized.")
	return append(sinks, telegramSink{bot: bot, pause: time.Second, log: log})
}

// handOff delivers the vacancies not seen before and sets result.Saved.
// A vacancy counts as saved when every sink accepted the batch.
func handOff(result *models.RunResult, cache *dedup.VacancyCache, sinks []sink, log logrus.FieldLogger) {
	fresh := result.Vacancies
	if cache != nil {
		fresh = cache.Unseen(result.Vacancies)
		log.Infof("🔍 Deduplication: %d total -> %d unseen vacancies", len(result.Vacancies), len(fresh))
	}

	for _, s := range sinks {
		if err := s.Deliver(fresh); err != nil {
			log.WithError(err).Warnf("⚠️ Sink %s failed", s.Name())
			result.Saved = 0
			return
		}
	}

	if cache != nil {
		cache.Add(fresh)
	}
	result.Saved = len(fresh)
}

func errorPayload(message string, err error) models.ErrorPayload {
	return models.ErrorPayload{Error: err.Error(), Message: message}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
