package browser

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
)

// ScreenShotDebugger saves full-page screenshots when a page misbehaves
type ScreenShotDebugger struct {
	outputDir string
	log       logrus.FieldLogger
}

func NewScreenShotDebugger(dir string, log logrus.FieldLogger) *ScreenShotDebugger {
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.WithError(err).Warn("⚠️ Failed to create screenshots directory")
	}
	return &ScreenShotDebugger{
		outputDir: dir,
		log:       log,
	}
}

// ScreenshotPath builds the file name for a capture taken at t
func (s *ScreenShotDebugger) ScreenshotPath(name string, t time.Time) string {
	filename := fmt.Sprintf("%s_%s.png", name, t.Format("2006-01-02_15-04-05"))
	return filepath.Join(s.outputDir, filename)
}

func (s *ScreenShotDebugger) CaptureAndLog(page playwright.Page, name, message string) error {
	path := s.ScreenshotPath(name, time.Now())
	s.log.Infof("📸 %s", message)

	//Take screenshot
	_, err := page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	if err != nil {
		s.log.WithError(err).Warn("⚠️ Failed to capture screenshot")
		return err
	}

	s.log.Infof("   Screenshot saved: %s", path)
	return nil
}
