package browser

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-rod/rod/lib/proto"
	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestLoadCookies(t *testing.T) {
	dir := t.TempDir()
	data := `[{"name":"hhtoken","value":"abc","domain":".hh.ru","path":"/","expires":1893456000,"httpOnly":true,"secure":true,"sameSite":"Lax"}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cookies-hh.json"), []byte(data), 0644))

	cookies := LoadSourceCookies(dir, "hh", quietLogger())
	require.Len(t, cookies, 1)

	pw := cookies[0].ToPlaywright()
	assert.Equal(t, "hhtoken", pw.Name)
	assert.Equal(t, ".hh.ru", *pw.Domain)
	assert.Equal(t, float64(1893456000), *pw.Expires)
	assert.True(t, *pw.HttpOnly)
	assert.Equal(t, playwright.SameSiteAttributeLax, pw.SameSite)

	rod := ToRod(cookies)
	require.Len(t, rod, 1)
	assert.Equal(t, "abc", rod[0].Value)
	assert.True(t, rod[0].HTTPOnly)
	assert.Equal(t, proto.NetworkCookieSameSiteLax, rod[0].SameSite)
}

func TestLoadSourceCookies_MissingOrBroken(t *testing.T) {
	dir := t.TempDir()
	assert.Nil(t, LoadSourceCookies(dir, "geekjob", quietLogger()))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "cookies-habr.json"), []byte("{"), 0644))
	assert.Nil(t, LoadSourceCookies(dir, "habr", quietLogger()))
}

func TestNavigationTimeout(t *testing.T) {
	d, err := navigationTimeout(context.Background(), 30*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, d)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	d, err = navigationTimeout(ctx, 30*time.Second)
	require.NoError(t, err)
	assert.LessOrEqual(t, d, 2*time.Second)

	cancelled, cancelNow := context.WithCancel(context.Background())
	cancelNow()
	_, err = navigationTimeout(cancelled, time.Second)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSettle(t *testing.T) {
	assert.NoError(t, settle(context.Background(), 0))
	assert.NoError(t, settle(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	assert.ErrorIs(t, settle(ctx, time.Minute), context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}

func TestRandomDelay(t *testing.T) {
	for i := 0; i < 50; i++ {
		d := RandomDelay(100, 300)
		assert.GreaterOrEqual(t, d, 100*time.Millisecond)
		assert.LessOrEqual(t, d, 300*time.Millisecond)
	}
	assert.Equal(t, 500*time.Millisecond, RandomDelay(500, 500))
}

func TestScreenshotPath(t *testing.T) {
	dir := t.TempDir()
	s := NewScreenShotDebugger(filepath.Join(dir, "shots"), quietLogger())

	path := s.ScreenshotPath("navigation-failed", time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC))
	assert.Equal(t, filepath.Join(dir, "shots", "navigation-failed_2026-02-03_04-05-06.png"), path)
	assert.DirExists(t, filepath.Join(dir, "shots"))
}

// integration test: needs playwright browsers installed
func TestPlaywrightRender_Real(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		io.WriteString(w, `<html><body><div id="list"></div><script>
			document.getElementById('list').innerHTML = '<div class="vacancy-card"><h3>UI дизайнер</h3></div>';
		</script></body></html>`)
	}))
	defer server.Close()

	manager := NewPlaywright(Options{Headless: true, SettleDelay: 200 * time.Millisecond}, quietLogger())
	renderer, err := manager.Acquire(context.Background())
	if err != nil {
		t.Skipf("playwright not available: %v", err)
	}
	defer renderer.Close()

	html, err := renderer.Render(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Contains(t, html, "vacancy-card")
}
