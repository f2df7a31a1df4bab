package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"design-vacancy-parser/internal/filter"
	"design-vacancy-parser/internal/models"
	"design-vacancy-parser/internal/scraper"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// ErrRendererUnavailable is returned when the run could not acquire a renderer at all
var ErrRendererUnavailable = errors.New("renderer unavailable")

// Request describes one run
type Request struct {
	Query  string
	Pages  int
	Source scraper.Source
}

type Option func(*Driver)

func WithRecorder(r Recorder) Option {
	return func(d *Driver) { d.recorder = r }
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(d *Driver) { d.log = log }
}

// WithPageInterval sets the minimum time between two page navigations
func WithPageInterval(interval time.Duration) Option {
	return func(d *Driver) { d.pageInterval = interval }
}

func WithClock(now func() time.Time) Option {
	return func(d *Driver) { d.now = now }
}

// WithRunDedup drops accepted vacancies whose external id was already emitted in the same run.
// Without it every accepted entry is emitted and the caller deduplicates.
func WithRunDedup() Option {
	return func(d *Driver) { d.runDedup = true }
}

// Driver runs the listing pipeline page by page.
// Run may be called concurrently; each run acquires its own renderer.
type Driver struct {
	renderers    scraper.RendererFactory
	classifier   *filter.Classifier
	recorder     Recorder
	log          logrus.FieldLogger
	pageInterval time.Duration
	runDedup     bool
	now          func() time.Time
}

func New(renderers scraper.RendererFactory, classifier *filter.Classifier, opts ...Option) *Driver {
	d := &Driver{
		renderers:  renderers,
		classifier: classifier,
		log:        logrus.StandardLogger(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.recorder == nil {
		d.recorder = NewLogRecorder(d.log)
	}
	return d
}

// Run walks pages 1..req.Pages and returns the relevant vacancies in page order.
// Page and entry failures are absorbed and reported to the recorder.
// An error is returned only when the renderer cannot be acquired or ctx ends the run early;
// the result is well formed in both cases.
func (d *Driver) Run(ctx context.Context, req Request) (*models.RunResult, error) {
	runID := uuid.NewString()
	log := d.log.WithFields(logrus.Fields{"run_id": runID, "source": req.Source.Name})

	result := &models.RunResult{
		RunID:     runID,
		Message:   completedMessage(req.Source),
		Source:    req.Source.Name,
		Query:     req.Query,
		Pages:     req.Pages,
		Vacancies: []models.Vacancy{},
	}
	if req.Pages <= 0 {
		return result, nil
	}

	log.Infof("🚀 Starting %s parsing: query='%s', pages=%d", req.Source.DisplayName, req.Query, req.Pages)

	renderer, err := d.renderers.Acquire(ctx)
	if err != nil {
		d.recorder.Record(Event{RunID: runID, Kind: EventRendererFailed, Source: req.Source.Name, Entry: -1, Err: err})
		result.Message = "Renderer unavailable"
		return result, fmt.Errorf("%w: %w", ErrRendererUnavailable, err)
	}
	defer func() {
		if err := renderer.Close(); err != nil {
			log.WithError(err).Warn("⚠️ Failed to release renderer")
		}
	}()

	var limiter *rate.Limiter
	if d.pageInterval > 0 {
		limiter = rate.NewLimiter(rate.Every(d.pageInterval), 1)
	}

	var seen map[string]bool
	if d.runDedup {
		seen = make(map[string]bool)
	}
	var stopErr error
	for page := 1; page <= req.Pages; page++ {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				stopErr = err
				break
			}
		}
		if err := ctx.Err(); err != nil {
			stopErr = err
			break
		}

		vacancies, err := d.processPage(ctx, renderer, req, runID, page, seen)
		if ctxErr := ctx.Err(); ctxErr != nil && err != nil {
			//entries accepted before the interruption are kept
			result.Vacancies = append(result.Vacancies, vacancies...)
			stopErr = ctxErr
			break
		}
		if err != nil {
			d.recorder.Record(Event{RunID: runID, Kind: EventPageFailed, Source: req.Source.Name, Page: page, Entry: -1, Err: err})
			continue
		}
		result.Vacancies = append(result.Vacancies, vacancies...)
		log.WithField("page", page).Infof("📦 Found %d relevant vacancies on page %d", len(vacancies), page)
	}

	result.TotalFound = len(result.Vacancies)
	result.Saved = result.TotalFound

	if stopErr != nil {
		result.Message = fmt.Sprintf("%s parsing interrupted", req.Source.DisplayName)
		return result, fmt.Errorf("run %s stopped early: %w", runID, stopErr)
	}

	log.Infof("🏁 %s parsing completed. Total: %d vacancies", req.Source.DisplayName, result.TotalFound)
	return result, nil
}

// processPage renders, locates and extracts one page.
// Any error or panic means the page contributes nothing, except a ctx
// interruption between entries which returns what was accepted so far.
// seen is nil when run dedup is off.
func (d *Driver) processPage(ctx context.Context, renderer scraper.Renderer, req Request, runID string, page int, seen map[string]bool) (out []models.Vacancy, err error) {
	defer func() {
		if p := recover(); p != nil {
			out, err = nil, fmt.Errorf("panic while processing page: %v", p)
		}
	}()

	url := req.Source.ListingURL(req.Query, page)
	html, err := renderer.Render(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", url, err)
	}

	located, err := scraper.LocateHTML(html, req.Source.Entries)
	if err != nil {
		return nil, err
	}
	if len(located.Entries) == 0 {
		d.recorder.Record(Event{RunID: runID, Kind: EventPageEmpty, Source: req.Source.Name, Page: page, Entry: -1})
		return nil, nil
	}
	d.log.WithFields(logrus.Fields{"run_id": runID, "page": page, "matcher": located.Matcher}).
		Debugf("Found %d entries", len(located.Entries))

	extractor := scraper.NewExtractor(req.Source).WithClock(d.now)
	pageSeen := make(map[string]bool)
	for i, entry := range located.Entries {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		ev := Event{RunID: runID, Source: req.Source.Name, Page: page, Entry: i}

		v, ok, err := d.processEntry(extractor, req.Source, entry, &ev)
		if err != nil {
			ev.Kind, ev.Err = EventEntryPanic, err
		}

		if ok && seen != nil {
			if key := v.Key(); key != "" {
				if seen[key] || pageSeen[key] {
					ok, ev.Kind = false, EventEntryDuplicate
				}
				pageSeen[key] = true
			}
		}
		if ok {
			out = append(out, v)
		}
		d.recorder.Record(ev)
	}

	//only a fully processed page marks its ids as seen
	for key := range pageSeen {
		seen[key] = true
	}
	return out, nil
}

// processEntry runs extract, normalize and classify for one entry and fills ev.Kind
func (d *Driver) processEntry(extractor *scraper.Extractor, src scraper.Source, entry *goquery.Selection, ev *Event) (v models.Vacancy, accepted bool, err error) {
	defer func() {
		if p := recover(); p != nil {
			v, accepted, err = models.Vacancy{}, false, fmt.Errorf("panic: %v", p)
		}
	}()

	v, ok := extractor.Extract(entry)
	if !ok {
		ev.Kind = EventEntryDropped
		return models.Vacancy{}, false, nil
	}
	ev.Title = v.Title

	v.URL, v.ExternalID = scraper.Normalize(v.URL, src.BaseURL, src.IDMarker)

	verdict := d.classifier.Explain(v)
	if verdict.Decision != filter.Accept {
		ev.Kind = EventEntryRejected
		if verdict.Excluded != "" {
			ev.Reason = "excluded keyword: " + verdict.Excluded
		} else {
			ev.Reason = "no inclusion keyword"
		}
		return models.Vacancy{}, false, nil
	}

	ev.Kind = EventEntryAccepted
	return v, true, nil
}

func completedMessage(src scraper.Source) string {
	name := src.DisplayName
	if name == "" {
		name = src.Name
	}
	return name + " parsing completed"
}
