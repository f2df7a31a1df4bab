package pipeline

import (
	"sync"

	"github.com/sirupsen/logrus"
)

type EventKind string

const (
	//EventRendererFailed: the renderer could not be acquired, the run is aborted
	EventRendererFailed EventKind = "renderer_failed"
	//EventPageFailed: navigation, parsing or locating failed for one page
	EventPageFailed EventKind = "page_failed"
	//EventPageEmpty: no matcher found entries on the page
	EventPageEmpty  EventKind = "page_empty"
	EventEntryPanic EventKind = "entry_panicked"
	//EventEntryDropped: the entry had no title
	EventEntryDropped   EventKind = "entry_dropped"
	EventEntryDuplicate EventKind = "entry_duplicate"
	EventEntryRejected  EventKind = "entry_rejected"
	EventEntryAccepted  EventKind = "entry_accepted"
)

// Event is one observable outcome inside a run.
// Entry is the 0-based index of the entry on its page, -1 for page-level events.
type Event struct {
	RunID  string
	Kind   EventKind
	Source string
	Page   int
	Entry  int
	Title  string
	Reason string
	Err    error
}

// Recorder receives run events. Implementations must be safe for concurrent use.
type Recorder interface {
	Record(Event)
}

// Counter counts events by kind
type Counter struct {
	mu     sync.Mutex
	counts map[EventKind]int
}

func NewCounter() *Counter {
	return &Counter{counts: make(map[EventKind]int)}
}

func (c *Counter) Record(e Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[e.Kind]++
}

func (c *Counter) Count(kind EventKind) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[kind]
}

// Snapshot returns a copy of all counts
func (c *Counter) Snapshot() map[EventKind]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[EventKind]int, len(c.counts))
	for k, v := range c.counts {
		out[k] = v
	}
	return out
}

// LogRecorder writes events to a logrus logger
type LogRecorder struct {
	log logrus.FieldLogger
}

func NewLogRecorder(log logrus.FieldLogger) *LogRecorder {
	return &LogRecorder{log: log}
}

func (r *LogRecorder) Record(e Event) {
	entry := r.log.WithFields(logrus.Fields{
		"run_id": e.RunID,
		"event":  string(e.Kind),
		"source": e.Source,
		"page":   e.Page,
	})
	if e.Entry >= 0 {
		entry = entry.WithField("entry", e.Entry)
	}
	if e.Err != nil {
		entry = entry.WithError(e.Err)
	}

	switch e.Kind {
	case EventRendererFailed:
		entry.Error("❌ Renderer unavailable, aborting run")
	case EventPageFailed:
		entry.Warn("⚠️ Page failed, treating as empty")
	case EventEntryPanic:
		entry.Warn("⚠️ Entry extraction panicked, skipping")
	case EventPageEmpty:
		entry.Info("📭 No vacancy entries found on page")
	case EventEntryAccepted:
		entry.WithField("title", e.Title).Debug("✅ Relevant vacancy")
	case EventEntryRejected:
		entry.WithFields(logrus.Fields{"title": e.Title, "reason": e.Reason}).Debug("🚫 Filtered out")
	default:
		entry.WithField("title", e.Title).Debug("Skipped entry")
	}
}

type multiRecorder []Recorder

func (m multiRecorder) Record(e Event) {
	for _, r := range m {
		r.Record(e)
	}
}

// MultiRecorder fans events out to every non-nil recorder
func MultiRecorder(recorders ...Recorder) Recorder {
	out := make(multiRecorder, 0, len(recorders))
	for _, r := range recorders {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}
