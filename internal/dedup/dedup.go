package dedup

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"design-vacancy-parser/internal/models"

	"github.com/sirupsen/logrus"
)

type seenEntry struct {
	Key       string `json:"key"`
	Timestamp int64  `json:"timestamp"`
}

// VacancyCache remembers which vacancies earlier runs already handed to moderation.
// Keys are "source:external_id"; entries expire after 30 days.
type VacancyCache struct {
	mu       sync.Mutex
	filePath string
	seen     map[string]int64
	log      logrus.FieldLogger
}

const thirtyDaysMs = int64(30 * 24 * 60 * 60 * 1000)

// NewVacancyCache creates or loads a cache stored in cacheDir
func NewVacancyCache(cacheDir string, log logrus.FieldLogger) *VacancyCache {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		log.WithError(err).Warn("⚠️ Failed to create cache directory")
	}
	cache := &VacancyCache{
		filePath: filepath.Join(cacheDir, "seen_vacancies.json"),
		seen:     make(map[string]int64),
		log:      log,
	}
	cache.load()
	return cache
}

// IsSeen checks if a key has already been processed
func (c *VacancyCache) IsSeen(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, exists := c.seen[key]
	return exists
}

// Unseen returns the vacancies not seen before, in input order.
// Vacancies without an external id cannot be tracked and are always returned.
func (c *VacancyCache) Unseen(vacancies []models.Vacancy) []models.Vacancy {
	out := make([]models.Vacancy, 0, len(vacancies))
	for _, v := range vacancies {
		if key := v.Key(); key == "" || !c.IsSeen(key) {
			out = append(out, v)
		}
	}
	return out
}

// Add marks the vacancies as seen and persists the cache when it changed
func (c *VacancyCache) Add(vacancies []models.Vacancy) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UnixMilli()
	changed := false
	for _, v := range vacancies {
		key := v.Key()
		if key == "" {
			continue
		}
		if _, exists := c.seen[key]; !exists {
			c.seen[key] = now
			changed = true
		}
	}

	if changed {
		c.save()
	}
}

// load reads the cache from disk, dropping expired entries
func (c *VacancyCache) load() {
	data, err := os.ReadFile(c.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			c.log.WithError(err).Warn("⚠️ Failed to read seen_vacancies.json")
		}
		return
	}

	var entries []seenEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		c.log.WithError(err).Warn("⚠️ Failed to parse seen_vacancies.json")
		return
	}

	thirtyDaysAgo := time.Now().UnixMilli() - thirtyDaysMs
	loaded := 0
	for _, e := range entries {
		if e.Timestamp > thirtyDaysAgo {
			c.seen[e.Key] = e.Timestamp
			loaded++
		}
	}
	c.log.Infof("📋 Loaded %d previously seen vacancies (%d expired and removed)", loaded, len(entries)-loaded)
}

// save writes the current cache to disk, caller holds mu
func (c *VacancyCache) save() {
	entries := make([]seenEntry, 0, len(c.seen))
	for key, ts := range c.seen {
		entries = append(entries, seenEntry{Key: key, Timestamp: ts})
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		c.log.WithError(err).Warn("⚠️ Failed to marshal seen vacancies")
		return
	}
	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		c.log.WithError(err).Warn("⚠️ Failed to write seen_vacancies.json")
		return
	}
	c.log.Debugf("💾 Saved %d seen vacancies to cache", len(entries))
}
