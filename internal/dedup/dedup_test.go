package dedup

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"design-vacancy-parser/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestVacancyCache_PersistsAcrossRuns(t *testing.T) {
	dir := t.TempDir()
	first := []models.Vacancy{
		{Source: "hh", ExternalID: "1"},
		{Source: "habr", ExternalID: "1"},
		{Source: "hh", ExternalID: ""},
	}

	cache := NewVacancyCache(dir, quietLogger())
	assert.Len(t, cache.Unseen(first), 3)
	cache.Add(first)

	reloaded := NewVacancyCache(dir, quietLogger())
	assert.True(t, reloaded.IsSeen("hh:1"))
	assert.True(t, reloaded.IsSeen("habr:1"))

	second := []models.Vacancy{
		{Source: "hh", ExternalID: "1"},
		{Source: "hh", ExternalID: "2"},
		{Source: "hh", ExternalID: ""},
	}
	unseen := reloaded.Unseen(second)
	require.Len(t, unseen, 2)
	assert.Equal(t, "2", unseen[0].ExternalID)
	//no id, never deduplicated
	assert.Equal(t, "", unseen[1].ExternalID)
}

func TestVacancyCache_DropsExpired(t *testing.T) {
	dir := t.TempDir()
	old := time.Now().Add(-31 * 24 * time.Hour).UnixMilli()
	fresh := time.Now().Add(-time.Hour).UnixMilli()
	data, err := json.Marshal([]seenEntry{{Key: "hh:old", Timestamp: old}, {Key: "hh:fresh", Timestamp: fresh}})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "seen_vacancies.json"), data, 0644))

	cache := NewVacancyCache(dir, quietLogger())

	assert.False(t, cache.IsSeen("hh:old"))
	assert.True(t, cache.IsSeen("hh:fresh"))
}

func TestVacancyCache_CorruptFileStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "seen_vacancies.json"), []byte("not json"), 0644))

	cache := NewVacancyCache(dir, quietLogger())

	assert.Len(t, cache.Unseen([]models.Vacancy{{Source: "hh", ExternalID: "1"}}), 1)
}
