package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParsePublishedDate(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{"dd.mm.yyyy", "05.02.2026", time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)},
		{"dd.mm.yyyy with words", "Опубликовано 05.02.2026 в 10:00", time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)},
		{"iso", "2026-01-27T10:00:00Z", time.Date(2026, 1, 27, 0, 0, 0, 0, time.UTC)},
		{"empty falls back to now", "", now},
		{"relative text falls back to now", "вчера", now},
		{"invalid day falls back to now", "45.13.2026", now},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.expected.Equal(ParsePublishedDate(tt.input, now)))
		})
	}
}
