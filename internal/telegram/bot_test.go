package telegram

import (
	"testing"
	"time"

	"design-vacancy-parser/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestFormatVacancy(t *testing.T) {
	v := models.Vacancy{
		Source:      "hh",
		Title:       "UI/UX-дизайнер (Figma)",
		Company:     "ООО «Пиксель»",
		Location:    "Москва",
		Salary:      "от 150 000 ₽",
		PublishedAt: time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC),
		Status:      models.StatusPending,
	}

	text := FormatVacancy(v)

	assert.Contains(t, text, "*UI/UX\\-дизайнер \\(Figma\\)*")
	assert.Contains(t, text, "💰 от 150 000 ₽")
	assert.Contains(t, text, "📅 05\\.02\\.2026")
	assert.Contains(t, text, "Status: pending")
}

func TestFormatVacancy_NoSalaryLine(t *testing.T) {
	text := FormatVacancy(models.Vacancy{Title: "Дизайнер", Company: models.NotSpecified, Location: models.NotSpecified})

	assert.NotContains(t, text, "💰")
	assert.Contains(t, text, "🏢 Не указано")
}
