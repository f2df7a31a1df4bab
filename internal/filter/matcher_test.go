package filter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"design-vacancy-parser/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	c := NewClassifier(NewKeywordSets(
		[]string{"дизайнер", "Figma", "UX"},
		[]string{"одежда", "интерьер"},
	))

	tests := []struct {
		name     string
		vacancy  models.Vacancy
		expected Decision
	}{
		{
			name:     "Inclusion in title",
			vacancy:  models.Vacancy{Title: "Продуктовый дизайнер"},
			expected: Accept,
		},
		{
			name:     "Inclusion in description only",
			vacancy:  models.Vacancy{Title: "Специалист", Description: "Работа в FIGMA каждый день"},
			expected: Accept,
		},
		{
			name:     "No inclusion keyword",
			vacancy:  models.Vacancy{Title: "Бухгалтер", Description: "Учёт"},
			expected: Reject,
		},
		{
			name:     "No inclusion but exclusion present",
			vacancy:  models.Vacancy{Title: "Продавец одежды", Description: "одежда"},
			expected: Reject,
		},
		{
			name:     "Exclusion dominates",
			vacancy:  models.Vacancy{Title: "Дизайнер интерьеров", Description: "UX, Figma, интерьер"},
			expected: Reject,
		},
		{
			name:     "Case insensitive for cyrillic",
			vacancy:  models.Vacancy{Title: "ДИЗАЙНЕР"},
			expected: Accept,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.Classify(tt.vacancy))
		})
	}
}

func TestClassify_DefaultKeywords(t *testing.T) {
	builtin := NewClassifier(DefaultKeywords())

	yamlKeywords, err := LoadKeywords(filepath.Join("..", "..", "configs", "keywords.yaml"))
	require.NoError(t, err)
	fromFile := NewClassifier(yamlKeywords)

	tests := []struct {
		name     string
		vacancy  models.Vacancy
		expected Decision
	}{
		{name: "Color work", vacancy: models.Vacancy{Title: "Color grading specialist"}, expected: Accept},
		{name: "Цвет in title", vacancy: models.Vacancy{Title: "Специалист по цвету"}, expected: Accept},
		{name: "Product designer", vacancy: models.Vacancy{Title: "Product designer", Description: "Figma"}, expected: Accept},
		{name: "Clothing stays excluded", vacancy: models.Vacancy{Title: "Дизайнер одежды", Description: "одежда, подбор цвета"}, expected: Reject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, builtin.Classify(tt.vacancy))
			assert.Equal(t, tt.expected, fromFile.Classify(tt.vacancy))
		})
	}
}

func TestClassify_SubstringMatch(t *testing.T) {
	c := NewClassifier(NewKeywordSets([]string{"ux"}, nil))

	//substring matching is intentional: "ux" hits inside "luxury"
	assert.Equal(t, Accept, c.Classify(models.Vacancy{Title: "Luxury sales"}))
}

func TestClassify_Idempotent(t *testing.T) {
	c := NewClassifier(DefaultKeywords())
	v := models.Vacancy{Title: "UI/UX дизайнер", Description: "Figma", PublishedAt: time.Now()}
	before := v

	first := c.Classify(v)
	second := c.Classify(v)

	assert.Equal(t, first, second)
	assert.Equal(t, before, v)
}

func TestClassify_EmptyInclusionRejectsAll(t *testing.T) {
	c := NewClassifier(NewKeywordSets(nil, []string{"мебель"}))
	assert.Equal(t, Reject, c.Classify(models.Vacancy{Title: "Дизайнер"}))
}

func TestExplain(t *testing.T) {
	c := NewClassifier(NewKeywordSets([]string{"дизайн"}, []string{"ювелир"}))

	v := c.Explain(models.Vacancy{Title: "Дизайнер украшений", Description: "ювелирный дом"})
	assert.Equal(t, Reject, v.Decision)
	assert.Equal(t, "дизайн", v.Included)
	assert.Equal(t, "ювелир", v.Excluded)
	assert.Equal(t, "reject", v.Decision.String())
}

func TestNewKeywordSets_NormalizesAndDedups(t *testing.T) {
	k := NewKeywordSets([]string{" Figma ", "figma", "", "UX"}, []string{"Мебель"})

	assert.Equal(t, []string{"figma", "ux"}, k.Include())
	assert.Equal(t, []string{"мебель"}, k.Exclude())

	//returned slices are copies
	inc := k.Include()
	inc[0] = "changed"
	assert.Equal(t, "figma", k.Include()[0])
}

func TestLoadKeywords(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keywords.yaml")
	require.NoError(t, os.WriteFile(path, []byte("include:\n  - Дизайнер\n  - figma\nexclude:\n  - одежда\n"), 0644))

	k, err := LoadKeywords(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"дизайнер", "figma"}, k.Include())
	assert.Equal(t, []string{"одежда"}, k.Exclude())
}

func TestLoadKeywords_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadKeywords(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("exclude: [мебель]\n"), 0644))
	_, err = LoadKeywords(empty)
	assert.Error(t, err)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("include: [unterminated\n"), 0644))
	_, err = LoadKeywords(broken)
	assert.Error(t, err)
}
