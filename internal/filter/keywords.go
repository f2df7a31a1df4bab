package filter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// KeywordSets holds the inclusion and exclusion substrings used by the classifier.
// Values are normalized on construction and never mutated afterwards,
// so one KeywordSets can be shared by concurrent runs.
type KeywordSets struct {
	include []string
	exclude []string
}

type keywordFile struct {
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`
}

func NewKeywordSets(include, exclude []string) KeywordSets {
	return KeywordSets{
		include: normalizeKeywords(include),
		exclude: normalizeKeywords(exclude),
	}
}

func (k KeywordSets) Include() []string {
	return append([]string(nil), k.include...)
}

func (k KeywordSets) Exclude() []string {
	return append([]string(nil), k.exclude...)
}

// LoadKeywords reads a YAML file with `include` and `exclude` lists
func LoadKeywords(path string) (KeywordSets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return KeywordSets{}, fmt.Errorf("failed to read keywords file: %w", err)
	}

	var kf keywordFile
	if err := yaml.Unmarshal(data, &kf); err != nil {
		return KeywordSets{}, fmt.Errorf("failed to parse keywords file %s: %w", path, err)
	}
	if len(kf.Include) == 0 {
		return KeywordSets{}, fmt.Errorf("keywords file %s has no include keywords", path)
	}
	return NewKeywordSets(kf.Include, kf.Exclude), nil
}

func normalizeKeywords(words []string) []string {
	seen := make(map[string]bool, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = normalizeText(w)
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}

// DefaultKeywords is the design-role keyword set used when no keywords file is configured
func DefaultKeywords() KeywordSets {
	return NewKeywordSets(defaultInclude, defaultExclude)
}

var defaultInclude = []string{
	"дизайн", "design", "ui", "ux", "веб-дизайн", "web design",
	"графический дизайн", "graphic design", "интерфейс", "interface",
	"пользовательский опыт", "user experience", "figma", "sketch",
	"adobe", "photoshop", "illustrator", "индизайн", "indesign",
	"веб-дизайнер", "web designer", "ui дизайнер", "ux дизайнер",
	"графический дизайнер", "graphic designer", "дизайнер интерфейсов",
	"interface designer", "product designer", "продуктовый дизайнер",
	"моушн дизайнер", "motion designer", "анимация", "animation",
	"брендинг", "branding", "логотип", "logo", "иконки", "icons",
	"типографика", "typography", "цвет", "color", "композиция", "composition",
	"макет", "layout", "wireframe", "прототип", "prototype",
	"usability", "юзабилити", "accessibility", "доступность",
	"responsive", "адаптивный", "mobile first", "мобильный дизайн",
	"mobile design", "app design", "дизайн приложений",
}

var defaultExclude = []string{
	"текстиль", "текстильный", "ткань", "одежда", "мода", "fashion",
	"ювелирный", "ювелир", "украшения", "бижутерия",
	"мебель", "интерьер", "декор", "ландшафт", "садовый",
	"промышленный", "машиностроение", "автомобильный",
	"упаковка", "полиграфия", "печать", "типография",
	"архитектурный", "строительный", "реставрация",
}
