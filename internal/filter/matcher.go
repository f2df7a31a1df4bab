package filter

import (
	"strings"

	"design-vacancy-parser/internal/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

type Decision int

const (
	Reject Decision = iota
	Accept
)

func (d Decision) String() string {
	if d == Accept {
		return "accept"
	}
	return "reject"
}

// Verdict explains a decision: the first inclusion and exclusion hits, if any
type Verdict struct {
	Decision Decision
	Included string
	Excluded string
}

// Classifier decides whether a vacancy belongs to the target occupation.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	keywords KeywordSets
}

func NewClassifier(keywords KeywordSets) *Classifier {
	return &Classifier{keywords: keywords}
}

// Classify accepts when title+description contains an inclusion keyword and no exclusion keyword.
// Matching is by substring; any exclusion hit vetoes the vacancy.
func (c *Classifier) Classify(v models.Vacancy) Decision {
	return c.Explain(v).Decision
}

func (c *Classifier) Explain(v models.Vacancy) Verdict {
	text := normalizeText(v.Title + " " + v.Description)

	verdict := Verdict{
		Included: firstHit(text, c.keywords.include),
		Excluded: firstHit(text, c.keywords.exclude),
	}
	if verdict.Included != "" && verdict.Excluded == "" {
		verdict.Decision = Accept
	}
	return verdict
}

func firstHit(text string, keywords []string) string {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return kw
		}
	}
	return ""
}

// normalizeText lower-cases s after NFC composition so that
// precomposed and decomposed forms of the same letter compare equal
func normalizeText(s string) string {
	//a Caser keeps state, so one is built per call
	return strings.TrimSpace(cases.Lower(language.Und).String(norm.NFC.String(s)))
}
