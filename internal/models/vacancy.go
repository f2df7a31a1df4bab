package models

import (
	"time"
)

type VacancyStatus string

const (
	StatusPending  VacancyStatus = "pending"
	StatusApproved VacancyStatus = "approved"
	StatusRejected VacancyStatus = "rejected"
)

// NotSpecified is stored in company/location when the card has no such field
const NotSpecified = "Не указано"

// Vacancy is one listing accepted by the pipeline.
// Optional text fields are never nil: missing values hold a documented default.
type Vacancy struct {
	ExternalID  string        `json:"external_id"`
	Source      string        `json:"source"`
	URL         string        `json:"url"`
	Title       string        `json:"title"`
	Company     string        `json:"company"`
	Location    string        `json:"location"`
	Salary      string        `json:"salary"`
	Description string        `json:"description"`
	PublishedAt time.Time     `json:"published_at"`
	Status      VacancyStatus `json:"status"`
}

// Key identifies a vacancy across runs. Empty when the listing had no usable id.
func (v Vacancy) Key() string {
	if v.ExternalID == "" {
		return ""
	}
	return v.Source + ":" + v.ExternalID
}

// RunResult is the payload handed back to whoever invoked a run
type RunResult struct {
	RunID      string    `json:"-"`
	Message    string    `json:"message"`
	Source     string    `json:"source"`
	TotalFound int       `json:"total_found"`
	Saved      int       `json:"saved"`
	Query      string    `json:"query"`
	Pages      int       `json:"pages"`
	Vacancies  []Vacancy `json:"vacancies"`
}

// ErrorPayload is returned instead of RunResult when the run could not start at all
type ErrorPayload struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
