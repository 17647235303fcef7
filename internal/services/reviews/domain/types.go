// Package domain holds DTOs for review ingestion
package domain

import (
	"time"

	"lexicore/internal/core/status"
)

// Source identifies the learning activity that produced a review
type Source string

// Review producing activities
const (
	SourceCloze      Source = "cloze"
	SourceReading    Source = "reading"
	SourceFlashcard  Source = "flashcard"
	SourceFoundation Source = "foundation"
)

// Valid reports whether s names a known activity
func (s Source) Valid() bool {
	switch s {
	case SourceCloze, SourceReading, SourceFlashcard, SourceFoundation:
		return true
	}
	return false
}

// ReviewEvent is one observation of a learner meeting a word
type ReviewEvent struct {
	UserID         string `json:"user_id" validate:"required,uuid4" example:"0f8fad5b-d9cb-469f-a165-70867728950e"`
	Language       string `json:"language" validate:"required,lang_code" example:"fr"`
	Word           string `json:"word" validate:"required,min=1,max=200" example:"parler"`
	Module         Source `json:"module" validate:"required,module_source" example:"cloze"`
	Correct        bool   `json:"correct" example:"true"`
	ResponseTimeMs int    `json:"response_time_ms" validate:"min=0" example:"1450"`
	RatingHint     *int   `json:"rating_hint,omitempty" validate:"omitempty,min=0,max=5" example:"4"`
}

// Result reports the record state after a review was applied
type Result struct {
	Word         string        `json:"word" example:"parler"`
	Lemma        string        `json:"lemma" example:"parler"`
	Status       status.Status `json:"status" example:"learning"`
	EaseFactor   float64       `json:"ease_factor" example:"2.6"`
	IntervalDays int           `json:"interval_days" example:"1"`
	Repetitions  int           `json:"repetitions" example:"1"`
	Quality      int           `json:"quality" example:"5"`
	NextReviewAt time.Time     `json:"next_review_at" example:"2026-08-27T00:00:00Z"`
}
