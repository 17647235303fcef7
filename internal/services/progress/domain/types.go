// Package domain holds DTOs for progress queries
package domain

import (
	"strings"
	"time"
)

// Counts summarizes a user's records per knowledge status
type Counts struct {
	New      int64 `json:"new" example:"120"`
	Learning int64 `json:"learning" example:"48"`
	Known    int64 `json:"known" example:"311"`
	Mastered int64 `json:"mastered" example:"95"`
	Total    int64 `json:"total" example:"574"`

	// Due counts records whose next review is already past
	Due int64 `json:"due" example:"37"`
}

// AfterKey restarts a due listing after the last seen row
type AfterKey struct {
	NextReviewAt time.Time
	Word         string
}

// cursorSep never survives word normalization, so the split is unambiguous
const cursorSep = "~"

// Encode serializes the key as an opaque page cursor, empty for no key
func (k AfterKey) Encode() string {
	if k.Word == "" {
		return ""
	}
	return k.NextReviewAt.UTC().Format(time.RFC3339Nano) + cursorSep + k.Word
}

// DecodeAfterKey parses a page cursor produced by Encode.
// The empty cursor decodes to the zero key (first page)
func DecodeAfterKey(cursor string) (AfterKey, bool) {
	if cursor == "" {
		return AfterKey{}, true
	}
	ts, word, found := strings.Cut(cursor, cursorSep)
	if !found || word == "" {
		return AfterKey{}, false
	}
	at, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return AfterKey{}, false
	}
	return AfterKey{NextReviewAt: at.UTC(), Word: word}, true
}

// DueInput selects the review queue for a user and language
type DueInput struct {
	UserID   string `json:"user_id" validate:"required,uuid4" example:"0f8fad5b-d9cb-469f-a165-70867728950e"`
	Language string `json:"language" validate:"required,lang_code" example:"fr"`
	AsOf     string `json:"as_of,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00" example:"2026-08-26T12:00:00Z"`
	Limit    int    `json:"limit,omitempty" validate:"omitempty,min=1,max=500" example:"50"`

	// Cursor is the opaque page cursor from the previous response
	Cursor string `json:"cursor,omitempty"`
}

// DueRow is one entry of the review queue
type DueRow struct {
	Word         string    `json:"word" example:"parler"`
	Lemma        string    `json:"lemma" example:"parler"`
	Status       string    `json:"status" example:"learning"`
	EaseFactor   float64   `json:"ease_factor" example:"2.6"`
	IntervalDays int       `json:"interval_days" example:"6"`
	Repetitions  int       `json:"repetitions" example:"2"`
	NextReviewAt time.Time `json:"next_review_at"`
}
