// Package domain defines the types and interfaces for the vocab service
package domain

import (
	"time"

	"lexicore/internal/core/status"
)

// Record is one user's knowledge state for one word in one language
type Record struct {
	ID       string // uuid
	UserID   string // uuid
	Language string // BCP-47 primary subtag, lowercased
	Word     string // normalized surface form
	Lemma    string // folded citation form

	Status       status.Status
	EaseFactor   float64
	IntervalDays int
	Repetitions  int

	LifetimeReviews int
	LifetimeCorrect int

	NextReviewAt   time.Time
	LastReviewedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Key identifies a record by its natural key
type Key struct {
	UserID   string
	Language string
	Word     string
}
