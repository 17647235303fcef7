// Package sm2 implements the SuperMemo-2 scheduling computation
// the package is pure, callers own persistence and clock injection
package sm2

import (
	"math"
	"time"
)

// Quality bounds for a review rating
const (
	QualityMin = 0
	QualityMax = 5

	// PassThreshold is the lowest quality counted as a successful recall
	PassThreshold = 3

	// SeedEase is the ease factor assigned to a never-reviewed word
	SeedEase = 2.5

	// MinEase is the floor the ease factor may never drop below
	MinEase = 1.3
)

// Config holds the tunable scheduling knobs
type Config struct {
	// MaxIntervalDays caps interval growth, 0 means no cap
	MaxIntervalDays int

	// FastAnswerMs is the response time under which a correct answer
	// earns the top rating when no explicit rating was supplied
	FastAnswerMs int
}

// DefaultConfig returns the production defaults
func DefaultConfig() Config {
	return Config{
		MaxIntervalDays: 365,
		FastAnswerMs:    3000,
	}
}

// State is the scheduling portion of a vocabulary record
type State struct {
	EaseFactor   float64
	IntervalDays int
	Repetitions  int
	NextReviewAt time.Time
}

// Outcome is a single review result
type Outcome struct {
	Correct        bool
	ResponseTimeMs int

	// RatingHint is an optional explicit 0..5 rating, nil derives one
	RatingHint *int
}

// Quality derives the 0..5 rating for an outcome
// explicit hints win, otherwise correctness and speed decide
func (c Config) Quality(out Outcome) int {
	if out.RatingHint != nil {
		return clampInt(*out.RatingHint, QualityMin, QualityMax)
	}
	switch {
	case out.Correct && out.ResponseTimeMs >= 0 && out.ResponseTimeMs < c.FastAnswerMs:
		return 5
	case out.Correct:
		return 4
	default:
		return 2
	}
}

// Schedule folds one review outcome into the state and returns the successor
// state, it never returns NaN ease factors or negative intervals
func (c Config) Schedule(cur State, out Outcome, now time.Time) State {
	cur = sanitize(cur)
	q := c.Quality(out)

	ease := cur.EaseFactor + (0.1 - float64(5-q)*(0.08+float64(5-q)*0.02))
	if ease < MinEase || math.IsNaN(ease) {
		ease = MinEase
	}

	next := State{EaseFactor: ease}
	if q < PassThreshold {
		// failure resets the learning curve but keeps the record
		next.Repetitions = 0
		next.IntervalDays = 1
	} else {
		next.Repetitions = cur.Repetitions + 1
		switch next.Repetitions {
		case 1:
			next.IntervalDays = 1
		case 2:
			next.IntervalDays = 6
		default:
			next.IntervalDays = int(math.Round(float64(cur.IntervalDays) * ease))
		}
		if c.MaxIntervalDays > 0 && next.IntervalDays > c.MaxIntervalDays {
			next.IntervalDays = c.MaxIntervalDays
		}
		if next.IntervalDays < 1 {
			next.IntervalDays = 1
		}
	}

	next.NextReviewAt = now.AddDate(0, 0, next.IntervalDays)
	return next
}

// sanitize clamps a possibly corrupt persisted state at the boundary
func sanitize(s State) State {
	if math.IsNaN(s.EaseFactor) || s.EaseFactor < MinEase {
		if s.EaseFactor == 0 || math.IsNaN(s.EaseFactor) {
			s.EaseFactor = SeedEase
		} else {
			s.EaseFactor = MinEase
		}
	}
	if s.IntervalDays < 0 {
		s.IntervalDays = 0
	}
	if s.Repetitions < 0 {
		s.Repetitions = 0
	}
	return s
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
