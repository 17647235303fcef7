// Package status drives the mastery lifecycle of a vocabulary record
// transitions are monotonic per review, a record moves at most one state
// forward per review and regresses to learning on any failed recall
package status

import "lexicore/internal/core/sm2"

// Status is the mastery state of a vocabulary record
type Status string

const (
	// New marks a word created but never reviewed
	New Status = "new"

	// Learning marks a word under active review
	Learning Status = "learning"

	// Known marks a word with stable recall
	Known Status = "known"

	// Mastered marks a word with long intervals and a deep review history
	Mastered Status = "mastered"
)

// Valid reports whether s is one of the four lifecycle states
func (s Status) Valid() bool {
	switch s {
	case New, Learning, Known, Mastered:
		return true
	}
	return false
}

// Thresholds are the tunable gates between states
// defaults are product calibration points, not algorithmic constants
type Thresholds struct {
	KnownReps            int
	KnownEase            float64
	MasteredReps         int
	MasteredIntervalDays int
}

// DefaultThresholds returns the production gates
func DefaultThresholds() Thresholds {
	return Thresholds{
		KnownReps:            2,
		KnownEase:            2.0,
		MasteredReps:         5,
		MasteredIntervalDays: 21,
	}
}

// Next returns the state following one review
// quality is the 0..5 rating the scheduler used for the same review
func (t Thresholds) Next(prev Status, st sm2.State, quality int) Status {
	// a failed recall demotes known and mastered words so downstream
	// feature gates reflect current competence, not historical peak
	if quality < sm2.PassThreshold {
		return Learning
	}

	switch prev {
	case New:
		// the first review always lands in learning, never further
		return Learning
	case Learning:
		if st.Repetitions >= t.KnownReps && st.EaseFactor >= t.KnownEase {
			return Known
		}
		return Learning
	case Known:
		if st.Repetitions >= t.MasteredReps && st.IntervalDays >= t.MasteredIntervalDays {
			return Mastered
		}
		return Known
	case Mastered:
		return Mastered
	default:
		// unknown persisted value, restart the lifecycle conservatively
		return Learning
	}
}
