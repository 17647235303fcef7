// Package domain defines the review history log types
package domain

import "time"

// Entry is one appended review observation
type Entry struct {
	UserID   string
	Language string
	Word     string
	Lemma    string
	Module   string

	Quality        int
	Correct        bool
	ResponseTimeMs int

	IntervalBefore int
	IntervalAfter  int
	StatusBefore   string
	StatusAfter    string

	At time.Time
}

// ActivityRow buckets review volume by day and producing activity
type ActivityRow struct {
	Day     time.Time
	Module  string
	Reviews uint64
	Correct uint64
}

// Window is a closed-open time range
type Window struct {
	Since time.Time
	Until time.Time
}
