// Package time contains time related helpers
package time

import "time"

// Ptr returns a pointer to t or nil when t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// Deref returns *t or the zero time for nil
func Deref(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
