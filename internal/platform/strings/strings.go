// Package strings provides small string helpers shared across modules
package strings

import std "strings"

// IfEmpty returns def when in is empty, otherwise in
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// MustString returns s when it has non whitespace content, otherwise panics
// name appears in the panic message so the missing value is identifiable
func MustString(s string, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix normalizes and asserts a route prefix like /reviews
// ensures a single leading slash and no trailing slash, panics on empty
func MustPrefix(s string) string {
	s = std.TrimSpace(s)
	s = "/" + std.Trim(s, " /")
	if s == "/" {
		panic("root path is required")
	}
	return s
}

// Deref returns *p or "" for nil
func Deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// Ptr returns a pointer to s, or nil when s is empty
func Ptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
