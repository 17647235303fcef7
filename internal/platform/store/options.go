package store

import (
	"lexicore/internal/platform/logger"
)

// Option customizes the Store before backends open
type Option func(*Store) error

// WithLogger routes backend tracing through the given logger
func WithLogger(log logger.Logger) Option {
	return func(s *Store) error {
		s.Log = log
		return nil
	}
}
