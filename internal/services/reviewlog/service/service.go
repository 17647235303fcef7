// Package service provides the review log service
package service

import (
	"context"

	"lexicore/internal/platform/store"
	dom "lexicore/internal/services/reviewlog/domain"
	"lexicore/internal/services/reviewlog/repo"
)

// Service implements domain.WriterPort and domain.QueryPort against the CH repo.
// A nil clickhouse seam degrades every call to a no-op so the engine can run
// without the history backend
type Service struct {
	Storage *repo.CH
}

// New constructs a review log service, db may be nil
func New(db store.Clickhouse) *Service {
	if db == nil {
		return &Service{}
	}
	return &Service{Storage: repo.NewCH(db)}
}

// Append implements domain.WriterPort
func (s *Service) Append(ctx context.Context, e dom.Entry) error {
	if s.Storage == nil {
		return nil
	}
	return s.Storage.Append(ctx, e)
}

// ActivityByDay implements domain.QueryPort
func (s *Service) ActivityByDay(ctx context.Context, userID, language string, w dom.Window) ([]dom.ActivityRow, error) {
	if s.Storage == nil {
		return nil, nil
	}
	return s.Storage.ActivityByDay(ctx, userID, language, w)
}
