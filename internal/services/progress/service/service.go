// Package service contains progress query workflows
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"lexicore/internal/modkit/repokit"
	perr "lexicore/internal/platform/errors"
	"lexicore/internal/services/progress/domain"
	"lexicore/internal/services/progress/repo"
)

// Config for the progress service
type Config struct {
	HardLimit int
}

// Service defines the progress service contract
type Service interface {
	domain.QueryPort
}

// Svc implements the progress service
type Svc struct {
	Repo   repo.Storage
	binder repokit.Binder[repo.Storage]
	db     repokit.TxRunner
	cfg    Config
	now    func() time.Time
}

// New constructs a progress service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Storage], cfg Config) *Svc {
	if db == nil {
		panic("progress.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("progress.Service requires a non nil Repo binder")
	}
	if cfg.HardLimit <= 0 {
		cfg.HardLimit = 100
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, cfg: cfg, now: time.Now}
}

// StatusCounts implements domain.QueryPort
func (s *Svc) StatusCounts(ctx context.Context, userID, language string) (domain.Counts, error) {
	if err := checkIdentity(userID, language); err != nil {
		return domain.Counts{}, err
	}
	return s.Repo.StatusCounts(ctx, userID, language)
}

// Due implements domain.QueryPort
func (s *Svc) Due(ctx context.Context, in domain.DueInput) ([]domain.DueRow, domain.AfterKey, error) {
	if err := checkIdentity(in.UserID, in.Language); err != nil {
		return nil, domain.AfterKey{}, err
	}

	after, ok := domain.DecodeAfterKey(in.Cursor)
	if !ok {
		return nil, domain.AfterKey{}, perr.InvalidArgf("bad page cursor")
	}

	limit := in.Limit
	if limit <= 0 || limit > s.cfg.HardLimit {
		limit = s.cfg.HardLimit
	}

	asOf := s.now().UTC()
	if in.AsOf != "" {
		t, err := time.Parse(time.RFC3339, in.AsOf)
		if err != nil {
			return nil, domain.AfterKey{}, perr.InvalidArgf("bad as_of timestamp")
		}
		asOf = t.UTC()
	}

	return s.Repo.Due(ctx, in.UserID, in.Language, asOf, after, limit)
}

// checkIdentity rejects malformed identifiers before they reach SQL
func checkIdentity(userID, language string) error {
	if _, err := uuid.Parse(userID); err != nil {
		return perr.InvalidArgf("bad user id")
	}
	if language == "" {
		return perr.InvalidArgf("language is required")
	}
	return nil
}
