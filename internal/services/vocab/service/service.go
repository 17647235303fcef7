// Package service contains vocab resolution workflows
package service

import (
	"context"
	"errors"
	"time"

	"lexicore/internal/core/lemma"
	"lexicore/internal/core/sm2"
	"lexicore/internal/core/status"
	"lexicore/internal/modkit/repokit"
	perr "lexicore/internal/platform/errors"
	"lexicore/internal/services/vocab/domain"
	"lexicore/internal/services/vocab/repo"
)

// Service defines the vocab service contract
type Service interface {
	domain.ResolverPort
	domain.ReaderPort
}

// Svc implements the vocab service
type Svc struct {
	Repo   repo.Storage
	binder repokit.Binder[repo.Storage]
	db     repokit.TxRunner
	norm   *lemma.Normalizer
	now    func() time.Time
}

// New constructs a vocab service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Storage]) *Svc {
	if db == nil {
		panic("vocab.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("vocab.Service requires a non nil Repo binder")
	}
	return &Svc{
		Repo:   binder.Bind(db),
		binder: binder,
		db:     db,
		norm:   lemma.New(),
		now:    time.Now,
	}
}

// Resolve maps a raw surface form onto exactly one record.
// An exact match on the normalized word wins; otherwise any record sharing
// the folded lemma is reused; otherwise a fresh record is seeded
func (s *Svc) Resolve(ctx context.Context, userID, language, surface string) (domain.Record, error) {
	word := lemma.Clean(surface)
	if word == "" {
		return domain.Record{}, perr.InvalidArgf("surface form %q normalizes to nothing", surface)
	}
	lem := s.norm.Normalize(surface, language)

	k := domain.Key{UserID: userID, Language: language, Word: word}

	rec, err := s.Repo.GetByWord(ctx, k)
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, perr.ErrNotFound) {
		return domain.Record{}, err
	}

	rec, err = s.Repo.GetByLemma(ctx, userID, language, lem)
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, perr.ErrNotFound) {
		return domain.Record{}, err
	}

	fresh := domain.Record{
		UserID:       userID,
		Language:     language,
		Word:         word,
		Lemma:        lem,
		Status:       status.New,
		EaseFactor:   sm2.SeedEase,
		NextReviewAt: s.now().UTC(),
	}
	if err := s.Repo.Create(ctx, fresh); err != nil {
		return domain.Record{}, err
	}

	// re-read so concurrent first reviews converge on the single inserted row
	return s.Repo.GetByWord(ctx, k)
}

// GetByWord implements domain.ReaderPort
func (s *Svc) GetByWord(ctx context.Context, k domain.Key) (domain.Record, error) {
	return s.Repo.GetByWord(ctx, k)
}
