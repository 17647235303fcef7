// Package repo provides the vocab repository implementation
package repo

import (
	"context"
	stderrs "errors"

	"lexicore/internal/modkit/repokit"
	perr "lexicore/internal/platform/errors"
	"lexicore/internal/platform/store"
	"lexicore/internal/services/vocab/domain"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the vocab repository
type Storage interface {
	GetByWord(ctx context.Context, k domain.Key) (domain.Record, error)
	GetByLemma(ctx context.Context, userID, language, lemma string) (domain.Record, error)
	Create(ctx context.Context, rec domain.Record) error
	GetForUpdate(ctx context.Context, k domain.Key) (domain.Record, error)
	Update(ctx context.Context, rec domain.Record) error
}

const recordCols = `
	id::text, user_id::text, language, word, lemma,
	status, ease_factor, interval_days, repetitions,
	lifetime_reviews, lifetime_correct,
	next_review_at, last_reviewed_at, created_at, updated_at`

func scanRecord(r repokit.Row) (domain.Record, error) {
	var rec domain.Record
	err := r.Scan(
		&rec.ID, &rec.UserID, &rec.Language, &rec.Word, &rec.Lemma,
		&rec.Status, &rec.EaseFactor, &rec.IntervalDays, &rec.Repetitions,
		&rec.LifetimeReviews, &rec.LifetimeCorrect,
		&rec.NextReviewAt, &rec.LastReviewedAt, &rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// GetByWord returns the record for the exact normalized word
func (s *pg) GetByWord(ctx context.Context, k domain.Key) (domain.Record, error) {
	rec, err := store.One(ctx, s.q, scanRecord, `
		SELECT `+recordCols+`
		FROM vocabulary_records
		WHERE user_id = $1 AND language = $2 AND word = $3`,
		k.UserID, k.Language, k.Word,
	)
	if err != nil {
		return domain.Record{}, mapGetErr(err)
	}
	return rec, nil
}

// GetByLemma returns the oldest record sharing the lemma so all inflections
// converge on one row
func (s *pg) GetByLemma(ctx context.Context, userID, language, lemma string) (domain.Record, error) {
	rec, err := store.One(ctx, s.q, scanRecord, `
		SELECT `+recordCols+`
		FROM vocabulary_records
		WHERE user_id = $1 AND language = $2 AND lemma = $3
		ORDER BY created_at, word
		LIMIT 1`,
		userID, language, lemma,
	)
	if err != nil {
		return domain.Record{}, mapGetErr(err)
	}
	return rec, nil
}

// Create inserts a fresh record. Concurrent first reviews of the same word
// race on the natural key; DO NOTHING lets both converge via re-read
func (s *pg) Create(ctx context.Context, rec domain.Record) error {
	_, err := s.q.Exec(ctx, `
		INSERT INTO vocabulary_records
			(user_id, language, word, lemma, status,
			ease_factor, interval_days, repetitions,
			lifetime_reviews, lifetime_correct, next_review_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		ON CONFLICT (user_id, language, word) DO NOTHING`,
		rec.UserID, rec.Language, rec.Word, rec.Lemma, rec.Status,
		rec.EaseFactor, rec.IntervalDays, rec.Repetitions,
		rec.LifetimeReviews, rec.LifetimeCorrect, rec.NextReviewAt,
	)
	if err != nil {
		return perr.FromPostgres(err, "create vocabulary record")
	}
	return nil
}

// GetForUpdate locks the record row for the duration of the enclosing tx
func (s *pg) GetForUpdate(ctx context.Context, k domain.Key) (domain.Record, error) {
	rec, err := store.One(ctx, s.q, scanRecord, `
		SELECT `+recordCols+`
		FROM vocabulary_records
		WHERE user_id = $1 AND language = $2 AND word = $3
		FOR UPDATE`,
		k.UserID, k.Language, k.Word,
	)
	if err != nil {
		return domain.Record{}, mapGetErr(err)
	}
	return rec, nil
}

// Update writes the scheduling state back to the locked row
func (s *pg) Update(ctx context.Context, rec domain.Record) error {
	tag, err := s.q.Exec(ctx, `
		UPDATE vocabulary_records SET
			status = $4,
			ease_factor = $5,
			interval_days = $6,
			repetitions = $7,
			lifetime_reviews = $8,
			lifetime_correct = $9,
			next_review_at = $10,
			last_reviewed_at = $11,
			updated_at = now()
		WHERE user_id = $1 AND language = $2 AND word = $3`,
		rec.UserID, rec.Language, rec.Word,
		rec.Status, rec.EaseFactor, rec.IntervalDays, rec.Repetitions,
		rec.LifetimeReviews, rec.LifetimeCorrect,
		rec.NextReviewAt, rec.LastReviewedAt,
	)
	if err != nil {
		return perr.FromPostgres(err, "update vocabulary record")
	}
	if tag.RowsAffected() != 1 {
		return perr.NotFoundf("vocabulary record %s/%s/%s", rec.UserID, rec.Language, rec.Word)
	}
	return nil
}

// mapGetErr keeps the not-found sentinel intact and wraps everything else
func mapGetErr(err error) error {
	if stderrs.Is(err, perr.ErrNotFound) || perr.IsNoRows(err) {
		return perr.ErrNotFound
	}
	return perr.FromPostgres(err, "query vocabulary record")
}
