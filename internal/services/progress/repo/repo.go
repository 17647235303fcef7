// Package repo provides the progress repository implementation
package repo

import (
	"context"
	"strings"
	"time"

	"lexicore/internal/modkit/repokit"
	"lexicore/internal/platform/store"
	"lexicore/internal/services/progress/domain"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the progress repository
type Storage interface {
	StatusCounts(ctx context.Context, userID, language string) (domain.Counts, error)
	Due(ctx context.Context, userID, language string, asOf time.Time, after domain.AfterKey, limit int) ([]domain.DueRow, domain.AfterKey, error)
}

// statusCount is one bucket of the grouped counts query
type statusCount struct {
	status string
	n      int64
}

func scanStatusCount(r store.Row) (statusCount, error) {
	var sc statusCount
	err := r.Scan(&sc.status, &sc.n)
	return sc, err
}

// StatusCounts implements Storage with one grouped scan
func (s *pg) StatusCounts(ctx context.Context, userID, language string) (domain.Counts, error) {
	buckets, err := store.Many(ctx, s.q, scanStatusCount, `
		SELECT status, COUNT(*)
		FROM vocabulary_records
		WHERE user_id = $1 AND language = $2
		GROUP BY status`,
		userID, language,
	)
	if err != nil {
		return domain.Counts{}, err
	}

	var c domain.Counts
	for _, b := range buckets {
		switch b.status {
		case "new":
			c.New = b.n
		case "learning":
			c.Learning = b.n
		case "known":
			c.Known = b.n
		case "mastered":
			c.Mastered = b.n
		}
		c.Total += b.n
	}

	due, err := store.Scalar[int64](ctx, s.q, `
		SELECT COUNT(*)
		FROM vocabulary_records
		WHERE user_id = $1 AND language = $2 AND next_review_at <= now()`,
		userID, language,
	)
	if err != nil {
		return domain.Counts{}, err
	}
	c.Due = due
	return c, nil
}

// Due implements Storage with keyset pagination over (next_review_at, word)
func (s *pg) Due(
	ctx context.Context,
	userID, language string,
	asOf time.Time,
	after domain.AfterKey,
	limit int,
) ([]domain.DueRow, domain.AfterKey, error) {
	var sb strings.Builder
	args := []any{userID, language, asOf}

	sb.WriteString(`
		SELECT word, lemma, status, ease_factor, interval_days, repetitions, next_review_at
		FROM vocabulary_records
		WHERE user_id = $1 AND language = $2
			AND next_review_at <= $3
	`)

	// keyset only when AfterKey is set, first page has no anchor
	if after.Word != "" {
		args = append(args, after.NextReviewAt, after.Word)
		sb.WriteString("  AND (next_review_at, word) > ($4, $5)\n")
	}

	args = append(args, limit)
	if after.Word != "" {
		sb.WriteString("ORDER BY next_review_at, word\nLIMIT $6")
	} else {
		sb.WriteString("ORDER BY next_review_at, word\nLIMIT $4")
	}

	out, err := store.Many(ctx, s.q, scanDueRow, sb.String(), args...)
	if err != nil {
		return nil, domain.AfterKey{}, err
	}

	var last domain.AfterKey
	if n := len(out); n > 0 {
		last = domain.AfterKey{NextReviewAt: out[n-1].NextReviewAt, Word: out[n-1].Word}
	}
	return out, last, nil
}

func scanDueRow(r store.Row) (domain.DueRow, error) {
	var row domain.DueRow
	err := r.Scan(
		&row.Word, &row.Lemma, &row.Status, &row.EaseFactor,
		&row.IntervalDays, &row.Repetitions, &row.NextReviewAt,
	)
	return row, err
}
