// Package service applies review events to vocabulary records
package service

import (
	"context"
	"time"

	"lexicore/internal/core/sm2"
	"lexicore/internal/core/status"
	"lexicore/internal/modkit/repokit"
	perr "lexicore/internal/platform/errors"
	"lexicore/internal/platform/logger"
	ptime "lexicore/internal/platform/time"
	rldom "lexicore/internal/services/reviewlog/domain"
	dom "lexicore/internal/services/reviews/domain"
	vocabdom "lexicore/internal/services/vocab/domain"
	vocabrepo "lexicore/internal/services/vocab/repo"
)

// Config for the reviews service
type Config struct {
	Engine     sm2.Config
	Thresholds status.Thresholds

	// MaxRetries bounds local retries of the record transaction when the
	// database reports a retryable contention failure
	MaxRetries int
}

// Service defines the reviews service contract
type Service interface {
	dom.IngestPort
}

// Svc implements review ingestion
type Svc struct {
	db       repokit.TxRunner
	binder   repokit.Binder[vocabrepo.Storage]
	resolver vocabdom.ResolverPort
	sink     rldom.WriterPort
	cfg      Config
	log      logger.Logger
	now      func() time.Time
}

// New constructs a reviews service. sink may be nil
func New(
	db repokit.TxRunner,
	binder repokit.Binder[vocabrepo.Storage],
	resolver vocabdom.ResolverPort,
	sink rldom.WriterPort,
	cfg Config,
	log logger.Logger,
) *Svc {
	if db == nil {
		panic("reviews.Service requires a non nil TxRunner")
	}
	if resolver == nil {
		panic("reviews.Service requires a resolver port")
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.Engine.MaxIntervalDays == 0 && cfg.Engine.FastAnswerMs == 0 {
		cfg.Engine = sm2.DefaultConfig()
	}
	if cfg.Thresholds == (status.Thresholds{}) {
		cfg.Thresholds = status.DefaultThresholds()
	}
	return &Svc{
		db:       db,
		binder:   binder,
		resolver: resolver,
		sink:     sink,
		cfg:      cfg,
		log:      log,
		now:      time.Now,
	}
}

// Ingest resolves the event's word and folds the outcome into the record.
// The read-modify-write happens in one transaction holding a row lock so
// concurrent reviews of the same word serialize; words never share locks
func (s *Svc) Ingest(ctx context.Context, ev dom.ReviewEvent) (dom.Result, error) {
	if !ev.Module.Valid() {
		return dom.Result{}, perr.InvalidArgf("unknown module source %q", ev.Module)
	}

	rec, err := s.resolver.Resolve(ctx, ev.UserID, ev.Language, ev.Word)
	if err != nil {
		return dom.Result{}, err
	}

	out := sm2.Outcome{
		Correct:        ev.Correct,
		ResponseTimeMs: ev.ResponseTimeMs,
		RatingHint:     ev.RatingHint,
	}
	quality := s.cfg.Engine.Quality(out)

	var before, after vocabdom.Record
	apply := func(q repokit.Queryer) error {
		r := s.binder.Bind(q)

		cur, err := r.GetForUpdate(ctx, recordKey(rec))
		if err != nil {
			return err
		}
		before = cur

		st := s.cfg.Engine.Schedule(sm2.State{
			EaseFactor:   cur.EaseFactor,
			IntervalDays: cur.IntervalDays,
			Repetitions:  cur.Repetitions,
			NextReviewAt: cur.NextReviewAt,
		}, out, s.now().UTC())

		next := cur
		next.Status = s.cfg.Thresholds.Next(cur.Status, st, quality)
		next.EaseFactor = st.EaseFactor
		next.IntervalDays = st.IntervalDays
		next.Repetitions = st.Repetitions
		next.NextReviewAt = st.NextReviewAt
		next.LifetimeReviews = cur.LifetimeReviews + 1
		if ev.Correct {
			next.LifetimeCorrect = cur.LifetimeCorrect + 1
		}
		next.LastReviewedAt = ptime.Ptr(s.now().UTC())

		if err := r.Update(ctx, next); err != nil {
			return err
		}
		after = next
		return nil
	}

	if err := s.withRetries(ctx, apply); err != nil {
		return dom.Result{}, err
	}

	s.appendHistory(ctx, ev, quality, before, after)

	return dom.Result{
		Word:         after.Word,
		Lemma:        after.Lemma,
		Status:       after.Status,
		EaseFactor:   after.EaseFactor,
		IntervalDays: after.IntervalDays,
		Repetitions:  after.Repetitions,
		Quality:      quality,
		NextReviewAt: after.NextReviewAt,
	}, nil
}

// withRetries runs fn in a transaction, retrying bounded times on
// contention SQLSTATEs before surfacing conflict or unavailability
func (s *Svc) withRetries(ctx context.Context, fn func(q repokit.Queryer) error) error {
	var last error
	for attempt := 0; attempt <= s.cfg.MaxRetries; attempt++ {
		last = repokit.WithTx(ctx, s.db, fn)
		if last == nil {
			return nil
		}
		if perr.IsConnectionUnavailable(last) {
			return perr.Wrapf(last, perr.ErrorCodeUnavailable, "database unavailable")
		}
		if !perr.Retryable(last) {
			return last
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		// brief backoff keeps retries from hammering the same lock
		time.Sleep(time.Duration(attempt+1) * 10 * time.Millisecond)
	}
	return perr.Wrapf(last, perr.ErrorCodeConflict, "review contention persisted after %d retries", s.cfg.MaxRetries)
}

// appendHistory writes the review to the history sink best-effort.
// Sink failures are logged and never surface to the caller
func (s *Svc) appendHistory(ctx context.Context, ev dom.ReviewEvent, quality int, before, after vocabdom.Record) {
	if s.sink == nil {
		return
	}
	err := s.sink.Append(ctx, rldom.Entry{
		UserID:         ev.UserID,
		Language:       ev.Language,
		Word:           after.Word,
		Lemma:          after.Lemma,
		Module:         string(ev.Module),
		Quality:        quality,
		Correct:        ev.Correct,
		ResponseTimeMs: ev.ResponseTimeMs,
		IntervalBefore: before.IntervalDays,
		IntervalAfter:  after.IntervalDays,
		StatusBefore:   string(before.Status),
		StatusAfter:    string(after.Status),
		At:             ptime.Deref(after.LastReviewedAt),
	})
	if err != nil {
		s.log.Warn().Err(err).
			Str("word", after.Word).
			Str("module", string(ev.Module)).
			Msg("review history append failed")
	}
}

func recordKey(rec vocabdom.Record) vocabdom.Key {
	return vocabdom.Key{UserID: rec.UserID, Language: rec.Language, Word: rec.Word}
}
