package service

import (
	"context"
	"testing"
	"time"

	"lexicore/internal/core/status"
	"lexicore/internal/modkit/repokit"
	perr "lexicore/internal/platform/errors"
	"lexicore/internal/platform/store"
	"lexicore/internal/services/vocab/domain"
	"lexicore/internal/services/vocab/repo"
)

// memStorage is an in-memory Storage keyed like the PG table
type memStorage struct {
	recs    map[domain.Key]domain.Record
	created int
	seq     int
}

func newMemStorage() *memStorage {
	return &memStorage{recs: map[domain.Key]domain.Record{}}
}

func (m *memStorage) GetByWord(_ context.Context, k domain.Key) (domain.Record, error) {
	if r, ok := m.recs[k]; ok {
		return r, nil
	}
	return domain.Record{}, perr.ErrNotFound
}

func (m *memStorage) GetByLemma(_ context.Context, userID, language, lem string) (domain.Record, error) {
	var best *domain.Record
	for _, r := range m.recs {
		if r.UserID == userID && r.Language == language && r.Lemma == lem {
			if best == nil || r.CreatedAt.Before(best.CreatedAt) {
				rr := r
				best = &rr
			}
		}
	}
	if best == nil {
		return domain.Record{}, perr.ErrNotFound
	}
	return *best, nil
}

func (m *memStorage) Create(_ context.Context, rec domain.Record) error {
	k := domain.Key{UserID: rec.UserID, Language: rec.Language, Word: rec.Word}
	if _, ok := m.recs[k]; ok {
		return nil // mirrors ON CONFLICT DO NOTHING
	}
	m.seq++
	rec.CreatedAt = time.Unix(int64(m.seq), 0)
	m.recs[k] = rec
	m.created++
	return nil
}

func (m *memStorage) GetForUpdate(ctx context.Context, k domain.Key) (domain.Record, error) {
	return m.GetByWord(ctx, k)
}

func (m *memStorage) Update(_ context.Context, rec domain.Record) error {
	k := domain.Key{UserID: rec.UserID, Language: rec.Language, Word: rec.Word}
	if _, ok := m.recs[k]; !ok {
		return perr.ErrNotFound
	}
	m.recs[k] = rec
	return nil
}

// memBinder returns the same storage for every queryer
type memBinder struct{ s *memStorage }

func (b memBinder) Bind(repokit.Queryer) repo.Storage { return b.s }

// noopTx satisfies TxRunner without a database
type noopTx struct{}

func (noopTx) Exec(context.Context, string, ...any) (store.CommandTag, error) { return nil, nil }
func (noopTx) Query(context.Context, string, ...any) (store.Rows, error)      { return nil, nil }
func (noopTx) QueryRow(context.Context, string, ...any) store.Row             { return nil }
func (noopTx) Tx(ctx context.Context, fn func(q store.RowQuerier) error) error {
	return fn(noopTx{})
}

func newTestSvc(ms *memStorage) *Svc {
	return New(noopTx{}, memBinder{s: ms})
}

func TestResolveCreatesFreshRecord(t *testing.T) {
	t.Parallel()

	ms := newMemStorage()
	s := newTestSvc(ms)

	rec, err := s.Resolve(context.Background(), "u1", "fr", "  Parler! ")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if rec.Word != "parler" {
		t.Fatalf("word = %q, want parler", rec.Word)
	}
	if rec.Status != status.New {
		t.Fatalf("status = %q, want new", rec.Status)
	}
	if rec.EaseFactor != 2.5 {
		t.Fatalf("ease = %v, want 2.5", rec.EaseFactor)
	}
	if ms.created != 1 {
		t.Fatalf("created = %d, want 1", ms.created)
	}
}

func TestResolveExactMatchReturnsExisting(t *testing.T) {
	t.Parallel()

	ms := newMemStorage()
	s := newTestSvc(ms)

	first, err := s.Resolve(context.Background(), "u1", "fr", "parler")
	if err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	again, err := s.Resolve(context.Background(), "u1", "fr", "PARLER")
	if err != nil {
		t.Fatalf("second resolve: %v", err)
	}
	if again.Word != first.Word || ms.created != 1 {
		t.Fatalf("expected same record, got %q (created=%d)", again.Word, ms.created)
	}
}

func TestResolveLemmaMatchReusesRecord(t *testing.T) {
	t.Parallel()

	ms := newMemStorage()
	s := newTestSvc(ms)

	if _, err := s.Resolve(context.Background(), "u1", "fr", "parler"); err != nil {
		t.Fatalf("seed resolve: %v", err)
	}
	// an inflection folding to the same lemma reuses the seeded row
	got, err := s.Resolve(context.Background(), "u1", "fr", "parlons")
	if err != nil {
		t.Fatalf("inflected resolve: %v", err)
	}
	if got.Word != "parler" {
		t.Fatalf("word = %q, want parler (lemma reuse)", got.Word)
	}
	if ms.created != 1 {
		t.Fatalf("created = %d, want 1", ms.created)
	}
}

func TestResolveExactWinsOverLemma(t *testing.T) {
	t.Parallel()

	ms := newMemStorage()
	s := newTestSvc(ms)

	// both surface forms exist as records sharing one lemma
	if _, err := s.Resolve(context.Background(), "u1", "fr", "parler"); err != nil {
		t.Fatal(err)
	}
	ms.recs[domain.Key{UserID: "u1", Language: "fr", Word: "parlons"}] = domain.Record{
		UserID: "u1", Language: "fr", Word: "parlons", Lemma: "parler",
		Status: status.Learning, EaseFactor: 2.6,
	}

	got, err := s.Resolve(context.Background(), "u1", "fr", "parlons")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Word != "parlons" {
		t.Fatalf("word = %q, want exact match parlons", got.Word)
	}
}

func TestResolveDistinctUsersDoNotShare(t *testing.T) {
	t.Parallel()

	ms := newMemStorage()
	s := newTestSvc(ms)

	if _, err := s.Resolve(context.Background(), "u1", "fr", "parler"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Resolve(context.Background(), "u2", "fr", "parler"); err != nil {
		t.Fatal(err)
	}
	if ms.created != 2 {
		t.Fatalf("created = %d, want 2", ms.created)
	}
}

func TestResolveRejectsEmptySurface(t *testing.T) {
	t.Parallel()

	s := newTestSvc(newMemStorage())
	_, err := s.Resolve(context.Background(), "u1", "fr", "  ...  ")
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("want invalid argument, got %v", err)
	}
}
