package errors

import (
	"context"
	stderrs "errors"
	"net"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func pgErr(code string) error { return &pgconn.PgError{Code: code} }

func TestDBErrorCode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		sqlstate string
		want     ErrorCode
	}{
		{"23505", ErrorCodeDuplicateKey},
		{"23503", ErrorCodeInvalidArgument},
		{"23502", ErrorCodeValidation},
		{"40001", ErrorCodeConflict},
		{"40P01", ErrorCodeConflict},
		{"57P03", ErrorCodeUnavailable},
		{"99999", ErrorCodeDB},
	}
	for _, tc := range cases {
		got, ok := DBErrorCode(pgErr(tc.sqlstate))
		if !ok || got != tc.want {
			t.Errorf("DBErrorCode(%s) = %d ok=%v, want %d", tc.sqlstate, got, ok, tc.want)
		}
	}

	if _, ok := DBErrorCode(New(ErrorCodeDB, "not a pg error")); ok {
		t.Fatal("non-pg error should report !ok")
	}
}

func TestRetryablePredicates(t *testing.T) {
	t.Parallel()

	if !IsRetryable(pgErr("40001")) || !IsRetryable(pgErr("40P01")) || !IsRetryable(pgErr("55P03")) {
		t.Fatal("contention SQLSTATEs must be retryable")
	}
	if IsRetryable(pgErr("23505")) {
		t.Fatal("duplicate key is not retryable")
	}
	if !IsDuplicateKey(Wrap(pgErr("23505"), ErrorCodeDB, "wrapped")) {
		t.Fatal("predicates must see through wrapping")
	}
}

func TestRetryableCommitText(t *testing.T) {
	t.Parallel()

	cases := []string{
		"commit unexpectedly resulted in rollback",
		"ERROR: could not serialize access due to concurrent update",
		"ERROR: deadlock detected",
		"FATAL: terminating connection due to administrator command",
	}
	for _, msg := range cases {
		if !IsRetryable(stderrs.New(msg)) {
			t.Errorf("IsRetryable(%q) = false, want true", msg)
		}
	}

	if IsRetryable(context.Canceled) || IsRetryable(context.DeadlineExceeded) {
		t.Fatal("local cancellation must never be retried")
	}
	if IsRetryable(stderrs.New("column does not exist")) {
		t.Fatal("plain query errors are not retryable")
	}
}

func TestConnectionUnavailable(t *testing.T) {
	t.Parallel()

	dialErr := &net.OpError{Op: "dial", Net: "tcp", Err: stderrs.New("connect: connection refused")}
	if !IsConnectionUnavailable(dialErr) {
		t.Fatal("dial failure must classify as unavailable")
	}
	if !IsConnectionUnavailable(Wrap(dialErr, ErrorCodeDB, "update record")) {
		t.Fatal("classification must see through wrapping")
	}
	if !IsConnectionUnavailable(stderrs.New("failed to connect to `host=db`")) {
		t.Fatal("pgconn connect text must classify as unavailable")
	}
	if !IsConnectionUnavailable(pgErr("57P03")) {
		t.Fatal("cannot_connect_now must classify as unavailable")
	}

	if IsConnectionUnavailable(context.DeadlineExceeded) {
		t.Fatal("context deadline is not a connectivity failure")
	}
	if IsConnectionUnavailable(pgErr("40001")) {
		t.Fatal("contention is not a connectivity failure")
	}
}

func TestFromPostgres(t *testing.T) {
	t.Parallel()

	err := FromPostgres(pgErr("23505"), "insert vocab")
	if !IsCode(err, ErrorCodeDuplicateKey) {
		t.Fatalf("FromPostgres code = %d", CodeOf(err))
	}
	if FromPostgres(nil, "x") != nil {
		t.Fatal("nil passes through")
	}

	dialErr := &net.OpError{Op: "dial", Net: "tcp", Err: stderrs.New("connect: connection refused")}
	if !IsCode(FromPostgres(dialErr, "get record"), ErrorCodeUnavailable) {
		t.Fatal("dial failures must map to unavailable, not generic db")
	}
}
