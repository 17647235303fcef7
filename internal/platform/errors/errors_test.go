package errors

import (
	stderrs "errors"
	"net/http"
	"testing"
)

func TestWrapAndUnwrap(t *testing.T) {
	t.Parallel()

	cause := stderrs.New("boom")
	err := Wrap(cause, ErrorCodeDB, "query failed")
	if Root(err) != cause {
		t.Fatalf("Root should reach the cause")
	}
	if !stderrs.Is(err, cause) {
		t.Fatalf("errors.Is should see the cause through Unwrap")
	}
	if got := err.Error(); got != "query failed: boom" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestCodeOf(t *testing.T) {
	t.Parallel()

	if got := CodeOf(Unavailablef("store down")); got != ErrorCodeUnavailable {
		t.Fatalf("CodeOf = %d", got)
	}
	if got := CodeOf(stderrs.New("plain")); got != ErrorCodeUnknown {
		t.Fatalf("foreign error CodeOf = %d, want Unknown", got)
	}
	if !IsCode(Conflictf("busy"), ErrorCodeConflict) {
		t.Fatal("IsCode conflict")
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want int
	}{
		{ErrNotFound, http.StatusNotFound},
		{InvalidArgf("bad"), http.StatusUnprocessableEntity},
		{Conflictf("clash"), http.StatusConflict},
		{JSONErrf("parse"), http.StatusBadRequest},
		{New(ErrorCodeValidation, "field"), http.StatusBadRequest},
		{Unavailablef("down"), http.StatusServiceUnavailable},
		{DBf("db"), http.StatusInternalServerError},
		{stderrs.New("foreign"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestWireFrom(t *testing.T) {
	t.Parallel()

	w := WireFrom(WithField(New(ErrorCodeValidation, "must be set"), "word"))
	if w.Code != ErrorCodeValidation || w.Field != "word" || w.Message != "must be set" {
		t.Fatalf("WireFrom = %+v", w)
	}
	if w := WireFrom(nil); w != (Wire{}) {
		t.Fatalf("WireFrom(nil) = %+v", w)
	}
}

func TestWithFieldCopyOnWrite(t *testing.T) {
	t.Parallel()

	orig := New(ErrorCodeValidation, "bad")
	mod := WithField(orig, "language")
	oe, _ := As(orig)
	if oe.Field() != "" {
		t.Fatal("original mutated")
	}
	me, _ := As(mod)
	if me.Field() != "language" {
		t.Fatal("field not attached")
	}
}
