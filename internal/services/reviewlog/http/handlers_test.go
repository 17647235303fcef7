package http

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	perr "lexicore/internal/platform/errors"
	"lexicore/internal/services/reviewlog/domain"
)

type fakeQuery struct {
	gotWindow domain.Window
	rows      []domain.ActivityRow
}

func (f *fakeQuery) ActivityByDay(
	_ context.Context,
	_, _ string,
	w domain.Window,
) ([]domain.ActivityRow, error) {
	f.gotWindow = w
	return f.rows, nil
}

func TestActivityParsesWindow(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	fq := &fakeQuery{rows: []domain.ActivityRow{{Day: day, Module: "cloze", Reviews: 12, Correct: 9}}}
	h := &handlers{q: fq}

	out, err := h.activity(httptest.NewRequest("POST", "/activity", nil), ActivityInput{
		UserID:   "0f8fad5b-d9cb-469f-a165-70867728950e",
		Language: "fr",
		Since:    "2026-08-01",
		Until:    "2026-08-31",
	})
	if err != nil {
		t.Fatal(err)
	}

	if !fq.gotWindow.Since.Equal(day) {
		t.Fatalf("since = %v", fq.gotWindow.Since)
	}
	rows, ok := out.([]ActivityRow)
	if !ok || len(rows) != 1 {
		t.Fatalf("out = %T %v", out, out)
	}
	if rows[0].Day != "2026-08-01" || rows[0].Reviews != 12 {
		t.Fatalf("row = %+v", rows[0])
	}
}

func TestActivityRejectsInvertedWindow(t *testing.T) {
	t.Parallel()

	h := &handlers{q: &fakeQuery{}}

	_, err := h.activity(httptest.NewRequest("POST", "/activity", nil), ActivityInput{
		UserID:   "0f8fad5b-d9cb-469f-a165-70867728950e",
		Language: "fr",
		Since:    "2026-08-31",
		Until:    "2026-08-01",
	})
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("want invalid argument, got %v", err)
	}

	_, err = h.activity(httptest.NewRequest("POST", "/activity", nil), ActivityInput{
		UserID:   "0f8fad5b-d9cb-469f-a165-70867728950e",
		Language: "fr",
		Since:    "not-a-date",
		Until:    "2026-08-01",
	})
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("want invalid argument for bad date, got %v", err)
	}
}
