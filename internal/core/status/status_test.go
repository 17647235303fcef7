package status

import (
	"testing"
	"time"

	"lexicore/internal/core/sm2"
)

func testNow() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

func TestNextTransitions(t *testing.T) {
	t.Parallel()

	th := DefaultThresholds()
	cases := []struct {
		name    string
		prev    Status
		st      sm2.State
		quality int
		want    Status
	}{
		{"new always enters learning", New, sm2.State{Repetitions: 1, EaseFactor: 2.6}, 5, Learning},
		{"new enters learning even on failure", New, sm2.State{Repetitions: 0, EaseFactor: 2.3}, 2, Learning},
		{"new never skips to known", New, sm2.State{Repetitions: 10, EaseFactor: 3.0, IntervalDays: 100}, 5, Learning},
		{"learning holds below reps gate", Learning, sm2.State{Repetitions: 1, EaseFactor: 2.6}, 4, Learning},
		{"learning holds below ease gate", Learning, sm2.State{Repetitions: 4, EaseFactor: 1.5}, 4, Learning},
		{"learning promotes to known", Learning, sm2.State{Repetitions: 2, EaseFactor: 2.7}, 5, Known},
		{"known holds below mastered gates", Known, sm2.State{Repetitions: 4, EaseFactor: 2.5, IntervalDays: 30}, 5, Known},
		{"known holds below interval gate", Known, sm2.State{Repetitions: 6, EaseFactor: 2.5, IntervalDays: 14}, 5, Known},
		{"known promotes to mastered", Known, sm2.State{Repetitions: 5, EaseFactor: 2.5, IntervalDays: 21}, 5, Mastered},
		{"mastered stays mastered on success", Mastered, sm2.State{Repetitions: 9, IntervalDays: 120, EaseFactor: 2.8}, 4, Mastered},
		{"known regresses on failure", Known, sm2.State{Repetitions: 0, IntervalDays: 1, EaseFactor: 2.1}, 2, Learning},
		{"mastered regresses on failure", Mastered, sm2.State{Repetitions: 0, IntervalDays: 1, EaseFactor: 2.4}, 1, Learning},
		{"garbage state restarts in learning", Status("archived"), sm2.State{Repetitions: 3, EaseFactor: 2.5}, 4, Learning},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := th.Next(tc.prev, tc.st, tc.quality); got != tc.want {
				t.Fatalf("Next(%s, %+v, %d) = %s, want %s", tc.prev, tc.st, tc.quality, got, tc.want)
			}
		})
	}
}

func TestScenarioLifecycle(t *testing.T) {
	t.Parallel()

	cfg := sm2.DefaultConfig()
	th := DefaultThresholds()

	// first review of a new word, correct and fast
	st := cfg.Schedule(sm2.State{EaseFactor: sm2.SeedEase}, sm2.Outcome{Correct: true, ResponseTimeMs: 1500}, testNow())
	s := th.Next(New, st, cfg.Quality(sm2.Outcome{Correct: true, ResponseTimeMs: 1500}))
	if s != Learning || st.Repetitions != 1 || st.IntervalDays != 1 {
		t.Fatalf("after first review: status=%s reps=%d interval=%d", s, st.Repetitions, st.IntervalDays)
	}

	// second correct review promotes to known
	st = cfg.Schedule(st, sm2.Outcome{Correct: true, ResponseTimeMs: 1000}, testNow())
	s = th.Next(s, st, 5)
	if s != Known || st.Repetitions != 2 || st.IntervalDays != 6 {
		t.Fatalf("after second review: status=%s reps=%d interval=%d", s, st.Repetitions, st.IntervalDays)
	}

	// a failure drops the word back to learning
	st = cfg.Schedule(st, sm2.Outcome{Correct: false}, testNow())
	s = th.Next(s, st, 2)
	if s != Learning || st.Repetitions != 0 || st.IntervalDays != 1 {
		t.Fatalf("after failure: status=%s reps=%d interval=%d", s, st.Repetitions, st.IntervalDays)
	}
}

func TestValid(t *testing.T) {
	t.Parallel()

	for _, s := range []Status{New, Learning, Known, Mastered} {
		if !s.Valid() {
			t.Fatalf("%s should be valid", s)
		}
	}
	if Status("peak").Valid() {
		t.Fatal("unexpected valid status")
	}
}
