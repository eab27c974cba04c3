package daily

import (
	"testing"
	"time"

	"github.com/abhisek/culturia/internal/content"
	"github.com/abhisek/culturia/internal/store"
	"github.com/abhisek/culturia/internal/viewed"
)

func openTestSelector(t *testing.T) (*Selector, *viewed.Tracker) {
	t.Helper()
	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	tr := viewed.NewTracker(st)
	return NewSelector(st, tr), tr
}

func fixedDay(date string) func() time.Time {
	return func() time.Time {
		t, _ := time.Parse("2006-01-02", date)
		return t
	}
}

func TestDailyWorkDeterministic(t *testing.T) {
	s, _ := openTestSelector(t)
	s.WithClock(fixedDay("2026-01-25"))

	first, err := s.DailyWork()
	if err != nil {
		t.Fatalf("daily work: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := s.DailyWork()
		if err != nil {
			t.Fatalf("daily work: %v", err)
		}
		if again.ID != first.ID {
			t.Fatalf("repeat query %d returned %s, first was %s", i, again.ID, first.ID)
		}
	}
}

// Once the day's pick is cached, marking it (or anything else) as viewed
// must not change what the rest of the day shows.
func TestDailyWorkCacheSurvivesViewedChanges(t *testing.T) {
	s, tr := openTestSelector(t)
	s.WithClock(fixedDay("2026-01-25"))

	first, err := s.DailyWork()
	if err != nil {
		t.Fatalf("daily work: %v", err)
	}
	if err := tr.Mark(viewed.Works, first.ID); err != nil {
		t.Fatalf("mark: %v", err)
	}
	again, err := s.DailyWork()
	if err != nil {
		t.Fatalf("daily work: %v", err)
	}
	if again.ID != first.ID {
		t.Errorf("pick changed mid-day from %s to %s", first.ID, again.ID)
	}
}

func TestDailyWorkChangesWithDate(t *testing.T) {
	s, _ := openTestSelector(t)

	s.WithClock(fixedDay("2026-01-25"))
	day1, err := s.DailyWork()
	if err != nil {
		t.Fatalf("daily work: %v", err)
	}

	s.WithClock(fixedDay("2026-01-26"))
	day2, err := s.DailyWork()
	if err != nil {
		t.Fatalf("daily work: %v", err)
	}
	if day1.ID == day2.ID {
		t.Errorf("consecutive days picked the same work %s", day1.ID)
	}
}

func TestDailyWorkSkipsViewed(t *testing.T) {
	s, tr := openTestSelector(t)
	s.WithClock(fixedDay("2026-01-25"))

	// Mark whatever today would have picked, before the first query.
	pool := content.Works
	would := pool[Index(Seed("2026-01-25"), slotWork, len(pool))]
	if err := tr.Mark(viewed.Works, would.ID); err != nil {
		t.Fatalf("mark: %v", err)
	}

	got, err := s.DailyWork()
	if err != nil {
		t.Fatalf("daily work: %v", err)
	}
	if got.ID == would.ID {
		t.Errorf("picked already-viewed work %s", got.ID)
	}
}

// With every item viewed the daily pick falls back to the full catalog
// instead of failing.
func TestDailyMythologyFullPoolFallback(t *testing.T) {
	s, tr := openTestSelector(t)
	s.WithClock(fixedDay("2026-01-25"))

	for _, m := range content.MythologyItems {
		if err := tr.Mark(viewed.Mythology, m.ID); err != nil {
			t.Fatalf("mark: %v", err)
		}
	}

	got, err := s.DailyMythology()
	if err != nil {
		t.Fatalf("daily mythology: %v", err)
	}
	if got.ID == "" {
		t.Fatal("fallback pick is empty")
	}
}

func TestDailySelectionsUncorrelated(t *testing.T) {
	s, _ := openTestSelector(t)
	s.WithClock(fixedDay("2026-01-25"))

	w, err := s.DailyWork()
	if err != nil {
		t.Fatalf("daily work: %v", err)
	}
	m, err := s.DailyMythology()
	if err != nil {
		t.Fatalf("daily mythology: %v", err)
	}
	if w.ID == "" || m.ID == "" {
		t.Fatal("empty daily pick")
	}
}

func TestNextWorkExcludes(t *testing.T) {
	s, tr := openTestSelector(t)

	if err := tr.Mark(viewed.Works, content.Works[0].ID); err != nil {
		t.Fatalf("mark: %v", err)
	}
	exclude := []string{content.Works[1].ID}

	for i := 0; i < 20; i++ {
		got, ok := s.NextWork(exclude)
		if !ok {
			t.Fatal("pool should not be exhausted")
		}
		if got.ID == content.Works[0].ID {
			t.Fatalf("returned viewed work %s", got.ID)
		}
		if got.ID == content.Works[1].ID {
			t.Fatalf("returned excluded work %s", got.ID)
		}
	}
}

// Browsing past the last item is a real end state, not a wrap-around.
func TestNextWorkExhausted(t *testing.T) {
	s, tr := openTestSelector(t)
	for _, w := range content.Works {
		if err := tr.Mark(viewed.Works, w.ID); err != nil {
			t.Fatalf("mark: %v", err)
		}
	}
	if _, ok := s.NextWork(nil); ok {
		t.Fatal("expected exhaustion with every work viewed")
	}
}

func TestNextMythologyExhausted(t *testing.T) {
	s, tr := openTestSelector(t)
	var ids []string
	for _, m := range content.MythologyItems {
		ids = append(ids, m.ID)
	}
	// Exclusion alone exhausts the pool even with nothing viewed.
	if _, ok := s.NextMythology(ids); ok {
		t.Fatal("expected exhaustion with every item excluded")
	}
	if err := tr.Mark(viewed.Mythology, "myth-oeuvre-1"); err != nil {
		t.Fatalf("mark: %v", err)
	}
	if got, ok := s.NextMythology(nil); !ok || got.ID == "myth-oeuvre-1" {
		t.Fatalf("got %v ok=%v, want unviewed item", got.ID, ok)
	}
}
