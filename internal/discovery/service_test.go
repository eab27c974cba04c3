package discovery

import (
	"testing"

	"github.com/abhisek/culturia/internal/daily"
	"github.com/abhisek/culturia/internal/progress"
	"github.com/abhisek/culturia/internal/store"
	"github.com/abhisek/culturia/internal/viewed"
)

func openTestService(t *testing.T) *Service {
	t.Helper()
	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	tr := viewed.NewTracker(st)
	return NewService(daily.NewSelector(st, tr), tr, progress.NewLedger(st))
}

func TestViewWorkPaysOnce(t *testing.T) {
	s := openTestService(t)

	stats, rewarded, err := s.ViewWork("livre-1")
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if !rewarded {
		t.Fatal("first view must reward")
	}
	if stats.XP != progress.XPWorkViewed || stats.WorksViewed != 1 {
		t.Errorf("stats after first view: %+v", stats)
	}

	stats, rewarded, err = s.ViewWork("livre-1")
	if err != nil {
		t.Fatalf("second view: %v", err)
	}
	if rewarded {
		t.Fatal("second view must not reward")
	}
	if stats.XP != progress.XPWorkViewed || stats.WorksViewed != 1 {
		t.Errorf("stats after repeat view: %+v", stats)
	}
}

func TestViewMythologyPaysItsOwnRate(t *testing.T) {
	s := openTestService(t)

	stats, rewarded, err := s.ViewMythology("myth-oeuvre-1")
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if !rewarded || stats.XP != progress.XPMythologyViewed || stats.MythologyViewed != 1 {
		t.Errorf("stats = %+v rewarded=%v", stats, rewarded)
	}
}

func TestViewsAccumulateAcrossDomains(t *testing.T) {
	s := openTestService(t)

	if _, _, err := s.ViewWork("livre-1"); err != nil {
		t.Fatalf("view work: %v", err)
	}
	stats, _, err := s.ViewMythology("myth-oeuvre-1")
	if err != nil {
		t.Fatalf("view mythology: %v", err)
	}

	want := progress.XPWorkViewed + progress.XPMythologyViewed
	if stats.XP != want {
		t.Errorf("xp = %d, want %d", stats.XP, want)
	}
	if s.WorksSeen() != 1 || s.MythologySeen() != 1 {
		t.Errorf("seen counts = %d/%d, want 1/1", s.WorksSeen(), s.MythologySeen())
	}
}

func TestDailyWorkStableAfterViewing(t *testing.T) {
	s := openTestService(t)

	w, err := s.DailyWork()
	if err != nil {
		t.Fatalf("daily work: %v", err)
	}
	if _, _, err := s.ViewWork(w.ID); err != nil {
		t.Fatalf("view: %v", err)
	}
	again, err := s.DailyWork()
	if err != nil {
		t.Fatalf("daily work: %v", err)
	}
	if again.ID != w.ID {
		t.Errorf("daily work changed after viewing: %s vs %s", again.ID, w.ID)
	}
}
