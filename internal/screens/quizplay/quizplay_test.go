package quizplay

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/culturia/internal/progress"
	"github.com/abhisek/culturia/internal/quiz"
	"github.com/abhisek/culturia/internal/router"
	"github.com/abhisek/culturia/internal/screen"
	"github.com/abhisek/culturia/internal/store"
)

func newTestQuiz(t *testing.T) (*quiz.Daily, *progress.Ledger) {
	t.Helper()
	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	ledger := progress.NewLedger(st)
	daily := quiz.NewDaily(st, ledger).WithClock(func() time.Time {
		d, _ := time.Parse("2006-01-02", "2026-01-25")
		return d
	})
	return daily, ledger
}

func pressEnter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func pressDown() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyDown}
}

// playPerfect answers every question correctly via key presses and returns
// the screen after the final advance.
func playPerfect(t *testing.T, daily *quiz.Daily) screen.Screen {
	t.Helper()
	var s screen.Screen = New(daily)

	questions := daily.Questions()
	for _, q := range questions {
		for i := 0; i < q.CorrectAnswer; i++ {
			s, _ = s.Update(pressDown())
		}
		s, _ = s.Update(pressEnter()) // submit
		s, _ = s.Update(pressEnter()) // advance past explanation
	}
	return s
}

func TestPlayThroughAwardsOnCompletion(t *testing.T) {
	daily, ledger := newTestQuiz(t)

	s := playPerfect(t, daily)

	view := s.View(100, 30)
	if !strings.Contains(view, "Quiz terminé") {
		t.Fatalf("result view missing completion banner:\n%s", view)
	}
	if !strings.Contains(view, "4/4") {
		t.Errorf("result view missing score:\n%s", view)
	}

	want := 4*progress.XPPerCorrectAnswer + progress.XPPerfectQuizBonus
	if got := ledger.Stats().XP; got != want {
		t.Errorf("xp after play-through = %d, want %d", got, want)
	}
	if !daily.IsCompletedToday() {
		t.Error("daily quiz not sealed after play-through")
	}
}

func TestExplanationShownBeforeAdvance(t *testing.T) {
	daily, _ := newTestQuiz(t)
	var s screen.Screen = New(daily)

	s, _ = s.Update(pressEnter()) // submit first answer
	view := s.View(100, 30)
	if !strings.Contains(view, "Entrée pour continuer") {
		t.Errorf("post-answer view missing advance hint:\n%s", view)
	}
}

func TestRetakeFlaggedInView(t *testing.T) {
	daily, ledger := newTestQuiz(t)
	playPerfect(t, daily)
	xpAfterFirst := ledger.Stats().XP

	var s screen.Screen = New(daily)
	view := s.View(100, 30)
	if !strings.Contains(view, "sans récompense") {
		t.Errorf("retake view missing reward-free notice:\n%s", view)
	}

	s = playPerfect(t, daily)
	if got := ledger.Stats().XP; got != xpAfterFirst {
		t.Errorf("retake changed xp from %d to %d", xpAfterFirst, got)
	}
	if !strings.Contains(s.View(100, 30), "déjà validé") {
		t.Errorf("retake result missing notice:\n%s", s.View(100, 30))
	}
}

func TestResultEnterPopsScreen(t *testing.T) {
	daily, _ := newTestQuiz(t)
	s := playPerfect(t, daily)

	_, cmd := s.Update(pressEnter())
	if cmd == nil {
		t.Fatal("enter on result screen returned no command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("enter on result screen did not pop")
	}
}
