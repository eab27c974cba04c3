package quiz

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/culturia/internal/content"
	"github.com/abhisek/culturia/internal/progress"
	"github.com/abhisek/culturia/internal/store"
)

func openTestDaily(t *testing.T) (*Daily, *progress.Ledger) {
	t.Helper()
	d, _ := openTestDailyStore(t)
	return d, d.ledger
}

func openTestDailyStore(t *testing.T) (*Daily, *store.Store) {
	t.Helper()
	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return NewDaily(st, progress.NewLedger(st)), st
}

func pinDay(d *Daily, date string) {
	d.WithClock(func() time.Time {
		t, _ := time.Parse("2006-01-02", date)
		return t
	})
}

// playToday runs today's quiz to completion with the given answer pattern.
func playToday(t *testing.T, d *Daily, correct []bool) *Session {
	t.Helper()
	s := d.NewSession()
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	for i := 0; i < s.Len(); i++ {
		q, _ := s.Current()
		choice := q.CorrectAnswer
		if !correct[i] {
			choice = wrongChoice(q)
		}
		if _, err := s.SubmitAnswer(choice); err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
		if err := s.Advance(); err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
	}
	return s
}

func TestQuestionsOnePerCategory(t *testing.T) {
	d, _ := openTestDaily(t)
	pinDay(d, "2026-01-25")

	qs := d.Questions()
	cats := content.AllQuizCategories()
	if len(qs) != len(cats) {
		t.Fatalf("draw size = %d, want %d", len(qs), len(cats))
	}
	for i, q := range qs {
		if q.Category != cats[i] {
			t.Errorf("slot %d category = %s, want %s", i, q.Category, cats[i])
		}
	}
}

func TestQuestionsDeterministicPerDay(t *testing.T) {
	d, _ := openTestDaily(t)
	pinDay(d, "2026-01-25")
	first := d.Questions()
	again := d.Questions()
	for i := range first {
		if first[i].ID != again[i].ID {
			t.Fatalf("slot %d drifted within the day: %s vs %s", i, first[i].ID, again[i].ID)
		}
	}

	pinDay(d, "2026-01-26")
	tomorrow := d.Questions()
	same := true
	for i := range first {
		if first[i].ID != tomorrow[i].ID {
			same = false
		}
	}
	if same {
		t.Error("consecutive days drew identical questions in every slot")
	}
}

func TestCompletePaysOneAward(t *testing.T) {
	d, _ := openTestDaily(t)
	pinDay(d, "2026-01-25")

	s := playToday(t, d, []bool{true, true, false, true})
	stats, rewarded, err := d.Complete(s)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !rewarded {
		t.Fatal("first completion of the day must be rewarded")
	}
	if stats.XP != 3*progress.XPPerCorrectAnswer {
		t.Errorf("xp = %d, want %d", stats.XP, 3*progress.XPPerCorrectAnswer)
	}
	if stats.QuizzesCompleted != 1 || stats.DailyQuizzesCompleted != 1 {
		t.Errorf("completion counters wrong: %+v", stats)
	}
	if stats.CorrectAnswers != 3 || stats.TotalAnswers != 4 || stats.TotalScore != 3 {
		t.Errorf("answer counters wrong: %+v", stats)
	}
	if stats.LastQuizDate != "2026-01-25" {
		t.Errorf("lastQuizDate = %q", stats.LastQuizDate)
	}

	completed, score := d.State()
	if !completed || score != 3 {
		t.Errorf("state = (%v, %d), want (true, 3)", completed, score)
	}
}

func TestCompletePerfectBonusInSameAward(t *testing.T) {
	d, _ := openTestDaily(t)
	pinDay(d, "2026-01-25")

	s := playToday(t, d, []bool{true, true, true, true})
	stats, _, err := d.Complete(s)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	want := 4*progress.XPPerCorrectAnswer + progress.XPPerfectQuizBonus
	if stats.XP != want {
		t.Errorf("xp = %d, want %d", stats.XP, want)
	}
}

// Replaying the quiz the same day is allowed but pays nothing and leaves the
// sealed result alone, even if the replay scored better.
func TestRetakeSameDayUnrewarded(t *testing.T) {
	d, _ := openTestDaily(t)
	pinDay(d, "2026-01-25")

	first := playToday(t, d, []bool{true, false, false, false})
	if _, _, err := d.Complete(first); err != nil {
		t.Fatalf("first complete: %v", err)
	}

	retake := playToday(t, d, []bool{true, true, true, true})
	stats, rewarded, err := d.Complete(retake)
	if err != nil {
		t.Fatalf("retake complete: %v", err)
	}
	if rewarded {
		t.Fatal("retake must not be rewarded")
	}
	if stats.XP != 1*progress.XPPerCorrectAnswer {
		t.Errorf("xp after retake = %d, want %d", stats.XP, progress.XPPerCorrectAnswer)
	}

	_, score := d.State()
	if score != 1 {
		t.Errorf("sealed score = %d, want the first result 1", score)
	}
}

// Replaying a past day's quiz reconstructs the same draw and completes
// without rewards or writes.
func TestPastDateReplay(t *testing.T) {
	d, _ := openTestDaily(t)

	pinDay(d, "2026-01-24")
	if _, _, err := d.Complete(playToday(t, d, []bool{true, true, false, false})); err != nil {
		t.Fatalf("original run: %v", err)
	}

	pinDay(d, "2026-01-25")
	replay := d.SessionForDate("2026-01-24")
	if err := replay.Start(); err != nil {
		t.Fatalf("start replay: %v", err)
	}
	want := QuestionsForDate("2026-01-24")
	for i := 0; i < replay.Len(); i++ {
		q, _ := replay.Current()
		if q.ID != want[i].ID {
			t.Fatalf("replay question %d = %s, want %s", i, q.ID, want[i].ID)
		}
		if _, err := replay.SubmitAnswer(q.CorrectAnswer); err != nil {
			t.Fatalf("answer: %v", err)
		}
		if err := replay.Advance(); err != nil {
			t.Fatalf("advance: %v", err)
		}
	}

	stats, rewarded, err := d.Complete(replay)
	if err != nil {
		t.Fatalf("complete replay: %v", err)
	}
	if rewarded {
		t.Fatal("past-date replay must not reward")
	}
	if stats.XP != 2*progress.XPPerCorrectAnswer {
		t.Errorf("xp after replay = %d, want the original %d", stats.XP, 2*progress.XPPerCorrectAnswer)
	}

	entries, err := d.History(0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(entries) != 1 || entries[0].Score != 2 {
		t.Errorf("archive mutated by replay: %+v", entries)
	}
}

// The dailyQuizState document carries the day's full draw and the submitted
// answers alongside the sealed result, not just the score.
func TestSealedStatePersistsDrawAndAnswers(t *testing.T) {
	d, st := openTestDailyStore(t)
	pinDay(d, "2026-01-25")

	s := playToday(t, d, []bool{true, true, false, true})
	if _, _, err := d.Complete(s); err != nil {
		t.Fatalf("complete: %v", err)
	}

	raw, err := st.GetRaw(store.KeyDailyQuizState)
	if err != nil {
		t.Fatalf("read sealed state: %v", err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("decode sealed state: %v", err)
	}
	for _, field := range []string{"date", "questions", "completed", "score", "answers"} {
		if _, ok := doc[field]; !ok {
			t.Errorf("sealed state missing field %q", field)
		}
	}

	rec, ok := d.TodayState()
	if !ok {
		t.Fatal("today's state not readable back")
	}
	want := QuestionsForDate("2026-01-25")
	if len(rec.Questions) != len(want) {
		t.Fatalf("stored %d questions, want %d", len(rec.Questions), len(want))
	}
	for i, q := range rec.Questions {
		if q.ID != want[i].ID {
			t.Errorf("stored question %d = %s, want %s", i, q.ID, want[i].ID)
		}
	}
	if len(rec.Answers) != s.Len() {
		t.Fatalf("stored %d answers, want %d", len(rec.Answers), s.Len())
	}
	for i, a := range s.Answers() {
		if rec.Answers[i] != a {
			t.Errorf("stored answer %d = %d, want %d", i, rec.Answers[i], a)
		}
	}
}

// If the seal write is lost after the award committed, the next completion
// re-seals the day without paying a second award.
func TestResealAfterLostSealPaysOnce(t *testing.T) {
	d, st := openTestDailyStore(t)
	pinDay(d, "2026-01-25")

	first := playToday(t, d, []bool{true, true, false, false})
	stats, rewarded, err := d.Complete(first)
	if err != nil {
		t.Fatalf("first complete: %v", err)
	}
	if !rewarded {
		t.Fatal("first completion must reward")
	}
	paid := stats.XP

	// The award landed but the seal did not.
	if err := st.Delete(store.KeyDailyQuizState); err != nil {
		t.Fatalf("drop seal: %v", err)
	}
	if d.IsCompletedToday() {
		t.Fatal("day still reads sealed after the seal was dropped")
	}

	retry := playToday(t, d, []bool{true, true, false, false})
	stats, rewarded, err = d.Complete(retry)
	if err != nil {
		t.Fatalf("reseal: %v", err)
	}
	if rewarded {
		t.Fatal("reseal must not pay a second award")
	}
	if stats.XP != paid {
		t.Errorf("xp after reseal = %d, want %d", stats.XP, paid)
	}
	if stats.DailyQuizzesCompleted != 1 {
		t.Errorf("completion counter = %d, want 1", stats.DailyQuizzesCompleted)
	}
	if completed, score := d.State(); !completed || score != 2 {
		t.Errorf("state after reseal = (%v, %d), want (true, 2)", completed, score)
	}
}

func TestCompleteRequiresCompletedSession(t *testing.T) {
	d, _ := openTestDaily(t)
	pinDay(d, "2026-01-25")

	s := d.NewSession()
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, _, err := d.Complete(s); !errors.Is(err, ErrNotCompleted) {
		t.Fatalf("complete mid-quiz: %v", err)
	}
}

// The daily state resets implicitly at midnight; a new day completes and
// rewards again, and the streak continues.
func TestMidnightResetAndStreak(t *testing.T) {
	d, _ := openTestDaily(t)

	pinDay(d, "2026-01-25")
	s, _, err := d.Complete(playToday(t, d, []bool{true, true, true, true}))
	if err != nil {
		t.Fatalf("day 1: %v", err)
	}
	if s.StreakDays != 1 {
		t.Errorf("day 1 streak = %d, want 1", s.StreakDays)
	}

	pinDay(d, "2026-01-26")
	if d.IsCompletedToday() {
		t.Fatal("yesterday's seal leaked into today")
	}
	s, rewarded, err := d.Complete(playToday(t, d, []bool{true, true, false, true}))
	if err != nil {
		t.Fatalf("day 2: %v", err)
	}
	if !rewarded {
		t.Fatal("new day must reward")
	}
	if s.StreakDays != 2 {
		t.Errorf("day 2 streak = %d, want 2", s.StreakDays)
	}

	// Skipping a day restarts the streak.
	pinDay(d, "2026-01-30")
	s, _, err = d.Complete(playToday(t, d, []bool{true, false, false, false}))
	if err != nil {
		t.Fatalf("day after gap: %v", err)
	}
	if s.StreakDays != 1 {
		t.Errorf("streak after gap = %d, want 1", s.StreakDays)
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	d, _ := openTestDaily(t)

	for _, date := range []string{"2026-01-23", "2026-01-24", "2026-01-25"} {
		pinDay(d, date)
		if _, _, err := d.Complete(playToday(t, d, []bool{true, true, false, false})); err != nil {
			t.Fatalf("%s: %v", date, err)
		}
	}

	entries, err := d.History(2)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("history length = %d, want 2", len(entries))
	}
	if entries[0].Date != "2026-01-25" || entries[1].Date != "2026-01-24" {
		t.Errorf("history order = [%s %s], want newest first", entries[0].Date, entries[1].Date)
	}
	if entries[0].Score != 2 || entries[0].TotalQuestions != 4 {
		t.Errorf("entry = %+v", entries[0])
	}
	if len(entries[0].QuestionIDs) != 4 || len(entries[0].Answers) != 4 {
		t.Errorf("entry logs incomplete: %+v", entries[0])
	}
}
