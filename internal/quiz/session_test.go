package quiz

import (
	"errors"
	"testing"

	"github.com/abhisek/culturia/internal/content"
)

func testQuestions(t *testing.T) []content.QuizQuestion {
	t.Helper()
	var qs []content.QuizQuestion
	for _, c := range content.AllQuizCategories() {
		qs = append(qs, content.QuestionPool(c)[0])
	}
	return qs
}

func TestSessionLifecycle(t *testing.T) {
	s := NewSession("2026-01-25", testQuestions(t))
	if s.Phase() != NotStarted {
		t.Fatalf("phase = %v, want not started", s.Phase())
	}
	if _, err := s.SubmitAnswer(0); !errors.Is(err, ErrNotInProgress) {
		t.Fatalf("answer before start: %v", err)
	}

	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	for i := 0; i < s.Len(); i++ {
		q, idx := s.Current()
		if idx != i {
			t.Fatalf("position = %d, want %d", idx, i)
		}
		correct, err := s.SubmitAnswer(q.CorrectAnswer)
		if err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
		if !correct {
			t.Fatalf("correct answer for %s reported wrong", q.ID)
		}
		if s.Phase() != AwaitingAdvance {
			t.Fatalf("phase after answer = %v, want awaiting advance", s.Phase())
		}
		if err := s.Advance(); err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
	}

	if s.Phase() != Completed {
		t.Fatalf("phase = %v, want completed", s.Phase())
	}
	if s.Score() != s.Len() || !s.Perfect() {
		t.Errorf("score = %d/%d, want perfect", s.Score(), s.Len())
	}
}

func TestSessionOneAnswerPerQuestion(t *testing.T) {
	s := NewSession("2026-01-25", testQuestions(t))
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := s.SubmitAnswer(0); err != nil {
		t.Fatalf("answer: %v", err)
	}
	// The question is already answered; only Advance is legal now.
	if _, err := s.SubmitAnswer(1); !errors.Is(err, ErrNotInProgress) {
		t.Fatalf("second answer: %v, want ErrNotInProgress", err)
	}
}

func TestSessionChoiceOutOfRange(t *testing.T) {
	s := NewSession("2026-01-25", testQuestions(t))
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := s.SubmitAnswer(-1); !errors.Is(err, ErrChoiceOutOfRange) {
		t.Fatalf("choice -1: %v", err)
	}
	if _, err := s.SubmitAnswer(99); !errors.Is(err, ErrChoiceOutOfRange) {
		t.Fatalf("choice 99: %v", err)
	}
	// A rejected choice leaves the question still answerable.
	if s.Phase() != InProgress {
		t.Fatalf("phase = %v, want in progress", s.Phase())
	}
}

func TestSessionSealedAfterCompletion(t *testing.T) {
	s := completedSession(t, []bool{true, false, true, true})
	if _, err := s.SubmitAnswer(0); !errors.Is(err, ErrNotInProgress) {
		t.Fatalf("answer after completion: %v", err)
	}
	if err := s.Advance(); !errors.Is(err, ErrNotAwaiting) {
		t.Fatalf("advance after completion: %v", err)
	}
}

func TestScoreRecomputedFromLog(t *testing.T) {
	s := completedSession(t, []bool{true, false, true, false})
	if got := s.Score(); got != 2 {
		t.Errorf("score = %d, want 2", got)
	}
	if s.Perfect() {
		t.Error("2/4 must not read as perfect")
	}

	answers := s.Answers()
	if len(answers) != 4 {
		t.Fatalf("answer log length = %d, want 4", len(answers))
	}
	for i, a := range answers {
		if a < 0 {
			t.Errorf("answer %d unrecorded", i)
		}
	}
}

func TestEmptySessionRefusesStart(t *testing.T) {
	s := NewSession("2026-01-25", nil)
	if err := s.Start(); !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("start with no questions: %v", err)
	}
}

// completedSession plays a session to the end, answering each question
// correctly or not per the pattern.
func completedSession(t *testing.T, correct []bool) *Session {
	t.Helper()
	s := NewSession("2026-01-25", testQuestions(t))
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

func wrongChoice(q content.QuizQuestion) int {
	for i := range q.Options {
		if i != q.CorrectAnswer {
			return i
		}
	}
	return 0
}
