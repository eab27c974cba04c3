package quiz

import (
	"errors"

	"github.com/google/uuid"

	"github.com/abhisek/culturia/internal/content"
)

// Phase is the lifecycle state of a quiz session.
type Phase int

const (
	NotStarted Phase = iota
	InProgress
	AwaitingAdvance
	Completed
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case AwaitingAdvance:
		return "awaiting advance"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

var (
	ErrNotInProgress    = errors.New("quiz: no question awaiting an answer")
	ErrNotAwaiting      = errors.New("quiz: nothing to advance past")
	ErrChoiceOutOfRange = errors.New("quiz: choice index out of range")
	ErrNotCompleted     = errors.New("quiz: session not completed")
	ErrNoQuestions      = errors.New("quiz: session has no questions")
)

// Session runs one quiz from first question to completion. Each question is
// answered exactly once; after an answer the session waits in
// AwaitingAdvance so the caller can show the explanation, then Advance moves
// on. Advancing past the last question seals the session: a Completed
// session never accepts another answer.
type Session struct {
	id        string
	date      string
	questions []content.QuizQuestion
	answers   []int
	idx       int
	phase     Phase
}

// NewSession creates a session over the given questions for a calendar day.
func NewSession(date string, questions []content.QuizQuestion) *Session {
	answers := make([]int, len(questions))
	for i := range answers {
		answers[i] = -1
	}
	return &Session{
		id:        uuid.NewString(),
		date:      date,
		questions: questions,
		answers:   answers,
		phase:     NotStarted,
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Date returns the calendar day the session belongs to.
func (s *Session) Date() string { return s.date }

// Phase returns the current lifecycle state.
func (s *Session) Phase() Phase { return s.phase }

// Len returns the number of questions in the session.
func (s *Session) Len() int { return len(s.questions) }

// Start moves the session to the first question. Starting an already
// started session is a no-op.
func (s *Session) Start() error {
	if len(s.questions) == 0 {
		return ErrNoQuestions
	}
	if s.phase == NotStarted {
		s.phase = InProgress
	}
	return nil
}

// Current returns the question the session is positioned on and its
// zero-based index. Valid in InProgress and AwaitingAdvance.
func (s *Session) Current() (content.QuizQuestion, int) {
	if s.idx >= len(s.questions) {
		return content.QuizQuestion{}, s.idx
	}
	return s.questions[s.idx], s.idx
}

// SubmitAnswer records the choice for the current question and reports
// whether it was correct. A question accepts exactly one answer; the session
// then waits for Advance.
func (s *Session) SubmitAnswer(choice int) (bool, error) {
	if s.phase != InProgress {
		return false, ErrNotInProgress
	}
	q := s.questions[s.idx]
	if choice < 0 || choice >= len(q.Options) {
		return false, ErrChoiceOutOfRange
	}
	s.answers[s.idx] = choice
	s.phase = AwaitingAdvance
	return choice == q.CorrectAnswer, nil
}

// Advance moves past the explanation of the question just answered. On the
// last question it completes the session instead.
func (s *Session) Advance() error {
	if s.phase != AwaitingAdvance {
		return ErrNotAwaiting
	}
	if s.idx == len(s.questions)-1 {
		s.phase = Completed
		return nil
	}
	s.idx++
	s.phase = InProgress
	return nil
}

// Score recomputes the number of correct answers from the full answer log.
// It never trusts a running counter.
func (s *Session) Score() int {
	score := 0
	for i, q := range s.questions {
		if s.answers[i] == q.CorrectAnswer {
			score++
		}
	}
	return score
}

// Perfect reports whether every question was answered correctly.
func (s *Session) Perfect() bool {
	return s.Score() == len(s.questions)
}

// Answers returns a copy of the answer log; -1 marks an unanswered slot.
func (s *Session) Answers() []int {
	out := make([]int, len(s.answers))
	copy(out, s.answers)
	return out
}

// Questions returns a copy of the session's questions in order.
func (s *Session) Questions() []content.QuizQuestion {
	out := make([]content.QuizQuestion, len(s.questions))
	copy(out, s.questions)
	return out
}

// QuestionIDs returns the ids of the session's questions in order.
func (s *Session) QuestionIDs() []string {
	ids := make([]string, len(s.questions))
	for i, q := range s.questions {
		ids[i] = q.ID
	}
	return ids
}
