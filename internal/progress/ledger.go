package progress

import (
	"errors"
	"fmt"

	"github.com/abhisek/culturia/internal/store"
)

// XP amounts awarded by the features. A perfect daily quiz earns the bonus
// in the same award as the base amount, never as a second write.
const (
	XPPerCorrectAnswer = 10
	XPPerfectQuizBonus = 50
	XPWorkViewed       = 25
	XPMythologyViewed  = 15
)

// ErrNegativeXP rejects awards that would decrease XP.
var ErrNegativeXP = errors.New("progress: awards cannot remove xp")

// Ledger owns the userStats record. Every feature that grants XP goes
// through Commit so the read-modify-write of the record is one synchronous
// critical section: the freshest persisted state is re-read immediately
// before the mutation and written back before Commit returns.
type Ledger struct {
	store *store.Store
}

// NewLedger creates a Ledger backed by the given store.
func NewLedger(st *store.Store) *Ledger {
	return &Ledger{store: st}
}

// Stats reads the freshest persisted record. A missing or unparseable
// record is replaced by the zero state; corruption is recoverable here,
// never fatal.
func (l *Ledger) Stats() Stats {
	var s Stats
	if err := l.store.Get(store.KeyUserStats, &s); err != nil {
		return NewStats()
	}
	// Tolerate partial records written by older versions.
	if s.Level < 1 {
		s.Level = 1
	}
	if s.StreakDays < 1 {
		s.StreakDays = 1
	}
	if s.XP < 0 {
		s.XP = 0
	}
	return s
}

// Commit applies mutate to the freshest record, re-derives the level and
// persists the result. The level is never lowered: the stored value only
// moves up to the highest threshold the new XP qualifies for.
func (l *Ledger) Commit(mutate func(*Stats)) (Stats, error) {
	s := l.Stats()
	before := s.XP
	mutate(&s)
	if s.XP < before {
		return Stats{}, ErrNegativeXP
	}

	if lvl := LevelForXP(s.XP); lvl.Level > s.Level {
		s.Level = lvl.Level
	}

	if err := l.store.Put(store.KeyUserStats, s); err != nil {
		return Stats{}, fmt.Errorf("persist stats: %w", err)
	}
	return s, nil
}

// Award is one discrete progression event: an XP delta plus the counters
// it bumps, applied atomically.
type Award struct {
	XP                    int
	QuizzesCompleted      int
	CorrectAnswers        int
	TotalAnswers          int
	DailyQuizzesCompleted int
	TotalScore            int
	WorksViewed           int
	MythologyViewed       int
}

// Apply commits the award as a single update.
func (l *Ledger) Apply(a Award) (Stats, error) {
	if a.XP < 0 {
		return Stats{}, ErrNegativeXP
	}
	return l.Commit(func(s *Stats) {
		s.XP += a.XP
		s.QuizzesCompleted += a.QuizzesCompleted
		s.CorrectAnswers += a.CorrectAnswers
		s.TotalAnswers += a.TotalAnswers
		s.DailyQuizzesCompleted += a.DailyQuizzesCompleted
		s.TotalScore += a.TotalScore
		s.WorksViewed += a.WorksViewed
		s.MythologyViewed += a.MythologyViewed
	})
}

// Reset replaces the record with the zero state. Only an explicit
// user-facing restart calls this.
func (l *Ledger) Reset() error {
	if err := l.store.Put(store.KeyUserStats, NewStats()); err != nil {
		return fmt.Errorf("reset stats: %w", err)
	}
	return nil
}
