package quiz

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/abhisek/culturia/internal/content"
	"github.com/abhisek/culturia/internal/daily"
	"github.com/abhisek/culturia/internal/progress"
	"github.com/abhisek/culturia/internal/store"
)

// StateRecord is the dailyQuizState document: the day's draw, the sealed
// result and the submitted answers. Field names and shape are a storage
// contract shared with older versions.
type StateRecord struct {
	Date      string                 `json:"date"`
	Questions []content.QuizQuestion `json:"questions"`
	Completed bool                   `json:"completed"`
	Score     int                    `json:"score"`
	Answers   []int                  `json:"answers"`
}

// ArchiveEntry is one quiz_<date> document: the sealed result of a day's
// quiz, kept for the history screen.
type ArchiveEntry struct {
	Date           string   `json:"date"`
	Score          int      `json:"score"`
	TotalQuestions int      `json:"totalQuestions"`
	QuestionIDs    []string `json:"questionIds"`
	Answers        []int    `json:"answers"`
	Perfect        bool     `json:"perfect"`
}

// Daily coordinates the quiz of the day: it draws the day's questions,
// seals results, pays the completion award and keeps the per-day archive.
type Daily struct {
	store  *store.Store
	ledger *progress.Ledger
	now    func() time.Time
}

// NewDaily creates the daily quiz coordinator.
func NewDaily(st *store.Store, ledger *progress.Ledger) *Daily {
	return &Daily{store: st, ledger: ledger, now: time.Now}
}

// WithClock overrides the coordinator's clock. Tests use this to pin the day.
func (d *Daily) WithClock(now func() time.Time) *Daily {
	d.now = now
	return d
}

// Questions returns today's draw: one question per category, in the fixed
// category order, each picked by the day's seed and the category's slot.
// Every device computes the same draw for the same day.
func (d *Daily) Questions() []content.QuizQuestion {
	return QuestionsForDate(daily.Today(d.now()))
}

// QuestionsForDate recomputes the draw of any calendar day. The draw is a
// pure function of the date, so a past day's quiz can be replayed without
// consulting its archive.
func QuestionsForDate(date string) []content.QuizQuestion {
	seed := daily.Seed(date)

	cats := content.AllQuizCategories()
	qs := make([]content.QuizQuestion, 0, len(cats))
	for slot, c := range cats {
		pool := content.QuestionPool(c)
		qs = append(qs, pool[daily.Index(seed, slot, len(pool))])
	}
	return qs
}

// NewSession builds a fresh session over today's draw.
func (d *Daily) NewSession() *Session {
	return NewSession(daily.Today(d.now()), d.Questions())
}

// SessionForDate builds a replay session over a past day's draw. Completing
// it is always reward-free and never touches that day's sealed archive.
func (d *Daily) SessionForDate(date string) *Session {
	return NewSession(date, QuestionsForDate(date))
}

// TodayState returns today's full quiz state document. The record resets
// implicitly at midnight: a stored state from a previous day reads as absent.
func (d *Daily) TodayState() (StateRecord, bool) {
	var rec StateRecord
	if err := d.store.Get(store.KeyDailyQuizState, &rec); err != nil {
		return StateRecord{}, false
	}
	if rec.Date != daily.Today(d.now()) {
		return StateRecord{}, false
	}
	return rec, true
}

// State returns today's completion flag and sealed score.
func (d *Daily) State() (completed bool, score int) {
	rec, ok := d.TodayState()
	if !ok {
		return false, 0
	}
	return rec.Completed, rec.Score
}

// IsCompletedToday reports whether today's quiz has already been sealed.
func (d *Daily) IsCompletedToday() bool {
	completed, _ := d.State()
	return completed
}

// Complete seals a finished session. The first completion of the day
// persists the result, archives it and pays exactly one award: base XP per
// correct answer plus the perfect bonus, the quiz counters, and the streak
// update, all in a single commit. Replays pay nothing and write nothing:
// neither a second run today nor a past-date session touches the sealed
// state; rewarded reports which case this was.
func (d *Daily) Complete(sess *Session) (stats progress.Stats, rewarded bool, err error) {
	if sess.Phase() != Completed {
		return progress.Stats{}, false, ErrNotCompleted
	}

	date := sess.Date()
	score := sess.Score()

	if date != daily.Today(d.now()) || d.IsCompletedToday() {
		return d.ledger.Stats(), false, nil
	}

	// The award commits before the seal writes. A write failure after the
	// commit leaves lastQuizDate set for the day, so the retry seals the
	// result without paying again.
	stats = d.ledger.Stats()
	if stats.LastQuizDate != date {
		xp := score * progress.XPPerCorrectAnswer
		if sess.Perfect() {
			xp += progress.XPPerfectQuizBonus
		}
		stats, err = d.ledger.Commit(func(s *progress.Stats) {
			s.XP += xp
			s.QuizzesCompleted++
			s.DailyQuizzesCompleted++
			s.CorrectAnswers += score
			s.TotalAnswers += sess.Len()
			s.TotalScore += score
			s.StreakDays = progress.NextStreak(s.StreakDays, s.LastQuizDate, date)
			s.LastQuizDate = date
		})
		if err != nil {
			return progress.Stats{}, false, fmt.Errorf("award quiz completion: %w", err)
		}
		rewarded = true
	}

	entry := ArchiveEntry{
		Date:           date,
		Score:          score,
		TotalQuestions: sess.Len(),
		QuestionIDs:    sess.QuestionIDs(),
		Answers:        sess.Answers(),
		Perfect:        sess.Perfect(),
	}
	if err := d.store.Put(store.QuizArchiveKey(date), entry); err != nil {
		return progress.Stats{}, false, fmt.Errorf("archive quiz: %w", err)
	}
	rec := StateRecord{
		Date:      date,
		Questions: sess.Questions(),
		Completed: true,
		Score:     score,
		Answers:   sess.Answers(),
	}
	if err := d.store.Put(store.KeyDailyQuizState, rec); err != nil {
		return progress.Stats{}, false, fmt.Errorf("seal daily quiz: %w", err)
	}
	return stats, rewarded, nil
}

// History returns up to limit archived results, newest first.
func (d *Daily) History(limit int) ([]ArchiveEntry, error) {
	keys, err := d.store.Keys(store.QuizArchivePrefix)
	if err != nil {
		return nil, fmt.Errorf("list quiz archive: %w", err)
	}
	// Keys sort ascending by date; walk from the end for newest first.
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	var out []ArchiveEntry
	for _, k := range keys {
		if limit > 0 && len(out) >= limit {
			break
		}
		if !strings.HasPrefix(k, store.QuizArchivePrefix) {
			continue
		}
		var e ArchiveEntry
		if err := d.store.Get(k, &e); err != nil {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
