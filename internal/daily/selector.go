package daily

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/abhisek/culturia/internal/content"
	"github.com/abhisek/culturia/internal/store"
	"github.com/abhisek/culturia/internal/viewed"
)

// Slot offsets keep the day's selections uncorrelated: the work of the day
// and the mythology item of the day never march through their pools in
// lockstep even when the pools happen to be the same size.
const (
	slotWork      = 7
	slotMythology = 13
)

type dailyWorkRecord struct {
	Date string       `json:"date"`
	Work content.Work `json:"work"`
}

type dailyMythologyRecord struct {
	Date string                `json:"date"`
	Item content.MythologyItem `json:"item"`
}

// Selector picks the content of the day. The first query of a calendar day
// computes the pick from the daily seed and caches it; every later query
// that day returns the cached pick unchanged, even if the viewed sets grow
// in between.
type Selector struct {
	store   *store.Store
	tracker *viewed.Tracker
	now     func() time.Time
}

// NewSelector creates a Selector over the given store and viewed tracker.
func NewSelector(st *store.Store, tr *viewed.Tracker) *Selector {
	return &Selector{store: st, tracker: tr, now: time.Now}
}

// WithClock overrides the selector's clock. Tests use this to pin the day.
func (s *Selector) WithClock(now func() time.Time) *Selector {
	s.now = now
	return s
}

// DailyWork returns the work of the day. Unviewed works form the candidate
// pool; once every work has been seen the full catalog becomes the pool
// again so the feature keeps producing a pick.
func (s *Selector) DailyWork() (content.Work, error) {
	date := Today(s.now())

	var rec dailyWorkRecord
	if err := s.store.Get(store.KeyDailyWork, &rec); err == nil && rec.Date == date {
		return rec.Work, nil
	}

	pool := s.unviewedWorks()
	if len(pool) == 0 {
		pool = content.Works
	}
	pick := pool[Index(Seed(date), slotWork, len(pool))]

	rec = dailyWorkRecord{Date: date, Work: pick}
	if err := s.store.Put(store.KeyDailyWork, rec); err != nil {
		return content.Work{}, fmt.Errorf("cache daily work: %w", err)
	}
	return pick, nil
}

// DailyMythology returns the mythology item of the day, with the same
// unviewed-first, full-pool-fallback policy as DailyWork.
func (s *Selector) DailyMythology() (content.MythologyItem, error) {
	date := Today(s.now())

	var rec dailyMythologyRecord
	if err := s.store.Get(store.KeyDailyMythology, &rec); err == nil && rec.Date == date {
		return rec.Item, nil
	}

	pool := s.unviewedMythology()
	if len(pool) == 0 {
		pool = content.MythologyItems
	}
	pick := pool[Index(Seed(date), slotMythology, len(pool))]

	rec = dailyMythologyRecord{Date: date, Item: pick}
	if err := s.store.Put(store.KeyDailyMythology, rec); err != nil {
		return content.MythologyItem{}, fmt.Errorf("cache daily mythology: %w", err)
	}
	return pick, nil
}

// NextWork picks a random work the user has not seen and that is not in
// excludeIDs. ok is false once the catalog is exhausted; unlike the daily
// pick there is no full-pool fallback here, the browsing flow treats
// "everything seen" as a real end state.
func (s *Selector) NextWork(excludeIDs []string) (content.Work, bool) {
	skip := make(map[string]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		skip[id] = true
	}
	var pool []content.Work
	for _, w := range content.Works {
		if !skip[w.ID] && !s.tracker.Contains(viewed.Works, w.ID) {
			pool = append(pool, w)
		}
	}
	if len(pool) == 0 {
		return content.Work{}, false
	}
	return pool[rand.IntN(len(pool))], true
}

// NextMythology is NextWork for the mythology catalog.
func (s *Selector) NextMythology(excludeIDs []string) (content.MythologyItem, bool) {
	skip := make(map[string]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		skip[id] = true
	}
	var pool []content.MythologyItem
	for _, m := range content.MythologyItems {
		if !skip[m.ID] && !s.tracker.Contains(viewed.Mythology, m.ID) {
			pool = append(pool, m)
		}
	}
	if len(pool) == 0 {
		return content.MythologyItem{}, false
	}
	return pool[rand.IntN(len(pool))], true
}

func (s *Selector) unviewedWorks() []content.Work {
	var out []content.Work
	for _, w := range content.Works {
		if !s.tracker.Contains(viewed.Works, w.ID) {
			out = append(out, w)
		}
	}
	return out
}

func (s *Selector) unviewedMythology() []content.MythologyItem {
	var out []content.MythologyItem
	for _, m := range content.MythologyItems {
		if !s.tracker.Contains(viewed.Mythology, m.ID) {
			out = append(out, m)
		}
	}
	return out
}
