package discovery

import (
	"fmt"

	"github.com/abhisek/culturia/internal/content"
	"github.com/abhisek/culturia/internal/daily"
	"github.com/abhisek/culturia/internal/progress"
	"github.com/abhisek/culturia/internal/viewed"
)

// Service runs the discovery flows: it hands out the content of the day and
// settles the one-time viewing reward. The reward is gated on the viewed
// set, so reopening an item any number of times pays exactly once.
type Service struct {
	selector *daily.Selector
	tracker  *viewed.Tracker
	ledger   *progress.Ledger
}

// NewService wires the discovery flows together.
func NewService(sel *daily.Selector, tr *viewed.Tracker, ledger *progress.Ledger) *Service {
	return &Service{selector: sel, tracker: tr, ledger: ledger}
}

// DailyWork returns the work of the day.
func (s *Service) DailyWork() (content.Work, error) {
	return s.selector.DailyWork()
}

// DailyMythology returns the mythology item of the day.
func (s *Service) DailyMythology() (content.MythologyItem, error) {
	return s.selector.DailyMythology()
}

// NextWork picks an unseen work outside excludeIDs; ok is false once the
// catalog is exhausted.
func (s *Service) NextWork(excludeIDs []string) (content.Work, bool) {
	return s.selector.NextWork(excludeIDs)
}

// NextMythology picks an unseen mythology item outside excludeIDs.
func (s *Service) NextMythology(excludeIDs []string) (content.MythologyItem, bool) {
	return s.selector.NextMythology(excludeIDs)
}

// ViewWork marks a work as seen and, on the first view only, pays the
// viewing reward. The mark lands before the award: a failed award can be
// retried, a double payment cannot be taken back.
func (s *Service) ViewWork(id string) (stats progress.Stats, rewarded bool, err error) {
	if s.tracker.Contains(viewed.Works, id) {
		return s.ledger.Stats(), false, nil
	}
	if err := s.tracker.Mark(viewed.Works, id); err != nil {
		return progress.Stats{}, false, fmt.Errorf("view work: %w", err)
	}
	stats, err = s.ledger.Apply(progress.Award{XP: progress.XPWorkViewed, WorksViewed: 1})
	if err != nil {
		return progress.Stats{}, false, fmt.Errorf("award work view: %w", err)
	}
	return stats, true, nil
}

// ViewMythology is ViewWork for the mythology catalog.
func (s *Service) ViewMythology(id string) (stats progress.Stats, rewarded bool, err error) {
	if s.tracker.Contains(viewed.Mythology, id) {
		return s.ledger.Stats(), false, nil
	}
	if err := s.tracker.Mark(viewed.Mythology, id); err != nil {
		return progress.Stats{}, false, fmt.Errorf("view mythology: %w", err)
	}
	stats, err = s.ledger.Apply(progress.Award{XP: progress.XPMythologyViewed, MythologyViewed: 1})
	if err != nil {
		return progress.Stats{}, false, fmt.Errorf("award mythology view: %w", err)
	}
	return stats, true, nil
}

// WorksSeen returns how many works have been viewed.
func (s *Service) WorksSeen() int {
	return s.tracker.Count(viewed.Works)
}

// MythologySeen returns how many mythology items have been viewed.
func (s *Service) MythologySeen() int {
	return s.tracker.Count(viewed.Mythology)
}
