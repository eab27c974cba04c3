package viewed

import (
	"fmt"

	"github.com/abhisek/culturia/internal/store"
)

// Domain names a content family with its own viewed set.
type Domain string

const (
	Works     Domain = "works"
	Mythology Domain = "mythology"
)

func (d Domain) key() string {
	switch d {
	case Works:
		return store.KeyViewedWorks
	case Mythology:
		return store.KeyViewedMythology
	default:
		return "viewed_" + string(d)
	}
}

// Tracker records which content IDs the user has already seen, one set per
// domain. Sets only grow; the sole way to shrink one is the explicit Reset.
// The tracker does not gate rewards: callers decide whether an XP award is
// due by checking Contains before marking.
type Tracker struct {
	store *store.Store
}

// NewTracker creates a Tracker backed by the given store.
func NewTracker(st *store.Store) *Tracker {
	return &Tracker{store: st}
}

// IDs returns the viewed set for a domain in insertion order. A missing or
// unparseable backing value reads as the empty set.
func (t *Tracker) IDs(domain Domain) []string {
	var ids []string
	if err := t.store.Get(domain.key(), &ids); err != nil {
		return nil
	}
	return ids
}

// Contains reports whether id has been marked viewed in the domain.
func (t *Tracker) Contains(domain Domain, id string) bool {
	for _, v := range t.IDs(domain) {
		if v == id {
			return true
		}
	}
	return false
}

// Count returns the size of the domain's viewed set.
func (t *Tracker) Count(domain Domain) int {
	return len(t.IDs(domain))
}

// Mark adds id to the domain's set. Marking an already-viewed id leaves the
// set unchanged. The read and write happen back to back with nothing in
// between, so rapid sequential marks never drop an id.
func (t *Tracker) Mark(domain Domain, id string) error {
	ids := t.IDs(domain)
	for _, v := range ids {
		if v == id {
			return nil
		}
	}
	ids = append(ids, id)
	if err := t.store.Put(domain.key(), ids); err != nil {
		return fmt.Errorf("mark %s/%s: %w", domain, id, err)
	}
	return nil
}

// Reset clears the domain's set, starting a new epoch. Only an explicit
// user-facing restart calls this.
func (t *Tracker) Reset(domain Domain) error {
	if err := t.store.Put(domain.key(), []string{}); err != nil {
		return fmt.Errorf("reset %s: %w", domain, err)
	}
	return nil
}
