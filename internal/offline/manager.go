package offline

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/culturia/internal/content"
	"github.com/abhisek/culturia/internal/store"
)

// ErrNotDownloaded is returned when a requested section has never been saved.
var ErrNotDownloaded = errors.New("offline: content not downloaded")

// ErrUnknownSection rejects section names outside the catalog.
var ErrUnknownSection = errors.New("offline: unknown section")

// Section identifies one downloadable slice of the bundled catalogs.
type Section string

const (
	SectionWorks     Section = "works"
	SectionMythology Section = "mythology"
	SectionQuestions Section = "questions"
	SectionNews      Section = "news"
)

// AllSections lists every downloadable section.
func AllSections() []Section {
	return []Section{SectionWorks, SectionMythology, SectionQuestions, SectionNews}
}

// Bundle is the fully-downloaded offlineContent document.
type Bundle struct {
	Works     []content.Work          `json:"works,omitempty"`
	Mythology []content.MythologyItem `json:"mythology,omitempty"`
	Questions []content.QuizQuestion  `json:"questions,omitempty"`
	News      []content.NewsItem      `json:"news,omitempty"`
}

// Manager saves and serves offline snapshots, section by section or all at
// once. Three keys make up the contract: offlineContent holds the sections,
// contentDownloaded the "true" marker set once everything is saved, and
// contentDownloadedAt the last save timestamp.
type Manager struct {
	store *store.Store
	now   func() time.Time
}

// NewManager creates a Manager over the given store.
func NewManager(st *store.Store) *Manager {
	return &Manager{store: st, now: time.Now}
}

// WithClock overrides the manager's clock. Tests use this to pin timestamps.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

func sectionPayload(s Section) (json.RawMessage, error) {
	var v any
	switch s {
	case SectionWorks:
		v = content.Works
	case SectionMythology:
		v = content.MythologyItems
	case SectionQuestions:
		var qs []content.QuizQuestion
		for _, c := range content.AllQuizCategories() {
			qs = append(qs, content.QuestionPool(c)...)
		}
		v = qs
	case SectionNews:
		v = content.NewsItems
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownSection, s)
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode section %s: %w", s, err)
	}
	return raw, nil
}

func (m *Manager) sections() map[Section]json.RawMessage {
	saved := make(map[Section]json.RawMessage)
	if err := m.store.Get(store.KeyOfflineContent, &saved); err != nil {
		return make(map[Section]json.RawMessage)
	}
	return saved
}

// Download snapshots a single section, leaving the others as they were.
// Re-downloading a section refreshes it. Once every section is present the
// all-downloaded marker flips on.
func (m *Manager) Download(s Section) error {
	payload, err := sectionPayload(s)
	if err != nil {
		return err
	}

	saved := m.sections()
	saved[s] = payload
	if err := m.persist(saved); err != nil {
		return err
	}
	return nil
}

// DownloadAll snapshots every section in one write and returns the bundle.
func (m *Manager) DownloadAll() (Bundle, error) {
	saved := make(map[Section]json.RawMessage, len(AllSections()))
	for _, s := range AllSections() {
		payload, err := sectionPayload(s)
		if err != nil {
			return Bundle{}, err
		}
		saved[s] = payload
	}
	if err := m.persist(saved); err != nil {
		return Bundle{}, err
	}
	return m.Bundle()
}

func (m *Manager) persist(saved map[Section]json.RawMessage) error {
	if err := m.store.Put(store.KeyOfflineContent, saved); err != nil {
		return fmt.Errorf("save offline content: %w", err)
	}

	complete := true
	for _, s := range AllSections() {
		if _, ok := saved[s]; !ok {
			complete = false
			break
		}
	}
	if complete {
		if err := m.store.Put(store.KeyContentDownloaded, "true"); err != nil {
			return fmt.Errorf("mark download: %w", err)
		}
	}

	at := m.now().UTC().Format(time.RFC3339)
	if err := m.store.Put(store.KeyContentDownloadedAt, at); err != nil {
		return fmt.Errorf("stamp download: %w", err)
	}
	return nil
}

// Get returns the saved payload of a section, or ErrNotDownloaded.
func (m *Manager) Get(s Section) (json.RawMessage, error) {
	raw, ok := m.sections()[s]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotDownloaded, s)
	}
	return raw, nil
}

// Available reports whether a section has been saved.
func (m *Manager) Available(s Section) bool {
	_, ok := m.sections()[s]
	return ok
}

// AllDownloaded reports whether every section is saved.
func (m *Manager) AllDownloaded() bool {
	var marker string
	if err := m.store.Get(store.KeyContentDownloaded, &marker); err == nil && marker == "true" {
		return true
	}
	saved := m.sections()
	for _, s := range AllSections() {
		if _, ok := saved[s]; !ok {
			return false
		}
	}
	return len(saved) > 0
}

// Bundle returns the full snapshot, or ErrNotDownloaded while any section
// is missing.
func (m *Manager) Bundle() (Bundle, error) {
	if !m.AllDownloaded() {
		return Bundle{}, ErrNotDownloaded
	}
	var b Bundle
	if err := m.store.Get(store.KeyOfflineContent, &b); err != nil {
		return Bundle{}, fmt.Errorf("load offline bundle: %w", err)
	}
	return b, nil
}

// DownloadedAt returns when offline content was last saved.
func (m *Manager) DownloadedAt() (time.Time, bool) {
	var at string
	if err := m.store.Get(store.KeyContentDownloadedAt, &at); err != nil {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, at)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Clear removes all saved sections and markers.
func (m *Manager) Clear() error {
	for _, k := range []string{
		store.KeyOfflineContent,
		store.KeyContentDownloaded,
		store.KeyContentDownloadedAt,
	} {
		if err := m.store.Delete(k); err != nil {
			return fmt.Errorf("clear offline content: %w", err)
		}
	}
	return nil
}
