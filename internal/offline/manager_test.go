package offline

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/culturia/internal/content"
	"github.com/abhisek/culturia/internal/store"
)

func openTestManager(t *testing.T) *Manager {
	t.Helper()
	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return NewManager(st)
}

func TestNothingAvailableBeforeDownload(t *testing.T) {
	m := openTestManager(t)

	if m.AllDownloaded() {
		t.Fatal("fresh store should not report downloads")
	}
	for _, s := range AllSections() {
		if m.Available(s) {
			t.Errorf("section %s available before download", s)
		}
	}
	if _, err := m.Get(SectionWorks); !errors.Is(err, ErrNotDownloaded) {
		t.Fatalf("get before download: %v", err)
	}
	if _, ok := m.DownloadedAt(); ok {
		t.Fatal("timestamp present before download")
	}
}

func TestDownloadSingleSection(t *testing.T) {
	m := openTestManager(t)

	if err := m.Download(SectionMythology); err != nil {
		t.Fatalf("download: %v", err)
	}

	if !m.Available(SectionMythology) {
		t.Fatal("downloaded section not available")
	}
	if m.Available(SectionWorks) {
		t.Fatal("undownloaded section reported available")
	}
	if m.AllDownloaded() {
		t.Fatal("one section must not read as all downloaded")
	}

	raw, err := m.Get(SectionMythology)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	var items []content.MythologyItem
	if err := json.Unmarshal(raw, &items); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if len(items) != len(content.MythologyItems) {
		t.Errorf("payload = %d items, want %d", len(items), len(content.MythologyItems))
	}
}

func TestDownloadUnknownSection(t *testing.T) {
	m := openTestManager(t)
	if err := m.Download(Section("videos")); !errors.Is(err, ErrUnknownSection) {
		t.Fatalf("unknown section: %v", err)
	}
}

func TestDownloadAll(t *testing.T) {
	m := openTestManager(t)
	m.WithClock(func() time.Time {
		return time.Date(2026, 1, 25, 9, 30, 0, 0, time.UTC)
	})

	b, err := m.DownloadAll()
	if err != nil {
		t.Fatalf("download all: %v", err)
	}
	if !m.AllDownloaded() {
		t.Fatal("marker not set after full download")
	}

	if len(b.Works) != len(content.Works) {
		t.Errorf("works = %d, want %d", len(b.Works), len(content.Works))
	}
	if len(b.Mythology) != len(content.MythologyItems) {
		t.Errorf("mythology = %d, want %d", len(b.Mythology), len(content.MythologyItems))
	}
	wantQuestions := 0
	for _, c := range content.AllQuizCategories() {
		wantQuestions += len(content.QuestionPool(c))
	}
	if len(b.Questions) != wantQuestions {
		t.Errorf("questions = %d, want %d", len(b.Questions), wantQuestions)
	}
	if len(b.News) != len(content.NewsItems) {
		t.Errorf("news = %d, want %d", len(b.News), len(content.NewsItems))
	}

	at, ok := m.DownloadedAt()
	if !ok || !at.Equal(time.Date(2026, 1, 25, 9, 30, 0, 0, time.UTC)) {
		t.Errorf("downloadedAt = %v ok=%v", at, ok)
	}
}

// Downloading every section one by one is equivalent to DownloadAll.
func TestSectionBySectionCompletesBundle(t *testing.T) {
	m := openTestManager(t)

	for i, s := range AllSections() {
		if err := m.Download(s); err != nil {
			t.Fatalf("download %s: %v", s, err)
		}
		complete := i == len(AllSections())-1
		if m.AllDownloaded() != complete {
			t.Fatalf("after %d sections AllDownloaded = %v", i+1, !complete)
		}
	}

	if _, err := m.Bundle(); err != nil {
		t.Fatalf("bundle: %v", err)
	}
}

func TestRedownloadRefreshesTimestamp(t *testing.T) {
	m := openTestManager(t)

	first := time.Date(2026, 1, 25, 9, 0, 0, 0, time.UTC)
	m.WithClock(func() time.Time { return first })
	if _, err := m.DownloadAll(); err != nil {
		t.Fatalf("download: %v", err)
	}

	second := first.Add(48 * time.Hour)
	m.WithClock(func() time.Time { return second })
	if err := m.Download(SectionNews); err != nil {
		t.Fatalf("redownload: %v", err)
	}

	at, ok := m.DownloadedAt()
	if !ok || !at.Equal(second) {
		t.Errorf("downloadedAt = %v, want %v", at, second)
	}
}

func TestClear(t *testing.T) {
	m := openTestManager(t)
	if _, err := m.DownloadAll(); err != nil {
		t.Fatalf("download: %v", err)
	}
	if err := m.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if m.AllDownloaded() || m.Available(SectionWorks) {
		t.Fatal("content still available after clear")
	}
	if _, err := m.Bundle(); !errors.Is(err, ErrNotDownloaded) {
		t.Fatalf("bundle after clear: %v", err)
	}
}
