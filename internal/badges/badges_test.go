package badges

import (
	"testing"

	"github.com/abhisek/culturia/internal/progress"
)

func earnedIDs(s progress.Stats) map[string]bool {
	ids := make(map[string]bool)
	for _, b := range Earned(s) {
		ids[b.ID] = true
	}
	return ids
}

func TestFreshStatsEarnNothing(t *testing.T) {
	if got := Earned(progress.NewStats()); len(got) != 0 {
		t.Errorf("fresh stats earned %v", got)
	}
}

func TestThresholds(t *testing.T) {
	tests := []struct {
		name  string
		stats progress.Stats
		want  string
		earn  bool
	}{
		{"first quiz at 1", progress.Stats{DailyQuizzesCompleted: 1}, "first-quiz", true},
		{"explorer below threshold", progress.Stats{WorksViewed: 4}, "explorer", false},
		{"explorer at threshold", progress.Stats{WorksViewed: 5}, "explorer", true},
		{"philosopher at threshold", progress.Stats{MythologyViewed: 10}, "philosopher", true},
		{"streak of 6 not enough", progress.Stats{StreakDays: 6}, "historian", false},
		{"streak of 7 earns", progress.Stats{StreakDays: 7}, "historian", true},
		{"streak of 30 earns marathon", progress.Stats{StreakDays: 30}, "marathon", true},
		{"scholar at 100 correct", progress.Stats{CorrectAnswers: 100}, "scholar", true},
		{"master at level 10", progress.Stats{Level: 10}, "master", true},
		{"master below", progress.Stats{Level: 9}, "master", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := earnedIDs(tt.stats)[tt.want]; got != tt.earn {
				t.Errorf("earned[%s] = %v, want %v", tt.want, got, tt.earn)
			}
		})
	}
}

func TestAllListsEveryBadgeOnce(t *testing.T) {
	all := All(progress.NewStats())
	if len(all) != len(rules) {
		t.Fatalf("All returned %d badges, want %d", len(all), len(rules))
	}
	seen := make(map[string]bool)
	for _, b := range all {
		if seen[b.ID] {
			t.Errorf("duplicate badge id %s", b.ID)
		}
		seen[b.ID] = true
		if b.Name == "" || b.Description == "" || b.Icon == "" {
			t.Errorf("badge %s missing display fields", b.ID)
		}
	}
}

// Badges derive from counters; growing a counter can only add badges.
func TestEarningIsMonotonic(t *testing.T) {
	before := earnedIDs(progress.Stats{WorksViewed: 5, StreakDays: 7})
	after := earnedIDs(progress.Stats{WorksViewed: 12, StreakDays: 30, Level: 10})
	for id := range before {
		if !after[id] {
			t.Errorf("badge %s lost as stats grew", id)
		}
	}
}
