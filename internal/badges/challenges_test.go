package badges

import (
	"testing"

	"github.com/abhisek/culturia/internal/progress"
)

func TestChallengesListEveryGoal(t *testing.T) {
	cs := Challenges(progress.NewStats())
	if len(cs) != len(challengeRules) {
		t.Fatalf("Challenges returned %d goals, want %d", len(cs), len(challengeRules))
	}
	for _, c := range cs {
		if c.Name == "" || c.Description == "" || c.Icon == "" {
			t.Errorf("challenge %s missing display fields", c.ID)
		}
		if c.RewardXP <= 0 || c.Goal <= 0 {
			t.Errorf("challenge %s has reward %d, goal %d", c.ID, c.RewardXP, c.Goal)
		}
	}
}

func TestChallengeProgress(t *testing.T) {
	tests := []struct {
		name     string
		stats    progress.Stats
		id       string
		progress int
		done     bool
	}{
		{"fresh streak", progress.NewStats(), "week-streak", 1, false},
		{"mid streak", progress.Stats{StreakDays: 4}, "week-streak", 4, false},
		{"streak done", progress.Stats{StreakDays: 7}, "week-streak", 7, true},
		{"streak clamped at goal", progress.Stats{StreakDays: 19}, "week-streak", 7, true},
		{"works partial", progress.Stats{WorksViewed: 2}, "week-works", 2, false},
		{"works done", progress.Stats{WorksViewed: 3}, "week-works", 3, true},
		{"mythology done", progress.Stats{MythologyViewed: 5}, "week-mythology", 3, true},
		{"answers partial", progress.Stats{CorrectAnswers: 12}, "week-answers", 12, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, c := range Challenges(tt.stats) {
				if c.ID != tt.id {
					continue
				}
				if c.Progress != tt.progress || c.Done != tt.done {
					t.Errorf("challenge %s = (%d, %v), want (%d, %v)",
						c.ID, c.Progress, c.Done, tt.progress, tt.done)
				}
				return
			}
			t.Fatalf("challenge %s not listed", tt.id)
		})
	}
}
