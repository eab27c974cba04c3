package progress

import "testing"

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{2999, 1},
		{3000, 2},
		{5999, 2},
		{6000, 3},
		{9999, 3},
		{10000, 4},
		{74999, 9},
		{75000, 10},
		{1000000, 10},
	}

	for _, tt := range tests {
		got := LevelForXP(tt.xp)
		if got.Level != tt.want {
			t.Errorf("LevelForXP(%d) = %d, want %d", tt.xp, got.Level, tt.want)
		}
	}
}

func TestLevelMonotonicOverAwards(t *testing.T) {
	awards := []int{90, 500, 0, 2500, 10, 90000}
	xp := 0
	prev := LevelForXP(0).Level
	for _, a := range awards {
		xp += a
		lvl := LevelForXP(xp).Level
		if lvl < prev {
			t.Fatalf("level decreased from %d to %d at xp=%d", prev, lvl, xp)
		}
		prev = lvl
	}
}

// A multi-threshold jump in one award lands on the highest qualifying level,
// not one step up.
func TestLevelJumpAcrossThresholds(t *testing.T) {
	if got := LevelForXP(16000); got.Level != 5 {
		t.Errorf("LevelForXP(16000) = %d, want 5", got.Level)
	}
}

func TestProgressToNextLevel(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 0},
		{1500, 50},
		{2999, 99},
		{3000, 0},    // fresh level 2
		{4500, 50},   // halfway 3000→6000
		{75000, 0},   // top level, nothing to progress toward
		{90000, 0},   // beyond top level
	}

	for _, tt := range tests {
		if got := ProgressToNextLevel(tt.xp); got != tt.want {
			t.Errorf("ProgressToNextLevel(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

// Daily perfect quizzes at 90 XP each must reach level 2 on day 34, when
// cumulative XP first crosses the 3000 threshold.
func TestDailyPerfectQuizScenario(t *testing.T) {
	const perDay = 4*XPPerCorrectAnswer + XPPerfectQuizBonus // 90
	xp := 0
	for day := 1; day <= 34; day++ {
		xp += perDay
		lvl := LevelForXP(xp).Level
		switch {
		case day < 34 && lvl != 1:
			t.Fatalf("day %d: xp=%d level=%d, want 1", day, xp, lvl)
		case day == 34 && lvl != 2:
			t.Fatalf("day 34: xp=%d level=%d, want 2", xp, lvl)
		}
	}
	if xp != 3060 {
		t.Errorf("cumulative xp = %d, want 3060", xp)
	}
}

func TestNextStreak(t *testing.T) {
	tests := []struct {
		name    string
		current int
		last    string
		today   string
		want    int
	}{
		{"continues from yesterday", 3, "2026-01-24", "2026-01-25", 4},
		{"idempotent same day", 3, "2026-01-25", "2026-01-25", 3},
		{"gap restarts", 7, "2026-01-20", "2026-01-25", 1},
		{"no history restarts", 5, "", "2026-01-25", 1},
		{"month rollover", 2, "2026-01-31", "2026-02-01", 3},
		{"zero current treated as one", 0, "2026-01-25", "2026-01-25", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextStreak(tt.current, tt.last, tt.today); got != tt.want {
				t.Errorf("NextStreak(%d, %q, %q) = %d, want %d",
					tt.current, tt.last, tt.today, got, tt.want)
			}
		})
	}
}
