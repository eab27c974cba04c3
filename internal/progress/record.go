package progress

// Stats is the canonical progression record persisted under the userStats
// key. Field names are a storage contract; see store.KeyUserStats.
type Stats struct {
	QuizzesCompleted      int    `json:"quizzesCompleted"`
	CorrectAnswers        int    `json:"correctAnswers"`
	TotalAnswers          int    `json:"totalAnswers"`
	StreakDays            int    `json:"streakDays"`
	FavoriteCategory      string `json:"favoriteCategory"`
	Level                 int    `json:"level"`
	XP                    int    `json:"xp"`
	DailyQuizzesCompleted int    `json:"dailyQuizzesCompleted"`
	TotalScore            int    `json:"totalScore"`
	WorksViewed           int    `json:"worksViewed"`
	MythologyViewed       int    `json:"mythologyViewed"`

	// LastQuizDate (YYYY-MM-DD) anchors the streak rule. Absent in records
	// written by old versions; the streak then restarts at 1 on the next
	// completion, which is the conservative reading.
	LastQuizDate string `json:"lastQuizDate,omitempty"`
}

// NewStats returns the zero progression state for a fresh device.
func NewStats() Stats {
	return Stats{
		StreakDays:       1,
		FavoriteCategory: "Histoire",
		Level:            1,
	}
}

// CurrentLevel derives the level row from XP.
func (s Stats) CurrentLevel() LevelInfo {
	return LevelForXP(s.XP)
}

// LevelProgress returns the percentage toward the next level.
func (s Stats) LevelProgress() int {
	return ProgressToNextLevel(s.XP)
}

// AverageScorePercent is the mean daily-quiz score over all completions,
// as a percentage of the 4-point maximum.
func (s Stats) AverageScorePercent() int {
	if s.DailyQuizzesCompleted == 0 {
		return 0
	}
	return s.TotalScore * 100 / (s.DailyQuizzesCompleted * 4)
}
