package store

// Well-known keys of the persisted state layout. The shapes behind these
// keys are a compatibility contract with earlier releases; renaming one is
// a data migration, not a refactor.
const (
	KeyUserStats           = "userStats"
	KeyDailyQuizState      = "dailyQuizState"
	KeyViewedWorks         = "viewedWorks"
	KeyViewedMythology     = "viewedMythology"
	KeyDailyWork           = "dailyWork"
	KeyDailyMythology      = "dailyMythology"
	KeyOfflineContent      = "offlineContent"
	KeyContentDownloaded   = "contentDownloaded"
	KeyContentDownloadedAt = "contentDownloadedAt"

	// QuizArchivePrefix prefixes one key per completed day: quiz_2026-01-25.
	QuizArchivePrefix = "quiz_"
)

// QuizArchiveKey returns the archive key for a calendar day (YYYY-MM-DD).
func QuizArchiveKey(date string) string {
	return QuizArchivePrefix + date
}
