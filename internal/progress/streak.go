package progress

import "time"

const dateLayout = "2006-01-02"

// NextStreak computes the streak value after completing the daily quiz on
// today, given the date of the previous completion. The rule:
//   - previous completion was yesterday: streak continues (+1)
//   - previous completion was today: streak unchanged (idempotent)
//   - anything else, including no previous completion: streak restarts at 1
func NextStreak(current int, lastQuizDate, today string) int {
	if current < 1 {
		current = 1
	}
	if lastQuizDate == today {
		return current
	}

	last, err := time.Parse(dateLayout, lastQuizDate)
	if err != nil {
		return 1
	}
	td, err := time.Parse(dateLayout, today)
	if err != nil {
		return 1
	}

	if td.Sub(last) == 24*time.Hour {
		return current + 1
	}
	return 1
}
