package daily

import "time"

const dateLayout = "2006-01-02"

// Today returns the device-local calendar day as YYYY-MM-DD.
func Today(now time.Time) string {
	return now.Format(dateLayout)
}

// Seed derives the deterministic daily seed from a calendar day: the number
// of days since the Unix epoch. Every selection made on the same day starts
// from the same seed, which is what makes repeat queries reproducible.
// An unparseable date yields seed 0 rather than an error; the selection is
// then merely fixed, not broken.
func Seed(date string) int64 {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return 0
	}
	return t.Unix() / 86400
}

// Index maps a seed and a slot offset onto a pool index. Distinct slots get
// distinct sub-seeds so multi-item selections are not correlated.
func Index(seed int64, slot, poolSize int) int {
	if poolSize <= 0 {
		return 0
	}
	i := (seed + int64(slot)) % int64(poolSize)
	if i < 0 {
		i += int64(poolSize)
	}
	return int(i)
}
