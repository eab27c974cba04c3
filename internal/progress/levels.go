package progress

// LevelInfo is one row of the fixed progression table.
type LevelInfo struct {
	Level int
	Title string
	MinXP int
}

// Levels is the fixed ascending threshold table. Level is always derived
// from XP via this table, never stored authoritatively.
var Levels = []LevelInfo{
	{Level: 1, Title: "Débutant", MinXP: 0},
	{Level: 2, Title: "Curieux", MinXP: 3000},
	{Level: 3, Title: "Apprenti", MinXP: 6000},
	{Level: 4, Title: "Étudiant", MinXP: 10000},
	{Level: 5, Title: "Érudit", MinXP: 15000},
	{Level: 6, Title: "Savant", MinXP: 22000},
	{Level: 7, Title: "Sage", MinXP: 30000},
	{Level: 8, Title: "Expert", MinXP: 40000},
	{Level: 9, Title: "Maître", MinXP: 55000},
	{Level: 10, Title: "Grand Maître", MinXP: 75000},
}

// LevelForXP returns the highest level whose threshold is within xp.
// A jump across several thresholds in one award lands directly on the
// highest qualifying level.
func LevelForXP(xp int) LevelInfo {
	for i := len(Levels) - 1; i >= 0; i-- {
		if xp >= Levels[i].MinXP {
			return Levels[i]
		}
	}
	return Levels[0]
}

// NextLevel returns the level after the one xp qualifies for, and false at
// the top of the table.
func NextLevel(xp int) (LevelInfo, bool) {
	cur := LevelForXP(xp)
	for i, l := range Levels {
		if l.Level == cur.Level && i+1 < len(Levels) {
			return Levels[i+1], true
		}
	}
	return LevelInfo{}, false
}

// ProgressToNextLevel returns how far xp has climbed toward the next
// threshold, as a percentage clamped to [0, 100]. At the top level there is
// nothing left to progress toward, so it returns 0.
func ProgressToNextLevel(xp int) int {
	cur := LevelForXP(xp)
	next, ok := NextLevel(xp)
	if !ok {
		return 0
	}
	span := next.MinXP - cur.MinXP
	if span <= 0 {
		return 0
	}
	pct := (xp - cur.MinXP) * 100 / span
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
