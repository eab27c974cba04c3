package badges

import "github.com/abhisek/culturia/internal/progress"

// Challenge is a weekly goal shown on the profile. The reward amounts are
// informational: the ledger pays XP through quiz and discovery awards, never
// through challenges.
type Challenge struct {
	ID          string
	Name        string
	Icon        string
	Description string
	RewardXP    int
	Goal        int
	Progress    int
	Done        bool
}

type challengeRule struct {
	id          string
	name        string
	icon        string
	description string
	rewardXP    int
	goal        int
	progress    func(progress.Stats) int
}

var challengeRules = []challengeRule{
	{
		id:          "week-streak",
		name:        "Semaine parfaite",
		icon:        "📅",
		description: "Jouer le quiz 7 jours d'affilée",
		rewardXP:    100,
		goal:        7,
		progress:    func(s progress.Stats) int { return s.StreakDays },
	},
	{
		id:          "week-works",
		name:        "Lecteur de la semaine",
		icon:        "📚",
		description: "Découvrir 3 nouvelles œuvres",
		rewardXP:    75,
		goal:        3,
		progress:    func(s progress.Stats) int { return s.WorksViewed },
	},
	{
		id:          "week-mythology",
		name:        "Voyage mythologique",
		icon:        "⚡",
		description: "Explorer 3 trésors de la mythologie",
		rewardXP:    50,
		goal:        3,
		progress:    func(s progress.Stats) int { return s.MythologyViewed },
	},
	{
		id:          "week-answers",
		name:        "Esprit vif",
		icon:        "🧠",
		description: "Donner 20 bonnes réponses",
		rewardXP:    80,
		goal:        20,
		progress:    func(s progress.Stats) int { return s.CorrectAnswers },
	},
}

// Challenges evaluates the weekly goals against the stats, in display order.
// Progress is clamped to the goal.
func Challenges(s progress.Stats) []Challenge {
	out := make([]Challenge, 0, len(challengeRules))
	for _, r := range challengeRules {
		p := r.progress(s)
		if p > r.goal {
			p = r.goal
		}
		if p < 0 {
			p = 0
		}
		out = append(out, Challenge{
			ID:          r.id,
			Name:        r.name,
			Icon:        r.icon,
			Description: r.description,
			RewardXP:    r.rewardXP,
			Goal:        r.goal,
			Progress:    p,
			Done:        p >= r.goal,
		})
	}
	return out
}
