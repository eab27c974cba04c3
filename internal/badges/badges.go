package badges

import "github.com/abhisek/culturia/internal/progress"

// Badge is an achievement derived from the progression record. Badges are
// never stored: they are recomputed from stats on every read, so they can
// never drift from the counters that define them.
type Badge struct {
	ID          string
	Name        string
	Icon        string
	Description string
	Earned      bool
}

type rule struct {
	id          string
	name        string
	icon        string
	description string
	earned      func(progress.Stats) bool
}

var rules = []rule{
	{
		id:          "first-quiz",
		name:        "Premier pas",
		icon:        "🎯",
		description: "Terminer son premier quiz quotidien",
		earned:      func(s progress.Stats) bool { return s.DailyQuizzesCompleted >= 1 },
	},
	{
		id:          "explorer",
		name:        "Explorateur",
		icon:        "🗺️",
		description: "Découvrir 5 œuvres",
		earned:      func(s progress.Stats) bool { return s.WorksViewed >= 5 },
	},
	{
		id:          "philosopher",
		name:        "Philosophe",
		icon:        "🏛️",
		description: "Explorer 10 trésors de la mythologie",
		earned:      func(s progress.Stats) bool { return s.MythologyViewed >= 10 },
	},
	{
		id:          "perfect",
		name:        "Sans faute",
		icon:        "💯",
		description: "Réussir un quiz parfait",
		earned:      func(s progress.Stats) bool { return s.TotalScore >= 4 && s.CorrectAnswers >= 4 },
	},
	{
		id:          "historian",
		name:        "Assidu",
		icon:        "🔥",
		description: "Jouer 7 jours d'affilée",
		earned:      func(s progress.Stats) bool { return s.StreakDays >= 7 },
	},
	{
		id:          "marathon",
		name:        "Marathonien",
		icon:        "🏃",
		description: "Jouer 30 jours d'affilée",
		earned:      func(s progress.Stats) bool { return s.StreakDays >= 30 },
	},
	{
		id:          "scholar",
		name:        "Érudit",
		icon:        "🎓",
		description: "Répondre correctement à 100 questions",
		earned:      func(s progress.Stats) bool { return s.CorrectAnswers >= 100 },
	},
	{
		id:          "master",
		name:        "Grand Maître",
		icon:        "👑",
		description: "Atteindre le niveau 10",
		earned:      func(s progress.Stats) bool { return s.Level >= 10 },
	},
}

// All evaluates every badge against the stats, in display order.
func All(s progress.Stats) []Badge {
	out := make([]Badge, 0, len(rules))
	for _, r := range rules {
		out = append(out, Badge{
			ID:          r.id,
			Name:        r.name,
			Icon:        r.icon,
			Description: r.description,
			Earned:      r.earned(s),
		})
	}
	return out
}

// Earned returns only the badges the stats qualify for.
func Earned(s progress.Stats) []Badge {
	var out []Badge
	for _, b := range All(s) {
		if b.Earned {
			out = append(out, b)
		}
	}
	return out
}
