package content

// QuizCategory identifies one of the four daily quiz pools.
type QuizCategory string

const (
	CategoryActu     QuizCategory = "actu"
	CategoryMedia    QuizCategory = "media"
	CategoryGeneral  QuizCategory = "general"
	CategoryHistoire QuizCategory = "histoire"
)

// AllQuizCategories returns the quiz categories in daily slot order.
// The order is fixed: it determines the per-slot sub-seed of the daily draw.
func AllQuizCategories() []QuizCategory {
	return []QuizCategory{CategoryActu, CategoryMedia, CategoryGeneral, CategoryHistoire}
}

// DisplayName returns a human-readable label for the category.
func (c QuizCategory) DisplayName() string {
	switch c {
	case CategoryActu:
		return "Actualité"
	case CategoryMedia:
		return "Média"
	case CategoryGeneral:
		return "Général"
	case CategoryHistoire:
		return "Histoire"
	default:
		return string(c)
	}
}

// Icon returns the display icon for the category.
func (c QuizCategory) Icon() string {
	switch c {
	case CategoryActu:
		return "📰"
	case CategoryMedia:
		return "🎬"
	case CategoryGeneral:
		return "🌍"
	case CategoryHistoire:
		return "📜"
	default:
		return "✦"
	}
}

// Difficulty grades a quiz question.
type Difficulty string

const (
	Facile    Difficulty = "facile"
	Moyen     Difficulty = "moyen"
	Difficile Difficulty = "difficile"
)

// QuizQuestion is a single multiple-choice question. Questions are static,
// bundled data: they are never mutated at runtime, only referenced by ID.
type QuizQuestion struct {
	ID            string       `json:"id"`
	Question      string       `json:"question"`
	Options       []string     `json:"options"`
	CorrectAnswer int          `json:"correctAnswer"`
	Explanation   string       `json:"explanation"`
	Category      QuizCategory `json:"category"`
	Difficulty    Difficulty   `json:"difficulty"`
}

// WorkType identifies the medium of a discovery work.
type WorkType string

const (
	WorkLivre WorkType = "livre"
	WorkManga WorkType = "manga"
	WorkFilm  WorkType = "film"
	WorkSerie WorkType = "serie"
	WorkAnime WorkType = "anime"
)

// DisplayName returns a human-readable label for the work type.
func (t WorkType) DisplayName() string {
	switch t {
	case WorkLivre:
		return "Livre"
	case WorkManga:
		return "Manga"
	case WorkFilm:
		return "Film"
	case WorkSerie:
		return "Série"
	case WorkAnime:
		return "Animé"
	default:
		return string(t)
	}
}

// Icon returns the display icon for the work type.
func (t WorkType) Icon() string {
	switch t {
	case WorkLivre:
		return "📖"
	case WorkManga:
		return "🇯🇵"
	case WorkFilm:
		return "🎬"
	case WorkSerie:
		return "📺"
	case WorkAnime:
		return "✨"
	default:
		return "✦"
	}
}

// Work is a literary, cinematic or graphic work proposed for daily discovery.
type Work struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Author          string   `json:"author"`
	Year            int      `json:"year"`
	Type            WorkType `json:"type"`
	Genre           string   `json:"genre"`
	Summary         string   `json:"summary"`
	KeyPoints       []string `json:"keyPoints"`
	Quote           string   `json:"quote,omitempty"`
	WhyIntellectual string   `json:"whyIntellectual"`
}

// MythologyCategory classifies a mythology item.
type MythologyCategory string

const (
	MythOeuvre      MythologyCategory = "oeuvre"
	MythSculpture   MythologyCategory = "sculpture"
	MythPhilosophie MythologyCategory = "philosophie"
	MythAstronomie  MythologyCategory = "astronomie"
	MythHistoire    MythologyCategory = "histoire"
)

// DisplayName returns a human-readable label for the mythology category.
func (c MythologyCategory) DisplayName() string {
	switch c {
	case MythOeuvre:
		return "Œuvre littéraire"
	case MythSculpture:
		return "Sculpture"
	case MythPhilosophie:
		return "Philosophie"
	case MythAstronomie:
		return "Astronomie"
	case MythHistoire:
		return "Histoire"
	default:
		return string(c)
	}
}

// Icon returns the display icon for the mythology category.
func (c MythologyCategory) Icon() string {
	switch c {
	case MythOeuvre:
		return "📜"
	case MythSculpture:
		return "🏛️"
	case MythPhilosophie:
		return "🤔"
	case MythAstronomie:
		return "⭐"
	case MythHistoire:
		return "⚔️"
	default:
		return "✦"
	}
}

// MythologyItem is a Greco-Roman culture treasure shown one per day.
type MythologyItem struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Author       string            `json:"author,omitempty"`
	Date         string            `json:"date"`
	Category     MythologyCategory `json:"category"`
	Description  string            `json:"description"`
	KeyFacts     []string          `json:"keyFacts"`
	WhyImportant string            `json:"whyImportant"`
	Quote        string            `json:"quote,omitempty"`
}

// NewsItem is a hardcoded cultural news entry presented as a live feed.
type NewsItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Content  string `json:"content"`
	Date     string `json:"date"`
	Source   string `json:"source"`
	Category string `json:"category"`
}

// PopularItem is a trending topic entry.
type PopularItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Trending    bool   `json:"trending"`
}

// Suggestion is a personal recommendation shown on the profile screen.
type Suggestion struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Reason      string `json:"reason"`
	Completed   bool   `json:"completed"`
}
