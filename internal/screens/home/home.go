package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/culturia/internal/discovery"
	"github.com/abhisek/culturia/internal/progress"
	"github.com/abhisek/culturia/internal/quiz"
	"github.com/abhisek/culturia/internal/router"
	"github.com/abhisek/culturia/internal/screen"
	"github.com/abhisek/culturia/internal/screens/histscreen"
	"github.com/abhisek/culturia/internal/screens/mythology"
	"github.com/abhisek/culturia/internal/screens/news"
	"github.com/abhisek/culturia/internal/screens/profile"
	quizscreen "github.com/abhisek/culturia/internal/screens/quizplay"
	"github.com/abhisek/culturia/internal/screens/works"
	"github.com/abhisek/culturia/internal/ui/components"
	"github.com/abhisek/culturia/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu      components.Menu
	ledger    *progress.Ledger
	dailyQuiz *quiz.Daily
	disc      *discovery.Service
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen wired to the app services.
func New(ledger *progress.Ledger, dailyQuiz *quiz.Daily, disc *discovery.Service) *HomeScreen {
	h := &HomeScreen{
		ledger:    ledger,
		dailyQuiz: dailyQuiz,
		disc:      disc,
	}

	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: build()}
			}
		}
	}

	items := []components.MenuItem{
		{Label: "Quiz du jour", Action: push(func() screen.Screen {
			return quizscreen.New(dailyQuiz)
		})},
		{Label: "Découverte du jour", Action: push(func() screen.Screen {
			return works.New(disc)
		})},
		{Label: "Mythologie", Action: push(func() screen.Screen {
			return mythology.New(disc)
		})},
		{Label: "Actualités", Action: push(func() screen.Screen {
			return news.New()
		})},
		{Label: "Mon profil", Action: push(func() screen.Screen {
			return profile.New(ledger, disc)
		})},
		{Label: "Historique", Action: push(func() screen.Screen {
			return histscreen.New(dailyQuiz)
		})},
		{Label: "Quitter", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, renderBanner(width))
	sections = append(sections, theme.Subtitle.Width(width).Render("Votre dose de culture quotidienne"))
	sections = append(sections, h.renderStatsBar(width))
	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Accueil"
}

// renderStatsBar shows the day at a glance. Stats are re-read on every
// render so finishing a quiz is reflected as soon as the user comes back.
func (h *HomeScreen) renderStatsBar(width int) string {
	stats := h.ledger.Stats()
	lvl := stats.CurrentLevel()

	quizPart := "Quiz du jour à faire"
	if completed, score := h.dailyQuiz.State(); completed {
		quizPart = fmt.Sprintf("Quiz du jour ✓ %d/4", score)
	}

	parts := []string{
		fmt.Sprintf("🔥 %d jours", stats.StreakDays),
		fmt.Sprintf("✦ %s", lvl.Title),
		fmt.Sprintf("⭐ %d XP", stats.XP),
		quizPart,
	}

	bar := lipgloss.NewStyle().Foreground(theme.Gold).Render(parts[0]) +
		theme.Hint.Render("  •  ") +
		lipgloss.NewStyle().Foreground(theme.Accent).Render(parts[1]) +
		theme.Hint.Render("  •  ") +
		lipgloss.NewStyle().Foreground(theme.Secondary).Render(parts[2]) +
		theme.Hint.Render("  •  ") +
		lipgloss.NewStyle().Foreground(theme.Text).Render(parts[3])

	return theme.Card.Render(bar)
}
