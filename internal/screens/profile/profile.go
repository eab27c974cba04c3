package profile

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/culturia/internal/badges"
	"github.com/abhisek/culturia/internal/content"
	"github.com/abhisek/culturia/internal/discovery"
	"github.com/abhisek/culturia/internal/progress"
	"github.com/abhisek/culturia/internal/screen"
	"github.com/abhisek/culturia/internal/ui/components"
	"github.com/abhisek/culturia/internal/ui/theme"
)

// ProfileScreen shows the progression record: level, XP bar, counters,
// badges and reading suggestions.
type ProfileScreen struct {
	ledger *progress.Ledger
	disc   *discovery.Service
}

var _ screen.Screen = (*ProfileScreen)(nil)

// New creates the profile screen.
func New(ledger *progress.Ledger, disc *discovery.Service) *ProfileScreen {
	return &ProfileScreen{ledger: ledger, disc: disc}
}

func (p *ProfileScreen) Init() tea.Cmd {
	return nil
}

func (p *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *ProfileScreen) View(width, height int) string {
	stats := p.ledger.Stats()
	lvl := stats.CurrentLevel()
	cw := min(width-6, 72)

	var lines []string
	lines = append(lines, theme.Title.Render(fmt.Sprintf("✦ %s — niveau %d", lvl.Title, lvl.Level)))
	lines = append(lines, "")

	bar := components.NewProgressBar(
		fmt.Sprintf("%d XP", stats.XP),
		float64(stats.LevelProgress())/100,
		true,
		cw,
	)
	lines = append(lines, bar.View())
	if next, ok := progress.NextLevel(stats.XP); ok {
		lines = append(lines, theme.Hint.Render(
			fmt.Sprintf("Prochain niveau : %s à %d XP", next.Title, next.MinXP)))
	} else {
		lines = append(lines, theme.Hint.Render("Niveau maximum atteint !"))
	}

	lines = append(lines, "")
	lines = append(lines, theme.Selected.Render("Statistiques"))
	lines = append(lines, theme.Body.Render(fmt.Sprintf("  🔥 Série          %d jours", stats.StreakDays)))
	lines = append(lines, theme.Body.Render(fmt.Sprintf("  🧠 Quiz terminés  %d", stats.DailyQuizzesCompleted)))
	lines = append(lines, theme.Body.Render(fmt.Sprintf("  🎯 Score moyen    %d%%", stats.AverageScorePercent())))
	lines = append(lines, theme.Body.Render(fmt.Sprintf("  📖 Œuvres vues    %d", stats.WorksViewed)))
	lines = append(lines, theme.Body.Render(fmt.Sprintf("  🏛️ Mythologie     %d", stats.MythologyViewed)))

	lines = append(lines, "")
	lines = append(lines, theme.Selected.Render("Badges"))
	for _, b := range badges.All(stats) {
		if b.Earned {
			lines = append(lines, theme.Correct.Render(fmt.Sprintf("  %s %s — %s", b.Icon, b.Name, b.Description)))
		} else {
			lines = append(lines, theme.Hint.Render(fmt.Sprintf("  🔒 %s — %s", b.Name, b.Description)))
		}
	}

	lines = append(lines, "")
	lines = append(lines, theme.Selected.Render("Défis de la semaine"))
	for _, c := range badges.Challenges(stats) {
		label := fmt.Sprintf("  %s %s  %d/%d  (+%d XP)", c.Icon, c.Name, c.Progress, c.Goal, c.RewardXP)
		if c.Done {
			lines = append(lines, theme.Correct.Render(label+"  ✓"))
		} else {
			lines = append(lines, theme.Body.Render(label))
		}
	}

	if len(content.Suggestions) > 0 {
		lines = append(lines, "")
		lines = append(lines, theme.Selected.Render("Suggestions"))
		for _, s := range content.Suggestions {
			lines = append(lines, theme.Body.Width(cw).Render(
				fmt.Sprintf("  • %s — %s", s.Title, s.Reason)))
		}
	}

	card := theme.Card.Width(cw + 4).Render(strings.Join(lines, "\n"))
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}

func (p *ProfileScreen) Title() string {
	return "Mon profil"
}
