package mythology

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/culturia/internal/content"
	"github.com/abhisek/culturia/internal/discovery"
	"github.com/abhisek/culturia/internal/progress"
	"github.com/abhisek/culturia/internal/screen"
	"github.com/abhisek/culturia/internal/ui/layout"
	"github.com/abhisek/culturia/internal/ui/theme"
)

// MythologyScreen shows the mythology treasure of the day and lets the user
// keep exploring unseen items. First views pay the viewing reward.
type MythologyScreen struct {
	disc *discovery.Service

	item     content.MythologyItem
	rewarded bool
	allSeen  bool
	err      error
}

var _ screen.Screen = (*MythologyScreen)(nil)

// New opens the screen on the item of the day and settles its reward.
func New(disc *discovery.Service) *MythologyScreen {
	m := &MythologyScreen{disc: disc}

	item, err := disc.DailyMythology()
	if err != nil {
		m.err = err
		return m
	}
	m.show(item)
	return m
}

func (m *MythologyScreen) show(item content.MythologyItem) {
	m.item = item
	_, rewarded, err := m.disc.ViewMythology(item.ID)
	if err != nil {
		m.err = err
		return
	}
	m.rewarded = rewarded
}

func (m *MythologyScreen) Init() tea.Cmd {
	return nil
}

func (m *MythologyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if kmsg.String() == "n" && !m.allSeen && m.err == nil {
		next, ok := m.disc.NextMythology([]string{m.item.ID})
		if !ok {
			m.allSeen = true
			return m, nil
		}
		m.show(next)
	}
	return m, nil
}

func (m *MythologyScreen) View(width, height int) string {
	var content string
	switch {
	case m.err != nil:
		content = theme.Incorrect.Render("Erreur : " + m.err.Error())
	case m.allSeen:
		content = theme.Card.Render(strings.Join([]string{
			theme.Title.Render("Le panthéon n'a plus de secrets !"),
			"",
			theme.Body.Render("Vous avez exploré tous les trésors de la mythologie."),
		}, "\n"))
	default:
		content = m.viewItem(width)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (m *MythologyScreen) viewItem(width int) string {
	item := m.item
	cw := min(width-6, 76)

	var lines []string
	head := fmt.Sprintf("%s %s  •  %s", item.Category.Icon(), item.Category.DisplayName(), item.Date)
	lines = append(lines, theme.Subtitle.Render(head))
	lines = append(lines, theme.Title.Render(item.Title))
	if item.Author != "" {
		lines = append(lines, theme.Subtitle.Render(item.Author))
	}
	lines = append(lines, "")
	lines = append(lines, theme.Body.Width(cw).Render(item.Description))

	if len(item.KeyFacts) > 0 {
		lines = append(lines, "")
		lines = append(lines, theme.Selected.Render("Le saviez-vous ?"))
		for _, f := range item.KeyFacts {
			lines = append(lines, theme.Body.Width(cw).Render("  • "+f))
		}
	}

	if item.Quote != "" {
		lines = append(lines, "")
		lines = append(lines, theme.Quote.Width(cw).Render("« "+item.Quote+" »"))
	}

	lines = append(lines, "")
	lines = append(lines, theme.Hint.Width(cw).Render(item.WhyImportant))

	if m.rewarded {
		lines = append(lines, "")
		lines = append(lines, theme.Reward.Render(fmt.Sprintf("+%d XP — nouveau trésor exploré !", progress.XPMythologyViewed)))
	}

	return theme.Card.Width(cw+4).Render(strings.Join(lines, "\n"))
}

func (m *MythologyScreen) Title() string {
	return "Mythologie"
}

// KeyHints adds the explore key to the footer.
func (m *MythologyScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "n", Description: "Trésor suivant"},
		{Key: "Esc", Description: "Retour"},
	}
}
