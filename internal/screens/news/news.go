package news

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/culturia/internal/content"
	"github.com/abhisek/culturia/internal/screen"
	"github.com/abhisek/culturia/internal/ui/layout"
	"github.com/abhisek/culturia/internal/ui/theme"
)

// NewsScreen lists the cultural news feed with the selected article opened
// underneath, plus the trending topics.
type NewsScreen struct {
	items    []content.NewsItem
	popular  []content.PopularItem
	selected int
}

var _ screen.Screen = (*NewsScreen)(nil)

// New creates the news screen over the bundled feeds.
func New() *NewsScreen {
	return &NewsScreen{
		items:   content.NewsItems,
		popular: content.PopularItems,
	}
}

func (n *NewsScreen) Init() tea.Cmd {
	return nil
}

func (n *NewsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return n, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if n.selected > 0 {
			n.selected--
		}
	case "down", "j":
		if n.selected < len(n.items)-1 {
			n.selected++
		}
	}
	return n, nil
}

func (n *NewsScreen) View(width, height int) string {
	cw := min(width-6, 80)

	var lines []string
	lines = append(lines, theme.Selected.Render("📰 Actualités culturelles"))
	lines = append(lines, "")

	for i, item := range n.items {
		label := fmt.Sprintf("%s — %s", item.Date, item.Title)
		if i == n.selected {
			lines = append(lines, theme.Selected.Render("  ▸ "+label))
		} else {
			lines = append(lines, theme.Unselected.Render("    "+label))
		}
	}

	if n.selected >= 0 && n.selected < len(n.items) {
		item := n.items[n.selected]
		lines = append(lines, "")
		lines = append(lines, theme.Body.Width(cw).Render(item.Content))
		lines = append(lines, theme.Hint.Render(fmt.Sprintf("%s  •  %s", item.Source, item.Category)))
	}

	lines = append(lines, "")
	lines = append(lines, theme.Selected.Render("🔥 Tendances"))
	for _, p := range n.popular {
		marker := "  "
		if p.Trending {
			marker = "▲ "
		}
		lines = append(lines, theme.Body.Width(cw).Render(
			fmt.Sprintf("  %s%s — %s", marker, p.Title, p.Description)))
	}

	card := theme.Card.Width(cw + 4).Render(strings.Join(lines, "\n"))
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}

func (n *NewsScreen) Title() string {
	return "Actualités"
}

// KeyHints documents the list navigation.
func (n *NewsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Parcourir"},
		{Key: "Esc", Description: "Retour"},
	}
}
