package histscreen

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/culturia/internal/quiz"
	"github.com/abhisek/culturia/internal/router"
	"github.com/abhisek/culturia/internal/screen"
	quizscreen "github.com/abhisek/culturia/internal/screens/quizplay"
	"github.com/abhisek/culturia/internal/ui/layout"
	"github.com/abhisek/culturia/internal/ui/theme"
)

const historyLimit = 30

// HistoryScreen lists the archived daily quiz results, newest first. Enter
// replays the selected day's quiz; replays are reward-free, the coordinator
// takes care of that.
type HistoryScreen struct {
	daily    *quiz.Daily
	entries  []quiz.ArchiveEntry
	selected int
	err      error
}

var _ screen.Screen = (*HistoryScreen)(nil)

// New loads the recent archive.
func New(daily *quiz.Daily) *HistoryScreen {
	h := &HistoryScreen{daily: daily}
	h.entries, h.err = daily.History(historyLimit)
	return h
}

func (h *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (h *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if h.selected > 0 {
			h.selected--
		}
	case "down", "j":
		if h.selected < len(h.entries)-1 {
			h.selected++
		}
	case "enter":
		if h.selected >= 0 && h.selected < len(h.entries) {
			date := h.entries[h.selected].Date
			return h, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: quizscreen.NewReplay(h.daily, date)}
			}
		}
	}
	return h, nil
}

func (h *HistoryScreen) View(width, height int) string {
	cw := min(width-6, 64)

	var lines []string
	lines = append(lines, theme.Selected.Render("🗓 Vos derniers quiz"))
	lines = append(lines, "")

	switch {
	case h.err != nil:
		lines = append(lines, theme.Incorrect.Render("Erreur : "+h.err.Error()))
	case len(h.entries) == 0:
		lines = append(lines, theme.Body.Render("Aucun quiz terminé pour l'instant."))
		lines = append(lines, theme.Hint.Render("Le quiz du jour vous attend !"))
	default:
		for i, e := range h.entries {
			note := ""
			if e.Perfect {
				note = "  🎉 sans faute"
			}
			label := fmt.Sprintf("%s    %d/%d%s", e.Date, e.Score, e.TotalQuestions, note)
			if i == h.selected {
				lines = append(lines, theme.Selected.Render("  ▸ "+label))
			} else if e.Perfect {
				lines = append(lines, theme.Correct.Render("    "+label))
			} else {
				lines = append(lines, theme.Body.Render("    "+label))
			}
		}
		lines = append(lines, "")
		lines = append(lines, theme.Hint.Render("Entrée pour rejouer ce quiz (sans récompense)"))
	}

	card := theme.Card.Width(cw + 4).Render(strings.Join(lines, "\n"))
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}

func (h *HistoryScreen) Title() string {
	return "Historique"
}

// KeyHints documents the replay key when the list is non-empty.
func (h *HistoryScreen) KeyHints() []layout.KeyHint {
	if len(h.entries) == 0 {
		return []layout.KeyHint{{Key: "Esc", Description: "Retour"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Parcourir"},
		{Key: "Enter", Description: "Rejouer"},
		{Key: "Esc", Description: "Retour"},
	}
}
