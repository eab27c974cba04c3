package works

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

// WorksScreen shows the work of the day and lets the user browse further
// unseen works. Opening a work for the first time pays the viewing reward;
// once the whole catalog has been seen, browsing ends on a closing message.
type WorksScreen struct {
	disc *discovery.Service

	work     content.Work
	rewarded bool
	allSeen  bool
	err      error
}

var _ screen.Screen = (*WorksScreen)(nil)

// New opens the screen on the work of the day and settles its reward.
func New(disc *discovery.Service) *WorksScreen {
	w := &WorksScreen{disc: disc}

	work, err := disc.DailyWork()
	if err != nil {
		w.err = err
		return w
	}
	w.show(work)
	return w
}

func (w *WorksScreen) show(work content.Work) {
	w.work = work
	_, rewarded, err := w.disc.ViewWork(work.ID)
	if err != nil {
		w.err = err
		return
	}
	w.rewarded = rewarded
}

func (w *WorksScreen) Init() tea.Cmd {
	return nil
}

func (w *WorksScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return w, nil
	}

	if kmsg.String() == "n" && !w.allSeen && w.err == nil {
		next, ok := w.disc.NextWork([]string{w.work.ID})
		if !ok {
			w.allSeen = true
			return w, nil
		}
		w.show(next)
	}
	return w, nil
}

func (w *WorksScreen) View(width, height int) string {
	var content string
	switch {
	case w.err != nil:
		content = theme.Incorrect.Render("Erreur : " + w.err.Error())
	case w.allSeen:
		content = theme.Card.Render(strings.Join([]string{
			theme.Title.Render("Bravo, tout est lu !"),
			"",
			theme.Body.Render("Vous avez découvert toutes les œuvres du catalogue."),
			theme.Hint.Render("De nouvelles œuvres arrivent régulièrement."),
		}, "\n"))
	default:
		content = w.viewWork(width)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (w *WorksScreen) viewWork(width int) string {
	work := w.work
	cw := min(width-6, 76)

	var lines []string
	lines = append(lines, theme.Subtitle.Render(
		fmt.Sprintf("%s %s  •  %s  •  %d", work.Type.Icon(), work.Type.DisplayName(), work.Genre, work.Year)))
	lines = append(lines, theme.Title.Render(work.Title))
	lines = append(lines, theme.Subtitle.Render("de "+work.Author))
	lines = append(lines, "")
	lines = append(lines, theme.Body.Width(cw).Render(work.Summary))

	if len(work.KeyPoints) > 0 {
		lines = append(lines, "")
		lines = append(lines, theme.Selected.Render("À retenir"))
		for _, p := range work.KeyPoints {
			lines = append(lines, theme.Body.Width(cw).Render("  • "+p))
		}
	}

	if work.Quote != "" {
		lines = append(lines, "")
		lines = append(lines, theme.Quote.Width(cw).Render("« "+work.Quote+" »"))
	}

	lines = append(lines, "")
	lines = append(lines, theme.Hint.Width(cw).Render(work.WhyIntellectual))

	if w.rewarded {
		lines = append(lines, "")
		lines = append(lines, theme.Reward.Render(fmt.Sprintf("+%d XP — première découverte !", progress.XPWorkViewed)))
	}

	return theme.Card.Width(cw+4).Render(strings.Join(lines, "\n"))
}

func (w *WorksScreen) Title() string {
	return "Découverte du jour"
}

// KeyHints adds the browse key to the footer.
func (w *WorksScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "n", Description: "Œuvre suivante"},
		{Key: "Esc", Description: "Retour"},
	}
}
