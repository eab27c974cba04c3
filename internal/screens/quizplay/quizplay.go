package quizplay

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/culturia/internal/progress"
	"github.com/abhisek/culturia/internal/quiz"
	"github.com/abhisek/culturia/internal/router"
	"github.com/abhisek/culturia/internal/screen"
	"github.com/abhisek/culturia/internal/ui/components"
	"github.com/abhisek/culturia/internal/ui/layout"
	"github.com/abhisek/culturia/internal/ui/theme"
)

// QuizScreen plays the daily quiz: one question at a time, the explanation
// after each answer, then the result card. Completion goes through the
// coordinator, which pays the award on the first run of the day only.
type QuizScreen struct {
	daily    *quiz.Daily
	sess     *quiz.Session
	choice   components.MultiChoice
	answered bool
	retake   bool

	done     bool
	stats    progress.Stats
	rewarded bool
	err      error
}

var _ screen.Screen = (*QuizScreen)(nil)

// New starts a session over today's draw.
func New(daily *quiz.Daily) *QuizScreen {
	return start(daily, daily.NewSession(), daily.IsCompletedToday())
}

// NewReplay starts a reward-free session over a past day's draw.
func NewReplay(daily *quiz.Daily, date string) *QuizScreen {
	return start(daily, daily.SessionForDate(date), true)
}

func start(daily *quiz.Daily, sess *quiz.Session, retake bool) *QuizScreen {
	q := &QuizScreen{
		daily:  daily,
		sess:   sess,
		retake: retake,
	}
	if err := q.sess.Start(); err != nil {
		q.err = err
		q.done = true
		return q
	}
	q.loadQuestion()
	return q
}

func (q *QuizScreen) loadQuestion() {
	question, _ := q.sess.Current()
	q.choice = components.NewMultiChoice(
		question.Question,
		question.Options,
		question.CorrectAnswer,
		question.Explanation,
	)
	q.answered = false
}

func (q *QuizScreen) Init() tea.Cmd {
	return nil
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return q, nil
	}

	if q.done {
		if kmsg.String() == "enter" {
			return q, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return q, nil
	}

	if q.answered {
		if kmsg.String() == "enter" {
			if err := q.sess.Advance(); err != nil {
				q.err = err
				q.done = true
				return q, nil
			}
			if q.sess.Phase() == quiz.Completed {
				q.stats, q.rewarded, q.err = q.daily.Complete(q.sess)
				q.done = true
				return q, nil
			}
			q.loadQuestion()
		}
		return q, nil
	}

	var cmd tea.Cmd
	q.choice, cmd = q.choice.Update(msg)
	if q.choice.Submitted {
		if _, err := q.sess.SubmitAnswer(q.choice.ChosenIndex); err != nil {
			q.err = err
			q.done = true
			return q, nil
		}
		q.answered = true
	}
	return q, cmd
}

func (q *QuizScreen) View(width, height int) string {
	var content string
	if q.done {
		content = q.viewResult()
	} else {
		content = q.viewQuestion(width)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (q *QuizScreen) viewQuestion(width int) string {
	question, idx := q.sess.Current()

	head := fmt.Sprintf("%s %s  —  Question %d/%d",
		question.Category.Icon(),
		question.Category.DisplayName(),
		idx+1,
		q.sess.Len(),
	)

	var sections []string
	sections = append(sections, theme.Subtitle.Render(head))
	if q.retake {
		sections = append(sections, theme.Hint.Render("Nouvelle tentative, sans récompense"))
	}
	sections = append(sections, q.choice.View())
	if q.answered {
		sections = append(sections, theme.Hint.Render("Entrée pour continuer"))
	}

	card := theme.Card.Width(min(width-4, 72)).Render(strings.Join(sections, "\n\n"))
	return card
}

func (q *QuizScreen) viewResult() string {
	if q.err != nil {
		return theme.Incorrect.Render("Erreur : " + q.err.Error())
	}

	score := q.sess.Score()
	total := q.sess.Len()

	var lines []string
	lines = append(lines, theme.Title.Render("Quiz terminé !"))
	lines = append(lines, "")
	lines = append(lines, theme.Body.Render(fmt.Sprintf("Score : %d/%d", score, total)))

	if q.rewarded {
		xp := score * progress.XPPerCorrectAnswer
		if q.sess.Perfect() {
			xp += progress.XPPerfectQuizBonus
			lines = append(lines, theme.Correct.Render("Sans faute ! 🎉"))
		}
		lines = append(lines, theme.Reward.Render(fmt.Sprintf("+%d XP", xp)))
		lines = append(lines, theme.Body.Render(fmt.Sprintf("Série : %d jours 🔥", q.stats.StreakDays)))
	} else {
		lines = append(lines, theme.Hint.Render("Quiz déjà validé aujourd'hui, pas de récompense."))
	}

	lines = append(lines, "")
	lines = append(lines, theme.Hint.Render("Entrée pour revenir à l'accueil"))

	return theme.Card.Render(strings.Join(lines, "\n"))
}

func (q *QuizScreen) Title() string {
	return "Quiz du jour"
}

// KeyHints customizes the footer while a question is on screen.
func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.done || q.answered {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continuer"},
			{Key: "Esc", Description: "Retour"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choisir"},
		{Key: "Enter", Description: "Valider"},
		{Key: "Esc", Description: "Retour"},
	}
}
