package cmd

import (
	"fmt"

	"github.com/abhisek/culturia/internal/badges"
	"github.com/abhisek/culturia/internal/progress"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progression statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		s := progress.NewLedger(st).Stats()
		lvl := s.CurrentLevel()

		fmt.Printf("Niveau        %d (%s)\n", lvl.Level, lvl.Title)
		fmt.Printf("XP            %d", s.XP)
		if next, ok := progress.NextLevel(s.XP); ok {
			fmt.Printf("  (%d%% vers %s)", s.LevelProgress(), next.Title)
		}
		fmt.Println()
		fmt.Printf("Série         %d jours\n", s.StreakDays)
		fmt.Printf("Quiz du jour  %d terminés, score moyen %d%%\n",
			s.DailyQuizzesCompleted, s.AverageScorePercent())
		fmt.Printf("Réponses      %d justes sur %d\n", s.CorrectAnswers, s.TotalAnswers)
		fmt.Printf("Œuvres vues   %d\n", s.WorksViewed)
		fmt.Printf("Mythologie    %d\n", s.MythologyViewed)

		earned := badges.Earned(s)
		if len(earned) > 0 {
			fmt.Println("\nBadges :")
			for _, b := range earned {
				fmt.Printf("  %s %s — %s\n", b.Icon, b.Name, b.Description)
			}
		}
		return nil
	},
}
