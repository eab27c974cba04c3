package cmd

import (
	"fmt"

	"github.com/abhisek/culturia/internal/progress"
	"github.com/abhisek/culturia/internal/store"
	"github.com/abhisek/culturia/internal/viewed"
	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset all progression data",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			fmt.Println("This erases XP, streak, viewed content and quiz history.")
			fmt.Println("Run again with --yes to confirm.")
			return nil
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := progress.NewLedger(st).Reset(); err != nil {
			return err
		}
		tracker := viewed.NewTracker(st)
		for _, d := range []viewed.Domain{viewed.Works, viewed.Mythology} {
			if err := tracker.Reset(d); err != nil {
				return err
			}
		}
		for _, key := range []string{
			store.KeyDailyQuizState,
			store.KeyDailyWork,
			store.KeyDailyMythology,
		} {
			if err := st.Delete(key); err != nil {
				return err
			}
		}
		archived, err := st.Keys(store.QuizArchivePrefix)
		if err != nil {
			return err
		}
		for _, key := range archived {
			if err := st.Delete(key); err != nil {
				return err
			}
		}

		fmt.Println("All progression data reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "Confirm the reset")
}
