package cmd

import (
	"fmt"

	"github.com/abhisek/culturia/internal/app"
	"github.com/abhisek/culturia/internal/content"
	"github.com/abhisek/culturia/internal/daily"
	"github.com/abhisek/culturia/internal/discovery"
	"github.com/abhisek/culturia/internal/progress"
	"github.com/abhisek/culturia/internal/quiz"
	"github.com/abhisek/culturia/internal/viewed"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds the services, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	if err := content.Validate(); err != nil {
		return fmt.Errorf("content catalog: %w", err)
	}

	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	ledger := progress.NewLedger(st)
	tracker := viewed.NewTracker(st)
	selector := daily.NewSelector(st, tracker)

	return app.Run(app.Options{
		Ledger:    ledger,
		DailyQuiz: quiz.NewDaily(st, ledger),
		Discovery: discovery.NewService(selector, tracker, ledger),
	})
}
