package cmd

import (
	"errors"
	"fmt"

	"github.com/abhisek/culturia/internal/offline"
	"github.com/spf13/cobra"
)

var offlineCmd = &cobra.Command{
	Use:   "offline",
	Short: "Manage the offline content bundle",
}

var offlineDownloadCmd = &cobra.Command{
	Use:   "download [section]",
	Short: "Save content for offline use",
	Long:  "Save all content for offline use, or a single section (works, mythology, questions, news).",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		m := offline.NewManager(st)
		if len(args) == 1 {
			s := offline.Section(args[0])
			if err := m.Download(s); err != nil {
				return err
			}
			fmt.Printf("Saved section %s.\n", s)
			return nil
		}

		b, err := m.DownloadAll()
		if err != nil {
			return err
		}
		fmt.Printf("Saved %d works, %d mythology items, %d questions, %d news entries.\n",
			len(b.Works), len(b.Mythology), len(b.Questions), len(b.News))
		return nil
	},
}

var offlineStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show offline bundle status",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		m := offline.NewManager(st)
		b, err := m.Bundle()
		if errors.Is(err, offline.ErrNotDownloaded) {
			saved := 0
			for _, s := range offline.AllSections() {
				if m.Available(s) {
					fmt.Printf("Section %s saved.\n", s)
					saved++
				}
			}
			if saved == 0 {
				fmt.Println("No offline content saved. Run: culturia offline download")
			} else {
				fmt.Println("Bundle incomplete. Run: culturia offline download")
			}
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Printf("Bundle: %d works, %d mythology items, %d questions, %d news entries.\n",
			len(b.Works), len(b.Mythology), len(b.Questions), len(b.News))
		if at, ok := m.DownloadedAt(); ok {
			fmt.Printf("Saved at %s.\n", at.Local().Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var offlineClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the offline bundle",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := offline.NewManager(st).Clear(); err != nil {
			return err
		}
		fmt.Println("Offline bundle removed.")
		return nil
	},
}

func init() {
	offlineCmd.AddCommand(offlineDownloadCmd)
	offlineCmd.AddCommand(offlineStatusCmd)
	offlineCmd.AddCommand(offlineClearCmd)
}
