package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"roboshep/game/manager"
	"roboshep/store"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func newScoresCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "scores",
		Short: "List the best recorded games",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Scores.DatabasePath == "" {
				return errors.New("no score database configured (scores.database_path)")
			}
			if !cmd.Flags().Changed("limit") {
				limit = cfg.Scores.Top
			}

			s, err := store.Open(cfg.Scores.DatabasePath)
			if err != nil {
				return err
			}
			defer s.Close()

			records, err := s.Top(cmd.Context(), limit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderScores(records))
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of games to list")
	return cmd
}

func renderScores(records []manager.Record) string {
	if len(records) == 0 {
		return "No games recorded yet."
	}

	rows := make([][]string, 0, len(records))
	for i, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Length),
			r.Cause,
			r.Duration().Round(100 * time.Millisecond).String(),
			r.EndTime.Format("2006-01-02 15:04"),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Score", "Length", "Cause", "Time", "Played").
		Rows(rows...).
		String()
}
