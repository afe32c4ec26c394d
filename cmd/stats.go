package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/escriba/internal/store"
	"github.com/abhisek/escriba/internal/tags"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recent rounds and error-tag totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()

		rounds, err := s.EventRepo().RecentRounds(ctx, limit)
		if err != nil {
			return fmt.Errorf("query rounds: %w", err)
		}
		if len(rounds) == 0 {
			fmt.Println("No rounds recorded yet.")
			return nil
		}

		fmt.Println("Recent Rounds")
		fmt.Println(strings.Repeat("─", 78))
		fmt.Printf("%-19s  %-12s  %5s  %6s  %5s  %s\n",
			"When", "Theme", "Level", "Score", "Wrong", "Focus")
		fmt.Println(strings.Repeat("─", 78))
		for _, r := range rounds {
			fmt.Printf("%-19s  %-12s  %5d  %6d  %5d  %s\n",
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				r.Theme, r.Level, r.Score, r.Wrong, r.FocusTag)
		}

		counts, err := s.EventRepo().TagCounts(ctx)
		if err != nil {
			return fmt.Errorf("query tag counts: %w", err)
		}
		if len(counts) == 0 {
			return nil
		}

		type row struct {
			tag   string
			count int
		}
		rows := make([]row, 0, len(counts))
		for t, c := range counts {
			rows = append(rows, row{t, c})
		}
		sort.Slice(rows, func(i, j int) bool {
			if rows[i].count != rows[j].count {
				return rows[i].count > rows[j].count
			}
			return rows[i].tag < rows[j].tag
		})

		fmt.Println()
		fmt.Println("Error Tags (all time)")
		fmt.Println(strings.Repeat("─", 48))
		for _, r := range rows {
			label := tags.Label(tags.Tag(r.tag))
			fmt.Printf("%-28s  %5d\n", label, r.count)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 15, "Number of rounds to show")
}
