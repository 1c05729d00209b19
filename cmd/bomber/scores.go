package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bomber/internal/config"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber"
	"github.com/vovakirdan/tui-bomber/internal/registry"
	"github.com/vovakirdan/tui-bomber/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [preset]",
	Short: "Show high scores for a difficulty",
	Long: `Display the top high scores and statistics for a difficulty preset
(easy, normal, hard or fixed). The preset defaults to normal.

Examples:
  bomber scores
  bomber scores hard
  bomber scores fixed --limit 20
  bomber scores easy --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every score of the preset")
}

func runScores(_ *cobra.Command, args []string) error {
	name := string(config.DifficultyNormal)
	if len(args) == 1 {
		name = args[0]
	}
	preset, err := config.ParsePreset(name)
	if err != nil {
		return err
	}
	gameID := bomber.VariantID(preset)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer closeStore(store)

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Printf("Cleared scores for %s\n", game.Title())
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'bomber play --difficulty %s' to set the first high score!\n", preset)
		return nil
	}

	printScores(scores)

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	fmt.Println()
	fmt.Printf("Games: %d  Best: %d  Best level: %d  Average: %.1f\n",
		stats.GamesCount, stats.HighScore, stats.BestLevel, stats.AvgScore)
	return nil
}

func printScores(scores []storage.ScoreEntry) {
	rows := make([][]string, len(scores))
	for i, entry := range scores {
		rows[i] = []string{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", entry.Score),
			fmt.Sprintf("%d", entry.Level),
			entry.CreatedAt.Local().Format("2006-01-02 15:04"),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Rank", "Score", "Level", "Date").
		Rows(rows...)
	fmt.Println(t)
}
