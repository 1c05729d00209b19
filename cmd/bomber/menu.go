package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bomber/internal/games/bomber"
	"github.com/vovakirdan/tui-bomber/internal/platform/tui"
	"github.com/vovakirdan/tui-bomber/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a difficulty.
Tab opens the scoreboard. Press B while paused or after game over
to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play the selected difficulty
  Tab          - Scoreboard
  Esc/Ctrl+C   - Quit

Examples:
  bomber menu
  bomber menu --fps 30
  bomber menu --db postgres://bomber@localhost/bomber`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig("")
	if err != nil {
		return err
	}
	// Registry-created variants start from this config and apply their own preset
	bomber.SetDefaultConfig(cfg)
	bomber.SetStartLevel(flagLevel)

	store := openStore()
	defer closeStore(store)

	uiLog, closeLog := uiLogger()
	defer closeLog()

	player := startAudio(uiLog)
	if player != nil {
		defer player.Close()
	}

	rc := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, rc)
		if err != nil {
			return fmt.Errorf("running menu: %w", err)
		}
		rc = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, rc.ScreenW, rc.ScreenH)
			if sbErr != nil {
				return fmt.Errorf("running scoreboard: %w", sbErr)
			}
			if goBack {
				continue
			}
			return nil
		}

		if menuResult.GameID == "" {
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			return err
		}

		// Every run gets a new seed unless one was given
		if flagSeed == 0 {
			rc.Seed = time.Now().UnixNano()
		}

		opts := []tui.Option{tui.WithLogger(uiLog)}
		if player != nil {
			opts = append(opts, tui.WithAudio(player))
		}
		back, err := tui.Run(game, store, rc, opts...)
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if player != nil {
			// Silence the soundtrack between games
			player.Sync(false, false, false)
		}
		if !back {
			return nil
		}
	}
}
