package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bomber/internal/config"
	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber"
	"github.com/vovakirdan/tui-bomber/internal/platform/audio"
	"github.com/vovakirdan/tui-bomber/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagNoAudio    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing right away.

Controls:
  Arrows, ZQSD or WASD  - Move
  Space/Enter           - Drop a bomb
  P/Esc                 - Pause
  M                     - Mute the soundtrack
  +/-, mouse wheel      - Zoom
  R                     - Restart
  B                     - Back (when paused or after game over)
  Ctrl+S                - Save a text screenshot
  Ctrl+C                - Quit

Difficulty options:
  easy   - Fewer enemies, more time, mostly random enemies
  normal - The configured game
  hard   - More enemies, less time, mostly chasing enemies
  fixed  - No progression: every level has the base roster and time

Examples:
  bomber play
  bomber play --difficulty hard
  bomber play --level 5 --no-audio
  bomber play --config ./my-bomber.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// addGameFlags registers the flags shared by play and menu.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().IntVar(&flagLevel, "level", 0, "Starting level (0 = configured start level)")
	cmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Disable the soundtrack")
}

// loadGameConfig loads the YAML config and applies --difficulty when set.
func loadGameConfig(difficulty string) (config.BomberConfig, error) {
	cfg, err := config.LoadBomber(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagLevel < 0 || flagLevel > cfg.Progression.MaxLevel {
		return cfg, fmt.Errorf("invalid --level %d: must be between 0 (configured start) and %d", flagLevel, cfg.Progression.MaxLevel)
	}

	if difficulty == "" {
		difficulty = cfg.Difficulty.Preset
	}
	if difficulty == "" {
		difficulty = string(config.DifficultyNormal)
	}
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyBomberPreset(&cfg, preset)
	return cfg, nil
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// startAudio initializes the soundtrack unless disabled. Failures are
// logged and the game runs silently.
func startAudio(l *log.Logger) *audio.Player {
	if flagNoAudio {
		return nil
	}
	player := audio.NewPlayer(l)
	if err := player.Initialize(); err != nil {
		l.Warn("audio disabled", "error", err)
		return nil
	}
	return player
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig(flagDifficulty)
	if err != nil {
		return err
	}

	game := bomber.NewWithConfig(cfg, flagLevel)
	store := openStore()
	defer closeStore(store)

	uiLog, closeLog := uiLogger()
	defer closeLog()

	player := startAudio(uiLog)
	if player != nil {
		defer player.Close()
	}

	opts := []tui.Option{tui.WithLogger(uiLog)}
	if player != nil {
		opts = append(opts, tui.WithAudio(player))
	}

	if _, err := tui.Run(game, store, runtimeConfig(), opts...); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
