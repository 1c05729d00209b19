// bomber is a terminal bomber game: clear each maze of enemies with bombs
// before the timer runs out.
//
// Usage:
//
//	bomber list              - List difficulty variants
//	bomber play              - Play a game
//	bomber menu              - Pick a difficulty interactively
//	bomber serve             - Start SSH server for remote play
//	bomber scores [preset]   - Show high scores for a difficulty
//	bomber simulate          - Run a headless game and print its digest
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <dsn>           - SQLite path or postgres:// URL (default: ~/.bomber/scores.db)
//	--lang <code>        - HUD language: en or fr (default: from $LANG)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bomber/internal/i18n"
	"github.com/vovakirdan/tui-bomber/internal/storage"

	// Import the game to register its variants
	_ "github.com/vovakirdan/tui-bomber/internal/games/bomber"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLang     string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "bomber",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bomber",
	Short: "Bomber - blast your way through a maze in your terminal",
	Long: `Bomber is a terminal maze game. Drop bombs to break walls and
defeat every enemy on the level before the timer runs out.

Available commands:
  list      - Show the difficulty variants
  play      - Play directly
  menu      - Interactive difficulty picker
  serve     - Start SSH server for remote play
  scores    - View high scores
  simulate  - Headless run for testing and replays

Examples:
  bomber play
  bomber play --difficulty hard --level 3
  bomber menu --lang fr
  bomber serve --ssh :2222
  bomber scores easy
  bomber simulate --seed 42 --ticks 5000 --script random`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Scores database: SQLite path or postgres:// URL")
	rootCmd.PersistentFlags().StringVar(&flagLang, "lang", "", "HUD language (en, fr); defaults to $LANG")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}

// setup applies the global flags shared by every command.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)

	if flagFPS <= 0 {
		return fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
	}

	lang := flagLang
	if lang == "" {
		lang = os.Getenv("LANG")
	}
	if lang != "" {
		if err := i18n.SetLanguage(lang); err != nil {
			if flagLang != "" {
				return err
			}
			// An unsupported $LANG falls back to English
			logger.Debug("unsupported locale, using English", "lang", lang)
		}
	}
	return nil
}

// openStore opens the scores database. Play continues without it.
func openStore() storage.ScoreStore {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "db", flagDBPath, "error", err)
		return nil
	}
	return store
}

func closeStore(store storage.ScoreStore) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("could not close scores database", "error", err)
	}
}

// uiLogger returns a logger for use while the alternate screen is active.
// Writing to the terminal would corrupt the display, so it appends to
// ~/.bomber/bomber.log. The returned func closes the file.
func uiLogger() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return log.New(io.Discard), func() {}
	}
	dir := filepath.Join(home, ".bomber")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "bomber.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return log.New(io.Discard), func() {}
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "bomber",
		Level:           logger.GetLevel(),
	})
	return l, func() { _ = f.Close() }
}
