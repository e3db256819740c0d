// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris play              - Play a game
//	tetris menu              - Start the menu (play, high scores)
//	tetris scores            - Show high scores
//	tetris serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>            - Set tick rate (default: 60)
//	--seed <value>          - Set RNG seed for reproducible piece sequences
//	--db <path>             - Set database path (default: ~/.tetris/scores.db)
//	--config <path>         - Load a custom tetris.yaml
//	--difficulty <preset>   - easy, normal, hard or fixed
//	--log-level <level>     - debug, info, warn, error
//	--log-file <path>       - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

// logger is built from --log-level and --log-file before any command runs.
var (
	logger  = log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - falling blocks in your terminal",
	Long: `Tetris is a terminal falling-block puzzle game.

Available commands:
  play     - Start a game directly
  menu     - Menu with play and high scores
  scores   - Print high scores
  serve    - Start SSH server for remote play

Examples:
  tetris play
  tetris play --difficulty hard
  tetris menu --seed 42
  tetris serve --ssh :2222
  tetris scores --limit 5`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetris/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tetris.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup builds the logger and validates global flags.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		logger = log.NewWithOptions(f, log.Options{ReportTimestamp: true})
	}
	logger.SetLevel(level)
	config.SetLogger(logger)

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if !config.ValidPreset(flagDifficulty) {
		return fmt.Errorf("unknown --difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	return nil
}

// tuiLogger is the logger handed to full-screen programs. Writing to the
// terminal would corrupt the screen, so without --log-file it discards.
func tuiLogger() *log.Logger {
	if logFile == nil {
		return log.New(io.Discard)
	}
	return logger
}

// loadGameConfig loads, presets and installs the game configuration.
// Configuration errors are fatal.
func loadGameConfig() (config.TetrisConfig, error) {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyTetrisPreset(&cfg, config.DifficultyPreset(flagDifficulty))
	if err := config.Validate(cfg); err != nil {
		return cfg, err
	}

	logger.Debug("config loaded",
		"board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height),
		"fall_interval", cfg.Timing.InitialFallInterval,
		"leveling", cfg.Timing.Leveling,
	)
	tetris.SetConfig(cfg)
	return cfg, nil
}
