// kong is a tile platformer for the terminal: climb ladders, dodge barrels
// and chase Kong to the top of every level.
//
// Usage:
//
//	kong play                - Play from the configured start level
//	kong menu                - Pick a start level, then play
//	kong levels list         - List level files
//	kong levels validate     - Check level files and report errors
//	kong scores              - Show high scores
//	kong config              - Print the default config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/kong.db)
//	--log <path>    - Write a log file while playing
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-kong/internal/kong"
	"github.com/vovakirdan/tui-kong/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
	flagVerbose bool
)

// logger is configured by the root command before any subcommand runs.
var logger = log.New(io.Discard)

// logFile is closed when the command finishes.
var logFile *os.File

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kong",
	Short: "Kong - a terminal tile platformer",
	Long: `Kong is a tile platformer played in the terminal. Climb ladders,
jump over barrels, burp at enemies and reach Kong to clear each level.

Available commands:
  play     - Play directly
  menu     - Pick a start level interactively
  levels   - List or validate level files
  scores   - View high scores
  config   - Print the default or effective config

Examples:
  kong play
  kong play --difficulty hard
  kong menu
  kong levels list --levels-dir ./levels
  kong scores`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return setupLogger()
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogger opens the log file if one was requested. The game screen owns
// the terminal, so without --log nothing is written.
func setupLogger() error {
	var w io.Writer = io.Discard
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		w = f
	}

	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "kong",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	kong.SetLogger(logger)
	return nil
}

// openStore opens the score database. Play continues without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "db", flagDBPath, "err", err)
		return nil
	}
	return store
}
