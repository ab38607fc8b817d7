package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-kong/internal/config"
	"github.com/vovakirdan/tui-kong/internal/core"
	"github.com/vovakirdan/tui-kong/internal/kong"
	"github.com/vovakirdan/tui-kong/internal/platform/tui"
	"github.com/vovakirdan/tui-kong/internal/registry"
	"github.com/vovakirdan/tui-kong/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagLevelsDir  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Kong",
	Long: `Start playing from the configured start level.

Controls:
  Left/Right, A/D  - Turn, then walk
  Up/Down, W/S     - Climb ladders
  Space            - Jump
  Tab/F            - Burp (needs garlic)
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives, starting burps and a slower pace
  normal - Config values as written
  hard   - Fewer lives, faster pace that speeds up every level
  fixed  - Config values with no per-level speedup

Examples:
  kong play
  kong play --difficulty easy
  kong play --level 2
  kong play --levels-dir ./levels
  kong play --config ./my-kong.toml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().IntVar(&flagLevel, "level", -1, "Start level index (default from config)")
}

// addGameFlags registers the flags shared by play and menu.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config (YAML or TOML)")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagLevelsDir, "levels-dir", "", "Read levels from this directory instead of the built-in set")
}

// applyGameFlags hands the shared flags to the game package before a game
// is created.
func applyGameFlags() error {
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		return fmt.Errorf("unknown difficulty %q (expected easy, normal, hard or fixed)", flagDifficulty)
	}
	kong.SetConfigPath(flagConfig)
	kong.SetDifficultyPreset(flagDifficulty)
	kong.SetLevelsDir(flagLevelsDir)
	return nil
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}
	kong.SetStartLevel(flagLevel)

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := playOnce(store, runtimeConfig()); err != nil {
		return err
	}
	if store != nil {
		if best, err := store.HighScore(kong.ID); err == nil && best > 0 {
			fmt.Printf("High score: %d\n", best)
		}
	}
	return nil
}

// playOnce runs one game session until the player quits.
func playOnce(store *storage.Store, cfg core.RuntimeConfig) error {
	game, err := registry.Create(kong.ID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	logger.Info("starting", "fps", cfg.TickRate, "seed", cfg.Seed, "size", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))
	if err := tui.Run(game, store, logger, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
