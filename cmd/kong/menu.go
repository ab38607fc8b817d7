package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-kong/internal/config"
	"github.com/vovakirdan/tui-kong/internal/kong"
	"github.com/vovakirdan/tui-kong/internal/kong/levels"
	"github.com/vovakirdan/tui-kong/internal/platform/tui"
	"github.com/vovakirdan/tui-kong/internal/storage"
)

var flagUnlockAll bool

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a start level, then play",
	Long: `Start Kong with a level picker. Levels unlock as you reach them;
after a game ends you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play from the selected level
  Tab          - High scores
  Q            - Quit

Examples:
  kong menu
  kong menu --unlock-all
  kong menu --levels-dir ./levels`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
	menuCmd.Flags().BoolVar(&flagUnlockAll, "unlock-all", false, "Allow starting on any level")
}

// levelLoader returns the loader the game will read from.
func levelLoader() *levels.Loader {
	dir := flagLevelsDir
	if dir == "" {
		if cfg, err := config.LoadKong(flagConfig); err == nil {
			dir = cfg.Levels.Dir
		}
	}
	if dir != "" {
		return levels.Dir(dir)
	}
	return levels.Embedded()
}

// menuItems lists the levels with progress from the store applied.
func menuItems(store *storage.Store) ([]tui.MenuItem, error) {
	infos, err := levelLoader().List()
	if err != nil {
		return nil, err
	}

	best := 0
	if store != nil {
		if level, ok, err := store.BestLevel(kong.ID); err != nil {
			logger.Warn("cannot read progress", "err", err)
		} else if ok {
			best = level
		}
	}
	return tui.LevelMenuItems(infos, best, flagUnlockAll), nil
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	// Menu loop
	for {
		items, err := menuItems(store)
		if err != nil {
			return err
		}

		menuResult, err := tui.RunMenu(items, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, kong.ID, "Kong", cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from scoreboard
		}

		kong.SetStartLevel(menuResult.Level)
		if err := playOnce(store, cfg); err != nil {
			return err
		}
	}
}
