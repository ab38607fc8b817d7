package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-kong/internal/kong/levels"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// errInvalidLevels is returned when validation found broken files.
var errInvalidLevels = errors.New("some levels are invalid")

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List or validate level files",
	Long: `Inspect the level set the game plays: levelNN files (NN from 00 to 99)
in YAML, text grid or Tiled TMX format.

Examples:
  kong levels list
  kong levels list --levels-dir ./levels
  kong levels validate
  kong levels validate ./levels/level03.txt`,
}

var levelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List levels in play order",
	Args:  cobra.NoArgs,
	RunE:  runLevelsList,
}

var levelsValidateCmd = &cobra.Command{
	Use:   "validate [file...]",
	Short: "Check level files",
	Long: `Load every level (or only the given files) and report problems:
unknown symbols, ragged rows, grids smaller than 3x3 and missing or
duplicate player starts.`,
	RunE: runLevelsValidate,
}

func init() {
	for _, cmd := range []*cobra.Command{levelsListCmd, levelsValidateCmd} {
		cmd.Flags().StringVar(&flagLevelsDir, "levels-dir", "", "Level directory (default: built-in levels)")
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config (YAML or TOML)")
	}
	levelsCmd.AddCommand(levelsListCmd)
	levelsCmd.AddCommand(levelsValidateCmd)
}

func runLevelsList(cmd *cobra.Command, _ []string) error {
	infos, err := levelLoader().List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(infos) == 0 {
		fmt.Fprintln(out, "No levels found.")
		return nil
	}

	fmt.Fprintln(out, levelTable(infos))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'kong play --level <n>' to start on a level.")
	return nil
}

// levelTable renders level infos as a bordered table.
func levelTable(infos []levels.Info) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("#", "Name", "Size", "File", "Status").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	for _, info := range infos {
		size, status := "-", okStyle.Render("ok")
		if info.Err != nil {
			status = errStyle.Render("broken")
		} else {
			size = fmt.Sprintf("%dx%d", info.Width, info.Height)
		}
		t.Row(fmt.Sprintf("%02d", info.Index), info.Name, size, filepath.Base(info.File), status)
	}
	return t.Render()
}

func runLevelsValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	bad := 0

	report := func(name string, err error) {
		if err != nil {
			bad++
			fmt.Fprintf(out, "%s %s: %v\n", errStyle.Render("FAIL"), name, err)
			return
		}
		fmt.Fprintf(out, "%s %s\n", okStyle.Render(" ok "), name)
	}

	if len(args) > 0 {
		for _, file := range args {
			_, err := levels.Dir(filepath.Dir(file)).LoadFile(filepath.Base(file))
			report(file, err)
		}
	} else {
		infos, err := levelLoader().List()
		if err != nil {
			return err
		}
		for _, info := range infos {
			report(info.File, info.Err)
		}
	}

	if bad > 0 {
		return fmt.Errorf("%w: %d failed", errInvalidLevels, bad)
	}
	return nil
}
