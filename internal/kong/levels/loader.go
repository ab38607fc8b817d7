// Package levels loads Kong level files. Files are named levelNN with one
// of the supported extensions and are read through an fs.FS, so the same
// loader serves the embedded levels and a directory on disk.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-kong/internal/kong/levels/formats"
	"github.com/vovakirdan/tui-kong/internal/kong/sim"
)

//go:embed data
var embedded embed.FS

// MinSize is the smallest accepted grid edge.
const MinSize = 3

var legend = map[rune]sim.Tile{
	formats.SymEmpty:     sim.TileEmpty,
	' ':                  sim.TileEmpty,
	formats.SymFloor:     sim.TileFloor,
	formats.SymLadder:    sim.TileLadder,
	formats.SymPlayer:    sim.TilePlayer,
	formats.SymBonfire:   sim.TileBonfire,
	formats.SymFireball:  sim.TileFireball,
	formats.SymKoopa:     sim.TileKoopa,
	formats.SymExtraLife: sim.TileExtraLife,
	formats.SymGarlic:    sim.TileGarlic,
	formats.SymKongLeft:  sim.TileKongLeft,
	formats.SymKongRight: sim.TileKongRight,
}

// Info describes one level file.
type Info struct {
	Index  int
	Name   string
	File   string
	Width  int
	Height int
	Err    error // set by List when the file does not load
}

// Level is a loaded, validated level.
type Level struct {
	Info
	Author string
	Layout sim.Layout
}

// Loader handles loading levels from a file system.
type Loader struct {
	fsys fs.FS
	dir  string
}

// NewLoader creates a loader reading level files at the root of fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys, dir: "."}
}

// Dir creates a loader over a directory on disk.
func Dir(root string) *Loader {
	return NewLoader(os.DirFS(root))
}

// Embedded returns a loader over the levels compiled into the binary.
func Embedded() *Loader {
	return &Loader{fsys: embedded, dir: "data"}
}

// Stem returns the file name without extension for a level index.
func Stem(index int) string {
	return fmt.Sprintf("level%02d", index)
}

// Load implements sim.LevelSource.
func (l *Loader) Load(index int) (sim.Layout, error) {
	lvl, err := l.LoadLevel(index)
	if err != nil {
		return sim.Layout{}, err
	}
	return lvl.Layout, nil
}

// LoadLevel finds and loads the level with the given index. Extensions are
// tried in formats.FormatExtensions order.
func (l *Loader) LoadLevel(index int) (Level, error) {
	file, err := l.find(index)
	if err != nil {
		return Level{}, err
	}
	lvl, err := l.LoadFile(file)
	if err != nil {
		return Level{}, err
	}
	lvl.Index = index
	return lvl, nil
}

func (l *Loader) find(index int) (string, error) {
	if index < 0 || index > sim.MaxLevel {
		return "", fmt.Errorf("level %d: %w", index, sim.ErrLevelNotFound)
	}
	stem := Stem(index)
	for _, ext := range formats.FormatExtensions() {
		file := path.Join(l.dir, stem+ext)
		_, err := fs.Stat(l.fsys, file)
		if err == nil {
			return file, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("levels: cannot stat %s: %w", file, err)
		}
	}
	return "", fmt.Errorf("%s: %w", stem, sim.ErrLevelNotFound)
}

// LoadFile loads a single level file. Parse and validation failures wrap
// sim.ErrLevelMalformed.
func (l *Loader) LoadFile(file string) (Level, error) {
	parsed, err := l.parse(file)
	if err != nil {
		return Level{}, fmt.Errorf("%w: %s: %w", sim.ErrLevelMalformed, file, err)
	}

	stem := strings.TrimSuffix(path.Base(file), path.Ext(file))
	name := parsed.Name
	if name == "" {
		name = stem
	}

	layout, err := Build(name, parsed.Rows)
	if err != nil {
		return Level{}, fmt.Errorf("%s: %w", file, err)
	}

	index, _ := parseStem(stem)
	return Level{
		Info: Info{
			Index:  index,
			Name:   name,
			File:   file,
			Width:  layout.Width,
			Height: layout.Height,
		},
		Author: parsed.Author,
		Layout: layout,
	}, nil
}

func (l *Loader) parse(file string) (formats.Level, error) {
	ext := strings.ToLower(path.Ext(file))
	if ext == ".tmx" {
		return formats.ParseTMX(l.fsys, file)
	}

	data, err := fs.ReadFile(l.fsys, file)
	if err != nil {
		return formats.Level{}, fmt.Errorf("reading file: %w", err)
	}
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	case ".txt":
		return formats.ParseText(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}

// List returns every levelNN file the loader would pick, sorted by index.
// Files that fail to load are included with Info.Err set.
func (l *Loader) List() ([]Info, error) {
	entries, err := fs.ReadDir(l.fsys, l.dir)
	if err != nil {
		return nil, fmt.Errorf("levels: cannot read %s: %w", l.dir, err)
	}

	seen := make(map[int]bool)
	var infos []Info
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		stem := strings.TrimSuffix(entry.Name(), path.Ext(entry.Name()))
		index, ok := parseStem(stem)
		if !ok || seen[index] {
			continue
		}
		seen[index] = true

		lvl, err := l.LoadLevel(index)
		if err != nil {
			infos = append(infos, Info{Index: index, Name: stem, File: path.Join(l.dir, entry.Name()), Err: err})
			continue
		}
		infos = append(infos, lvl.Info)
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Index < infos[j].Index
	})
	return infos, nil
}

// parseStem extracts NN from "levelNN".
func parseStem(stem string) (int, bool) {
	digits, ok := strings.CutPrefix(stem, "level")
	if !ok || len(digits) != 2 {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Build validates rows written top row first and converts them to a
// bottom-up sim.Layout: rectangular, at least MinSize in each direction,
// known symbols only and exactly one player start.
func Build(name string, rows []string) (sim.Layout, error) {
	height := len(rows)
	if height < MinSize {
		return sim.Layout{}, fmt.Errorf("%w: %d rows, need at least %d", sim.ErrLevelMalformed, height, MinSize)
	}
	width := len([]rune(rows[0]))
	if width < MinSize {
		return sim.Layout{}, fmt.Errorf("%w: %d columns, need at least %d", sim.ErrLevelMalformed, width, MinSize)
	}

	tiles := make([][]sim.Tile, height)
	players := 0
	for i, row := range rows {
		y := height - 1 - i
		runes := []rune(row)
		if len(runes) != width {
			return sim.Layout{}, fmt.Errorf("%w: row %d has %d columns, expected %d", sim.ErrLevelMalformed, i+1, len(runes), width)
		}
		tiles[y] = make([]sim.Tile, width)
		for x, r := range runes {
			t, ok := legend[r]
			if !ok {
				return sim.Layout{}, fmt.Errorf("%w: unknown symbol %q at row %d column %d", sim.ErrLevelMalformed, r, i+1, x+1)
			}
			if t == sim.TilePlayer {
				players++
			}
			tiles[y][x] = t
		}
	}

	switch {
	case players == 0:
		return sim.Layout{}, fmt.Errorf("%w: %w", sim.ErrLevelMalformed, sim.ErrNoPlayer)
	case players > 1:
		return sim.Layout{}, fmt.Errorf("%w: %d player starts", sim.ErrLevelMalformed, players)
	}

	return sim.Layout{Name: name, Width: width, Height: height, Tiles: tiles}, nil
}
