// Package formats provides the level file parsers for Kong.
// Every format produces the same Level: a grid of legend symbols.
package formats

import (
	"errors"
	"strings"
)

// Legend symbols shared by every format.
const (
	SymEmpty     = '.'
	SymFloor     = '#'
	SymLadder    = 'H'
	SymPlayer    = '@'
	SymBonfire   = 'b'
	SymFireball  = 'f'
	SymKoopa     = 'k'
	SymExtraLife = 'e'
	SymGarlic    = 'g'
	SymKongLeft  = '<'
	SymKongRight = '>'
)

// ErrEmpty is returned when a file contains no grid rows.
var ErrEmpty = errors.New("no grid rows")

// Level is a parsed level. Rows are written top row first.
type Level struct {
	Name   string
	Author string
	Rows   []string
}

// ParseText parses the plain grid format. Lines starting with ';' are
// comments; "; name: ..." and "; author: ..." set the metadata.
func ParseText(data []byte) (Level, error) {
	var lvl Level
	var rows []string

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.HasPrefix(line, ";") {
			key, value, ok := strings.Cut(strings.TrimSpace(line[1:]), ":")
			if !ok {
				continue
			}
			switch strings.TrimSpace(key) {
			case "name":
				lvl.Name = strings.TrimSpace(value)
			case "author":
				lvl.Author = strings.TrimSpace(value)
			}
			continue
		}
		rows = append(rows, line)
	}

	lvl.Rows = trimBlank(rows)
	if len(lvl.Rows) == 0 {
		return Level{}, ErrEmpty
	}
	return lvl, nil
}

// trimBlank drops empty lines around the grid. A row of spaces is a row of
// empty tiles and stays, as do empty lines inside the grid, which fail
// validation as ragged rows.
func trimBlank(rows []string) []string {
	for len(rows) > 0 && rows[0] == "" {
		rows = rows[1:]
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return rows
}

// FormatExtensions returns supported file extensions in lookup order.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".txt", ".tmx"}
}
