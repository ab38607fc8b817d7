package formats

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// TMXLayer is the tile layer read from Tiled maps.
const TMXLayer = "tiles"

// TMXKinds maps the "kind" property of tileset tiles to legend symbols.
var TMXKinds = map[string]rune{
	"floor":      SymFloor,
	"ladder":     SymLadder,
	"player":     SymPlayer,
	"bonfire":    SymBonfire,
	"fireball":   SymFireball,
	"koopa":      SymKoopa,
	"extra_life": SymExtraLife,
	"garlic":     SymGarlic,
	"kong_left":  SymKongLeft,
	"kong_right": SymKongRight,
}

// ParseTMX parses a Tiled map. It takes an fs.FS so callers can pass the
// embedded levels or os.DirFS.
func ParseTMX(fsys fs.FS, path string) (Level, error) {
	m, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return Level{}, fmt.Errorf("load TMX %s: %w", path, err)
	}

	for _, layer := range m.Layers {
		if layer.Name != TMXLayer {
			continue
		}
		if len(layer.Tiles) < m.Width*m.Height {
			return Level{}, fmt.Errorf("layer %q holds %d tiles, expected %d", TMXLayer, len(layer.Tiles), m.Width*m.Height)
		}

		rows := make([]string, 0, m.Height)
		for y := 0; y < m.Height; y++ {
			row := make([]rune, m.Width)
			for x := 0; x < m.Width; x++ {
				row[x] = SymEmpty
				tile := layer.Tiles[y*m.Width+x]
				if tile.IsNil() {
					continue
				}

				var kind string
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					kind = tilesetTile.Properties.GetString("kind")
				}
				sym, ok := TMXKinds[kind]
				if !ok {
					return Level{}, fmt.Errorf("tile %d at (%d,%d): unknown kind %q", tile.ID, x, y, kind)
				}
				row[x] = sym
			}
			rows = append(rows, string(row))
		}
		return Level{Rows: rows}, nil
	}

	return Level{}, fmt.Errorf("no %q tile layer in %s", TMXLayer, path)
}
