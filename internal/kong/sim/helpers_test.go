package sim

import (
	"fmt"
	"testing"
)

var testLegend = map[rune]Tile{
	'.': TileEmpty,
	'#': TileFloor,
	'H': TileLadder,
	'@': TilePlayer,
	'b': TileBonfire,
	'f': TileFireball,
	'k': TileKoopa,
	'e': TileExtraLife,
	'g': TileGarlic,
	'<': TileKongLeft,
	'>': TileKongRight,
}

// layoutOf builds a layout from rows written top row first.
func layoutOf(rows ...string) Layout {
	h := len(rows)
	w := len(rows[0])
	tiles := make([][]Tile, h)
	for i, row := range rows {
		y := h - 1 - i
		tiles[y] = make([]Tile, w)
		for x, ch := range row {
			t, ok := testLegend[ch]
			if !ok {
				panic(fmt.Sprintf("unknown test tile %q", ch))
			}
			tiles[y][x] = t
		}
	}
	return Layout{Name: "test", Width: w, Height: h, Tiles: tiles}
}

type testRig struct {
	world *World
	tally *Tally
	cues  *CueLog
	keys  *KeyQueue
	view  *recordingPresenter
}

func newRig(t *testing.T, rows ...string) *testRig {
	t.Helper()
	rig := &testRig{
		tally: &Tally{Lives: 3},
		cues:  &CueLog{},
		keys:  NewKeyQueue(0),
		view:  &recordingPresenter{},
	}
	w, err := NewWorld(layoutOf(rows...), Deps{
		Audio:     rig.cues,
		Input:     rig.keys,
		Session:   rig.tally,
		Presenter: rig.view,
		Seed:      1,
	})
	if err != nil {
		t.Fatalf("NewWorld() failed: %v", err)
	}
	rig.world = w
	return rig
}

func (r *testRig) press(keys ...Key) {
	for _, k := range keys {
		r.keys.Push(k)
	}
}

func (r *testRig) advance(n int) Status {
	s := StatusContinue
	for iter := 0; iter < n; iter++ {
		s = r.world.Advance()
	}
	return s
}

func (r *testRig) first(kind Kind) *Entity {
	for _, e := range r.world.Entities() {
		if e.Kind == kind {
			return e
		}
	}
	return nil
}

type recordingPresenter struct {
	NopPresenter
	removed []*Entity
}

func (p *recordingPresenter) Removed(e *Entity) { p.removed = append(p.removed, e) }

func assertPos(t *testing.T, e *Entity, x, y int) {
	t.Helper()
	if e.X != x || e.Y != y {
		t.Fatalf("%s at (%d,%d), expected (%d,%d)", e.Kind, e.X, e.Y, x, y)
	}
}
