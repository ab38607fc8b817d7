// Package sim is the Kong actor simulation: entity behaviors and the world
// that owns them, answers grid queries and sequences each tick.
//
// The package has no knowledge of files, terminals or timing. Collaborators
// (level source, audio, input, session, presenter) are interfaces.
package sim

import (
	"errors"
	"fmt"
	"math/rand"
)

// World owns every entity of one loaded level.
type World struct {
	name   string
	width  int
	height int

	entities []*Entity
	pending  []*Entity
	player   *Entity
	nextID   int
	tick     int

	levelComplete bool

	rng     *rand.Rand
	audio   Audio
	input   Input
	session Session
	view    Presenter
}

// Init loads the level selected by the session and builds a world for it.
// A missing level (or an index past MaxLevel) yields StatusPlayerWon; any
// other load or validation failure yields StatusLevelError and the cause.
func Init(src LevelSource, deps Deps) (*World, Status, error) {
	if deps.Session == nil {
		return nil, StatusLevelError, errors.New("sim: session is required")
	}
	index := deps.Session.Level()
	if index < 0 || index > MaxLevel {
		return nil, StatusPlayerWon, nil
	}

	layout, err := src.Load(index)
	if errors.Is(err, ErrLevelNotFound) {
		return nil, StatusPlayerWon, nil
	}
	if err != nil {
		return nil, StatusLevelError, fmt.Errorf("sim: load level %d: %w", index, err)
	}

	w, err := NewWorld(layout, deps)
	if err != nil {
		return nil, StatusLevelError, fmt.Errorf("sim: build level %d: %w", index, err)
	}
	return w, StatusContinue, nil
}

// NewWorld builds a world from a layout. Tiles are scanned bottom row first,
// left to right, which fixes the update order of the initial entities.
func NewWorld(layout Layout, deps Deps) (*World, error) {
	if layout.Width < 2 || layout.Height < 2 {
		return nil, fmt.Errorf("%w: grid %dx%d too small", ErrLevelMalformed, layout.Width, layout.Height)
	}
	if deps.Session == nil {
		return nil, errors.New("sim: session is required")
	}

	w := &World{
		name:    layout.Name,
		width:   layout.Width,
		height:  layout.Height,
		rng:     rand.New(rand.NewSource(deps.Seed)),
		audio:   deps.Audio,
		input:   deps.Input,
		session: deps.Session,
		view:    deps.Presenter,
	}
	if w.audio == nil {
		w.audio = &CueLog{}
	}
	if w.input == nil {
		w.input = NewKeyQueue(0)
	}
	if w.view == nil {
		w.view = NopPresenter{}
	}

	for y := 0; y < layout.Height; y++ {
		for x := 0; x < layout.Width; x++ {
			if err := w.place(layout.At(x, y), x, y); err != nil {
				return nil, err
			}
		}
	}
	if w.player == nil {
		return nil, ErrNoPlayer
	}
	w.player.Ammo = deps.StartAmmo
	return w, nil
}

func (w *World) place(t Tile, x, y int) error {
	switch t {
	case TileEmpty:
	case TileFloor:
		w.add(KindFloor, x, y, FacingNone)
	case TileLadder:
		w.add(KindLadder, x, y, FacingNone)
	case TileBonfire:
		w.add(KindBonfire, x, y, FacingNone)
	case TileExtraLife:
		w.add(KindExtraLife, x, y, FacingNone)
	case TileGarlic:
		w.add(KindGarlic, x, y, FacingNone)
	case TileFireball:
		w.add(KindFireball, x, y, randomFacing(w.rng))
	case TileKoopa:
		w.add(KindKoopa, x, y, randomFacing(w.rng))
	case TileKongLeft:
		w.add(KindKong, x, y, FacingLeft)
	case TileKongRight:
		w.add(KindKong, x, y, FacingRight)
	case TilePlayer:
		if w.player != nil {
			return fmt.Errorf("%w: second player start at (%d,%d)", ErrLevelMalformed, x, y)
		}
		w.player = w.newEntity(KindPlayer, x, y, FacingRight)
	default:
		return fmt.Errorf("%w: unknown tile %d at (%d,%d)", ErrLevelMalformed, t, x, y)
	}
	return nil
}

func (w *World) newEntity(kind Kind, x, y int, f Facing) *Entity {
	w.nextID++
	return newEntity(w.nextID, kind, x, y, f)
}

// add places an entity directly in the live collection (level construction).
func (w *World) add(kind Kind, x, y int, f Facing) *Entity {
	e := w.newEntity(kind, x, y, f)
	w.entities = append(w.entities, e)
	return e
}

// spawn queues an entity created mid-tick. It becomes visible to queries
// and updates only after the end-of-tick merge.
func (w *World) spawn(kind Kind, x, y int, f Facing) *Entity {
	if kind == KindFireball || kind == KindKoopa {
		f = randomFacing(w.rng)
	}
	e := w.newEntity(kind, x, y, f)
	w.pending = append(w.pending, e)
	return e
}

// Advance runs one simulation tick and returns the resulting status.
// A terminal status stops the tick immediately and is returned again by
// every later call.
func (w *World) Advance() Status {
	w.tick++
	w.session.Refresh(HUD{Ammo: w.player.Ammo, Tick: w.tick, Alive: len(w.entities)})

	if s := w.Status(); s.Terminal() {
		return s
	}

	w.updatePlayer()

	// Spawns go to w.pending, so this slice is stable for the whole pass.
	for _, e := range w.entities {
		if s := w.Status(); s.Terminal() {
			return s
		}
		if e.alive {
			w.update(e)
		}
	}

	if s := w.Status(); s.Terminal() {
		return s
	}

	w.sweep()
	return StatusContinue
}

func (w *World) update(e *Entity) {
	switch e.Kind {
	case KindBurp:
		w.updateBurp(e)
	case KindBonfire:
		w.updateBonfire(e)
	case KindFireball:
		w.updateFireball(e)
	case KindKoopa:
		w.updateKoopa(e)
	case KindBarrel:
		w.updateBarrel(e)
	case KindExtraLife, KindGarlic:
		w.updateGoodie(e)
	case KindKong:
		w.updateKong(e)
	}
}

// sweep frees dead entities and merges this tick's spawns.
func (w *World) sweep() {
	live := w.entities[:0]
	for _, e := range w.entities {
		if e.alive {
			live = append(live, e)
			continue
		}
		w.view.Removed(e)
	}
	for i := len(live); i < len(w.entities); i++ {
		w.entities[i] = nil
	}
	for _, e := range w.pending {
		if e.alive {
			live = append(live, e)
		}
	}
	w.entities = live
	w.pending = w.pending[:0]
}

// Status derives the level status: a dead player wins over level completion.
func (w *World) Status() Status {
	if !w.player.alive {
		return StatusPlayerDied
	}
	if w.levelComplete {
		return StatusLevelComplete
	}
	return StatusContinue
}

// Name returns the layout name the world was built from.
func (w *World) Name() string { return w.name }

// Width returns the grid width in tiles.
func (w *World) Width() int { return w.width }

// Height returns the grid height in tiles.
func (w *World) Height() int { return w.height }

// Tick returns the number of Advance calls so far.
func (w *World) Tick() int { return w.tick }

// Player returns the player entity.
func (w *World) Player() *Entity { return w.player }

// Entities returns the live, merged collection in update order.
// The slice must not be modified.
func (w *World) Entities() []*Entity { return w.entities }

// Count returns how many live entities of a kind are in the collection.
func (w *World) Count(kind Kind) int {
	n := 0
	for _, e := range w.entities {
		if e.alive && e.Kind == kind {
			n++
		}
	}
	return n
}
