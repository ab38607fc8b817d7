package sim

import "errors"

// Cue names a fire-and-forget sound effect.
type Cue uint8

const (
	CueJump Cue = iota
	CueFire
	CuePickup
	CueEnemyDefeated
	CuePlayerDefeated
	CueLevelComplete
)

func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueFire:
		return "fire"
	case CuePickup:
		return "pickup"
	case CueEnemyDefeated:
		return "enemy_defeated"
	case CuePlayerDefeated:
		return "player_defeated"
	case CueLevelComplete:
		return "level_complete"
	default:
		return "unknown"
	}
}

// Key is one logical player command.
type Key uint8

const (
	KeyLeft Key = iota
	KeyRight
	KeyJump
	KeyClimbUp
	KeyClimbDown
	KeyFire
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyJump:
		return "jump"
	case KeyClimbUp:
		return "climb_up"
	case KeyClimbDown:
		return "climb_down"
	case KeyFire:
		return "fire"
	default:
		return "unknown"
	}
}

// Audio plays sound cues.
type Audio interface {
	Play(c Cue)
}

// Input yields at most one buffered key per call and never blocks.
type Input interface {
	PollKey() (Key, bool)
}

// HUD is the status data refreshed at the start of every tick.
type HUD struct {
	Ammo  int
	Tick  int
	Alive int
}

// Session owns score, lives and the level index.
type Session interface {
	AddScore(n int)
	IncLives()
	DecLives()
	Level() int
	Refresh(h HUD)
}

// Presenter mirrors entity changes into a view.
type Presenter interface {
	Moved(e *Entity)
	Turned(e *Entity)
	Animated(e *Entity)
	Removed(e *Entity)
}

// NopPresenter ignores every notification.
type NopPresenter struct{}

func (NopPresenter) Moved(*Entity)    {}
func (NopPresenter) Turned(*Entity)   {}
func (NopPresenter) Animated(*Entity) {}
func (NopPresenter) Removed(*Entity)  {}

// Tile is one cell of a level layout.
type Tile uint8

const (
	TileEmpty Tile = iota
	TileFloor
	TileLadder
	TilePlayer
	TileBonfire
	TileFireball
	TileKoopa
	TileExtraLife
	TileGarlic
	TileKongLeft
	TileKongRight
)

// Layout is a parsed level. Tiles are indexed [y][x] with y = 0 the bottom row.
type Layout struct {
	Name   string
	Width  int
	Height int
	Tiles  [][]Tile
}

// At returns the tile at (x, y), or TileEmpty outside the layout.
func (l Layout) At(x, y int) Tile {
	if y < 0 || y >= len(l.Tiles) || x < 0 || x >= len(l.Tiles[y]) {
		return TileEmpty
	}
	return l.Tiles[y][x]
}

// LevelSource loads a level by index.
type LevelSource interface {
	Load(index int) (Layout, error)
}

var (
	// ErrLevelNotFound means no level exists at the index; the run is won.
	ErrLevelNotFound = errors.New("level not found")
	// ErrLevelMalformed means the level exists but cannot be used.
	ErrLevelMalformed = errors.New("level malformed")
	// ErrNoPlayer means the layout has no player start tile.
	ErrNoPlayer = errors.New("level has no player start")
)

// Deps bundles the collaborators a World calls into.
type Deps struct {
	Audio     Audio
	Input     Input
	Session   Session
	Presenter Presenter
	Seed      int64
	StartAmmo int
}
