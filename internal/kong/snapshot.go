package kong

import "github.com/vovakirdan/tui-kong/internal/kong/sim"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StateWin         GameStateType = "win"
	StateLevelError  GameStateType = "level_error"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	SimTick  int
	Level    int
	Score    int
	Lives    int
	Ammo     int
	PlayerX  int
	PlayerY  int
	Facing   sim.Facing
	Frozen   int
	Entities int
	Barrels  int
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.loadErr != nil:
		state = StateLevelError
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:  g.tick,
		Level: g.session.Level(),
		Score: g.session.Score(),
		Lives: g.session.Lives(),
		State: state,
	}
	if g.world != nil {
		p := g.world.Player()
		snap.SimTick = g.world.Tick()
		snap.Ammo = p.Ammo
		snap.PlayerX = p.X
		snap.PlayerY = p.Y
		snap.Facing = p.Facing
		snap.Frozen = p.Frozen
		snap.Entities = len(g.world.Entities())
		snap.Barrels = g.world.Count(sim.KindBarrel)
	}
	return snap
}
