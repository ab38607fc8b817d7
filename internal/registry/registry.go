// Package registry maps game IDs to factories. Kong registers itself from
// init(); cmd/kong creates a fresh instance for every run so a restarted
// session never shares state with the previous one.
package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-kong/internal/core"
)

// ErrUnknownGame is returned by Create for an ID nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is what the TUI platform drives once per frame: Step with the
// frame's actions, then Render into the screen buffer.
type Game interface {
	ID() string    // Storage and CLI key, e.g. "kong"
	Title() string // Shown on the scoreboard

	// Reset starts a new run sized to cfg, seeded with cfg.Seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one platform tick. Actions arrive in press order.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into dst.
	Render(dst *core.Screen)

	// State reports score, level and whether the run is over.
	State() core.GameState
}

// Factory builds a game in its pre-Reset state.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
)

// Register adds f under id. Registering an ID twice is a programming error
// and panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := factories[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
}

// Create returns a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return f(), nil
}
