// Package kong adapts the Kong simulation to the arcade platform: it owns
// the run (score, lives, level index), feeds keys to the world at the
// configured pace and draws the grid into a core.Screen.
package kong

import (
	"errors"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-kong/internal/config"
	"github.com/vovakirdan/tui-kong/internal/core"
	"github.com/vovakirdan/tui-kong/internal/kong/levels"
	"github.com/vovakirdan/tui-kong/internal/kong/sim"
	"github.com/vovakirdan/tui-kong/internal/registry"
)

// ID is the registry and score-table identifier.
const ID = "kong"

// hudHeight is the number of screen rows above the grid.
const hudHeight = 2

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// selectedStartLevel overrides gameplay.start_level when >= 0
var selectedStartLevel = -1

// levelsDir overrides levels.dir when non-empty
var levelsDir string

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetStartLevel sets the level index a run starts on. Negative means the
// configured default.
func SetStartLevel(index int) {
	selectedStartLevel = index
}

// SetLevelsDir reads levels from a directory instead of the embedded set.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Options overrides what New would otherwise take from the package
// settings. Zero fields fall back to them.
type Options struct {
	Config *config.KongConfig
	Source sim.LevelSource
	Logger *log.Logger
}

// Game implements the Kong platformer.
type Game struct {
	opts Options

	cfg    config.KongConfig
	source sim.LevelSource
	logger *log.Logger
	pace   *config.Pace
	colors map[sim.Kind]core.Color

	rng     *rand.Rand
	world   *sim.World
	session *Session
	audio   *Audio
	keys    *sim.KeyQueue

	tick      uint64
	simTicker int
	status    sim.Status
	loadErr   error

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver bool
	won      bool
	paused   bool
	tooSmall bool

	onLevelCleared func(level int)
}

// New creates a Kong game configured from the package settings.
func New() *Game {
	return &Game{}
}

// NewWithOptions creates a Kong game with explicit collaborators.
func NewWithOptions(opts Options) *Game {
	return &Game{opts: opts}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Kong" }

// OnLevelCleared registers a callback run with the index of every level the
// player finishes.
func (g *Game) OnLevelCleared(fn func(level int)) {
	g.onLevelCleared = fn
}

// Reset initializes/restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.cfg = g.loadConfig()
	g.logger = g.opts.Logger
	if g.logger == nil {
		g.logger = logger
	}
	g.source = g.levelSource()
	g.pace = config.NewPace(g.cfg.Timing)
	g.pace.SetEnabled(!config.IsFixedPreset(difficultyPreset))
	g.colors = kindColors(g.cfg.Colors)

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tick = 0
	g.simTicker = 0
	g.gameOver = false
	g.won = false
	g.paused = false
	g.tooSmall = false
	g.loadErr = nil
	g.screenW = runtime.ScreenW
	g.screenH = runtime.ScreenH

	start := g.cfg.Gameplay.StartLevel
	if selectedStartLevel >= 0 && g.opts.Config == nil {
		start = selectedStartLevel
	}
	g.session = newSession(g.cfg.Gameplay.Lives, start)
	g.audio = newAudio(g.logger)
	g.keys = sim.NewKeyQueue(g.cfg.Timing.KeyBuffer)

	g.loadLevel()
}

func (g *Game) loadConfig() config.KongConfig {
	if g.opts.Config != nil {
		return *g.opts.Config
	}
	cfg, err := config.LoadKong(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultKongConfig()
	}
	if difficultyPreset != "" {
		config.ApplyKongPreset(&cfg, difficultyPreset)
	}
	return cfg
}

func (g *Game) levelSource() sim.LevelSource {
	if g.opts.Source != nil {
		return g.opts.Source
	}
	dir := g.cfg.Levels.Dir
	if levelsDir != "" {
		dir = levelsDir
	}
	if dir != "" {
		return levels.Dir(dir)
	}
	return levels.Embedded()
}

func kindColors(names map[string]string) map[sim.Kind]core.Color {
	colors := make(map[sim.Kind]core.Color, len(names))
	for kind := sim.KindPlayer; kind <= sim.KindKong; kind++ {
		if c, ok := core.ParseColor(names[kind.String()]); ok {
			colors[kind] = c
		}
	}
	return colors
}

// loadLevel builds the world for the session's current level.
func (g *Game) loadLevel() {
	g.keys.Reset()
	g.simTicker = 0

	world, status, err := sim.Init(g.source, sim.Deps{
		Audio:     g.audio,
		Input:     g.keys,
		Session:   g.session,
		Seed:      g.rng.Int63(),
		StartAmmo: g.cfg.Gameplay.StartAmmo,
	})
	g.status = status

	switch status {
	case sim.StatusPlayerWon:
		g.logger.Info("all levels cleared", "level", g.session.Level(), "score", g.session.Score())
		g.world = nil
		g.endRun(true)
		return
	case sim.StatusLevelError:
		g.logger.Error("level failed to load", "level", g.session.Level(), "err", err)
		g.world = nil
		g.loadErr = err
		g.endRun(false)
		return
	}

	g.world = world
	g.tooSmall = !g.fits()
	g.logger.Info("level loaded",
		"level", g.session.Level(), "name", world.Name(),
		"size", [2]int{world.Width(), world.Height()}, "lives", g.session.Lives())
}

// fits reports whether the grid and HUD fit on the screen.
func (g *Game) fits() bool {
	if g.world == nil {
		return true
	}
	return g.screenW >= g.world.Width() && g.screenH >= g.world.Height()+hudHeight
}

func (g *Game) endRun(won bool) {
	g.gameOver = true
	g.won = won
}

// Resize adapts to a new screen size without restarting the run.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = !g.fits()
}

// Step advances the game by one platform tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	g.audio.fade()

	// Handle restart
	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.queueKeys(input)

	g.simTicker++
	if g.simTicker < g.pace.SimEvery(g.session.Level()) {
		return core.StepResult{State: g.State()}
	}
	g.simTicker = 0

	g.audio.begin()
	g.status = g.world.Advance()
	g.handleStatus()

	return core.StepResult{State: g.State()}
}

// queueKeys turns movement actions into simulation keys, in press order.
func (g *Game) queueKeys(input core.InputFrame) {
	for _, a := range input.Ordered() {
		key, ok := actionKey(a)
		if !ok {
			continue
		}
		if !g.keys.Push(key) {
			g.logger.Debug("key dropped", "key", key)
		}
	}
}

func actionKey(a core.Action) (sim.Key, bool) {
	switch a {
	case core.ActionLeft:
		return sim.KeyLeft, true
	case core.ActionRight:
		return sim.KeyRight, true
	case core.ActionUp:
		return sim.KeyClimbUp, true
	case core.ActionDown:
		return sim.KeyClimbDown, true
	case core.ActionJump:
		return sim.KeyJump, true
	case core.ActionFire:
		return sim.KeyFire, true
	}
	return 0, false
}

func (g *Game) handleStatus() {
	level := g.session.Level()
	switch g.status {
	case sim.StatusPlayerDied:
		g.logger.Info("player died", "level", level, "lives", g.session.Lives())
		if g.session.Lives() > 0 {
			g.loadLevel()
			return
		}
		g.endRun(false)
	case sim.StatusLevelComplete:
		g.logger.Info("level complete", "level", level, "score", g.session.Score())
		if g.onLevelCleared != nil {
			g.onLevelCleared(level)
		}
		g.session.level++
		g.loadLevel()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score(),
		Level:    g.session.Level(),
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused,
	}
}

// World returns the loaded world, or nil after the run ended.
func (g *Game) World() *sim.World { return g.world }

// Session returns the run state.
func (g *Game) Session() *Session { return g.session }

// Audio returns the cue recorder.
func (g *Game) Audio() *Audio { return g.audio }

// Err returns the level load error that ended the run, if any.
func (g *Game) Err() error { return g.loadErr }

// Malformed reports whether the run ended on a broken level file.
func (g *Game) Malformed() bool {
	return errors.Is(g.loadErr, sim.ErrLevelMalformed) || errors.Is(g.loadErr, sim.ErrNoPlayer)
}
