package kong

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/tui-kong/internal/config"
	"github.com/vovakirdan/tui-kong/internal/core"
	"github.com/vovakirdan/tui-kong/internal/kong/levels"
	"github.com/vovakirdan/tui-kong/internal/kong/sim"
	"github.com/vovakirdan/tui-kong/internal/registry"
)

// kongEscapes: the player starts next to Kong, who climbs out on sim tick 5.
const kongEscapes = `.....
.<...
..@..
#####
`

// bonfireAhead: one step right walks the player into a bonfire.
const bonfireAhead = `.....
.....
.@b..
#####
`

func testConfig() config.KongConfig {
	cfg := config.DefaultKongConfig()
	cfg.Timing.SimEvery = 1
	cfg.Timing.SpeedupPerLevel = 0
	return cfg
}

func newTestGame(t *testing.T, cfg config.KongConfig, files fstest.MapFS) *Game {
	t.Helper()
	g := NewWithOptions(Options{Config: &cfg, Source: levels.NewLoader(files)})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
	return g
}

func level(text string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(text)}
}

func press(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func stepN(g *Game, n int) {
	for iter := 0; iter < n; iter++ {
		g.Step(core.NewInputFrame())
	}
}

func TestRegistered(t *testing.T) {
	g, err := registry.Create(ID)
	if err != nil {
		t.Fatalf("registry.Create(%q) failed: %v", ID, err)
	}
	if g.Title() != "Kong" {
		t.Errorf("Title() = %q, expected %q", g.Title(), "Kong")
	}
	if _, ok := g.(*Game); !ok {
		t.Errorf("registry.Create(%q) returned %T", ID, g)
	}
}

func TestResetLoadsStartLevel(t *testing.T) {
	cfg := testConfig()
	cfg.Gameplay.StartLevel = 1
	g := newTestGame(t, cfg, fstest.MapFS{
		"level00.txt": level(bonfireAhead),
		"level01.txt": level(kongEscapes),
	})

	snap := g.Snapshot()
	if snap.Level != 1 || snap.State != StatePlaying {
		t.Fatalf("Snapshot() = %+v, expected level 1 playing", snap)
	}
	if snap.PlayerX != 2 || snap.PlayerY != 1 {
		t.Errorf("player at (%d,%d), expected (2,1)", snap.PlayerX, snap.PlayerY)
	}
	if snap.Lives != cfg.Gameplay.Lives {
		t.Errorf("Lives = %d, expected %d", snap.Lives, cfg.Gameplay.Lives)
	}
}

func TestDeathReloadsLevel(t *testing.T) {
	g := newTestGame(t, testConfig(), fstest.MapFS{"level00.txt": level(bonfireAhead)})

	g.Step(press(core.ActionRight))

	snap := g.Snapshot()
	if snap.Lives != 2 {
		t.Errorf("Lives = %d, expected 2", snap.Lives)
	}
	if snap.State != StatePlaying || snap.Level != 0 {
		t.Errorf("Snapshot() = %+v, expected level 0 playing", snap)
	}
	if snap.PlayerX != 1 || snap.SimTick != 0 {
		t.Errorf("level not reloaded: player x %d, sim tick %d", snap.PlayerX, snap.SimTick)
	}
	if g.Audio().Flash() != "ouch" {
		t.Errorf("Flash() = %q, expected %q", g.Audio().Flash(), "ouch")
	}
}

func TestLastLifeEndsRun(t *testing.T) {
	cfg := testConfig()
	cfg.Gameplay.Lives = 1
	g := newTestGame(t, cfg, fstest.MapFS{"level00.txt": level(bonfireAhead)})

	state := g.Step(press(core.ActionRight)).State
	if !state.GameOver || state.Won {
		t.Fatalf("State() = %+v, expected game over without win", state)
	}

	// Further steps are ignored until restart.
	stepN(g, 5)
	if g.Snapshot().Tick != 6 || g.Snapshot().State != StateGameOver {
		t.Errorf("Snapshot() = %+v", g.Snapshot())
	}

	state = g.Step(press(core.ActionRestart)).State
	if state.GameOver {
		t.Fatal("restart should begin a new run")
	}
	if g.Session().Lives() != 1 || g.Session().Score() != 0 {
		t.Errorf("restarted session = lives %d score %d", g.Session().Lives(), g.Session().Score())
	}
}

func TestLevelCompleteAdvances(t *testing.T) {
	g := newTestGame(t, testConfig(), fstest.MapFS{
		"level00.txt": level(kongEscapes),
		"level01.txt": level(bonfireAhead),
	})
	var cleared []int
	g.OnLevelCleared(func(level int) { cleared = append(cleared, level) })

	stepN(g, 4)
	if g.State().Level != 0 {
		t.Fatalf("Level = %d after 4 sim ticks, expected 0", g.State().Level)
	}

	g.Step(core.NewInputFrame())
	state := g.State()
	if state.Level != 1 || state.GameOver {
		t.Fatalf("State() = %+v, expected level 1 in play", state)
	}
	if state.Score != sim.ScoreLevel {
		t.Errorf("Score = %d, expected %d", state.Score, sim.ScoreLevel)
	}
	if len(cleared) != 1 || cleared[0] != 0 {
		t.Errorf("cleared = %v, expected [0]", cleared)
	}
	if g.World().Name() != "level01" {
		t.Errorf("World().Name() = %q, expected level01", g.World().Name())
	}
}

func TestWinAfterLastLevel(t *testing.T) {
	g := newTestGame(t, testConfig(), fstest.MapFS{
		"level00.txt": level(kongEscapes),
		"level01.txt": level(kongEscapes),
	})
	var cleared []int
	g.OnLevelCleared(func(level int) { cleared = append(cleared, level) })

	stepN(g, 10)

	state := g.State()
	if !state.Won || !state.GameOver {
		t.Fatalf("State() = %+v, expected won", state)
	}
	if state.Score != 2*sim.ScoreLevel {
		t.Errorf("Score = %d, expected %d", state.Score, 2*sim.ScoreLevel)
	}
	if len(cleared) != 2 {
		t.Errorf("cleared = %v, expected two levels", cleared)
	}
	if g.Snapshot().State != StateWin {
		t.Errorf("Snapshot().State = %q, expected %q", g.Snapshot().State, StateWin)
	}
}

func TestNoLevelsIsWin(t *testing.T) {
	g := newTestGame(t, testConfig(), fstest.MapFS{})
	if state := g.State(); !state.Won || !state.GameOver {
		t.Errorf("State() = %+v, expected an immediate win", state)
	}
	if g.Err() != nil {
		t.Errorf("Err() = %v, expected nil", g.Err())
	}
}

func TestBrokenLevelEndsRun(t *testing.T) {
	g := newTestGame(t, testConfig(), fstest.MapFS{"level00.txt": level("@.Z\n...\n###\n")})

	state := g.State()
	if !state.GameOver || state.Won {
		t.Fatalf("State() = %+v, expected game over without win", state)
	}
	if !errors.Is(g.Err(), sim.ErrLevelMalformed) || !g.Malformed() {
		t.Errorf("Err() = %v, expected ErrLevelMalformed", g.Err())
	}
	if g.Snapshot().State != StateLevelError {
		t.Errorf("Snapshot().State = %q, expected %q", g.Snapshot().State, StateLevelError)
	}

	screen := core.NewScreen(40, 12)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Level error") {
		t.Errorf("level error banner missing:\n%s", screen.String())
	}
}

func TestSimPace(t *testing.T) {
	cfg := testConfig()
	cfg.Timing.SimEvery = 3
	g := newTestGame(t, cfg, fstest.MapFS{"level00.txt": level(bonfireAhead)})

	stepN(g, 2)
	if got := g.Snapshot().SimTick; got != 0 {
		t.Errorf("SimTick after 2 steps = %d, expected 0", got)
	}
	g.Step(core.NewInputFrame())
	if got := g.Snapshot().SimTick; got != 1 {
		t.Errorf("SimTick after 3 steps = %d, expected 1", got)
	}
}

func TestKeysBufferBetweenSimTicks(t *testing.T) {
	cfg := testConfig()
	cfg.Timing.SimEvery = 2
	g := newTestGame(t, cfg, fstest.MapFS{"level00.txt": level(bonfireAhead)})

	// Left turns the player on the first sim tick; the key arrived on a
	// platform tick without simulation.
	g.Step(press(core.ActionLeft))
	g.Step(core.NewInputFrame())

	if f := g.Snapshot().Facing; f != sim.FacingLeft {
		t.Errorf("Facing = %v, expected %v", f, sim.FacingLeft)
	}
}

func TestPauseStopsSimulation(t *testing.T) {
	g := newTestGame(t, testConfig(), fstest.MapFS{"level00.txt": level(bonfireAhead)})

	g.Step(press(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	stepN(g, 5)
	if got := g.Snapshot().SimTick; got != 0 {
		t.Errorf("SimTick while paused = %d, expected 0", got)
	}

	// The unpausing step simulates again.
	g.Step(press(core.ActionPause))
	if g.State().Paused {
		t.Fatal("expected unpaused")
	}
	if got := g.Snapshot().SimTick; got != 1 {
		t.Errorf("SimTick after unpause = %d, expected 1", got)
	}
}

func TestTooSmallScreen(t *testing.T) {
	cfg := testConfig()
	g := NewWithOptions(Options{Config: &cfg, Source: levels.NewLoader(fstest.MapFS{"level00.txt": level(bonfireAhead)})})
	g.Reset(core.RuntimeConfig{ScreenW: 4, ScreenH: 4, Seed: 1})

	if g.Snapshot().State != StatePausedSmall {
		t.Fatalf("Snapshot().State = %q, expected %q", g.Snapshot().State, StatePausedSmall)
	}
	stepN(g, 3)
	if got := g.Snapshot().SimTick; got != 0 {
		t.Errorf("SimTick on a small screen = %d, expected 0", got)
	}

	g.Resize(40, 12)
	g.Step(core.NewInputFrame())
	if got := g.Snapshot().SimTick; got != 1 {
		t.Errorf("SimTick after resize = %d, expected 1", got)
	}
}

func TestRender(t *testing.T) {
	cfg := testConfig()
	g := NewWithOptions(Options{Config: &cfg, Source: levels.NewLoader(fstest.MapFS{"level00.txt": level(kongEscapes)})})
	g.Reset(core.RuntimeConfig{ScreenW: 60, ScreenH: 10, Seed: 1})

	screen := core.NewScreen(60, 10)
	g.Render(screen)

	if hud := screen.Row(0); !strings.HasPrefix(hud, "Score: 0000000  Level: 00  Lives: 03  Burps: 00") {
		t.Errorf("HUD = %q", hud)
	}

	// 5x4 grid centered at x offset 27, below the two HUD rows, y flipped.
	tests := []struct {
		name  string
		x, y  int
		glyph rune
		color core.Color
	}{
		{"player", 29, 4, '@', core.ColorBrightYellow},
		{"kong", 28, 3, 'K', core.ColorBrightRed},
		{"floor", 27, 5, '#', core.ColorBrown},
		{"empty", 27, 2, ' ', core.ColorDefault},
	}
	for _, tc := range tests {
		cell := screen.GetCell(tc.x, tc.y)
		if cell.Rune != tc.glyph || cell.Color != tc.color {
			t.Errorf("%s: cell(%d,%d) = %q/%d, expected %q/%d", tc.name, tc.x, tc.y, cell.Rune, cell.Color, tc.glyph, tc.color)
		}
	}

	g.Step(press(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "Paused") {
		t.Error("pause overlay missing")
	}
}

func TestDeterminism(t *testing.T) {
	cfg := testConfig()
	script := []core.Action{
		core.ActionRight, core.ActionRight, core.ActionJump, core.ActionNone,
		core.ActionLeft, core.ActionFire, core.ActionUp, core.ActionDown,
	}

	run := func() []Snapshot {
		g := NewWithOptions(Options{Config: &cfg, Source: levels.Embedded()})
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 42})
		snaps := make([]Snapshot, 0, 600)
		for i := 0; i < 600; i++ {
			in := core.NewInputFrame()
			if a := script[i%len(script)]; a != core.ActionNone {
				in.Set(a)
			}
			g.Step(in)
			snaps = append(snaps, g.Snapshot())
		}
		return snaps
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("step %d diverged:\n%+v\n%+v", i, a[i], b[i])
		}
	}
}

func TestSessionHUD(t *testing.T) {
	s := newSession(3, 2)
	s.AddScore(150)
	s.IncLives()
	s.DecLives()
	s.DecLives()
	s.Refresh(sim.HUD{Ammo: 5})

	expected := "Score: 0000150  Level: 02  Lives: 02  Burps: 05"
	if got := s.HUDLine(); got != expected {
		t.Errorf("HUDLine() = %q, expected %q", got, expected)
	}
}

func TestAudioFlash(t *testing.T) {
	a := newAudio(logger)
	if a.Flash() != "" {
		t.Errorf("Flash() = %q before any cue", a.Flash())
	}

	a.Play(sim.CueFire)
	a.Play(sim.CueEnemyDefeated)
	if len(a.Cues()) != 2 || a.Flash() != "pow" {
		t.Errorf("Cues() = %v, Flash() = %q", a.Cues(), a.Flash())
	}

	a.begin()
	if len(a.Cues()) != 0 {
		t.Errorf("Cues() after begin = %v", a.Cues())
	}
	for iter := 0; iter < cueFlashTicks; iter++ {
		a.fade()
	}
	if a.Flash() != "" {
		t.Errorf("Flash() = %q after fading", a.Flash())
	}
}
