package kong

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-kong/internal/kong/sim"
)

// Session is the run-wide state the simulation reports into: score, lives,
// the level index and the HUD numbers of the last tick.
type Session struct {
	score int
	lives int
	level int
	hud   sim.HUD
}

func newSession(lives, level int) *Session {
	return &Session{lives: lives, level: level}
}

func (s *Session) AddScore(n int)    { s.score += n }
func (s *Session) IncLives()         { s.lives++ }
func (s *Session) DecLives()         { s.lives-- }
func (s *Session) Level() int        { return s.level }
func (s *Session) Refresh(h sim.HUD) { s.hud = h }

// Score returns the running score.
func (s *Session) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// HUDLine formats the status line shown above the grid.
func (s *Session) HUDLine() string {
	return fmt.Sprintf("Score: %07d  Level: %02d  Lives: %02d  Burps: %02d",
		s.score, s.level, s.lives, s.hud.Ammo)
}

// cueFlashTicks is how long a cue label stays on the HUD, in platform ticks.
const cueFlashTicks = 30

// Audio collects the cues of the last simulation tick. The terminal has no
// sound, so cues are flashed on the HUD and logged.
type Audio struct {
	logger *log.Logger
	cues   []sim.Cue
	last   sim.Cue
	flash  int
}

func newAudio(logger *log.Logger) *Audio {
	return &Audio{logger: logger}
}

// Play records a cue.
func (a *Audio) Play(c sim.Cue) {
	a.cues = append(a.cues, c)
	a.last = c
	a.flash = cueFlashTicks
	a.logger.Debug("cue", "name", c)
}

// begin forgets the cues of the previous simulation tick.
func (a *Audio) begin() {
	a.cues = a.cues[:0]
}

// fade counts down the HUD flash by one platform tick.
func (a *Audio) fade() {
	if a.flash > 0 {
		a.flash--
	}
}

// Cues returns the cues played during the last simulation tick.
func (a *Audio) Cues() []sim.Cue {
	return a.cues
}

// Flash returns the label to show on the HUD, or "" when nothing is showing.
func (a *Audio) Flash() string {
	if a.flash == 0 {
		return ""
	}
	switch a.last {
	case sim.CueJump:
		return "boing"
	case sim.CueFire:
		return "BURP"
	case sim.CuePickup:
		return "yum"
	case sim.CueEnemyDefeated:
		return "pow"
	case sim.CuePlayerDefeated:
		return "ouch"
	case sim.CueLevelComplete:
		return "hooray"
	}
	return ""
}
