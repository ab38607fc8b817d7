package config

// Pace calculates the simulation speed for a level.
type Pace struct {
	cfg     KongTiming
	enabled bool
}

// NewPace creates a pace from timing settings.
func NewPace(cfg KongTiming) *Pace {
	return &Pace{cfg: cfg, enabled: cfg.SpeedupPerLevel > 0}
}

// SetEnabled enables or disables the per-level speedup.
func (p *Pace) SetEnabled(enabled bool) {
	p.enabled = enabled
}

// IsEnabled returns whether the speedup is active.
func (p *Pace) IsEnabled() bool {
	return p.enabled && p.cfg.SpeedupPerLevel > 0
}

// SimEvery returns the number of platform ticks per simulation tick on a
// level. Later levels run faster, never below MinSimEvery.
func (p *Pace) SimEvery(level int) int {
	base := max(p.cfg.SimEvery, 1)
	if !p.IsEnabled() || level <= 0 {
		return base
	}
	floor := min(max(p.cfg.MinSimEvery, 1), base)
	return max(base-level*p.cfg.SpeedupPerLevel, floor)
}
