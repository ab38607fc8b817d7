package sim

// InBounds reports whether (x, y) is an enterable tile of a w×h grid.
// Column 0 and row 0 are a border margin and never enterable.
func InBounds(w, h, x, y int) bool {
	return x > 0 && y > 0 && x < w && y < h
}

// InBounds reports whether (x, y) is enterable on this world's grid.
func (w *World) InBounds(x, y int) bool {
	return InBounds(w.width, w.height, x, y)
}

// Passable is false out of bounds and false when any live entity on the
// tile blocks movement.
func (w *World) Passable(x, y int) bool {
	if !w.InBounds(x, y) {
		return false
	}
	for _, e := range w.entities {
		if e.alive && !e.Passable && e.At(x, y) {
			return false
		}
	}
	return true
}

// Climbable is true when any live entity on the tile is climbable.
func (w *World) Climbable(x, y int) bool {
	for _, e := range w.entities {
		if e.alive && e.Climbable && e.At(x, y) {
			return true
		}
	}
	return false
}

// PlayerAt reports whether the live player occupies (x, y).
func (w *World) PlayerAt(x, y int) bool {
	return w.player.alive && w.player.At(x, y)
}

// NearPlayer reports whether (x, y) is within KongReach of the player.
func (w *World) NearPlayer(x, y int) bool {
	dx := w.player.X - x
	dy := w.player.Y - y
	return dx*dx+dy*dy <= KongReach*KongReach
}

// tryMove moves e to (x, y) if that tile is passable.
func (w *World) tryMove(e *Entity, x, y int) bool {
	if !w.Passable(x, y) {
		return false
	}
	e.X, e.Y = x, y
	w.view.Moved(e)
	return true
}

func (w *World) stepFacing(e *Entity) bool {
	return w.tryMove(e, e.X+e.Facing.Dx(), e.Y)
}

func (w *World) turn(e *Entity, f Facing) {
	e.Facing = f
	w.view.Turned(e)
}

func (w *World) animate(e *Entity) {
	e.Frame++
	w.view.Animated(e)
}

// blast resolves a burp hit: every live blastable entity on the tile dies
// and is worth ScoreEnemy.
func (w *World) blast(x, y int) {
	for _, e := range w.entities {
		if e.alive && e.Blastable && e.At(x, y) {
			w.kill(e)
			w.audio.Play(CueEnemyDefeated)
			w.session.AddScore(ScoreEnemy)
		}
	}
}

// burn resolves fire damage: every live burnable entity on the tile dies.
func (w *World) burn(x, y int) {
	for _, e := range w.entities {
		if e.alive && e.Burnable && e.At(x, y) {
			w.kill(e)
		}
	}
}

// kill marks a non-player entity dead and runs its death drop once.
func (w *World) kill(e *Entity) {
	if !e.alive {
		return
	}
	e.alive = false
	switch e.Kind {
	case KindFireball:
		if chance(w.rng, 1, 3) {
			w.spawn(KindGarlic, e.X, e.Y, FacingNone)
		}
	case KindKoopa:
		if chance(w.rng, 1, 3) {
			w.spawn(KindExtraLife, e.X, e.Y, FacingNone)
		}
	}
}

// killPlayer is idempotent: lives drop and the cue plays once per death.
func (w *World) killPlayer() {
	if !w.player.alive {
		return
	}
	w.player.alive = false
	w.session.DecLives()
	w.audio.Play(CuePlayerDefeated)
}

// freezePlayer stacks another FreezeTicks onto the player.
func (w *World) freezePlayer() {
	w.player.Frozen += FreezeTicks
}
