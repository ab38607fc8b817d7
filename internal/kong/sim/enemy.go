package sim

// contact kills the player when it shares e's tile.
func (w *World) contact(e *Entity) {
	if w.PlayerAt(e.X, e.Y) {
		w.killPlayer()
	}
}

// cliffAhead reports whether the tile diagonally ahead and below is open air.
func (w *World) cliffAhead(e *Entity) bool {
	x := e.X + e.Facing.Dx()
	return w.Passable(x, e.Y-1) && !w.Climbable(x, e.Y-1)
}

// patrol steps forward, turning back at walls and at cliff edges.
func (w *World) patrol(e *Entity) {
	if w.cliffAhead(e) || !w.stepFacing(e) {
		w.turn(e, e.Facing.Opposite())
	}
}

func (w *World) updateBonfire(e *Entity) {
	w.animate(e)
	w.burn(e.X, e.Y)
	w.contact(e)
}

func (w *World) updateFireball(e *Entity) {
	e.incTicks()
	w.contact(e)
	if !w.player.alive || !e.every(TickFactor) {
		return
	}

	moved := false
	if e.Climb != ClimbingDown && w.Climbable(e.X, e.Y) && w.Passable(e.X, e.Y+1) {
		if e.Climb == ClimbingUp || chance(w.rng, 1, 3) {
			e.Climb = ClimbingUp
			w.tryMove(e, e.X, e.Y+1)
			moved = true
		}
	} else if e.Climb != ClimbingUp && w.Climbable(e.X, e.Y-1) {
		if e.Climb == ClimbingDown || chance(w.rng, 1, 3) {
			e.Climb = ClimbingDown
			w.tryMove(e, e.X, e.Y-1)
			moved = true
		}
	}

	if !moved {
		if w.climbUnsupported(e) {
			e.Climb = NotClimbing
		}
		w.patrol(e)
	}
	w.contact(e)
}

// climbUnsupported reports whether the ladder carrying the current climb ended.
func (w *World) climbUnsupported(e *Entity) bool {
	switch e.Climb {
	case ClimbingUp:
		return !w.Passable(e.X, e.Y+1) || !w.Climbable(e.X, e.Y)
	case ClimbingDown:
		return !w.Passable(e.X, e.Y-1) || !w.Climbable(e.X, e.Y-1)
	}
	return false
}

func (w *World) updateKoopa(e *Entity) {
	e.incTicks()
	if w.tryFreeze(e) {
		return
	}
	if e.Cooldown > 0 {
		e.Cooldown--
	}
	if e.every(TickFactor) {
		w.patrol(e)
	}
	w.tryFreeze(e)
}

func (w *World) tryFreeze(e *Entity) bool {
	if e.Cooldown != 0 || !w.PlayerAt(e.X, e.Y) {
		return false
	}
	w.freezePlayer()
	e.Cooldown = FreezeCooldown
	return true
}

// updateBarrel falls when unsupported, reversing when it lands, and rolls
// every TickFactor ticks. Unlike patrol it rolls off edges and only turns
// at walls.
func (w *World) updateBarrel(e *Entity) {
	e.incTicks()
	w.contact(e)
	if !w.player.alive {
		return
	}

	if w.Passable(e.X, e.Y-1) {
		w.tryMove(e, e.X, e.Y-1)
		if !w.Passable(e.X, e.Y-1) {
			w.turn(e, e.Facing.Opposite())
		}
	}

	if e.every(TickFactor) && !w.stepFacing(e) {
		w.turn(e, e.Facing.Opposite())
	}
	w.contact(e)
}
