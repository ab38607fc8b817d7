package sim

// updatePlayer runs the player state machine. Priority per tick:
// jump phase, gravity, freeze, then one buffered key.
func (w *World) updatePlayer() {
	p := w.player
	if !p.alive {
		return
	}

	switch {
	case p.Jump.Airborne():
		if w.Climbable(p.X, p.Y) {
			p.Jump = JumpNone
			return
		}
		p.Jump--
		if p.Jump > JumpNone {
			if !w.stepFacing(p) {
				p.Jump = JumpNone
			}
			return
		}
		w.tryMove(p, p.X, p.Y-1)

	case !w.Climbable(p.X, p.Y) && !w.Climbable(p.X, p.Y-1) && w.Passable(p.X, p.Y-1):
		w.tryMove(p, p.X, p.Y-1)

	case p.Frozen > 0:
		p.Frozen--

	default:
		if key, ok := w.input.PollKey(); ok {
			w.handleKey(p, key)
		}
	}
}

func (w *World) handleKey(p *Entity, key Key) {
	switch key {
	case KeyLeft:
		w.walk(p, FacingLeft)
	case KeyRight:
		w.walk(p, FacingRight)
	case KeyJump:
		if w.tryMove(p, p.X, p.Y+1) {
			p.Jump = JumpStart
		}
		w.audio.Play(CueJump)
	case KeyClimbUp:
		if w.Climbable(p.X, p.Y) {
			w.tryMove(p, p.X, p.Y+1)
		}
	case KeyClimbDown:
		if w.Climbable(p.X, p.Y) || w.Climbable(p.X, p.Y-1) {
			w.tryMove(p, p.X, p.Y-1)
		}
	case KeyFire:
		w.fire(p)
	}
}

// walk turns toward dir first; only a player already facing dir steps.
func (w *World) walk(p *Entity, dir Facing) {
	if p.Facing != dir {
		w.turn(p, dir)
		return
	}
	w.stepFacing(p)
}

func (w *World) fire(p *Entity) {
	if p.Ammo <= 0 {
		return
	}
	x := p.X + p.Facing.Dx()
	if !w.InBounds(x, p.Y) {
		return
	}
	w.spawn(KindBurp, x, p.Y, p.Facing)
	p.Ammo--
	w.audio.Play(CueFire)
}
