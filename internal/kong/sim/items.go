package sim

func (w *World) updateBurp(e *Entity) {
	if e.Life > 0 {
		e.Life--
	}
	if e.Life == 0 {
		w.kill(e)
		return
	}
	w.blast(e.X, e.Y)
}

// updateGoodie consumes a collectible the player stands on.
func (w *World) updateGoodie(e *Entity) {
	if !w.PlayerAt(e.X, e.Y) {
		return
	}

	points := 0
	switch e.Kind {
	case KindExtraLife:
		w.session.IncLives()
		points = ScoreExtraLife
	case KindGarlic:
		w.player.Ammo += GarlicBurps
		points = ScoreGarlic
	}

	w.audio.Play(CuePickup)
	w.session.AddScore(points)
	w.kill(e)
}

// updateKong throws barrels until the player gets close, then climbs to
// the top row for good and completes the level there.
func (w *World) updateKong(e *Entity) {
	e.incTicks()
	w.animate(e)
	if w.NearPlayer(e.X, e.Y) {
		e.Retreating = true
	}

	if !e.Retreating && e.every(KongSpawnInterval(w.session.Level())) {
		x := e.X + e.Facing.Dx()
		if w.InBounds(x, e.Y) {
			w.spawn(KindBarrel, x, e.Y, e.Facing)
		}
	}

	if e.Retreating && e.every(KongTickFactor) {
		w.tryMove(e, e.X, e.Y+1)
		if e.Y == w.height-1 {
			w.session.AddScore(ScoreLevel)
			w.audio.Play(CueLevelComplete)
			w.levelComplete = true
		}
	}
}
