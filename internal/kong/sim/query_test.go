package sim

import "testing"

func TestInBounds(t *testing.T) {
	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"interior", 3, 3, true},
		{"first enterable tile", 1, 1, true},
		{"last tile", 7, 4, true},
		{"column zero", 0, 3, false},
		{"row zero", 3, 0, false},
		{"right edge", 8, 3, false},
		{"top edge", 3, 5, false},
		{"negative", -1, -1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := InBounds(8, 5, tc.x, tc.y); got != tc.expected {
				t.Errorf("InBounds(8, 5, %d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestQueriesOutOfBoundsFailClosed(t *testing.T) {
	rig := newRig(t,
		"HHHH",
		"H@.H",
		"HHHH",
	)
	w := rig.world

	for _, p := range [][2]int{{-1, 1}, {4, 1}, {1, 3}, {1, -1}, {100, 100}} {
		if w.Passable(p[0], p[1]) {
			t.Errorf("Passable(%d, %d) = true, expected false", p[0], p[1])
		}
		if w.Climbable(p[0], p[1]) {
			t.Errorf("Climbable(%d, %d) = true, expected false", p[0], p[1])
		}
	}
}

func TestPassableBlockingWins(t *testing.T) {
	rig := newRig(t,
		"......",
		"......",
		".@.#..",
		"......",
	)
	w := rig.world

	// Ladder sharing the floor tile: blocked, yet climbable.
	w.add(KindLadder, 3, 1, FacingNone)

	if w.Passable(3, 1) {
		t.Error("Passable() should be false when any occupant blocks")
	}
	if !w.Climbable(3, 1) {
		t.Error("Climbable() should be true when any occupant is climbable")
	}
	if !w.Passable(2, 1) {
		t.Error("Passable() on an empty tile should be true")
	}
}

func TestDeadEntitiesInvisibleToQueries(t *testing.T) {
	rig := newRig(t,
		"......",
		"......",
		".@.#H.",
		"......",
	)
	w := rig.world
	floor := rig.first(KindFloor)
	ladder := rig.first(KindLadder)

	w.kill(floor)
	w.kill(ladder)

	if !w.Passable(3, 1) {
		t.Error("dead floor should not block")
	}
	if w.Climbable(4, 1) {
		t.Error("dead ladder should not be climbable")
	}
}

func TestNearPlayer(t *testing.T) {
	rig := newRig(t,
		"........",
		"........",
		"........",
		".@......",
		"........",
	)
	w := rig.world // player at (1,1)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{1, 1, true},
		{3, 1, true},  // dist 2
		{2, 2, true},  // dist^2 2
		{3, 2, false}, // dist^2 5
		{1, 4, false},
	}
	for _, tc := range tests {
		if got := w.NearPlayer(tc.x, tc.y); got != tc.expected {
			t.Errorf("NearPlayer(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestBlastScoresEachVictim(t *testing.T) {
	rig := newRig(t,
		"........",
		"........",
		".@......",
		"........",
	)
	w := rig.world
	w.add(KindBonfire, 4, 1, FacingNone)
	w.add(KindBarrel, 4, 1, FacingLeft)
	w.add(KindGarlic, 4, 1, FacingNone)

	w.blast(4, 1)

	if rig.tally.Score != 2*ScoreEnemy {
		t.Errorf("Score = %d, expected %d", rig.tally.Score, 2*ScoreEnemy)
	}
	if rig.cues.Count(CueEnemyDefeated) != 2 {
		t.Errorf("enemy cues = %d, expected 2", rig.cues.Count(CueEnemyDefeated))
	}
	if rig.first(KindGarlic).Alive() != true {
		t.Error("collectibles are not blastable")
	}

	// Already dead victims are not scored twice.
	w.blast(4, 1)
	if rig.tally.Score != 2*ScoreEnemy {
		t.Errorf("Score after second blast = %d, expected %d", rig.tally.Score, 2*ScoreEnemy)
	}
}

func TestBurnOnlyHitsBurnable(t *testing.T) {
	rig := newRig(t,
		"........",
		"........",
		".@......",
		"........",
	)
	w := rig.world
	barrel := w.add(KindBarrel, 4, 1, FacingLeft)
	koopa := w.add(KindKoopa, 4, 1, FacingLeft)

	w.burn(4, 1)

	if barrel.Alive() {
		t.Error("barrel should burn")
	}
	if !koopa.Alive() {
		t.Error("koopa is not burnable")
	}
	if rig.tally.Score != 0 || len(*rig.cues) != 0 {
		t.Error("burning is silent and scoreless")
	}
}
