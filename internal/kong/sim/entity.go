package sim

import "math/rand"

// Kind tags the variant of an Entity. Per-tick behavior is dispatched on it.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindFloor
	KindLadder
	KindBurp
	KindBonfire
	KindFireball
	KindKoopa
	KindBarrel
	KindExtraLife
	KindGarlic
	KindKong
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindFloor:
		return "floor"
	case KindLadder:
		return "ladder"
	case KindBurp:
		return "burp"
	case KindBonfire:
		return "bonfire"
	case KindFireball:
		return "fireball"
	case KindKoopa:
		return "koopa"
	case KindBarrel:
		return "barrel"
	case KindExtraLife:
		return "extra_life"
	case KindGarlic:
		return "garlic"
	case KindKong:
		return "kong"
	default:
		return "unknown"
	}
}

// IsEnemy reports whether the kind kills the player on contact.
func (k Kind) IsEnemy() bool {
	switch k {
	case KindBonfire, KindFireball, KindKoopa, KindBarrel:
		return true
	}
	return false
}

// Facing is the horizontal direction an entity looks at.
type Facing uint8

const (
	FacingNone Facing = iota
	FacingLeft
	FacingRight
)

func (f Facing) String() string {
	switch f {
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	default:
		return "none"
	}
}

// Dx is the column offset of one step in this direction.
// Anything but Left steps right.
func (f Facing) Dx() int {
	if f == FacingLeft {
		return -1
	}
	return 1
}

// Opposite returns the reversed facing.
func (f Facing) Opposite() Facing {
	if f == FacingLeft {
		return FacingRight
	}
	return FacingLeft
}

func randomFacing(rng *rand.Rand) Facing {
	if rng.Intn(2) == 0 {
		return FacingLeft
	}
	return FacingRight
}

// chance returns true with probability num/den.
func chance(rng *rand.Rand, num, den int) bool {
	return rng.Intn(den) < num
}

// Entity is the single record shared by every kind. Fields that only make
// sense for one kind are zero for the others.
type Entity struct {
	ID     int
	Kind   Kind
	X, Y   int
	Facing Facing

	Passable  bool
	Climbable bool
	Blastable bool
	Burnable  bool

	// Frame is the animation counter advanced by animated kinds.
	Frame int

	alive bool
	ticks int

	// Player.
	Ammo   int
	Jump   JumpPhase
	Frozen int

	// Burp.
	Life int

	// Fireball.
	Climb ClimbState

	// Koopa.
	Cooldown int

	// Kong.
	Retreating bool
}

func newEntity(id int, kind Kind, x, y int, facing Facing) *Entity {
	e := &Entity{
		ID:       id,
		Kind:     kind,
		X:        x,
		Y:        y,
		Facing:   facing,
		Passable: true,
		alive:    true,
	}
	switch kind {
	case KindFloor:
		e.Passable = false
	case KindLadder:
		e.Climbable = true
	case KindBurp:
		e.Life = BurpLifetime
	case KindBarrel:
		e.Blastable = true
		e.Burnable = true
	case KindBonfire, KindFireball, KindKoopa:
		e.Blastable = true
	}
	return e
}

// Alive reports whether the entity is still simulated.
func (e *Entity) Alive() bool { return e.alive }

// Ticks returns the wrapped per-entity tick counter.
func (e *Entity) Ticks() int { return e.ticks }

// At reports whether the entity occupies (x, y).
func (e *Entity) At(x, y int) bool { return e.X == x && e.Y == y }

func (e *Entity) incTicks() {
	e.ticks = (e.ticks + 1) % TickWrap
}

// every gates periodic behavior on the tick counter.
func (e *Entity) every(n int) bool {
	return e.ticks%n == 0
}
