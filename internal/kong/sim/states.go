package sim

// Gameplay constants. Tick counts are simulation ticks.
const (
	// TickWrap bounds per-entity tick counters. It is a multiple of every
	// gating period below, including all Kong spawn intervals.
	TickWrap = 600

	TickFactor     = 10 // patrol enemies and barrels act every TickFactor ticks
	KongTickFactor = 5  // a retreating Kong climbs every KongTickFactor ticks

	FreezeTicks    = 50
	FreezeCooldown = 50
	BurpLifetime   = 5
	GarlicBurps    = 5

	ScoreExtraLife = 50
	ScoreGarlic    = 25
	ScoreEnemy     = 100
	ScoreLevel     = 1000

	KongReach = 2 // Euclidean radius that makes Kong retreat

	MaxLevel = 99
)

// KongSpawnInterval is the barrel period for a level: 200 ticks on level 0,
// 50 fewer per level, never below 50.
func KongSpawnInterval(level int) int {
	return max(200-50*level, 50)
}

// JumpPhase counts down a jump. Transitions, one per tick while not on a ladder:
//
//	JumpStart(4) -> JumpForward3 -> JumpForward2 -> JumpForward1 : step forward, or abort to JumpNone if blocked
//	JumpForward1 -> JumpNone                                   : step down (land)
//
// Standing on a climbable tile at the start of a tick resets to JumpNone.
type JumpPhase int

const (
	JumpNone     JumpPhase = 0
	JumpForward1 JumpPhase = 1
	JumpForward2 JumpPhase = 2
	JumpForward3 JumpPhase = 3
	JumpStart    JumpPhase = 4
)

// Airborne reports whether the phase still drives the player.
func (p JumpPhase) Airborne() bool { return p > JumpNone }

// ClimbState is the fireball's persisted ladder mode.
//
//	NotClimbing  -> ClimbingUp   : on a ladder with room above, 1/3 chance
//	NotClimbing  -> ClimbingDown : ladder below, 1/3 chance
//	ClimbingUp   -> ClimbingUp   : while the ladder continues and above is open
//	ClimbingDown -> ClimbingDown : while a ladder is below
//	Climbing*    -> NotClimbing  : when the supporting ladder or space is gone
type ClimbState uint8

const (
	NotClimbing ClimbState = iota
	ClimbingUp
	ClimbingDown
)

func (c ClimbState) String() string {
	switch c {
	case ClimbingUp:
		return "up"
	case ClimbingDown:
		return "down"
	default:
		return "none"
	}
}

// Status is the result of initializing or advancing a world.
type Status uint8

const (
	StatusContinue Status = iota
	StatusPlayerDied
	StatusLevelComplete
	StatusPlayerWon
	StatusLevelError
)

func (s Status) String() string {
	switch s {
	case StatusContinue:
		return "continue"
	case StatusPlayerDied:
		return "player_died"
	case StatusLevelComplete:
		return "level_complete"
	case StatusPlayerWon:
		return "player_won"
	case StatusLevelError:
		return "level_error"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status ends the current level.
func (s Status) Terminal() bool { return s != StatusContinue }
