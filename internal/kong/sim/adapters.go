package sim

// CueLog is an Audio that records cues instead of playing them.
type CueLog []Cue

// Play appends the cue.
func (l *CueLog) Play(c Cue) { *l = append(*l, c) }

// Count returns how many times c was played.
func (l CueLog) Count(c Cue) int {
	n := 0
	for _, x := range l {
		if x == c {
			n++
		}
	}
	return n
}

// Reset forgets recorded cues.
func (l *CueLog) Reset() { *l = (*l)[:0] }

// KeyQueue is a bounded FIFO Input. Keys pushed while it is full are dropped.
type KeyQueue struct {
	keys     []Key
	capacity int
}

// NewKeyQueue creates a queue holding at most capacity keys.
// A capacity of 0 or less means unbounded.
func NewKeyQueue(capacity int) *KeyQueue {
	return &KeyQueue{capacity: capacity}
}

// Push enqueues k and reports whether it was accepted.
func (q *KeyQueue) Push(k Key) bool {
	if q.capacity > 0 && len(q.keys) >= q.capacity {
		return false
	}
	q.keys = append(q.keys, k)
	return true
}

// PollKey dequeues the oldest key.
func (q *KeyQueue) PollKey() (Key, bool) {
	if len(q.keys) == 0 {
		return 0, false
	}
	k := q.keys[0]
	q.keys = q.keys[1:]
	return k, true
}

// Len returns the number of buffered keys.
func (q *KeyQueue) Len() int { return len(q.keys) }

// Reset drops all buffered keys.
func (q *KeyQueue) Reset() { q.keys = q.keys[:0] }

// Tally is a plain Session keeping score, lives and level in memory.
type Tally struct {
	Score      int
	Lives      int
	LevelIndex int
	HUD        HUD
}

func (t *Tally) AddScore(n int) { t.Score += n }
func (t *Tally) IncLives()      { t.Lives++ }
func (t *Tally) DecLives()      { t.Lives-- }
func (t *Tally) Level() int     { return t.LevelIndex }
func (t *Tally) Refresh(h HUD)  { t.HUD = h }
