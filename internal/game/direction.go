package game

// Direction is a committed or requested movement direction.
// DirNone means "not moving yet" and only occurs before the first input.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "none"
}

// Delta returns the unit cell displacement for the direction.
// Row 0 is the top of the board, so up is negative Y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return DirNone
}

// DirectionResolver turns raw per-frame direction requests into the
// direction committed at the next tick. Requests arrive every frame so
// fast input between ticks is not dropped; a request that exactly
// reverses the committed direction is rejected (a snake of length >= 2
// would eat into its own neck).
type DirectionResolver struct {
	committed Direction
	next      Direction
}

// Request records a raw requested direction. DirNone (no input this
// frame) leaves the pending direction untouched so the snake continues
// straight.
func (r *DirectionResolver) Request(d Direction) {
	if d == DirNone {
		return
	}
	if r.committed != DirNone && d == r.committed.Opposite() {
		return
	}
	r.next = d
}

// Commit applies the pending direction at a tick boundary and returns it.
func (r *DirectionResolver) Commit() Direction {
	r.committed = r.next
	return r.committed
}

// Committed returns the direction of the last committed move.
func (r *DirectionResolver) Committed() Direction {
	return r.committed
}

// Reset clears both the committed and pending direction.
func (r *DirectionResolver) Reset() {
	r.committed = DirNone
	r.next = DirNone
}
