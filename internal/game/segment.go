package game

// Cell is a grid-aligned board position.
type Cell struct {
	X, Y int
}

// SegmentID is a stable handle into the chain's segment arena. Handles
// survive position updates; they are recycled only after a truncate.
type SegmentID int32

// Chain is the snake's body: an arena of segment positions plus the
// head-first ordering of live segments. The order holds handles, not
// positions, so growth never moves existing segments in memory.
//
// Invariants: length >= 1, no duplicate handles, and each segment's
// position lags exactly one tick behind its predecessor. Segments are
// NOT necessarily adjacent in space right after growth; a fresh tail
// converges as the chain advances.
type Chain struct {
	order []SegmentID
	pos   []Cell
	free  []SegmentID
}

// NewChain creates a single-segment chain with the head at the given cell.
func NewChain(head Cell) *Chain {
	return &Chain{
		order: []SegmentID{0},
		pos:   []Cell{head},
	}
}

func (c *Chain) Len() int {
	return len(c.order)
}

func (c *Chain) Head() Cell {
	return c.pos[c.order[0]]
}

func (c *Chain) Tail() Cell {
	return c.pos[c.order[len(c.order)-1]]
}

// At returns the cell of the i-th segment (0 = head).
func (c *Chain) At(i int) Cell {
	return c.pos[c.order[i]]
}

// Pos returns the cell of a segment by handle.
func (c *Chain) Pos(id SegmentID) Cell {
	return c.pos[id]
}

// Advance moves the head by one cell and shifts every other position
// down the chain by exactly one slot. The predecessor's pre-move
// position is carried through the loop so no segment ever reads an
// already-updated neighbour (that would collapse the chain onto the
// head).
func (c *Chain) Advance(dx, dy int) {
	head := c.order[0]
	carry := c.pos[head]
	c.pos[head] = Cell{X: carry.X + dx, Y: carry.Y + dy}
	for _, id := range c.order[1:] {
		cur := c.pos[id]
		c.pos[id] = carry
		carry = cur
	}
}

// Append adds a new tail segment at the given cell and returns its handle.
func (c *Chain) Append(cell Cell) SegmentID {
	var id SegmentID
	if n := len(c.free); n > 0 {
		id = c.free[n-1]
		c.free = c.free[:n-1]
		c.pos[id] = cell
	} else {
		id = SegmentID(len(c.pos))
		c.pos = append(c.pos, cell)
	}
	c.order = append(c.order, id)
	return id
}

// Truncate removes every segment except the head, recycling the freed
// handles. The head keeps its position.
func (c *Chain) Truncate() {
	c.free = append(c.free, c.order[1:]...)
	c.order = c.order[:1]
}

// MoveHead teleports the head. Only valid for a length-1 chain (reset).
func (c *Chain) MoveHead(cell Cell) {
	c.pos[c.order[0]] = cell
}

// Occupies reports whether any segment sits on the given cell.
func (c *Chain) Occupies(cell Cell) bool {
	for _, id := range c.order {
		if c.pos[id] == cell {
			return true
		}
	}
	return false
}
