package game

// Occupancy is a bitset over board cells used for O(1) "is this cell
// taken" queries during food placement. The board is small enough that
// rebuilding it from the chain once per tick is cheaper than keeping it
// incrementally consistent through growth and truncation.
type Occupancy struct {
	bits  [(GridCols*GridRows + 63) / 64]uint64
	count int
}

func cellIndex(c Cell) int {
	return c.Y*GridCols + c.X
}

func (o *Occupancy) Reset() {
	for i := range o.bits {
		o.bits[i] = 0
	}
	o.count = 0
}

// Add marks a cell occupied. Cells outside the board are ignored (the
// head can be out of bounds on the tick it hits a wall).
func (o *Occupancy) Add(c Cell) {
	if c.X < 0 || c.X >= GridCols || c.Y < 0 || c.Y >= GridRows {
		return
	}
	i := cellIndex(c)
	mask := uint64(1) << uint(i%64)
	if o.bits[i/64]&mask != 0 {
		return
	}
	o.bits[i/64] |= mask
	o.count++
}

func (o *Occupancy) Occupied(c Cell) bool {
	if c.X < 0 || c.X >= GridCols || c.Y < 0 || c.Y >= GridRows {
		return true
	}
	i := cellIndex(c)
	return o.bits[i/64]&(uint64(1)<<uint(i%64)) != 0
}

// FreeCount returns the number of unoccupied board cells.
func (o *Occupancy) FreeCount() int {
	return GridCols*GridRows - o.count
}

// NthFree returns the n-th unoccupied cell in row-major order.
// Caller guarantees n < FreeCount().
func (o *Occupancy) NthFree(n int) Cell {
	for i := 0; i < GridCols*GridRows; i++ {
		if o.bits[i/64]&(uint64(1)<<uint(i%64)) != 0 {
			continue
		}
		if n == 0 {
			return Cell{X: i % GridCols, Y: i / GridCols}
		}
		n--
	}
	return Cell{}
}

// Rebuild repopulates the bitset from the chain's current segments.
func (o *Occupancy) Rebuild(c *Chain) {
	o.Reset()
	for i := 0; i < c.Len(); i++ {
		o.Add(c.At(i))
	}
}
