package game

import "testing"

func TestChainSingleSegmentAdvance(t *testing.T) {
	c := NewChain(Cell{X: 4, Y: 4})
	c.Advance(1, 0)
	if got := c.Head(); got != (Cell{X: 5, Y: 4}) {
		t.Errorf("head %v, want (5,4)", got)
	}
	if c.Len() != 1 {
		t.Errorf("len %d, want 1", c.Len())
	}
}

func TestChainPropagationShiftsByOneSlot(t *testing.T) {
	// Build a 4-segment chain along a row, then advance up. Every
	// segment must take its predecessor's pre-move position; nothing
	// may collapse onto the head.
	c := NewChain(Cell{X: 5, Y: 5})
	c.Append(Cell{X: 4, Y: 5})
	c.Append(Cell{X: 3, Y: 5})
	c.Append(Cell{X: 2, Y: 5})

	c.Advance(0, -1)

	want := []Cell{
		{X: 5, Y: 4}, // head moved up
		{X: 5, Y: 5}, // head's old cell
		{X: 4, Y: 5},
		{X: 3, Y: 5},
	}
	for i, w := range want {
		if got := c.At(i); got != w {
			t.Errorf("segment %d at %v, want %v", i, got, w)
		}
	}
}

func TestChainRepeatedAdvanceKeepsDistinctCells(t *testing.T) {
	c := NewChain(Cell{X: 5, Y: 5})
	c.Append(Cell{X: 4, Y: 5})
	c.Append(Cell{X: 3, Y: 5})

	for i := 0; i < 4; i++ {
		c.Advance(1, 0)
		seen := map[Cell]bool{}
		for j := 0; j < c.Len(); j++ {
			cell := c.At(j)
			if seen[cell] {
				t.Fatalf("advance %d: duplicate cell %v", i, cell)
			}
			seen[cell] = true
		}
	}
}

func TestChainTruncateRecyclesHandles(t *testing.T) {
	c := NewChain(Cell{X: 1, Y: 1})
	a := c.Append(Cell{X: 0, Y: 1})
	b := c.Append(Cell{X: 0, Y: 0})

	c.Truncate()
	if c.Len() != 1 {
		t.Fatalf("len %d after truncate, want 1", c.Len())
	}

	// Freed handles come back instead of growing the arena.
	n1 := c.Append(Cell{X: 2, Y: 1})
	n2 := c.Append(Cell{X: 3, Y: 1})
	if (n1 != a && n1 != b) || (n2 != a && n2 != b) || n1 == n2 {
		t.Errorf("recycled handles %d,%d, want some order of %d,%d", n1, n2, a, b)
	}
	if c.Pos(n1) != (Cell{X: 2, Y: 1}) || c.Pos(n2) != (Cell{X: 3, Y: 1}) {
		t.Error("recycled segments carry stale positions")
	}
}

func TestChainOccupies(t *testing.T) {
	c := NewChain(Cell{X: 1, Y: 1})
	c.Append(Cell{X: 2, Y: 1})
	if !c.Occupies(Cell{X: 2, Y: 1}) {
		t.Error("tail cell reported free")
	}
	if c.Occupies(Cell{X: 3, Y: 1}) {
		t.Error("empty cell reported occupied")
	}
}
