package game

// SimState is the collision detector's state machine.
type SimState int

const (
	SimRunning SimState = iota
	SimTerminated
)

// SimConfig carries the knobs the frontend sets once at startup.
type SimConfig struct {
	// Seed drives food placement. Zero means "pick something".
	Seed uint64
	// FullReset controls post-termination state: when set, a terminated
	// board is also recentred (head back to the middle, direction
	// cleared, food respawned) instead of freezing where the snake died.
	FullReset bool
}

// growthLatch is the two-phase deferred-append state. Armed when food is
// eaten; waiting is cleared on the tick the tail vacates the spawn cell;
// the segment is appended on the following tick. The one-tick gap
// guarantees the new segment never overlaps the tail it chases.
type growthLatch struct {
	pending bool
	waiting bool
	spawn   Cell
}

// Simulation is the whole tick-stepped game state. One logical frame is
// a single Frame call; every phase inside it runs sequentially on the
// caller's goroutine, so the strict phase order stands in for locking.
type Simulation struct {
	cfg      SimConfig
	rng      *Rand
	gate     TickGate
	resolver DirectionResolver
	chain    *Chain
	occ      Occupancy

	food    Cell
	hasFood bool

	growth growthLatch
	// queuedGrowth counts eats that happened while a growth event was
	// unresolved. Events arm one at a time, FIFO, so no growth is lost
	// and only one append is ever in flight.
	queuedGrowth int

	state SimState
	bus   *EventBus
}

func startCell() Cell {
	return Cell{X: GridCols / 2, Y: GridRows / 2}
}

// NewSimulation builds a running sim with a single-segment chain at the
// board centre and food already placed. A nil bus gets a private one so
// Emit never needs a guard.
func NewSimulation(now float64, cfg SimConfig, bus *EventBus) *Simulation {
	if cfg.Seed == 0 {
		cfg.Seed = 0x5EED
	}
	if bus == nil {
		bus = NewEventBus()
	}
	s := &Simulation{
		cfg:   cfg,
		rng:   NewRand(splitmix64(cfg.Seed)),
		gate:  NewTickGate(now, StepInterval),
		chain: NewChain(startCell()),
		bus:   bus,
	}
	s.occ.Rebuild(s.chain)
	s.food, s.hasFood = PlaceFood(s.rng, &s.occ)
	return s
}

func (s *Simulation) State() SimState    { return s.state }
func (s *Simulation) Length() int        { return s.chain.Len() }
func (s *Simulation) Head() Cell         { return s.chain.Head() }
func (s *Simulation) Food() (Cell, bool) { return s.food, s.hasFood }
func (s *Simulation) Heading() Direction { return s.resolver.Committed() }

// Segment returns the cell of the i-th segment, head first.
func (s *Simulation) Segment(i int) Cell { return s.chain.At(i) }

// Frame is the per-render-frame entry point. The direction request is
// recorded every frame so fast input between ticks is kept; the rest of
// the pipeline runs only when the tick gate fires.
func (s *Simulation) Frame(now float64, requested Direction) {
	s.resolver.Request(requested)
	if s.state != SimRunning {
		return
	}
	if !s.gate.Due(now) {
		return
	}
	s.step()
}

// step runs one simulation tick. Phase order is load-bearing: the
// collision check must see this tick's post-move positions, and food
// placement must see the post-growth chain.
func (s *Simulation) step() {
	dir := s.resolver.Commit()
	if dir == DirNone {
		// Not moving yet. Propagating a zero delta would stack the
		// chain onto the head, so the whole tick is a no-op.
		return
	}
	dx, dy := dir.Delta()
	s.chain.Advance(dx, dy)
	s.stepGrowth()
	s.occ.Rebuild(s.chain)

	head := s.chain.Head()
	if head.X < 0 || head.X >= GridCols || head.Y < 0 || head.Y >= GridRows {
		s.terminate(OverWall)
		return
	}
	// Self collision skips the two segments behind the head: right
	// after a turn they can be geometrically coincident without the
	// snake having eaten into itself.
	for i := 3; i < s.chain.Len(); i++ {
		if s.chain.At(i) == head {
			s.terminate(OverSelf)
			return
		}
	}
	if s.hasFood && head == s.food {
		s.eat()
	}
}

// stepGrowth advances the deferred-append latch by one tick.
func (s *Simulation) stepGrowth() {
	if !s.growth.pending {
		return
	}
	if s.growth.waiting {
		if s.chain.Tail() != s.growth.spawn {
			s.growth.waiting = false
		}
		return
	}
	spawn := s.growth.spawn
	s.chain.Append(spawn)
	s.growth = growthLatch{}
	s.bus.Emit(Event{Type: EventSegmentGrown, Cell: spawn})
	if s.queuedGrowth > 0 {
		s.queuedGrowth--
		s.armGrowth()
	}
}

func (s *Simulation) armGrowth() {
	s.growth = growthLatch{pending: true, waiting: true, spawn: s.chain.Tail()}
}

func (s *Simulation) eat() {
	s.bus.Emit(Event{Type: EventFoodEaten, Cell: s.food})
	if s.growth.pending {
		s.queuedGrowth++
	} else {
		s.armGrowth()
	}
	// The pending spawn cell may already be vacated, but a segment will
	// occupy it again when the latch resolves; keep food off it. The
	// index is rebuilt from the chain next tick, so the extra bit is
	// transient.
	s.occ.Add(s.growth.spawn)
	s.food, s.hasFood = PlaceFood(s.rng, &s.occ)
	if !s.hasFood {
		// Every cell is occupied; nothing left to eat.
		s.terminate(OverBoardFull)
	}
}

func (s *Simulation) terminate(reason int) {
	s.state = SimTerminated
	head := s.chain.Head()
	s.chain.Truncate()
	s.growth = growthLatch{}
	s.queuedGrowth = 0
	s.occ.Rebuild(s.chain)
	if s.cfg.FullReset {
		s.chain.MoveHead(startCell())
		s.resolver.Reset()
		s.occ.Rebuild(s.chain)
		s.food, s.hasFood = PlaceFood(s.rng, &s.occ)
	}
	s.bus.Emit(Event{Type: EventGameOver, Cell: head, Data: reason})
}

// Restart puts a (possibly terminated) sim back into play: fresh chain
// position, cleared direction, new food, re-armed tick gate.
func (s *Simulation) Restart(now float64) {
	s.chain.Truncate()
	s.chain.MoveHead(startCell())
	s.resolver.Reset()
	s.growth = growthLatch{}
	s.queuedGrowth = 0
	s.occ.Rebuild(s.chain)
	s.food, s.hasFood = PlaceFood(s.rng, &s.occ)
	s.gate.Reset(now)
	s.state = SimRunning
}
