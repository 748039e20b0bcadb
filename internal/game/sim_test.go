package game

import "testing"

// stepper drives a sim one due tick at a time.
type stepper struct {
	now float64
	sim *Simulation
}

func newStepper(cfg SimConfig, bus *EventBus) *stepper {
	return &stepper{sim: NewSimulation(0, cfg, bus)}
}

func (st *stepper) tick(d Direction) {
	st.now += StepInterval
	st.sim.Frame(st.now, d)
}

// parkFood moves the food somewhere the scripted path never visits.
func parkFood(s *Simulation) {
	s.food = Cell{X: 0, Y: 0}
	s.hasFood = true
}

func TestSimInitialState(t *testing.T) {
	s := NewSimulation(0, SimConfig{Seed: 1}, nil)
	if s.State() != SimRunning {
		t.Error("new sim not running")
	}
	if s.Length() != 1 {
		t.Errorf("initial length %d, want 1", s.Length())
	}
	if got := s.Head(); got != startCell() {
		t.Errorf("head %v, want %v", got, startCell())
	}
	food, ok := s.Food()
	if !ok {
		t.Fatal("no food placed at start")
	}
	if food == s.Head() {
		t.Error("food placed on the head")
	}
}

func TestSimIdleUntilFirstInput(t *testing.T) {
	st := newStepper(SimConfig{Seed: 1}, nil)
	parkFood(st.sim)

	head := st.sim.Head()
	for i := 0; i < 5; i++ {
		st.tick(DirNone)
	}
	if st.sim.Head() != head {
		t.Error("head moved without any input")
	}
	if st.sim.State() != SimRunning {
		t.Error("sim terminated while idle")
	}
}

func TestSimHeadFollowsCommittedDirection(t *testing.T) {
	st := newStepper(SimConfig{Seed: 1}, nil)
	parkFood(st.sim)

	start := st.sim.Head()
	st.tick(DirRight)
	if got := st.sim.Head(); got != (Cell{X: start.X + 1, Y: start.Y}) {
		t.Errorf("head %v, want one cell right of %v", got, start)
	}
	// No input: keeps going right.
	st.tick(DirNone)
	if got := st.sim.Head(); got != (Cell{X: start.X + 2, Y: start.Y}) {
		t.Errorf("head %v, want two cells right of %v", got, start)
	}
}

func TestSimWallCollision(t *testing.T) {
	bus := NewEventBus()
	var over []Event
	bus.Subscribe(EventGameOver, func(e Event) { over = append(over, e) })

	st := newStepper(SimConfig{Seed: 1}, bus)
	parkFood(st.sim)

	// Head starts at the board centre; run right until the wall.
	for i := 0; i < GridCols; i++ {
		st.tick(DirRight)
		parkFood(st.sim)
	}
	if st.sim.State() != SimTerminated {
		t.Fatal("sim still running after crossing the right wall")
	}
	if st.sim.Length() != 1 {
		t.Errorf("length %d after termination, want 1", st.sim.Length())
	}
	if len(over) != 1 || over[0].Data != OverWall {
		t.Errorf("game-over events %v, want one wall event", over)
	}

	// Terminated sim ignores further frames.
	head := st.sim.Head()
	st.tick(DirRight)
	if st.sim.Head() != head {
		t.Error("terminated sim kept moving")
	}
}

func TestSimSelfCollisionAtIndexThree(t *testing.T) {
	bus := NewEventBus()
	var over []Event
	bus.Subscribe(EventGameOver, func(e Event) { over = append(over, e) })

	st := newStepper(SimConfig{Seed: 1}, bus)
	parkFood(st.sim)
	s := st.sim

	// Hand-build a 5-segment chain where moving right puts the head on
	// the cell the post-advance index-3 segment will occupy.
	for i := 0; i < 4; i++ {
		s.chain.Append(Cell{})
	}
	cells := []Cell{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}}
	for i, c := range cells {
		s.chain.pos[s.chain.order[i]] = c
	}

	st.tick(DirRight)
	if s.State() != SimTerminated {
		t.Fatal("head on a mid-chain segment did not terminate")
	}
	if len(over) != 1 || over[0].Data != OverSelf {
		t.Errorf("game-over events %v, want one self-collision event", over)
	}
	if s.Length() != 1 {
		t.Errorf("length %d after termination, want 1", s.Length())
	}
}

func TestSimNearNeckIsNotACollision(t *testing.T) {
	st := newStepper(SimConfig{Seed: 1}, nil)
	parkFood(st.sim)
	s := st.sim

	// Index 2 ends up on the head's cell after the advance; the two
	// near-neck slots are excluded from the self check.
	for i := 0; i < 3; i++ {
		s.chain.Append(Cell{})
	}
	cells := []Cell{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}}
	for i, c := range cells {
		s.chain.pos[s.chain.order[i]] = c
	}

	st.tick(DirRight)
	if s.State() != SimRunning {
		t.Error("near-neck coincidence terminated the sim")
	}
}

func TestSimGrowthResolvesAfterTwoTicks(t *testing.T) {
	bus := NewEventBus()
	var eaten, grown []Event
	bus.Subscribe(EventFoodEaten, func(e Event) { eaten = append(eaten, e) })
	bus.Subscribe(EventSegmentGrown, func(e Event) { grown = append(grown, e) })

	st := newStepper(SimConfig{Seed: 1}, bus)
	s := st.sim
	start := s.Head()
	spawn := Cell{X: start.X + 1, Y: start.Y}
	s.food = spawn
	s.hasFood = true

	st.tick(DirRight) // eat; tail cell at eat time is the spawn cell
	if len(eaten) != 1 {
		t.Fatalf("eat events %d, want 1", len(eaten))
	}
	if s.Length() != 1 {
		t.Errorf("length %d on the eat tick, want 1 (append is deferred)", s.Length())
	}
	parkFood(s)

	st.tick(DirNone) // phase 1: tail has vacated the spawn cell
	if s.Length() != 1 {
		t.Errorf("length %d one tick after eating, want 1", s.Length())
	}

	st.tick(DirNone) // phase 2: append
	if s.Length() != 2 {
		t.Fatalf("length %d two ticks after eating, want 2", s.Length())
	}
	if got := s.Segment(1); got != spawn {
		t.Errorf("new segment at %v, want the recorded spawn cell %v", got, spawn)
	}
	if len(grown) != 1 || grown[0].Cell != spawn {
		t.Errorf("grow events %v, want one at %v", grown, spawn)
	}

	// Food was relocated off the chain.
	if food, ok := s.Food(); !ok || s.chain.Occupies(food) {
		t.Error("food missing or overlapping the chain after relocation")
	}
}

func TestSimQueuedGrowthIsNotLost(t *testing.T) {
	st := newStepper(SimConfig{Seed: 1}, nil)
	s := st.sim
	start := s.Head()

	// Eat on two consecutive ticks; the second event queues behind the
	// unresolved first and both must land eventually.
	s.food = Cell{X: start.X + 1, Y: start.Y}
	s.hasFood = true
	st.tick(DirRight)

	s.food = Cell{X: start.X + 2, Y: start.Y}
	s.hasFood = true
	st.tick(DirNone)
	parkFood(s)

	for i := 0; i < 4; i++ {
		st.tick(DirNone)
	}
	if s.Length() != 3 {
		t.Fatalf("length %d after both growth events, want 3", s.Length())
	}
	seen := map[Cell]bool{}
	for i := 0; i < s.Length(); i++ {
		cell := s.Segment(i)
		if seen[cell] {
			t.Errorf("duplicate segment cell %v", cell)
		}
		seen[cell] = true
	}
}

func TestSimLengthNeverShrinksWhileRunning(t *testing.T) {
	st := newStepper(SimConfig{Seed: 42}, nil)
	s := st.sim

	// Box drive: circle the board's interior and eat whatever shows up.
	script := []Direction{DirRight, DirRight, DirDown, DirDown, DirLeft, DirLeft, DirUp, DirUp}
	prev := s.Length()
	for i := 0; i < 200 && s.State() == SimRunning; i++ {
		st.tick(script[i%len(script)])
		if s.State() != SimRunning {
			break
		}
		if s.Length() < prev {
			t.Fatalf("tick %d: length shrank %d -> %d while running", i, prev, s.Length())
		}
		prev = s.Length()
		if food, ok := s.Food(); ok && s.chain.Occupies(food) {
			t.Fatalf("tick %d: food %v overlaps the chain at rest", i, food)
		}
	}
}

func TestSimFullResetRecentersOnTermination(t *testing.T) {
	st := newStepper(SimConfig{Seed: 1, FullReset: true}, nil)
	parkFood(st.sim)

	for i := 0; i < GridCols; i++ {
		st.tick(DirUp)
		parkFood(st.sim)
	}
	s := st.sim
	if s.State() != SimTerminated {
		t.Fatal("sim still running after crossing the top wall")
	}
	if got := s.Head(); got != startCell() {
		t.Errorf("head %v after full reset, want %v", got, startCell())
	}
	if s.Heading() != DirNone {
		t.Errorf("heading %v after full reset, want none", s.Heading())
	}
	if food, ok := s.Food(); !ok || food == s.Head() {
		t.Error("food missing or on the head after full reset")
	}
}

func TestSimFreezeWithoutFullReset(t *testing.T) {
	st := newStepper(SimConfig{Seed: 1}, nil)
	parkFood(st.sim)

	for i := 0; i < GridCols; i++ {
		st.tick(DirRight)
		parkFood(st.sim)
	}
	s := st.sim
	if s.State() != SimTerminated {
		t.Fatal("sim still running")
	}
	// Reference freeze: the head stays where it died.
	if got := s.Head(); got == startCell() {
		t.Error("head recentred without FullReset")
	}
}

func TestSimRestart(t *testing.T) {
	st := newStepper(SimConfig{Seed: 1}, nil)
	parkFood(st.sim)

	for i := 0; i < GridCols; i++ {
		st.tick(DirRight)
		parkFood(st.sim)
	}
	s := st.sim
	s.Restart(st.now)
	if s.State() != SimRunning {
		t.Error("restart did not resume the sim")
	}
	if s.Length() != 1 || s.Head() != startCell() {
		t.Errorf("restart state: length %d head %v", s.Length(), s.Head())
	}

	// And it plays again.
	st.tick(DirLeft)
	if got := s.Head(); got != (Cell{X: startCell().X - 1, Y: startCell().Y}) {
		t.Errorf("head %v after restart tick, want one cell left of centre", got)
	}
}

func TestSimDeterministicUnderSeed(t *testing.T) {
	script := []Direction{DirRight, DirDown, DirLeft, DirUp, DirRight, DirRight, DirDown}

	run := func() ([]Cell, []Cell) {
		st := newStepper(SimConfig{Seed: 777}, nil)
		var heads, foods []Cell
		for i := 0; i < 60 && st.sim.State() == SimRunning; i++ {
			st.tick(script[i%len(script)])
			heads = append(heads, st.sim.Head())
			if food, ok := st.sim.Food(); ok {
				foods = append(foods, food)
			}
		}
		return heads, foods
	}

	h1, f1 := run()
	h2, f2 := run()
	if len(h1) != len(h2) || len(f1) != len(f2) {
		t.Fatalf("run lengths differ: %d/%d heads, %d/%d foods", len(h1), len(h2), len(f1), len(f2))
	}
	for i := range h1 {
		if h1[i] != h2[i] {
			t.Fatalf("tick %d: head %v vs %v", i, h1[i], h2[i])
		}
	}
	for i := range f1 {
		if f1[i] != f2[i] {
			t.Fatalf("tick %d: food %v vs %v", i, f1[i], f2[i])
		}
	}
}
