package game

// TickGate converts continuous wall-clock time into discrete simulation
// steps. It is a pure timing latch: Due fires at most once per
// StepInterval regardless of how often the render loop asks.
type TickGate struct {
	last     float64
	interval float64
}

func NewTickGate(now, interval float64) TickGate {
	return TickGate{last: now, interval: interval}
}

// Due reports whether a simulation step is owed at the given time and,
// if so, records the new last-tick time.
func (g *TickGate) Due(now float64) bool {
	if now-g.last < g.interval {
		return false
	}
	g.last = now
	return true
}

// Reset re-arms the gate so the next tick is a full interval away.
func (g *TickGate) Reset(now float64) {
	g.last = now
}
