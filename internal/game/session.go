package game

type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StateGameOver
)

// GameSession tracks the frontend's menu/playing/game-over flow around
// the simulation. The sim itself knows nothing about menus.
type GameSession struct {
	State      GameState
	PlayTime   float64
	BestLength int
	OverReason int
}

func NewGameSession() *GameSession {
	return &GameSession{State: StateMenu}
}

func (s *GameSession) Start() {
	s.State = StatePlaying
	s.PlayTime = 0
}

func (s *GameSession) Update(dt float64, length int) {
	if s.State != StatePlaying {
		return
	}
	s.PlayTime += dt
	if length > s.BestLength {
		s.BestLength = length
	}
}

func (s *GameSession) End(reason int) {
	s.State = StateGameOver
	s.OverReason = reason
}
