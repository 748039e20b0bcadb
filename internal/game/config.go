package game

// Board dimensions (in cells). Sized so a 50 px cell fills the
// default window exactly.
const (
	GridCols = 16
	GridRows = 12
)

// CellSize is world pixels per grid cell. All entity positions are
// cell-aligned; fractional coordinates exist only inside the renderer.
const CellSize = 50.0

// Window defaults.
const (
	WindowWidth  = 800
	WindowHeight = 600
)

// StepInterval is seconds of wall-clock time per simulation tick.
// The render loop runs free; the sim advances only when the gate fires.
const StepInterval = 0.25

// Sprite sizes relative to a cell.
const (
	HeadScale = 0.95
	TailScale = 0.85
	FoodScale = 0.80
)

// FoodRetryLimit bounds the rejection-sampling loop before falling back
// to an exhaustive free-cell scan.
const FoodRetryLimit = 128

// MaxSpriteRender caps the streaming sprite buffer: the board underlay
// plus every segment, the food, and a little headroom.
const MaxSpriteRender = GridCols*GridRows + GridCols*GridRows + 16
