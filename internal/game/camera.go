package game

// Camera maps world pixels to screen pixels. The board never scrolls, so
// the camera is recomputed per frame to centre and fit it.
type Camera struct {
	X, Y float64 // world-pixel space, camera centre
	Zoom float64 // screen pixels per world pixel
}

// BoardWidth/BoardHeight are the board's extent in world pixels.
const (
	BoardWidth  = GridCols * CellSize
	BoardHeight = GridRows * CellSize
)

// FitCamera returns a camera centred on the board, zoomed to fit the
// framebuffer with a small margin.
func FitCamera(fbW, fbH int) Camera {
	zoom := 1.0
	if fbW > 0 && fbH > 0 {
		zx := float64(fbW) / BoardWidth
		zy := float64(fbH) / BoardHeight
		zoom = zx
		if zy < zoom {
			zoom = zy
		}
		zoom *= 0.94
	}
	return Camera{
		X:    BoardWidth / 2,
		Y:    BoardHeight / 2,
		Zoom: zoom,
	}
}

// CellCenter returns the world-pixel centre of a grid cell.
func CellCenter(c Cell) (float64, float64) {
	return float64(c.X)*CellSize + CellSize/2, float64(c.Y)*CellSize + CellSize/2
}
