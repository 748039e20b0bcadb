package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevKeys: make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// DirectionRequest polls WASD and the arrow keys and returns the
// requested direction, or DirNone when nothing is held. Held keys count:
// the resolver decides what actually applies at the next tick.
func DirectionRequest(window *glfw.Window) Direction {
	switch {
	case window.GetKey(glfw.KeyW) == glfw.Press || window.GetKey(glfw.KeyUp) == glfw.Press:
		return DirUp
	case window.GetKey(glfw.KeyS) == glfw.Press || window.GetKey(glfw.KeyDown) == glfw.Press:
		return DirDown
	case window.GetKey(glfw.KeyA) == glfw.Press || window.GetKey(glfw.KeyLeft) == glfw.Press:
		return DirLeft
	case window.GetKey(glfw.KeyD) == glfw.Press || window.GetKey(glfw.KeyRight) == glfw.Press:
		return DirRight
	}
	return DirNone
}
