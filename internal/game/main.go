package game

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func RunDesktop() {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	if err := InitAudio(); err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	}

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("SNAKE_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.ClearColor(
		float32(Palette.Background.R)/255.0,
		float32(Palette.Background.G)/255.0,
		float32(Palette.Background.B)/255.0,
		1.0,
	)

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()
	if err := rend.InitFont(); err != nil {
		panic(fmt.Errorf("font: %w", err))
	}

	session := NewGameSession()
	bus := NewEventBus()
	sim := NewSimulation(glfw.GetTime(), SimConfig{Seed: seed, FullReset: true}, bus)

	// Sound and session transitions ride on sim events.
	bus.Subscribe(EventFoodEaten, func(Event) {
		PlaySound(SoundEat)
	})
	bus.Subscribe(EventSegmentGrown, func(Event) {
		PlaySound(SoundGrow)
	})
	bus.Subscribe(EventGameOver, func(e Event) {
		PlaySound(SoundGameOver)
		session.End(e.Data)
	})

	input := NewInput()

	// Reusable render buffer.
	var spriteBuf []float32

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		switch session.State {
		case StateMenu:
			if input.JustPressed(window, glfw.KeySpace) {
				PlaySound(SoundMenuSelect)
				session.Start()
				sim.Restart(now)
			}

		case StatePlaying:
			sim.Frame(now, DirectionRequest(window))
			session.Update(dt, sim.Length())

		case StateGameOver:
			if input.JustPressed(window, glfw.KeySpace) {
				PlaySound(SoundMenuSelect)
				session.Start()
				sim.Restart(now)
			}
		}

		cam := FitCamera(fbW, fbH)

		rend.BeginFrame(fbW, fbH)
		rend.DrawSprites(boardRenderData(), cam, fbW, fbH)
		if session.State != StateMenu {
			spriteBuf = sim.RenderData(spriteBuf[:0])
			rend.DrawSprites(spriteBuf, cam, fbW, fbH)
		}
		RenderHUD(rend, session, sim, fbW, fbH)

		window.SwapBuffers()
	}
}
