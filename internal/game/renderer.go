package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	// Sprite program (board cells, segments, food).
	spriteProg uint32
	spriteVAO  uint32
	spriteVBO  uint32

	spUCamera     int32
	spUZoom       int32
	spUResolution int32

	// Text rendering.
	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32
	textBuf      []float32
}

func NewRenderer() (*Renderer, error) {
	spriteProg, err := linkProgram(spriteVertSrc, spriteFragSrc)
	if err != nil {
		return nil, fmt.Errorf("sprite program: %w", err)
	}

	r := &Renderer{spriteProg: spriteProg}

	// Sprite VAO/VBO: streaming buffer for point sprites.
	// Each sprite: 7 floats (x, y, size, r, g, b, a).
	var sVAO, sVBO uint32
	gl.GenVertexArrays(1, &sVAO)
	gl.GenBuffers(1, &sVBO)
	gl.BindVertexArray(sVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sVBO)

	stride := int32(7 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxSpriteRender*int(stride), nil, gl.STREAM_DRAW)
	// aWorldPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aSize (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	// aColor (vec4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	r.spriteVAO = sVAO
	r.spriteVBO = sVBO

	gl.UseProgram(spriteProg)
	r.spUCamera = gl.GetUniformLocation(spriteProg, gl.Str("uCamera\x00"))
	r.spUZoom = gl.GetUniformLocation(spriteProg, gl.Str("uZoom\x00"))
	r.spUResolution = gl.GetUniformLocation(spriteProg, gl.Str("uResolution\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.spriteVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.spriteVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.spriteProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
}

func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// DrawSprites renders an array of point sprites using the sprite program.
// buf format: [x, y, size, r, g, b, a] * N (7 floats per sprite).
func (r *Renderer) DrawSprites(buf []float32, cam Camera, fbW, fbH int) {
	if len(buf) == 0 {
		return
	}

	count := len(buf) / 7
	if count > MaxSpriteRender {
		count = MaxSpriteRender
	}

	gl.UseProgram(r.spriteProg)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)

	gl.Uniform2f(r.spUCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(r.spUZoom, float32(cam.Zoom))
	gl.Uniform2f(r.spUResolution, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BufferData(gl.ARRAY_BUFFER, count*7*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
}
