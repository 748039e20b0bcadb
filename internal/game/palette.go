package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

var Palette = struct {
	Background RGB
	BoardLight RGB
	BoardDark  RGB
	Head       RGB
	Body       RGB
	BodyTip    RGB
	Food       RGB
	Text       RGB
	Accent     RGB
	Danger     RGB
}{
	Background: RGB{R: 24, G: 26, B: 32},
	BoardLight: RGB{R: 44, G: 48, B: 58},
	BoardDark:  RGB{R: 38, G: 42, B: 51},
	Head:       RGB{R: 235, G: 240, B: 235},
	Body:       RGB{R: 130, G: 200, B: 120},
	BodyTip:    RGB{R: 80, G: 140, B: 85},
	Food:       RGB{R: 225, G: 70, B: 60},
	Text:       RGB{R: 235, G: 235, B: 235},
	Accent:     RGB{R: 120, G: 220, B: 130},
	Danger:     RGB{R: 255, G: 90, B: 80},
}

func lerpU8(a, b uint8, t float64) uint8 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}
