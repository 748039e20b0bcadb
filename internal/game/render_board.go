package game

// boardSprites is the static checkerboard underlay, built once.
var boardSprites []float32

func boardRenderData() []float32 {
	if boardSprites != nil {
		return boardSprites
	}
	buf := make([]float32, 0, GridCols*GridRows*7)
	for y := 0; y < GridRows; y++ {
		for x := 0; x < GridCols; x++ {
			col := Palette.BoardDark
			if (x+y)%2 == 0 {
				col = Palette.BoardLight
			}
			cx, cy := CellCenter(Cell{X: x, Y: y})
			buf = append(buf,
				float32(cx), float32(cy),
				CellSize,
				float32(col.R)/255.0, float32(col.G)/255.0, float32(col.B)/255.0, 1.0,
			)
		}
	}
	boardSprites = buf
	return boardSprites
}

// RenderData appends sprites for the food and every segment to buf and
// returns it. Head first so the tail gradient is computed per index.
func (s *Simulation) RenderData(buf []float32) []float32 {
	if food, ok := s.Food(); ok {
		fx, fy := CellCenter(food)
		buf = append(buf,
			float32(fx), float32(fy),
			CellSize*FoodScale,
			float32(Palette.Food.R)/255.0, float32(Palette.Food.G)/255.0, float32(Palette.Food.B)/255.0, 1.0,
		)
	}

	n := s.Length()
	for i := n - 1; i >= 0; i-- {
		cx, cy := CellCenter(s.Segment(i))
		var col RGB
		size := CellSize * TailScale
		if i == 0 {
			col = Palette.Head
			size = CellSize * HeadScale
		} else {
			// Body shades toward the tip.
			t := float64(i) / float64(n)
			col = RGB{
				R: lerpU8(Palette.Body.R, Palette.BodyTip.R, t),
				G: lerpU8(Palette.Body.G, Palette.BodyTip.G, t),
				B: lerpU8(Palette.Body.B, Palette.BodyTip.B, t),
			}
		}
		buf = append(buf,
			float32(cx), float32(cy),
			float32(size),
			float32(col.R)/255.0, float32(col.G)/255.0, float32(col.B)/255.0, 1.0,
		)
	}
	return buf
}
