package game

// PlaceFood chooses a free cell for the food by uniform rejection
// sampling against the occupancy index. The loop is bounded: past
// FoodRetryLimit attempts it falls back to picking uniformly among the
// remaining free cells, so placement terminates even with the board
// nearly full. Returns false only when no free cell exists at all.
func PlaceFood(r *Rand, occ *Occupancy) (Cell, bool) {
	if occ.FreeCount() == 0 {
		return Cell{}, false
	}
	for i := 0; i < FoodRetryLimit; i++ {
		cell := Cell{X: r.Intn(GridCols), Y: r.Intn(GridRows)}
		if !occ.Occupied(cell) {
			return cell, true
		}
	}
	return occ.NthFree(r.Intn(occ.FreeCount())), true
}
