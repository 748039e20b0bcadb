package game

import "fmt"

// RenderHUD draws the text overlay for the current session state.
// Strings stick to the glyph set in font.go: upper case, digits, and
// basic punctuation.
func RenderHUD(r *Renderer, session *GameSession, sim *Simulation, fbW, fbH int) {
	white := Palette.Text
	green := Palette.Accent
	red := Palette.Danger

	switch session.State {
	case StateMenu:
		title := "GRIDSNAKE"
		titleScale := float32(8.0)
		r.DrawString(title, fbW/2-TextWidth(title, titleScale)/2, fbH/2-140, titleScale, green)

		msg := "PRESS SPACE TO START"
		msgScale := float32(3.0)
		r.DrawString(msg, fbW/2-TextWidth(msg, msgScale)/2, fbH/2+10, msgScale, white)

		hint := "WASD OR ARROWS TO STEER"
		hintScale := float32(2.0)
		r.DrawString(hint, fbW/2-TextWidth(hint, hintScale)/2, fbH/2+60, hintScale, white)

	case StatePlaying:
		s := float32(2.5)
		lenStr := fmt.Sprintf("LENGTH: %d", sim.Length())
		r.DrawString(lenStr, 8, 8, s, white)

		timeStr := fmt.Sprintf("%.1fS", session.PlayTime)
		r.DrawString(timeStr, fbW-TextWidth(timeStr, s)-8, 8, s, white)

	case StateGameOver:
		msg1 := "GAME OVER"
		if session.OverReason == OverBoardFull {
			msg1 = "BOARD FULL!"
		}
		r.DrawString(msg1, fbW/2-TextWidth(msg1, 6.0)/2, fbH/2-100, 6.0, red)

		msg2 := fmt.Sprintf("BEST LENGTH: %d", session.BestLength)
		r.DrawString(msg2, fbW/2-TextWidth(msg2, 2.5)/2, fbH/2-10, 2.5, white)

		msg3 := "PRESS SPACE TO RETRY"
		r.DrawString(msg3, fbW/2-TextWidth(msg3, 2.5)/2, fbH/2+40, 2.5, white)
	}

	r.FlushText(fbW, fbH)
}
