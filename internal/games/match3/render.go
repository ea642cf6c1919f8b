package match3

import (
	"fmt"

	"github.com/willfaustino/funtomatch/internal/core"
	m3 "github.com/willfaustino/funtomatch/internal/match3"
)

const (
	cellWidth = 3 // "[R]"
	hudHeight = 4
	minWidth  = 46
)

// palette maps engine colors to screen colors. Boards never use more than
// m3.MaxColors entries.
var palette = [m3.MaxColors]core.Color{
	core.ColorRed,
	core.ColorBlue,
	core.ColorGreen,
	core.ColorYellow,
	core.ColorMagenta,
	core.ColorCyan,
	core.ColorOrange,
	core.ColorWhite,
	core.ColorGray,
	core.ColorBrightRed,
	core.ColorBrightBlue,
	core.ColorBrightGreen,
	core.ColorBrightYellow,
	core.ColorBrightMagenta,
	core.ColorBrightCyan,
	core.ColorBrightWhite,
}

func tileColor(c m3.Color) core.Color {
	if int(c) < len(palette) {
		return palette[c]
	}
	return core.ColorDefault
}

func (g *Game) boardSize() (w, h int) {
	return g.board.Width()*cellWidth + 2, g.board.Height() + 2
}

func (g *Game) minScreenSize() (w, h int) {
	bw, bh := g.boardSize()
	return core.Max(bw, minWidth), bh + hudHeight + 2
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	bw, bh := g.boardSize()
	frame := core.NewRect((g.screenW-bw)/2, hudHeight, bw, bh)

	hw := core.Min(g.screenW, core.Max(bw, minWidth))
	g.renderHUD(dst, core.NewRect((g.screenW-hw)/2, 0, hw, hudHeight))
	g.renderBoard(dst, frame)
	g.renderOverlays(dst, frame)
	dst.DrawTextCentered(g.screenH-1, g.Controls())
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	w, h := g.minScreenSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", w, h))
}

// renderHUD lays out the score line across hud, which is never narrower
// than minWidth so the counters cannot overlap on small boards.
func (g *Game) renderHUD(dst *core.Screen, hud core.Rect) {
	dst.DrawTextCentered(hud.Y, g.Title())

	score := fmt.Sprintf("Score: %d", g.score)
	dst.DrawText(hud.X, hud.Y+1, score)

	moves := fmt.Sprintf("Moves: %d", g.moves)
	if g.cfg.Rules.MaxMoves > 0 {
		moves = fmt.Sprintf("Moves: %d/%d", g.moves, g.cfg.Rules.MaxMoves)
	}
	mx := hud.Right() - len(moves)
	if !hud.Contains(mx-1-len(score), hud.Y+1) {
		// Too tight to share a row
		dst.DrawText(hud.X, hud.Y+2, moves)
	} else {
		dst.DrawText(mx, hud.Y+1, moves)
	}

	if g.status != "" {
		dst.DrawTextCentered(hud.Y+2, g.status)
	}
}

func (g *Game) renderBoard(dst *core.Screen, frame core.Rect) {
	dst.DrawBoxColor(frame, core.ColorGray)

	w, h := g.board.Width(), g.board.Height()
	for y := 0; y < h; y++ {
		// Row 0 is the bottom of the board
		sy := frame.Y + 1 + (h - 1 - y)
		for x := 0; x < w; x++ {
			sx := frame.X + 1 + x*cellWidth
			g.renderCell(dst, sx, sy, m3.C(x, y))
		}
	}
}

func (g *Game) renderCell(dst *core.Screen, sx, sy int, c m3.Coord) {
	glyph, color := '·', core.ColorGray
	if cell, err := g.board.Get(c); err == nil && cell.Occupied() {
		t := cell.Tile()
		glyph, color = t.Color.Rune(), tileColor(t.Color)
	}

	if e, ok := g.anim.at(c); ok {
		switch {
		case e.kind == effectRemove && glyph == '·':
			glyph, color = '*', core.ColorBrightWhite
		case e.kind == effectSpawn || e.kind == effectMove:
			color = color.Bright()
		}
	}
	dst.SetColor(sx+1, sy, glyph, color)

	left, right, frameColor := ' ', ' ', core.ColorDefault
	switch {
	case c == g.cursor:
		left, right, frameColor = '[', ']', core.ColorBrightWhite
	case g.selected != nil && *g.selected == c:
		left, right, frameColor = '<', '>', core.ColorBrightYellow
	case g.hint != nil && (g.hint[0] == c || g.hint[1] == c):
		left, right, frameColor = '(', ')', core.ColorBrightCyan
	}
	dst.SetColor(sx, sy, left, frameColor)
	dst.SetColor(sx+2, sy, right, frameColor)
}

func (g *Game) renderOverlays(dst *core.Screen, frame core.Rect) {
	switch {
	case g.paused:
		g.drawOverlay(dst, frame, "PAUSED", "Press P to resume")
	case g.gameOver && g.outOfMoves:
		g.drawOverlay(dst, frame, "NO MOVES LEFT", fmt.Sprintf("Score: %d", g.score), "Press R to restart")
	case g.gameOver:
		g.drawOverlay(dst, frame, "GAME OVER", fmt.Sprintf("Score: %d in %d moves", g.score, g.moves), "Press R to restart")
	}
}

func (g *Game) drawOverlay(dst *core.Screen, frame core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	box := frame.Centered(maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, line := range lines {
		dst.DrawText(box.X+(box.W-len(line))/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows: Move | Enter: Select | H: Hint | M: Autoplay | P: Pause | Q: Quit"
}
