package fifteen

import (
	"fmt"
	"strconv"

	"github.com/tileworks/fifteen/internal/core"
)

const cellHeight = 2 // Height of each cell (including borders)

// cellWidth returns the cell width including the left border, sized to the
// widest tile value on this board.
func (g *Game) cellWidth() int {
	digits := len(strconv.Itoa(g.rows*g.cols - 1))
	w := digits + 3
	if w < 5 {
		w = 5
	}
	return w
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	cellW := g.cellWidth()
	boardW := g.cols*cellW + 1
	boardH := g.rows*cellHeight + 1
	hudHeight := 3

	board := core.NewRect((g.screenW-boardW)/2, hudHeight+1, boardW, boardH)

	g.renderHUD(dst, board)
	g.renderBoard(dst, board, cellW)
	g.renderOverlays(dst, board)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	x := (g.screenW - len(msg)) / 2
	y := g.screenH / 2
	dst.DrawText(x, y, msg)

	hint := "Please resize terminal"
	hintX := (g.screenW - len(hint)) / 2
	dst.DrawText(hintX, y+1, hint)
}

// renderHUD draws the title, move counter, and autosolve indicator.
func (g *Game) renderHUD(dst *core.Screen, board core.Rect) {
	title := g.title
	titleX := board.X + (board.W-len(title))/2
	dst.DrawText(titleX, 0, title)

	movesStr := fmt.Sprintf("Moves: %d", g.mover.Steps())
	dst.DrawText(board.X, 1, movesStr)

	sizeStr := fmt.Sprintf("%dx%d", g.rows, g.cols)
	dst.DrawText(core.Max(board.X, board.Right()-len(sizeStr)), 1, sizeStr)

	if len(g.pending) > 0 {
		autoStr := fmt.Sprintf("AUTO (%d left)", len(g.pending))
		autoX := board.X + (board.W-len(autoStr))/2
		dst.DrawTextColored(autoX, 2, autoStr, core.ColorBrightCyan)
	}
}

// renderBoard draws the tile grid. Tiles already in their goal position are
// highlighted.
func (g *Game) renderBoard(dst *core.Screen, board core.Rect, cellW int) {
	// Grid borders
	for y := 0; y <= g.rows; y++ {
		for x := 0; x <= g.cols; x++ {
			px := board.X + x*cellW
			py := board.Y + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == g.cols:
				corner = '┐'
			case y == g.rows && x == 0:
				corner = '└'
			case y == g.rows && x == g.cols:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == g.rows:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == g.cols:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < g.cols {
				for i := 1; i < cellW; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < g.rows {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	// Tiles
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			val := g.board.At(r, c)
			if val == 0 {
				continue
			}

			cellX := board.X + c*cellW + 1
			cellY := board.Y + r*cellHeight + 1

			valStr := strconv.Itoa(val)
			padLeft := core.Max(0, (cellW-1-len(valStr))/2)

			color := core.ColorDefault
			if val == g.board.GoalValue(r, c) {
				color = core.ColorBrightGreen
			}
			dst.DrawTextColored(cellX+padLeft, cellY, valStr, color)
		}
	}
}

// renderOverlays draws pause and solved overlays.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	centerX, centerY := board.Center()

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.solved {
		movesStr := fmt.Sprintf("Solved in %d moves", g.mover.Steps())
		by := "by hand"
		if g.solvedByAuto {
			by = "by autosolver"
		}
		g.drawOverlay(dst, centerX, centerY, "SOLVED!", movesStr, by, "N: new shuffle  R: same deal")
	}
}

// drawOverlay draws a text overlay centered on the given point, shifted as
// needed to stay fully on screen.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(
		core.Clamp(centerX-boxW/2, 0, core.Max(0, g.screenW-boxW)),
		core.Clamp(centerY-boxH/2, 0, core.Max(0, g.screenH-boxH)),
		boxW, boxH,
	)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	textX, _ := box.Center()
	for i, line := range lines {
		dst.DrawText(textX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Slide | Space: Autosolve | N: Shuffle | P: Pause | R: Restart | Q: Quit"
}
