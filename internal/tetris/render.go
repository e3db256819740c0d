package tetris

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Layout constants. Each board cell is two terminal columns wide so the
// playfield looks roughly square.
const (
	cellCols   = 2
	hudRows    = 1
	panelGap   = 2
	panelWidth = 20
)

const blockRune = '█'

// layout positions the board and side panel on the screen.
type layout struct {
	fits   bool
	needW  int
	needH  int
	boardX int // Top-left of the board frame
	boardY int
	panelX int
}

func computeLayout(boardW, boardH, screenW, screenH int) layout {
	frameW := boardW*cellCols + 2
	frameH := boardH + 2

	l := layout{
		needW: frameW + panelGap + panelWidth,
		needH: hudRows + frameH,
	}
	if screenW < l.needW || screenH < l.needH {
		return l
	}

	l.fits = true
	l.boardX = (screenW - l.needW) / 2
	l.boardY = hudRows + (screenH-l.needH)/2
	l.panelX = l.boardX + frameW + panelGap
	return l
}

func (l layout) boardFrame(b BoardView) core.Rect {
	return core.NewRect(l.boardX, l.boardY, b.Width()*cellCols+2, b.Height()+2)
}

func (l layout) panelFrame(b BoardView) core.Rect {
	return core.NewRect(l.panelX, l.boardY, panelWidth, b.Height()+2)
}

// Render draws the current game state to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.restartBtn = core.Rect{}

	if g.err != nil {
		renderOverlay(dst, screenRect(dst), "Cannot start Tetris", truncate(g.err.Error(), dst.Width()-4))
		return
	}
	if g.engine == nil {
		return
	}

	g.renderHUD(dst)

	if g.tooSmall {
		renderOverlay(dst, screenRect(dst), "Window too small",
			fmt.Sprintf("Need %dx%d, have %dx%d", g.layout.needW, g.layout.needH, dst.Width(), dst.Height()))
		return
	}

	board := g.engine.Board()
	frame := g.layout.boardFrame(board)
	g.renderBoard(dst, frame)
	g.renderPiece(dst, frame)
	g.renderPanel(dst, g.layout.panelFrame(board))

	switch g.engine.State() {
	case StateGameOver:
		const button = "[ Restart ]"
		box := renderOverlay(dst, frame, "Game Over", fmt.Sprintf("Score: %d", g.engine.Score()), "", button)
		g.restartBtn = core.NewRect(centeredX(box, button), box.Y+2+3, utf8.RuneCountInString(button), 1)
		dst.DrawTextColor(g.restartBtn.X, g.restartBtn.Y, button, core.ColorBrightYellow)
	case StatePaused:
		renderOverlay(dst, frame, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status line.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Tetris | Score: %d  Level: %d  Lines: %d",
		g.engine.Score(), g.engine.Level(), g.engine.Lines())
	dst.DrawText(0, 0, truncate(hud, dst.Width()))
}

// renderBoard draws the frame and the locked cells.
func (g *Game) renderBoard(dst *core.Screen, frame core.Rect) {
	dst.DrawBox(frame, core.ColorGray)

	board := g.engine.Board()
	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			cell := board.Cell(x, y)
			if !cell.Filled {
				continue
			}
			drawBlock(dst, frame.X+1+x*cellCols, frame.Y+1+y, cell.Color.Color())
		}
	}
}

// renderPiece draws the falling piece. Rows above the board are not shown.
func (g *Game) renderPiece(dst *core.Screen, frame core.Rect) {
	if g.engine.GameOver() {
		return
	}
	p := g.engine.Current()
	c := p.Color.Color()
	forEachCell(p.Shape, func(dx, dy int) {
		y := p.Y + dy
		if y < 0 {
			return
		}
		drawBlock(dst, frame.X+1+(p.X+dx)*cellCols, frame.Y+1+y, c)
	})
}

// renderPanel draws the next-piece preview and the stats.
func (g *Game) renderPanel(dst *core.Screen, frame core.Rect) {
	dst.DrawBox(frame, core.ColorGray)

	x := frame.X + 2
	row := frame.Y + 1
	line := func(text string, c core.Color) {
		if row < frame.Bottom()-1 {
			dst.DrawTextColor(x, row, text, c)
		}
		row++
	}

	line("Next", core.ColorGray)
	next := g.engine.Next()
	nc := next.Color.Color()
	forEachCell(next.Shape, func(dx, dy int) {
		if y := row + dy; y < frame.Bottom()-1 {
			drawBlock(dst, x+dx*cellCols, y, nc)
		}
	})
	row += 3

	line("Score", core.ColorGray)
	line(fmt.Sprintf("%d", g.engine.Score()), core.ColorBrightWhite)
	row++
	line("Lines", core.ColorGray)
	line(fmt.Sprintf("%d", g.engine.Lines()), core.ColorBrightWhite)
	row++
	line("Level", core.ColorGray)
	line(fmt.Sprintf("%d", g.engine.Level()), core.ColorBrightWhite)
	row++
	line("Speed", core.ColorGray)
	line(fmt.Sprintf("%.2f/s", g.engine.Speed()), core.ColorBrightWhite)
	row++
	line("←→ move  ↑ rotate", core.ColorGray)
	line("↓ drop   P pause", core.ColorGray)
}

// renderOverlay draws a bordered message box centered in area and returns
// the box. Lines start two rows below the top border.
func renderOverlay(dst *core.Screen, area core.Rect, lines ...string) core.Rect {
	maxLen := 0
	for _, l := range lines {
		if n := utf8.RuneCountInString(l); n > maxLen {
			maxLen = n
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 4
	box := core.NewRect(area.X+(area.W-boxW)/2, area.Y+(area.H-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	for i, l := range lines {
		dst.DrawText(centeredX(box, l), box.Y+2+i, l)
	}
	return box
}

func drawBlock(dst *core.Screen, x, y int, c core.Color) {
	for i := 0; i < cellCols; i++ {
		dst.SetColor(x+i, y, blockRune, c)
	}
}

func forEachCell(s Shape, fn func(dx, dy int)) {
	for dy, row := range s {
		for dx, filled := range row {
			if filled {
				fn(dx, dy)
			}
		}
	}
}

func centeredX(box core.Rect, text string) int {
	return box.X + (box.W-utf8.RuneCountInString(text))/2
}

func screenRect(dst *core.Screen) core.Rect {
	return core.NewRect(0, 0, dst.Width(), dst.Height())
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
