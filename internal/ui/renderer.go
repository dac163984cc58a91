package ui

import (
	"fmt"

	"fortio.org/safecast"
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pixbreak/internal/protocol"
)

const (
	BallChar   = '\u2B24' // ⬤
	PaddleChar = '\u2580' // ▀
	BlockChar  = '\u2588' // █
)

// Renderer handles rendering all game screens
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// viewport maps world coordinates onto the terminal rows between the two
// status bars
type viewport struct {
	scaleX, scaleY float64
	top            int
}

func newViewport(f protocol.Frame, screenW, screenH int) viewport {
	return viewport{
		scaleX: float64(screenW) / f.WorldWidth,
		scaleY: float64(screenH-2) / f.WorldHeight, // -2 for status bars
		top:    1,
	}
}

// cells converts a world rect into a cell rect, at least one cell in size
func (v viewport) cells(r protocol.RectState) (x, y, w, h int) {
	x = safecast.MustRound[int](r.X * v.scaleX)
	y = safecast.MustRound[int](r.Y*v.scaleY) + v.top
	w = max(1, safecast.MustRound[int]((r.X+r.Width)*v.scaleX)-x)
	h = max(1, safecast.MustRound[int]((r.Y+r.Height)*v.scaleY)+v.top-y)
	return x, y, w, h
}

// RenderGame displays the playfield
func (r *Renderer) RenderGame(f protocol.Frame) {
	r.screen.Clear()
	r.drawField(f)
	r.screen.Show()
}

func (r *Renderer) drawField(f protocol.Frame) {
	screenW, screenH := r.screen.Size()
	v := newViewport(f, screenW, screenH)

	// Draw court background (black)
	courtStyle := tcell.StyleDefault.Background(tcell.ColorBlack)
	r.screen.FillRect(0, 1, screenW, screenH-2, courtStyle, ' ')

	r.renderScoreboard(f, screenW)

	for _, b := range f.Blocks {
		x, y, w, h := v.cells(b.RectState)
		// Leave a one cell gap so neighbours stay apart when scaled down
		if w > 1 {
			w--
		}
		r.screen.FillRect(x, y, w, h, GetRowStyle(b.Row), BlockChar)
	}

	paddleStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	px, py, pw, _ := v.cells(f.Paddle)
	r.screen.FillRect(px, py, pw, 1, paddleStyle, PaddleChar)

	// The ball is a single cell on its top row so it never shares the
	// paddle's row while docked
	ballStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	bx, by, bw, _ := v.cells(f.Ball)
	bx += bw / 2
	if bx >= 0 && bx < screenW && by >= 1 && by < screenH-1 {
		r.screen.SetCell(bx, by, ballStyle, BallChar)
	}

	// Status bar at bottom
	statusY := screenH - 1
	statusStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	for x := 0; x < screenW; x++ {
		r.screen.SetCell(x, statusY, statusStyle, ' ')
	}
	var statusText string
	if f.BallDocked {
		statusText = " SPACE launch | ←/→ move | q quit"
	} else {
		statusText = " ←/→ move | ↓ stop | q quit"
	}
	r.screen.DrawText(0, statusY, statusText, statusStyle)
}

// renderScoreboard draws the block counter at top center
func (r *Renderer) renderScoreboard(f protocol.Frame, screenW int) {
	text := fmt.Sprintf("[ BLOCKS %d / %d ]", f.Score, f.TotalBlocks)
	x := (screenW - len(text)) / 2
	style := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite).Bold(true)
	r.screen.DrawText(x, 0, text, style)
}

// RenderOutcome displays the end screen over the last frame
func (r *Renderer) RenderOutcome(f protocol.Frame) {
	r.screen.Clear()
	r.drawField(f)
	screenW, screenH := r.screen.Size()

	// Center message box
	boxW := 36
	boxH := 7
	boxX := (screenW - boxW) / 2
	boxY := (screenH - boxH) / 2
	r.screen.DrawBox(boxX, boxY, boxW, boxH, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	// Fill box background
	fillStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray)
	r.screen.FillRect(boxX+1, boxY+1, boxW-2, boxH-2, fillStyle, ' ')

	var title string
	var titleStyle tcell.Style
	if f.Outcome == protocol.OutcomeWon {
		title = "YOU WIN!"
		titleStyle = fillStyle.Foreground(tcell.ColorGreen).Bold(true)
	} else {
		title = "GAME OVER"
		titleStyle = fillStyle.Foreground(tcell.ColorRed).Bold(true)
	}
	r.screen.DrawText((screenW-len(title))/2, boxY+2, title, titleStyle)

	hint := "ENTER play again | q quit"
	r.screen.DrawText((screenW-len(hint))/2, boxY+4, hint, fillStyle.Foreground(tcell.ColorWhite))

	r.screen.Show()
}
