// Package gfx plays a session in a desktop window.
package gfx

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/diegok/pixbreak/internal/game"
	"github.com/diegok/pixbreak/internal/protocol"
)

var (
	background = color.RGBA{R: 12, G: 12, B: 20, A: 255}
	white      = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	shade      = color.RGBA{R: 0, G: 0, B: 0, A: 160}

	rowColors = []color.RGBA{
		{R: 220, G: 60, B: 60, A: 255},
		{R: 235, G: 140, B: 40, A: 255},
		{R: 230, G: 210, B: 60, A: 255},
		{R: 70, G: 190, B: 90, A: 255},
		{R: 60, G: 170, B: 190, A: 255},
		{R: 70, G: 100, B: 220, A: 255},
		{R: 150, G: 80, B: 200, A: 255},
		{R: 220, G: 80, B: 180, A: 255},
	}
)

// Window drives a session from ebiten's update loop, one frame per tick
type Window struct {
	newSession func() *game.Session
	session    *game.Session
}

func NewWindow(newSession func() *game.Session) *Window {
	return &Window{newSession: newSession, session: newSession()}
}

// Run opens the window and blocks until it is closed or Esc is pressed
func Run(scale int, newSession func() *game.Session) error {
	ebiten.SetWindowSize(int(game.WorldWidth)*scale, int(game.WorldHeight)*scale)
	ebiten.SetWindowTitle("pixbreak")
	ebiten.SetTPS(game.TickRate)
	return ebiten.RunGame(NewWindow(newSession))
}

func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if !w.session.Running() {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			w.session = w.newSession()
		}
		return nil
	}
	w.session.Update(readKeys().inputs()...)
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	f := w.session.Frame()
	screen.Fill(background)

	for _, b := range f.Blocks {
		fillRect(screen, b.RectState, rowColors[b.Row%len(rowColors)])
	}
	fillRect(screen, f.Paddle, white)
	vector.DrawFilledCircle(screen,
		float32(f.Ball.X+f.Ball.Width/2), float32(f.Ball.Y+f.Ball.Height/2),
		float32(f.Ball.Width/2), white, true)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("BLOCKS %d / %d", f.Score, f.TotalBlocks), 8, 4)
	if f.BallDocked {
		ebitenutil.DebugPrintAt(screen, "SPACE launch", int(f.WorldWidth)/2-36, int(f.WorldHeight)-20)
	}

	if f.Phase == protocol.PhaseEnded {
		vector.DrawFilledRect(screen, 0, 0, float32(f.WorldWidth), float32(f.WorldHeight), shade, false)
		title := "GAME OVER"
		if f.Outcome == protocol.OutcomeWon {
			title = "YOU WIN!"
		}
		ebitenutil.DebugPrintAt(screen, title, int(f.WorldWidth)/2-len(title)*3, int(f.WorldHeight)/2-12)
		ebitenutil.DebugPrintAt(screen, "ENTER play again | ESC quit", int(f.WorldWidth)/2-81, int(f.WorldHeight)/2+4)
	}
}

// Layout keeps the logical screen at world size; ebiten scales it to the window
func (w *Window) Layout(_, _ int) (int, int) {
	return int(game.WorldWidth), int(game.WorldHeight)
}

func fillRect(dst *ebiten.Image, r protocol.RectState, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), clr, false)
}
