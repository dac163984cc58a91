package game

import (
	"math/rand/v2"

	"github.com/diegok/pixbreak/internal/protocol"
)

const (
	PaddleSpeed  = 6.0
	PaddleWidth  = 100.0
	PaddleHeight = 14.0
	PaddleStartX = 280.0
	PaddleStartY = 300.0
)

type Paddle struct {
	Rect
	DX    float64
	Speed float64
}

func NewPaddle(x, y float64) *Paddle {
	return &Paddle{
		Rect:  Rect{X: x, Y: y, Width: PaddleWidth, Height: PaddleHeight},
		Speed: PaddleSpeed,
	}
}

// StartMoving sets the horizontal velocity for dir. Any other direction is ignored.
func (p *Paddle) StartMoving(dir protocol.Direction) {
	switch dir {
	case protocol.DirLeft:
		p.DX = -p.Speed
	case protocol.DirRight:
		p.DX = p.Speed
	}
}

func (p *Paddle) StopMoving() {
	p.DX = 0
}

// Move slides the paddle by its velocity, carrying a docked ball along
func (p *Paddle) Move(ball *Ball) {
	if p.DX == 0 {
		return
	}
	p.X += p.DX
	if ball != nil && ball.Docked() {
		ball.X += p.DX
	}
}

// LaunchBall releases a docked ball. Returns false if it was already launched.
func (p *Paddle) LaunchBall(ball *Ball, rng *rand.Rand) bool {
	if ball == nil || !ball.Docked() {
		return false
	}
	ball.Launch(rng)
	return true
}

// ClampToWorld halts the paddle when its next move would cross a side wall
func (p *Paddle) ClampToWorld(worldWidth float64) {
	next := p.Translate(p.DX, 0)
	if next.X < 0 || next.Right() > worldWidth {
		p.DX = 0
	}
}

// TouchOffset maps x onto the paddle width: -1 at the left edge, 0 at the
// center, +1 at the right edge. A ball hanging over an edge gets the edge value.
func (p *Paddle) TouchOffset(x float64) float64 {
	diff := p.Right() - x
	offset := p.Width - diff
	return max(-1, min(1, 2*offset/p.Width-1))
}
