package game

import (
	"math/rand/v2"
)

const (
	BallSpeed  = 3.0
	BallSize   = 20.0
	BallStartX = 320.0
	BallStartY = 280.0
)

// BallPhase tells whether the ball still rides the paddle
type BallPhase int

const (
	BallDocked BallPhase = iota
	BallLaunched
)

// Bounce identifies which world edge the ball hit this frame
type Bounce int

const (
	BounceNone Bounce = iota
	BounceLeft
	BounceRight
	BounceTop
	BounceBottom
)

type Ball struct {
	Rect
	DX, DY float64
	Speed  float64
	Phase  BallPhase
}

// NewBall creates a docked ball at (x, y)
func NewBall(x, y float64) *Ball {
	return &Ball{
		Rect:  Rect{X: x, Y: y, Width: BallSize, Height: BallSize},
		Speed: BallSpeed,
		Phase: BallDocked,
	}
}

// Docked reports whether the ball has not been launched yet
func (b *Ball) Docked() bool {
	return b.Phase == BallDocked
}

// Launch sends a docked ball upward with a random integer horizontal
// velocity in [-Speed, Speed]. Launching twice is a no-op.
func (b *Ball) Launch(rng *rand.Rand) {
	if b.Phase != BallDocked {
		return
	}
	s := int(b.Speed)
	b.DY = -b.Speed
	b.DX = float64(rng.IntN(2*s+1) - s)
	b.Phase = BallLaunched
}

// Move advances the ball by its velocity
func (b *Ball) Move() {
	b.X += b.DX
	b.Y += b.DY
}

// Next returns the box the ball will occupy after this frame's move
func (b *Ball) Next() Rect {
	return b.Translate(b.DX, b.DY)
}

// CollidesWith tests the ball's next-frame box against target
func (b *Ball) CollidesWith(target Rect) bool {
	return Overlaps(b.Next(), target)
}

// BounceOffWorld reflects the ball off the left, right or top edge, checked
// in that order; only the first match applies. BounceBottom means the ball
// is leaving the world and nothing is changed.
func (b *Ball) BounceOffWorld(width, height float64) Bounce {
	next := b.Next()

	switch {
	case next.X < 0:
		b.X = 0
		b.DX = b.Speed
		return BounceLeft
	case next.Right() > width:
		b.X = width - b.Width
		b.DX = -b.Speed
		return BounceRight
	case next.Y < 0:
		b.Y = 0
		b.DY = b.Speed
		return BounceTop
	case next.Bottom() > height:
		return BounceBottom
	}
	return BounceNone
}

// BumpOffBlock reflects the ball vertically and destroys the block.
// Returns false and does nothing if the block is already inactive.
func (b *Ball) BumpOffBlock(block *Block) bool {
	if !block.Active {
		return false
	}
	b.DY = -b.DY
	block.Deactivate()
	return true
}

// BumpOffPaddle sends a falling ball back up. The horizontal speed follows
// where the ball touched the paddle: full left at the left edge, none at the
// center, full right at the right edge. A rising ball is left alone.
func (b *Ball) BumpOffPaddle(p *Paddle) bool {
	if b.DY <= 0 {
		return false
	}
	if p.DX != 0 {
		b.X += p.DX
	}
	b.DY = -b.Speed
	b.DX = b.Speed * p.TouchOffset(b.CenterX())
	return true
}
