package game

import "github.com/diegok/pixbreak/internal/protocol"

// Rect is an axis-aligned box in world units, origin at the top-left corner
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the x-coordinate of the right edge
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// CenterX returns the horizontal center
func (r Rect) CenterX() float64 {
	return r.X + r.Width/2
}

// Translate returns r shifted by (dx, dy)
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

func (r Rect) state() protocol.RectState {
	return protocol.RectState{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// Overlaps reports whether a and b intersect with strict overlap on both axes.
// Touching edges do not count.
func Overlaps(a, b Rect) bool {
	return a.X+a.Width > b.X &&
		a.X < b.X+b.Width &&
		a.Y+a.Height > b.Y &&
		a.Y < b.Y+b.Height
}
