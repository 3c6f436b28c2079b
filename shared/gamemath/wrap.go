package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Wrap describes a horizontally looping level. The zero value disables
// wrapping.
type Wrap struct {
	Enabled bool
	MinX    float64
	Width   float64
}

// Unwrap returns b moved by one level width when that places it closer to a.
// After unwrapping, b - a is the shortest horizontal offset across the seam.
func (w Wrap) Unwrap(a, b mgl64.Vec2) (mgl64.Vec2, mgl64.Vec2) {
	if !w.Enabled || w.Width <= 0 {
		return a, b
	}
	if math.Abs(a[0]-b[0]) > w.Width/2 {
		mid := w.MinX + w.Width/2
		if b[0] > mid {
			b[0] -= w.Width
		} else {
			b[0] += w.Width
		}
	}
	return a, b
}

// WrapX folds x back into [MinX, MinX+Width).
func (w Wrap) WrapX(x float64) float64 {
	if !w.Enabled || w.Width <= 0 {
		return x
	}
	x = math.Mod(x-w.MinX, w.Width)
	if x < 0 {
		x += w.Width
	}
	return x + w.MinX
}
