package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// FacingEpsilon is the distance under which two positions count as equal on
// an axis for push-apart decisions.
const FacingEpsilon = 0.015

// FaceAway reports whether an entity at ours should face right to walk away
// from an entity at theirs. Both positions must already be unwrapped.
//
// Horizontal order decides when the entities are apart on x. When they share
// an x, vertical order decides (the lower one goes right). When they share
// both, the lower network id goes right; equal ids give false.
func FaceAway(ours, theirs mgl64.Vec2, ourID, theirID uint64) bool {
	goRight := ours.X() > theirs.X()
	if math.Abs(ours.X()-theirs.X()) < FacingEpsilon {
		if math.Abs(ours.Y()-theirs.Y()) < FacingEpsilon {
			goRight = ourID < theirID
		} else {
			goRight = ours.Y() < theirs.Y()
		}
	}
	return goRight
}

// HitDirection returns the unit vector from ours to theirs, or the zero vector
// when the points coincide.
func HitDirection(ours, theirs mgl64.Vec2) mgl64.Vec2 {
	d := theirs.Sub(ours)
	l := d.Len()
	if l == 0 {
		return mgl64.Vec2{}
	}
	return d.Mul(1 / l)
}

// FromAbove reports whether a unit direction points upward by more than
// threshold.
func FromAbove(dir mgl64.Vec2, threshold float64) bool {
	return dir.Dot(mgl64.Vec2{0, 1}) > threshold
}
