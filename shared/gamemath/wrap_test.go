package gamemath

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestUnwrapAcrossSeam(t *testing.T) {
	w := Wrap{Enabled: true, MinX: 0, Width: 40}

	a, b := w.Unwrap(mgl64.Vec2{0.5, 3}, mgl64.Vec2{39.5, 3})
	assert.Equal(t, 0.5, a.X())
	assert.InDelta(t, -0.5, b.X(), 1e-9)

	a, b = w.Unwrap(mgl64.Vec2{39.5, 3}, mgl64.Vec2{0.5, 3})
	assert.Equal(t, 39.5, a.X())
	assert.InDelta(t, 40.5, b.X(), 1e-9)
}

func TestUnwrapNearbyUntouched(t *testing.T) {
	w := Wrap{Enabled: true, Width: 40}

	_, b := w.Unwrap(mgl64.Vec2{10, 0}, mgl64.Vec2{12, 0})
	assert.Equal(t, 12.0, b.X())

	_, b = Wrap{}.Unwrap(mgl64.Vec2{0, 0}, mgl64.Vec2{39, 0})
	assert.Equal(t, 39.0, b.X())
}

func TestWrapX(t *testing.T) {
	w := Wrap{Enabled: true, MinX: 0, Width: 40}

	assert.InDelta(t, 1.0, w.WrapX(41), 1e-9)
	assert.InDelta(t, 39.0, w.WrapX(-1), 1e-9)
	assert.Equal(t, -1.0, Wrap{}.WrapX(-1))
}

func TestAccelerate(t *testing.T) {
	assert.Equal(t, 1.0, Accelerate(0, 1, 2))
	assert.Equal(t, 0.5, Accelerate(0, 1, 0.5))
	assert.Equal(t, -0.5, Accelerate(0, -1, 0.5))
	assert.Equal(t, 0.0, ApplyFriction(0.1, 0.2))
	assert.Equal(t, 3.0, ClampSpeed(5, 3))
}
