package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// SpriteData is the observer-side visual state of a killable entity.
type SpriteData struct {
	Enabled         bool
	FlipX           bool
	AnimatorEnabled bool
	Rotation        float64 // degrees about the view axis
	Position        mgl64.Vec2
}

var Sprite = donburi.NewComponentType[SpriteData]()
