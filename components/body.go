package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// BodyData is the simulated rigid body of a player or entity.
type BodyData struct {
	Velocity mgl64.Vec2 // units/s
	Gravity  mgl64.Vec2 // units/s^2, applied every tick unless frozen
	Freeze   bool       // body does not move at all
	Layer    string     // physics layer tag, see tags.Layer*

	OnGround   bool
	HitLeft    bool
	HitRight   bool
	HitCeiling bool
	Ceiling    *resolv.Object // tile struck from below this tick
}

var Body = donburi.NewComponentType[BodyData]()

// HitboxData is the main hitbox, relative to the body position.
type HitboxData struct {
	Offset  mgl64.Vec2 // from feet centre to hitbox centre
	Size    mgl64.Vec2
	Enabled bool
}

var Hitbox = donburi.NewComponentType[HitboxData]()
