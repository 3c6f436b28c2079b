package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// PhysicsScale is the number of resolv space units per world unit. resolv
// sizes cells in whole units and trims one unit off an object's far edge when
// bucketing it, so bodies live in a scaled space rather than in world units.
const PhysicsScale = 32.0

// ObjectData is the body's collision object. Its X, Y is the bottom-left
// corner in scaled units; the body position is the centre of the bottom edge
// in world units.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// NewBodyObject creates a collision object whose feet centre is at pos.
func NewBodyObject(pos, size mgl64.Vec2, tags ...string) *resolv.Object {
	w, h := size.X()*PhysicsScale, size.Y()*PhysicsScale
	return resolv.NewObject(pos.X()*PhysicsScale-w/2, pos.Y()*PhysicsScale, w, h, tags...)
}

// NewRectObject creates a collision object from a bottom-left corner in world units.
func NewRectObject(x, y, w, h float64, tags ...string) *resolv.Object {
	return resolv.NewObject(x*PhysicsScale, y*PhysicsScale, w*PhysicsScale, h*PhysicsScale, tags...)
}

// Position returns the feet-centre body position.
func (o *ObjectData) Position() mgl64.Vec2 {
	return mgl64.Vec2{(o.X + o.W/2) / PhysicsScale, o.Y / PhysicsScale}
}

// SetPosition moves the object so its feet centre is at p and refreshes its
// cells in the space.
func (o *ObjectData) SetPosition(p mgl64.Vec2) {
	o.X = p.X()*PhysicsScale - o.W/2
	o.Y = p.Y() * PhysicsScale
	o.Update()
}

// Size returns the object's extent in world units.
func (o *ObjectData) Size() mgl64.Vec2 {
	return mgl64.Vec2{o.W / PhysicsScale, o.H / PhysicsScale}
}

// Bounds returns the world-unit rectangle of any resolv object.
func Bounds(obj *resolv.Object) (min, max mgl64.Vec2) {
	min = mgl64.Vec2{obj.X / PhysicsScale, obj.Y / PhysicsScale}
	max = mgl64.Vec2{(obj.X + obj.W) / PhysicsScale, (obj.Y + obj.H) / PhysicsScale}
	return min, max
}

// SpaceData holds the level's collision space (singleton component).
type SpaceData struct {
	*resolv.Space
}

var Space = donburi.NewComponentType[SpaceData]()
