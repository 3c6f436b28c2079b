package systems

import (
	"github.com/automoto/stomp-mp/components"
	"github.com/automoto/stomp-mp/shared/gamemath"
	"github.com/automoto/stomp-mp/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// overlapEpsilon keeps touching edges from counting as overlap.
const overlapEpsilon = 1e-6

// PhysicsScene answers overlap queries in world units against a resolv space.
type PhysicsScene struct {
	Space *resolv.Space
	Wrap  gamemath.Wrap
}

func NewPhysicsScene(space *resolv.Space, wrap gamemath.Wrap) *PhysicsScene {
	return &PhysicsScene{Space: space, Wrap: wrap}
}

// Query fills results with objects tagged tag whose rectangles overlap
// [min, max]. It returns the number written, never more than len(results).
func (p *PhysicsScene) Query(min, max mgl64.Vec2, tag string, results []*resolv.Object) int {
	return p.query(min, max, tag, results, 0)
}

func (p *PhysicsScene) query(min, max mgl64.Vec2, tag string, results []*resolv.Object, n int) int {
	if p.Space == nil || n >= len(results) {
		return n
	}

	// The query box is one unit larger on every side so resolv buckets it into
	// every cell the real rectangle touches.
	box := resolv.NewObject(
		min.X()*components.PhysicsScale-1,
		min.Y()*components.PhysicsScale-1,
		(max.X()-min.X())*components.PhysicsScale+2,
		(max.Y()-min.Y())*components.PhysicsScale+2,
	)
	p.Space.Add(box)
	defer p.Space.Remove(box)

	check := box.Check(0, 0, tag)
	if check == nil {
		return n
	}
	for _, o := range check.Objects {
		if n >= len(results) {
			break
		}
		omin, omax := components.Bounds(o)
		if !rectsOverlap(min, max, omin, omax) || containsObject(results[:n], o) {
			continue
		}
		results[n] = o
		n++
	}
	return n
}

// OverlapBox returns objects on layer overlapping a box of the given full size
// centred at center. On a wrapping level the box is also tested one level
// width to either side when it crosses the seam.
func (p *PhysicsScene) OverlapBox(center, size mgl64.Vec2, layer string, results []*resolv.Object) int {
	half := size.Mul(0.5)
	min, max := center.Sub(half), center.Add(half)
	n := p.query(min, max, layer, results, 0)

	if p.Wrap.Enabled {
		shift := mgl64.Vec2{p.Wrap.Width, 0}
		if min.X() < p.Wrap.MinX {
			n = p.query(min.Add(shift), max.Add(shift), layer, results, n)
		}
		if max.X() > p.Wrap.MinX+p.Wrap.Width {
			n = p.query(min.Sub(shift), max.Sub(shift), layer, results, n)
		}
	}
	return n
}

// IsSolidAt reports whether point lies inside solid terrain.
func (p *PhysicsScene) IsSolidAt(point mgl64.Vec2) bool {
	point[0] = p.Wrap.WrapX(point.X())
	const r = 1e-3
	var buf [1]*resolv.Object
	return p.Query(point.Sub(mgl64.Vec2{r, r}), point.Add(mgl64.Vec2{r, r}), tags.ResolvSolid, buf[:]) > 0
}

func rectsOverlap(amin, amax, bmin, bmax mgl64.Vec2) bool {
	return amin.X() < bmax.X()-overlapEpsilon && amax.X() > bmin.X()+overlapEpsilon &&
		amin.Y() < bmax.Y()-overlapEpsilon && amax.Y() > bmin.Y()+overlapEpsilon
}

func containsObject(objs []*resolv.Object, o *resolv.Object) bool {
	for _, x := range objs {
		if x == o {
			return true
		}
	}
	return false
}

// setLayer records a body's physics layer and mirrors it onto the object's
// tags so layer-filtered queries see it.
func setLayer(body *components.BodyData, obj *components.ObjectData, layer string) {
	if body.Layer == layer {
		return
	}
	if obj != nil && obj.Object != nil {
		if body.Layer != "" {
			obj.RemoveTags(body.Layer)
		}
		obj.AddTags(layer)
	}
	body.Layer = layer
}
