package systems

import (
	"github.com/automoto/stomp-mp/components"
	"github.com/automoto/stomp-mp/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBodies integrates every body for one tick. Bodies held by an ice
// block follow the block, frozen bodies stay put, bodies on the hits-nothing
// layer fly through terrain and everything else collides with solid tiles.
func (s *Sim) UpdateBodies(e *ecs.ECS) {
	dt := s.Clock.DeltaTime()
	components.Body.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Object) {
			return
		}
		body := components.Body.Get(entry)
		obj := components.Object.Get(entry)
		if obj.Object == nil {
			return
		}

		if entry.HasComponent(components.Frozen) {
			body.Velocity = mgl64.Vec2{}
			obj.SetPosition(components.Frozen.Get(entry).Anchor)
			return
		}
		if body.Freeze {
			return
		}
		s.stepBody(body, obj, dt)
	})
}

func (s *Sim) stepBody(body *components.BodyData, obj *components.ObjectData, dt float64) {
	body.Velocity = body.Velocity.Add(body.Gravity.Mul(dt))
	if maxFall := s.Config.Physics.MaxFallSpeed; body.Velocity.Y() < -maxFall {
		body.Velocity[1] = -maxFall
	}

	body.OnGround = false
	body.HitLeft = false
	body.HitRight = false
	body.HitCeiling = false
	body.Ceiling = nil

	pos := obj.Position()
	size := obj.Size()

	if body.Layer == tags.LayerHitsNothing {
		pos = pos.Add(body.Velocity.Mul(dt))
		pos[0] = s.Physics.Wrap.WrapX(pos.X())
		obj.SetPosition(pos)
		return
	}

	var hits [8]*resolv.Object

	// Horizontal pass
	if dx := body.Velocity.X() * dt; dx != 0 {
		nx := pos.X() + dx
		lo, hi := feetRect(nx, pos.Y(), size)
		if n := s.Physics.Query(lo, hi, tags.ResolvSolid, hits[:]); n > 0 {
			if dx > 0 {
				edge := hi.X()
				for _, h := range hits[:n] {
					hmin, _ := components.Bounds(h)
					edge = min(edge, hmin.X())
				}
				nx = edge - size.X()/2
				body.HitRight = true
			} else {
				edge := lo.X()
				for _, h := range hits[:n] {
					_, hmax := components.Bounds(h)
					edge = max(edge, hmax.X())
				}
				nx = edge + size.X()/2
				body.HitLeft = true
			}
			body.Velocity[0] = 0
		}
		pos[0] = nx
	}

	// Vertical pass
	if dy := body.Velocity.Y() * dt; dy != 0 {
		ny := pos.Y() + dy
		lo, hi := feetRect(pos.X(), ny, size)
		if n := s.Physics.Query(lo, hi, tags.ResolvSolid, hits[:]); n > 0 {
			if dy < 0 {
				top := lo.Y()
				for _, h := range hits[:n] {
					_, hmax := components.Bounds(h)
					top = max(top, hmax.Y())
				}
				ny = top
				body.OnGround = true
			} else {
				bottom := hi.Y()
				var ceiling *resolv.Object
				for _, h := range hits[:n] {
					hmin, _ := components.Bounds(h)
					if hmin.Y() <= bottom {
						bottom = hmin.Y()
						ceiling = h
					}
				}
				ny = bottom - size.Y()
				body.HitCeiling = true
				body.Ceiling = ceiling
			}
			body.Velocity[1] = 0
		}
		pos[1] = ny
	}

	pos[0] = s.Physics.Wrap.WrapX(pos.X())
	obj.SetPosition(pos)
}

func feetRect(x, y float64, size mgl64.Vec2) (mgl64.Vec2, mgl64.Vec2) {
	return mgl64.Vec2{x - size.X()/2, y}, mgl64.Vec2{x + size.X()/2, y + size.Y()}
}
