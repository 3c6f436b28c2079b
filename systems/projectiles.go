package systems

import (
	"github.com/automoto/stomp-mp/components"
	"github.com/automoto/stomp-mp/shared/netcomponents"
	"github.com/automoto/stomp-mp/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// fireballBounce is the upward speed a fireball takes off the ground with.
const fireballBounce = 3.5

// UpdateProjectiles bounces fireballs along the ground and hands them to the
// first entity they touch. A projectile is destroyed when it hits a wall,
// runs out of time or is consumed by an entity.
func (s *Sim) UpdateProjectiles(e *ecs.ECS) {
	var projectiles []*donburi.Entry
	components.Projectile.Each(e.World, func(entry *donburi.Entry) {
		projectiles = append(projectiles, entry)
	})

	for _, entry := range projectiles {
		if s.updateProjectile(entry) {
			s.Destroy(entry)
		}
	}
}

// updateProjectile reports whether the projectile is spent.
func (s *Sim) updateProjectile(entry *donburi.Entry) bool {
	proj := components.Projectile.Get(entry)
	body := components.Body.Get(entry)
	obj := components.Object.Get(entry)
	if obj.Object == nil {
		return true
	}

	if proj.Lifetime.Expired(s.Clock) || body.HitLeft || body.HitRight {
		return true
	}
	if body.OnGround {
		body.Velocity[1] = fireballBounce
	}

	info := netcomponents.NetProjectile.Get(entry)
	size := obj.Size()
	center := obj.Position().Add(mgl64.Vec2{0, size.Y() / 2})

	for _, target := range s.overlapEntries(center, size, tags.LayerEntity) {
		h, ok := s.capabilities(target)
		if !ok {
			continue
		}
		fi, ok := h.(FireballInteractable)
		if !ok {
			continue
		}
		var handled bool
		if info.IsIceball {
			handled = fi.InteractWithIceball()
		} else {
			handled = fi.InteractWithFireball(info.FacingRight)
		}
		if handled {
			return true
		}
	}
	return false
}

// UpdatePickups expires uncollected coins.
func (s *Sim) UpdatePickups(e *ecs.ECS) {
	var expired []*donburi.Entry
	components.Pickup.Each(e.World, func(entry *donburi.Entry) {
		if components.Pickup.Get(entry).Lifetime.Expired(s.Clock) {
			expired = append(expired, entry)
		}
	})
	for _, entry := range expired {
		s.Destroy(entry)
	}
}
