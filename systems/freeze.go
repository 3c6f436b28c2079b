package systems

import (
	"github.com/automoto/stomp-mp/components"
	"github.com/automoto/stomp-mp/shared/netconfig"
	"github.com/automoto/stomp-mp/shared/ticktimer"
	"github.com/automoto/stomp-mp/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// IceFreezer encases entities in ice blocks that thaw on a timer.
type IceFreezer struct {
	sim *Sim
}

// FreezeEntity encases target. Entities that cannot freeze, or already are
// frozen, are left alone.
func (f *IceFreezer) FreezeEntity(target *donburi.Entry) {
	s := f.sim
	h, ok := s.capabilities(target)
	if !ok {
		return
	}
	fz, ok := h.(Freezable)
	if !ok || fz.IsFrozen() || !target.HasComponent(components.Object) {
		return
	}

	if target.HasComponent(components.Hitbox) {
		components.Hitbox.Get(target).Enabled = false
	}
	if !target.HasComponent(components.Frozen) {
		target.AddComponent(components.Frozen)
	}
	components.Frozen.SetValue(target, components.FrozenData{
		Anchor:    components.Object.Get(target).Position(),
		Flying:    fz.IsFlying(),
		ThawTimer: ticktimer.FromSeconds(s.Clock, s.Config.Entity.FreezeDuration),
	})
	fz.Freeze()
}

// UpdateFrozen drops unsupported ice blocks and thaws expired ones.
func (s *Sim) UpdateFrozen(e *ecs.ECS) {
	var frozen []*donburi.Entry
	components.Frozen.Each(e.World, func(entry *donburi.Entry) {
		frozen = append(frozen, entry)
	})

	dt := s.Clock.DeltaTime()
	for _, entry := range frozen {
		h, ok := s.capabilities(entry)
		if !ok {
			continue
		}
		fz, ok := h.(Freezable)
		if !ok {
			continue
		}

		block := components.Frozen.Get(entry)
		if block.ThawTimer.Expired(s.Clock) {
			fz.Unfreeze(netconfig.UnfreezeTimer)
			continue
		}
		if !block.Flying {
			s.dropIceBlock(entry, block, dt)
		}
	}
}

// dropIceBlock moves a block's anchor down until it rests on solid ground.
func (s *Sim) dropIceBlock(entry *donburi.Entry, block *components.FrozenData, dt float64) {
	size := components.Object.Get(entry).Size()

	block.FallSpeed = min(block.FallSpeed+s.Config.Entity.AliveGravity*dt, s.Config.Physics.MaxFallSpeed)
	next := block.Anchor.Sub(mgl64.Vec2{0, block.FallSpeed * dt})

	lo, hi := feetRect(next.X(), next.Y(), size)
	var hits [4]*resolv.Object
	if n := s.Physics.Query(lo, hi, tags.ResolvSolid, hits[:]); n > 0 {
		top := lo.Y()
		for _, h := range hits[:n] {
			_, hmax := components.Bounds(h)
			top = max(top, hmax.Y())
		}
		next[1] = top
		block.FallSpeed = 0
	}
	block.Anchor = next
}

// breakIce shatters frozen entities a ground-pounding player lands on.
func (s *Sim) breakIce(p *Player, center, size mgl64.Vec2) {
	if !p.HasGroundpoundHitbox() {
		return
	}
	for _, entry := range s.overlapEntries(center, size, tags.LayerHitsNothing) {
		h, ok := s.capabilities(entry)
		if !ok {
			continue
		}
		if f, ok := h.(Freezable); ok && f.IsFrozen() {
			f.Unfreeze(netconfig.UnfreezeGroundpounded)
			p.Data().DoEntityBounce = true
		}
	}
}
