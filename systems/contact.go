package systems

import (
	"github.com/automoto/stomp-mp/components"
	"github.com/automoto/stomp-mp/shared/netcomponents"
	"github.com/automoto/stomp-mp/shared/netconfig"
	"github.com/automoto/stomp-mp/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// bumpZoneHeight is how far above a struck tile entities count as standing on it.
const bumpZoneHeight = 0.1

// UpdateContacts resolves every player hurtbox against the entities and
// pickups it overlaps.
func (s *Sim) UpdateContacts(e *ecs.ECS) {
	var players []*Player
	components.Player.Each(e.World, func(entry *donburi.Entry) {
		if p, ok := s.Player(entry); ok && !p.State().IsDead {
			players = append(players, p)
		}
	})

	for _, p := range players {
		if !p.entry.HasComponent(components.Hitbox) {
			continue
		}
		hb := components.Hitbox.Get(p.entry)
		if !hb.Enabled {
			continue
		}
		center := p.Position().Add(hb.Offset)

		for _, entry := range s.overlapEntries(center, hb.Size, tags.LayerEntity) {
			if p.State().IsDead {
				break
			}
			h, ok := s.capabilities(entry)
			if !ok {
				continue
			}
			if k, ok := h.(Killable); ok && k.IsDead() {
				continue
			}
			if entry.HasComponent(components.Hitbox) && !components.Hitbox.Get(entry).Enabled {
				continue
			}
			if pi, ok := h.(PlayerInteractable); ok {
				pi.InteractWithPlayer(p)
			}
		}

		s.breakIce(p, center, hb.Size)

		for _, entry := range s.overlapEntries(center, hb.Size, tags.ResolvPickup) {
			s.collectPickup(p, entry)
		}
	}
}

// overlapEntries runs an overlap query and returns the owning entries. The
// result is a copy, so callers may run further queries while iterating.
func (s *Sim) overlapEntries(center, size mgl64.Vec2, layer string) []*donburi.Entry {
	n := s.Physics.OverlapBox(center, size, layer, s.overlaps)
	entries := make([]*donburi.Entry, 0, n)
	for _, o := range s.overlaps[:n] {
		if entry, ok := o.Data.(*donburi.Entry); ok && entry.Valid() {
			entries = append(entries, entry)
		}
	}
	return entries
}

func (s *Sim) collectPickup(p *Player, entry *donburi.Entry) {
	if !entry.HasComponent(netcomponents.NetPickup) {
		return
	}
	pickup := netcomponents.NetPickup.Get(entry)
	if pickup.Collected {
		return
	}
	pickup.Collected = true
	p.State().Coins += pickup.Value
	s.Destroy(entry)
}

// bumpBlock is called when a player strikes tile from below. Entities
// standing on the tile are killed; ice blocks on it break.
func (s *Sim) bumpBlock(tile *resolv.Object) {
	tmin, tmax := components.Bounds(tile)
	center := mgl64.Vec2{(tmin.X() + tmax.X()) / 2, tmax.Y() + bumpZoneHeight/2}
	size := mgl64.Vec2{tmax.X() - tmin.X(), bumpZoneHeight}

	for _, entry := range s.overlapEntries(center, size, tags.LayerEntity) {
		if h, ok := s.capabilities(entry); ok {
			if b, ok := h.(BlockBumpable); ok {
				b.BlockBump()
			}
		}
	}
	for _, entry := range s.overlapEntries(center, size, tags.LayerHitsNothing) {
		h, ok := s.capabilities(entry)
		if !ok {
			continue
		}
		if f, ok := h.(Freezable); ok && f.IsFrozen() {
			f.Unfreeze(netconfig.UnfreezeBlockBump)
		}
	}
}

// Destroy removes an entity and its collision object.
func (s *Sim) Destroy(entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Object) {
		if obj := components.Object.Get(entry); obj.Object != nil && s.Physics.Space != nil {
			s.Physics.Space.Remove(obj.Object)
		}
	}
	s.ECS.World.Remove(entry.Entity())
}
