package systems

import (
	"github.com/automoto/stomp-mp/shared/gamemath"
	"github.com/automoto/stomp-mp/shared/netconfig"
	"github.com/automoto/stomp-mp/tags"
	"github.com/yohamta/donburi"
)

// checkForEntityCollisions turns the entity away from every live entity its
// hitbox overlaps. With several overlaps the last one processed wins.
func (e *Enemy) checkForEntityCollisions() {
	hb := e.hitbox()
	if hb == nil || e.object() == nil {
		return
	}
	st := e.State()
	s := e.sim

	n := s.Physics.OverlapBox(e.HitboxCenter(), hb.Size, tags.LayerEntity, s.overlaps)
	for _, o := range s.overlaps[:n] {
		entry, ok := o.Data.(*donburi.Entry)
		if !ok || entry.Entity() == e.entry.Entity() {
			continue
		}
		other, ok := s.Enemy(entry)
		if !ok {
			continue
		}
		if other.IsDead() || !other.typ().CollideWithOtherEnemies || other.Kind() == netconfig.KindPiranhaPlant {
			continue
		}

		ours, theirs := s.Physics.Wrap.Unwrap(e.Position(), other.Position())
		st.FacingRight = gamemath.FaceAway(ours, theirs, e.NetworkID(), other.NetworkID())
	}
}
