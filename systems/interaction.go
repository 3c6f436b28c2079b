package systems

import (
	"github.com/automoto/stomp-mp/shared/gamemath"
	"github.com/automoto/stomp-mp/shared/netconfig"
	"github.com/go-gl/mathgl/mgl64"
)

// InteractWithPlayer resolves one contact between the entity and a player.
// The first matching rule wins:
//
//  1. instakill, or a ground-pound from above by a non-mini player
//  2. any other hit from above (a stomp)
//  3. a crouched shell parries
//  4. a damageable player is powered down
func (e *Enemy) InteractWithPlayer(player *Player) {
	s := e.sim
	ps := player.State()
	pb := player.Body()
	if pb == nil {
		return
	}

	ref := e.Position().Add(mgl64.Vec2{0, s.Config.Combat.StompLiftHeight})
	ours, theirs := s.Physics.Wrap.Unwrap(ref, player.Position())
	dir := gamemath.HitDirection(ours, theirs)
	fromAbove := gamemath.FromAbove(dir, s.Config.Combat.FromAboveThreshold)
	groundpounded := fromAbove && player.HasGroundpoundHitbox() && ps.State != netconfig.MiniMushroom

	if player.InstakillsEnemies() || groundpounded {
		if ps.IsDrilling {
			e.Kill()
			player.Data().DoEntityBounce = true
		} else {
			combo := ps.StarCombo
			ps.StarCombo++
			e.SpecialKill(pb.Velocity.X() > 0, ps.IsGroundpounding, combo)
		}
		return
	}

	switch {
	case fromAbove && e.spikedTop():
		if player.IsDamageable() {
			player.Powerdown()
			e.State().FacingRight = dir.X() > 0
		}
	case fromAbove:
		if ps.State == netconfig.MiniMushroom {
			if ps.IsGroundpounding {
				ps.IsGroundpounding = false
				e.Kill()
			}
			player.Data().DoEntityBounce = true
		} else {
			e.Kill()
			player.Data().DoEntityBounce = !ps.IsGroundpounding
		}
		ps.IsDrilling = false
	case ps.IsCrouchedInShell:
		e.State().FacingRight = dir.X() < 0
		pb.Velocity[0] = 0
	case player.IsDamageable():
		player.Powerdown()
		e.State().FacingRight = dir.X() > 0
	}
}

// InteractWithFireball kills the entity toward the fireball's heading.
func (e *Enemy) InteractWithFireball(fireballFacingRight bool) bool {
	if e.IsDead() {
		return false
	}
	e.SpecialKill(fireballFacingRight, false, 0)
	return true
}

// InteractWithIceball encases the entity unless it is already frozen.
func (e *Enemy) InteractWithIceball() bool {
	if e.IsDead() {
		return false
	}
	if !e.IsFrozen() && e.sim.Freezer != nil {
		e.sim.Freezer.FreezeEntity(e.entry)
	}
	return true
}
