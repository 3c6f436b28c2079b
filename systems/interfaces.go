package systems

import (
	"github.com/automoto/stomp-mp/shared/netconfig"
	"github.com/yohamta/donburi"
)

// Killable is anything that can die and come back.
type Killable interface {
	IsDead() bool
	Kill()
	SpecialKill(right, groundpound bool, combo int)
	RespawnEntity()
	DespawnEntity()
}

// PlayerInteractable reacts to overlapping a player's hurtbox.
type PlayerInteractable interface {
	InteractWithPlayer(player *Player)
}

// FireballInteractable reacts to projectiles. A true return consumes the
// projectile.
type FireballInteractable interface {
	InteractWithFireball(fireballFacingRight bool) bool
	InteractWithIceball() bool
}

// Freezable can be encased in ice.
type Freezable interface {
	IsFrozen() bool
	IsFlying() bool
	Freeze()
	Unfreeze(reason netconfig.UnfreezeReason)
}

// BlockBumpable reacts to the tile under it being hit from below.
type BlockBumpable interface {
	BlockBump()
}

var (
	_ Killable             = (*Enemy)(nil)
	_ PlayerInteractable   = (*Enemy)(nil)
	_ FireballInteractable = (*Enemy)(nil)
	_ Freezable            = (*Enemy)(nil)
	_ BlockBumpable        = (*Enemy)(nil)
)

// capabilities returns the handle an entry's gameplay behaviour runs through.
// Callers type-assert it to the capability they need.
func (s *Sim) capabilities(entry *donburi.Entry) (any, bool) {
	if e, ok := s.Enemy(entry); ok {
		return e, true
	}
	return nil, false
}
