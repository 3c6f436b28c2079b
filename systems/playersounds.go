package systems

import (
	"github.com/automoto/stomp-mp/components"
	"github.com/automoto/stomp-mp/config"
	"github.com/automoto/stomp-mp/shared/netcomponents"
	"github.com/automoto/stomp-mp/shared/netconfig"
	"github.com/yohamta/donburi/ecs"
)

// playerSounds queues the one-shot sounds implied by what changed in a
// player's replicated state since the previous frame. Must run before
// WasDead is updated.
func playerSounds(e *ecs.ECS, pres *components.PresentationData, ps *netcomponents.NetPlayerStateData) {
	switch {
	case ps.IsDead && !pres.WasDead:
		PlaySFX(e, config.SoundPlayerDeath)
	case powerdown(pres.HeardState, ps.State) && !ps.IsDead && !pres.WasDead:
		PlaySFX(e, config.SoundPowerdown)
	}

	if ps.Coins > pres.HeardCoins {
		PlaySFX(e, config.SoundCoin)
	}
	if ps.BlockBumps > pres.HeardBumps {
		PlaySFX(e, config.SoundBlockBump)
	}
	if t := ps.FireballDelayTimer; t.Running && t.Target != pres.HeardFireball {
		PlaySFX(e, config.SoundFireball)
	}
	hear(pres, ps)
}

// powerdown reports a hit that cost a power-up. Mega running out shrinks the
// player without one.
func powerdown(before, after netconfig.PowerupState) bool {
	return after < before && before != netconfig.MegaMushroom
}

func hear(pres *components.PresentationData, ps *netcomponents.NetPlayerStateData) {
	pres.HeardState = ps.State
	pres.HeardCoins = ps.Coins
	pres.HeardBumps = ps.BlockBumps
	if ps.FireballDelayTimer.Running {
		pres.HeardFireball = ps.FireballDelayTimer.Target
	}
}
