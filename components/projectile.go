package components

import (
	"github.com/automoto/stomp-mp/shared/ticktimer"
	"github.com/yohamta/donburi"
)

// ProjectileData is a fireball or iceball in flight.
type ProjectileData struct {
	Owner    donburi.Entity
	Lifetime ticktimer.Timer
}

var Projectile = donburi.NewComponentType[ProjectileData]()

// PickupData is a loose reward spawned by a kill.
type PickupData struct {
	Lifetime ticktimer.Timer
}

var Pickup = donburi.NewComponentType[PickupData]()
