package netcomponents

import "github.com/yohamta/donburi"

type NetPickupData struct {
	Value     int
	Collected bool
}

var NetPickup = donburi.NewComponentType[NetPickupData]()

type NetProjectileData struct {
	IsIceball   bool
	FacingRight bool
}

var NetProjectile = donburi.NewComponentType[NetProjectileData]()
