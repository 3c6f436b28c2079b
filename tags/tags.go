package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Wall       = donburi.NewTag().SetName("Wall")
	Pickup     = donburi.NewTag().SetName("Pickup")
	Projectile = donburi.NewTag().SetName("Projectile")
)

// Resolv tags for physics collision
const (
	ResolvSolid      = "solid"
	ResolvPlayer     = "Player"
	ResolvEnemy      = "Enemy"
	ResolvPickup     = "Pickup"
	ResolvProjectile = "Projectile"
)

// Physics layers. A body's layer is mirrored onto its resolv object as a tag
// so overlap queries can filter by it.
const (
	LayerEntity      = "layer:entity"
	LayerHitsNothing = "layer:hitsnothing"
	LayerPlayer      = "layer:player"
)
