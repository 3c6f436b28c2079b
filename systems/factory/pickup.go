package factory

import (
	"github.com/automoto/stomp-mp/archetypes"
	"github.com/automoto/stomp-mp/components"
	"github.com/automoto/stomp-mp/config"
	"github.com/automoto/stomp-mp/shared/netcomponents"
	"github.com/automoto/stomp-mp/shared/ticktimer"
	"github.com/automoto/stomp-mp/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	coinSize     = 0.25
	coinHop      = 5.0
	coinLifetime = 8.0
)

// CreateLooseCoin spawns a coin that hops out of pos and falls under gravity.
func CreateLooseCoin(ecs *ecs.ECS, cfg *config.Config, pos mgl64.Vec2, lifetime ticktimer.Timer) *donburi.Entry {
	coin := archetypes.Pickup.Spawn(ecs)

	// pos is a hitbox centre; the coin's feet sit half a coin lower
	feet := pos.Sub(mgl64.Vec2{0, coinSize / 2})
	obj := components.NewBodyObject(feet, mgl64.Vec2{coinSize, coinSize}, tags.ResolvPickup)
	obj.Data = coin
	components.Object.SetValue(coin, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Pickup.SetValue(coin, components.PickupData{Lifetime: lifetime})
	components.Body.SetValue(coin, components.BodyData{
		Velocity: mgl64.Vec2{0, coinHop},
		Gravity:  mgl64.Vec2{0, -cfg.Player.Gravity},
	})
	netcomponents.NetPickup.SetValue(coin, netcomponents.NetPickupData{Value: cfg.Combat.CoinValue})
	netcomponents.NetPosition.SetValue(coin, netcomponents.NetPositionData{X: feet.X(), Y: feet.Y()})

	return coin
}

// CoinSpawner drops a loose coin for every kill. OnSpawn, if set, runs for
// each new coin so the server can start replicating it.
type CoinSpawner struct {
	ECS     *ecs.ECS
	Config  *config.Config
	Clock   *ticktimer.Clock
	OnSpawn func(*donburi.Entry)
}

func (c *CoinSpawner) SpawnReward(pos mgl64.Vec2) {
	coin := CreateLooseCoin(c.ECS, c.Config, pos, ticktimer.FromSeconds(c.Clock, coinLifetime))
	if c.OnSpawn != nil {
		c.OnSpawn(coin)
	}
}
