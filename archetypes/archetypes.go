package archetypes

import (
	"github.com/automoto/stomp-mp/components"
	"github.com/automoto/stomp-mp/shared/netcomponents"
	"github.com/automoto/stomp-mp/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LayerDefault is the only ECS layer; nothing here is drawn.
const LayerDefault ecs.LayerID = 0

var (
	Enemy = newArchetype(
		tags.Enemy,
		components.Killable,
		components.Object,
		components.Body,
		components.Hitbox,
		netcomponents.NetEntity,
		netcomponents.NetPosition,
		netcomponents.NetVelocity,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Body,
		components.Hitbox,
		netcomponents.NetPlayerState,
		netcomponents.NetPosition,
		netcomponents.NetVelocity,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Pickup = newArchetype(
		tags.Pickup,
		components.Pickup,
		components.Object,
		components.Body,
		netcomponents.NetPickup,
		netcomponents.NetPosition,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
		components.Body,
		netcomponents.NetProjectile,
		netcomponents.NetPosition,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Audio = newArchetype(
		components.Audio,
	)
	Effect = newArchetype(
		components.Effect,
		components.AutoDestroy,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		LayerDefault,
		append(a.components, cs...)...,
	))
	return e
}
