package factory

import (
	"github.com/automoto/stomp-mp/archetypes"
	"github.com/automoto/stomp-mp/components"
	"github.com/automoto/stomp-mp/config"
	"github.com/automoto/stomp-mp/shared/leveldata"
	"github.com/automoto/stomp-mp/shared/netcomponents"
	"github.com/automoto/stomp-mp/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy places a killable entity at its level spawn. It starts
// inactive; the simulation activates it when it is spawned.
func CreateEnemy(ecs *ecs.ECS, cfg *config.Config, spawn leveldata.EntitySpawn) *donburi.Entry {
	enemyType := cfg.TypeConfig(spawn.Kind)
	enemy := archetypes.Enemy.Spawn(ecs)

	pos := mgl64.Vec2{spawn.X, spawn.Y}
	size := mgl64.Vec2{enemyType.HitboxWidth, enemyType.HitboxHeight}

	obj := components.NewBodyObject(pos, size, tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Killable.SetValue(enemy, components.KillableData{
		Type:       enemyType,
		Respawning: spawn.Respawning,
	})
	components.Body.SetValue(enemy, components.BodyData{})
	components.Hitbox.SetValue(enemy, components.HitboxData{
		Offset:  mgl64.Vec2{0, size.Y() / 2},
		Size:    size,
		Enabled: true,
	})
	netcomponents.NetEntity.SetValue(enemy, netcomponents.NetEntityData{
		Kind: spawn.Kind,
	})
	netcomponents.NetPosition.SetValue(enemy, netcomponents.NetPositionData{X: pos.X(), Y: pos.Y()})

	return enemy
}
