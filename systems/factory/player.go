package factory

import (
	"github.com/automoto/stomp-mp/archetypes"
	"github.com/automoto/stomp-mp/components"
	"github.com/automoto/stomp-mp/config"
	"github.com/automoto/stomp-mp/shared/messages"
	"github.com/automoto/stomp-mp/shared/netcomponents"
	"github.com/automoto/stomp-mp/shared/netconfig"
	"github.com/automoto/stomp-mp/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns a player at spawn with the given starting power-up.
func CreatePlayer(ecs *ecs.ECS, cfg *config.Config, index int, spawn mgl64.Vec2, state netconfig.PowerupState) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	height := cfg.Player.SmallHitboxHeight
	if state >= netconfig.Mushroom {
		height = cfg.Player.LargeHitboxHeight
	}
	size := mgl64.Vec2{cfg.Player.HitboxWidth, height}

	obj := components.NewBodyObject(spawn, size, tags.ResolvPlayer, tags.LayerPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Player.SetValue(player, components.PlayerData{
		Input:      messages.NewPlayerInput(0),
		PrevInput:  messages.NewPlayerInput(0),
		SpawnPoint: spawn,
	})
	components.Body.SetValue(player, components.BodyData{
		Gravity: mgl64.Vec2{0, -cfg.Player.Gravity},
		Layer:   tags.LayerPlayer,
	})
	components.Hitbox.SetValue(player, components.HitboxData{
		Offset:  mgl64.Vec2{0, size.Y() / 2},
		Size:    size,
		Enabled: true,
	})
	netcomponents.NetPlayerState.SetValue(player, netcomponents.NetPlayerStateData{
		PlayerIndex: index,
		State:       state,
		FacingRight: true,
	})
	netcomponents.NetPosition.SetValue(player, netcomponents.NetPositionData{X: spawn.X(), Y: spawn.Y()})

	return player
}
