package factory

import (
	"log"
	"math"

	"github.com/automoto/stomp-mp/archetypes"
	"github.com/automoto/stomp-mp/components"
	"github.com/automoto/stomp-mp/shared/gamemath"
	"github.com/automoto/stomp-mp/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel builds the level singleton and its solid tiles. The space must
// already exist.
func CreateLevel(ecs *ecs.ECS, name string, data *leveldata.CollisionData) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	floor := math.Inf(1)
	for _, r := range data.SolidRects {
		CreateWall(ecs, r)
		floor = math.Min(floor, r.Y)
	}
	if math.IsInf(floor, 1) {
		floor = 0
	}

	components.Level.SetValue(level, components.LevelData{
		Name: name,
		Data: data,
		Wrap: gamemath.Wrap{
			Enabled: data.Loops,
			MinX:    0,
			Width:   data.Width,
		},
		FloorY: floor,
	})

	log.Printf("[level] %s: %d solid tiles, %d player spawns, %d entities, loops=%v",
		name, len(data.SolidRects), len(data.SpawnPoints), len(data.EntitySpawns), data.Loops)
	return level
}
