package factory

import (
	"github.com/automoto/stomp-mp/archetypes"
	"github.com/automoto/stomp-mp/components"
	"github.com/automoto/stomp-mp/shared/leveldata"
	"github.com/automoto/stomp-mp/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall creates a solid tile. rect is in world units.
func CreateWall(ecs *ecs.ECS, rect leveldata.SolidRect) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := components.NewRectObject(rect.X, rect.Y, rect.W, rect.H, tags.ResolvSolid)
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return wall
}
