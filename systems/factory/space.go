package factory

import (
	"github.com/automoto/stomp-mp/archetypes"
	"github.com/automoto/stomp-mp/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the collision space singleton. Width and height are in
// world units; the space itself is laid out in scaled units.
func CreateSpace(ecs *ecs.ECS, width, height, cellSize float64) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	cell := int(cellSize * components.PhysicsScale)
	if cell < 1 {
		cell = 1
	}
	spaceData := resolv.NewSpace(
		int(width*components.PhysicsScale),
		int(height*components.PhysicsScale),
		cell, cell,
	)
	components.Space.SetValue(space, components.SpaceData{Space: spaceData})
	return space
}

// addToSpace adds obj to the space singleton, if there is one.
func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
