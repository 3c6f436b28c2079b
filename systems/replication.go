package systems

import (
	"github.com/automoto/stomp-mp/components"
	"github.com/automoto/stomp-mp/shared/netcomponents"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var (
	positionQuery = donburi.NewQuery(filter.Contains(components.Object, netcomponents.NetPosition))
	velocityQuery = donburi.NewQuery(filter.Contains(components.Body, netcomponents.NetVelocity))
)

// WriteNetState copies physics-owned positions and velocities into their
// replicated components. It runs last so every sync carries this tick's
// result.
func (s *Sim) WriteNetState(e *ecs.ECS) {
	positionQuery.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		if obj.Object == nil {
			return
		}
		p := obj.Position()
		netcomponents.NetPosition.SetValue(entry, netcomponents.NetPositionData{X: p.X(), Y: p.Y()})
	})

	velocityQuery.Each(e.World, func(entry *donburi.Entry) {
		v := components.Body.Get(entry).Velocity
		netcomponents.NetVelocity.SetValue(entry, netcomponents.NetVelocityData{SpeedX: v.X(), SpeedY: v.Y()})
	})
}
