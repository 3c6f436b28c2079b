package systems

import (
	"github.com/automoto/stomp-mp/components"
	"github.com/automoto/stomp-mp/shared/netcomponents"
	"github.com/automoto/stomp-mp/shared/ticktimer"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var interpQuery = donburi.NewQuery(filter.Contains(components.NetInterp, netcomponents.NetPosition))

// ReceivePosition records a freshly replicated position. The first one is
// shown as is; later ones are blended toward from wherever the entity is
// currently shown.
func ReceivePosition(interp *components.NetInterpData, pos netcomponents.NetPositionData) {
	target := mgl64.Vec2{pos.X, pos.Y}
	if !interp.Initialized {
		interp.Prev, interp.Target, interp.Position = target, target, target
		interp.T = 1
		interp.Initialized = true
		return
	}
	interp.Prev = interp.Position
	interp.Target = target
	interp.T = 0
}

// UpdateNetInterp advances every blend by dt seconds. One snapshot arrives
// per server tick, so a blend completes in one tick's time.
func UpdateNetInterp(e *ecs.ECS, clock *ticktimer.Clock, dt float64) {
	step := dt * float64(clock.Rate)
	interpQuery.Each(e.World, func(entry *donburi.Entry) {
		interp := components.NetInterp.Get(entry)
		if !interp.Initialized {
			ReceivePosition(interp, *netcomponents.NetPosition.Get(entry))
			return
		}
		interp.T = min(1, interp.T+step)

		from := netcomponents.NetPositionData{X: interp.Prev.X(), Y: interp.Prev.Y()}
		to := netcomponents.NetPositionData{X: interp.Target.X(), Y: interp.Target.Y()}
		p := netcomponents.LerpNetPosition(from, to, interp.T)
		interp.Position = mgl64.Vec2{p.X, p.Y}
	})
}

// ShownPosition is where an observer draws entry: the blended position when
// it is interpolated, otherwise the latest replicated one.
func ShownPosition(entry *donburi.Entry) mgl64.Vec2 {
	if entry.HasComponent(components.NetInterp) {
		if interp := components.NetInterp.Get(entry); interp.Initialized {
			return interp.Position
		}
	}
	if entry.HasComponent(netcomponents.NetPosition) {
		p := netcomponents.NetPosition.Get(entry)
		return mgl64.Vec2{p.X, p.Y}
	}
	return mgl64.Vec2{}
}
