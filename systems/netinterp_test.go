package systems

import (
	"testing"

	"github.com/automoto/stomp-mp/components"
	"github.com/automoto/stomp-mp/shared/netcomponents"
	"github.com/automoto/stomp-mp/shared/ticktimer"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestReceivePositionSnapsFirstThenBlends(t *testing.T) {
	var interp components.NetInterpData

	ReceivePosition(&interp, netcomponents.NetPositionData{X: 2, Y: 3})
	assert.True(t, interp.Initialized)
	assert.Equal(t, mgl64.Vec2{2, 3}, interp.Position)
	assert.Equal(t, 1.0, interp.T)

	ReceivePosition(&interp, netcomponents.NetPositionData{X: 4, Y: 3})
	assert.Equal(t, mgl64.Vec2{2, 3}, interp.Prev)
	assert.Equal(t, mgl64.Vec2{4, 3}, interp.Target)
	assert.Equal(t, 0.0, interp.T)
}

func TestUpdateNetInterpBlendsOverOneTick(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	entry := e.World.Entry(e.World.Create(netcomponents.NetPosition, components.NetInterp))
	netcomponents.NetPosition.SetValue(entry, netcomponents.NetPositionData{X: 0, Y: 0})
	clock := ticktimer.NewClock(20)

	// Uninitialized blends start from the replicated position.
	UpdateNetInterp(e, clock, 0)
	assert.Equal(t, mgl64.Vec2{0, 0}, ShownPosition(entry))

	interp := components.NetInterp.Get(entry)
	ReceivePosition(interp, netcomponents.NetPositionData{X: 10, Y: -4})

	UpdateNetInterp(e, clock, 0.0125) // quarter of a 20 Hz tick
	assert.InDelta(t, 2.5, ShownPosition(entry).X(), 1e-9)
	assert.InDelta(t, -1.0, ShownPosition(entry).Y(), 1e-9)

	UpdateNetInterp(e, clock, 1)
	assert.Equal(t, mgl64.Vec2{10, -4}, ShownPosition(entry))
	assert.Equal(t, 1.0, interp.T)
}

func TestReceivePositionMidBlendStartsFromShownPosition(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	entry := e.World.Entry(e.World.Create(netcomponents.NetPosition, components.NetInterp))
	interp := components.NetInterp.Get(entry)
	clock := ticktimer.NewClock(10)

	ReceivePosition(interp, netcomponents.NetPositionData{X: 0})
	ReceivePosition(interp, netcomponents.NetPositionData{X: 10})
	UpdateNetInterp(e, clock, 0.05)
	assert.InDelta(t, 5.0, ShownPosition(entry).X(), 1e-9)

	ReceivePosition(interp, netcomponents.NetPositionData{X: 20})
	assert.InDelta(t, 5.0, interp.Prev.X(), 1e-9)
}

func TestShownPositionFallsBackToReplicated(t *testing.T) {
	w := donburi.NewWorld()
	entry := w.Entry(w.Create(netcomponents.NetPosition))
	netcomponents.NetPosition.SetValue(entry, netcomponents.NetPositionData{X: 7, Y: 1})

	assert.Equal(t, mgl64.Vec2{7, 1}, ShownPosition(entry))
}
