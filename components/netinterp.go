package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// NetInterpData smooths a replicated position between snapshots on an
// observer. Position is what the peer shows; the replicated NetPosition
// always holds the latest snapshot.
type NetInterpData struct {
	Prev, Target mgl64.Vec2
	Position     mgl64.Vec2
	T            float64 // 0 at the previous snapshot, 1 at the target
	Initialized  bool
}

var NetInterp = donburi.NewComponentType[NetInterpData]()
