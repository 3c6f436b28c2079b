package components

import (
	"github.com/automoto/stomp-mp/shared/gamemath"
	"github.com/automoto/stomp-mp/shared/leveldata"
	"github.com/yohamta/donburi"
)

// LevelData describes the loaded level (singleton component).
type LevelData struct {
	Name   string
	Data   *leveldata.CollisionData
	Wrap   gamemath.Wrap
	FloorY float64 // bodies below FloorY - KillPlaneDepth despawn
}

var Level = donburi.NewComponentType[LevelData]()
