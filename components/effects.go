package components

import (
	cfg "github.com/automoto/stomp-mp/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// EffectData is a one-shot visual effect spawned at a position.
type EffectData struct {
	ID       cfg.EffectID
	Position mgl64.Vec2
}

var Effect = donburi.NewComponentType[EffectData]()

// AutoDestroyData marks entities that should be destroyed after a duration
type AutoDestroyData struct {
	FramesRemaining int
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()
