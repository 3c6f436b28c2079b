package systems

import (
	"github.com/automoto/stomp-mp/archetypes"
	"github.com/automoto/stomp-mp/components"
	cfg "github.com/automoto/stomp-mp/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// effectFrames is how long a one-shot effect lives.
const effectFrames = 30

// SpawnEffect places a one-shot effect at pos.
func SpawnEffect(e *ecs.ECS, id cfg.EffectID, pos mgl64.Vec2) *donburi.Entry {
	entry := archetypes.Effect.Spawn(e)
	components.Effect.SetValue(entry, components.EffectData{ID: id, Position: pos})
	components.AutoDestroy.SetValue(entry, components.AutoDestroyData{FramesRemaining: effectFrames})
	return entry
}

// UpdateEffects counts down one-shot effects and removes finished ones.
func UpdateEffects(e *ecs.ECS) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(e.World, func(entry *donburi.Entry) {
		ad := components.AutoDestroy.Get(entry)
		ad.FramesRemaining--
		if ad.FramesRemaining <= 0 {
			toDestroy = append(toDestroy, entry)
		}
	})

	for _, entry := range toDestroy {
		entry.Remove()
	}
}
