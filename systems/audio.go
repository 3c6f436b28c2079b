package systems

import (
	"github.com/automoto/stomp-mp/components"
	cfg "github.com/automoto/stomp-mp/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlaySFX queues a sound effect. Playback happens outside the simulation.
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	if sound == cfg.SoundNone {
		return
	}
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// StopSounds cuts whatever an entity is currently playing.
func StopSounds(e *ecs.ECS, entity donburi.Entity) {
	audioData := GetOrCreateAudio(e)
	audioData.Stopped = append(audioData.Stopped, entity)
}

// DrainAudio hands every cut entity to stop, then every queued sound to play
// in order, and clears both queues. Either callback may be nil.
func DrainAudio(e *ecs.ECS, play func(cfg.SoundID), stop func(donburi.Entity)) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if stop != nil {
		for _, entity := range audioData.Stopped {
			stop(entity)
		}
	}
	if play != nil {
		for _, soundID := range audioData.PendingSFX {
			play(soundID)
		}
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
	audioData.Stopped = audioData.Stopped[:0]
}

// GetOrCreateAudio returns the audio singleton, creating it on first use.
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
