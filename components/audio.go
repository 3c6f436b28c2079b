package components

import (
	cfg "github.com/automoto/stomp-mp/config"
	"github.com/yohamta/donburi"
)

// AudioData stores global audio state (singleton component). Playback is
// outside the simulation; PendingSFX is drained by whatever plays sounds.
type AudioData struct {
	PendingSFX []cfg.SoundID
	Stopped    []donburi.Entity // entities whose looping sounds were cut
}

var Audio = donburi.NewComponentType[AudioData]()
