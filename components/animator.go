package components

import (
	cfg "github.com/automoto/stomp-mp/config"
	"github.com/yohamta/donburi"
)

// AnimatorData records the parameters presentation hands to an animation
// state machine. CurrentClip is reported back by the animation player.
type AnimatorData struct {
	Bools       map[string]bool
	Floats      map[string]float64
	CurrentClip string
	Played      []string // clips force-played this frame
	Large       bool     // large avatar and overrides selected
}

var Animator = donburi.NewComponentType[AnimatorData]()

// NewAnimatorData returns an animator with empty parameter maps.
func NewAnimatorData() *AnimatorData {
	return &AnimatorData{
		Bools:  make(map[string]bool),
		Floats: make(map[string]float64),
	}
}

// Emitter is one particle system. Plays and Stops count transitions.
type Emitter struct {
	Playing        bool
	Plays, Stops   int
	LocalX, LocalY float64
}

// ParticlesData holds a player's particle emitters.
type ParticlesData struct {
	Emitters [cfg.ParticleCount]Emitter
}

var Particles = donburi.NewComponentType[ParticlesData]()
