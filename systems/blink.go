package systems

import (
	"math/rand"

	"github.com/automoto/stomp-mp/components"
	"github.com/automoto/stomp-mp/config"
	"github.com/automoto/stomp-mp/shared/netconfig"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// blinkEyes is the eye state shown during each step of the blink sequence.
var blinkEyes = [...]netconfig.EyeState{
	netconfig.EyeNormal,
	netconfig.EyeHalfBlink,
	netconfig.EyeFullBlink,
	netconfig.EyeHalfBlink,
}

// newBlinkCycle builds one blink: a random idle wait, then half, full and half
// closed eyes for one step each. The tweened value is unused; the sequence
// index is the phase.
func newBlinkCycle(pc config.PresentationConfig, r *rand.Rand) *gween.Sequence {
	wait := pc.BlinkMinWait + r.Float64()*pc.BlinkRandomWait
	step := float32(pc.BlinkStep)

	seq := gween.NewSequence()
	seq.Add(
		gween.New(0, 1, float32(wait), ease.Linear),
		gween.New(1, 2, step, ease.Linear),
		gween.New(2, 3, step, ease.Linear),
		gween.New(3, 4, step, ease.Linear),
	)
	return seq
}

// RestartBlink cancels the running blink and starts a fresh idle wait.
func RestartBlink(p *components.PresentationData, pc config.PresentationConfig) {
	if p.BlinkRand == nil {
		p.BlinkRand = rand.New(rand.NewSource(1))
	}
	p.Blink = newBlinkCycle(pc, p.BlinkRand)
	p.EyeState = netconfig.EyeNormal
}

// AdvanceBlink moves the blink cycle forward by dt seconds and returns the
// eye state for this frame. A finished cycle starts the next one at once,
// carrying over whatever part of dt the old one did not use.
func AdvanceBlink(p *components.PresentationData, pc config.PresentationConfig, dt float64) netconfig.EyeState {
	if p.Blink == nil {
		RestartBlink(p, pc)
	}
	_, _, done := p.Blink.Update(float32(dt))
	for done {
		// Time past the end of the cycle counts toward the next idle wait.
		last := p.Blink.Tweens[len(p.Blink.Tweens)-1]
		p.Blink = newBlinkCycle(pc, p.BlinkRand)
		if last.Overflow <= 0 {
			break
		}
		_, _, done = p.Blink.Update(last.Overflow)
	}

	p.EyeState = netconfig.EyeNormal
	if i := p.Blink.Index(); i >= 0 && i < len(blinkEyes) {
		p.EyeState = blinkEyes[i]
	}
	return p.EyeState
}
