package components

import (
	"math/rand"

	cfg "github.com/automoto/stomp-mp/config"
	"github.com/automoto/stomp-mp/shared/netconfig"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MaterialData is the per-player shader parameter block.
type MaterialData struct {
	RainbowEnabled float64
	PowerupState   float64
	EyeState       float64
	ModelScale     float64
	MultiplyColor  mgl64.Vec3
	GlowColor      colorful.Color
	GlowEnabled    bool
}

// PresentationData is observer-local player presentation state. It is
// derived from replicated state every frame and never replicated itself.
type PresentationData struct {
	Initialized bool
	WasDead     bool // previous frame, respawn restarts the blink cycle

	ModelRotation   mgl64.Vec3 // Euler degrees
	RotationTarget  mgl64.Vec3
	RotateInstantly bool
	WasTurnaround   bool

	PropellerVelocity float64 // degrees/s, always negative
	PropellerAngle    float64

	Blink     *gween.Sequence
	BlinkRand *rand.Rand
	EyeState  netconfig.EyeState

	EnableGlow bool
	GlowColor  colorful.Color

	Material MaterialData

	ModelScale        float64
	ModelsActive      bool
	LargeModel        bool
	SmallModel        bool
	BlueShellModel    bool
	PropellerHelmet   bool
	LargeShellExclude bool
	Z                 float64

	DustSound  cfg.SoundID // looping sound while dust emits
	DrillSound cfg.SoundID

	// Replicated values at the previous frame; one-shot sounds fire on change.
	HeardState    netconfig.PowerupState
	HeardCoins    int
	HeardBumps    int
	HeardFireball int64 // target tick of the last fireball cooldown
}

var Presentation = donburi.NewComponentType[PresentationData]()
