package netcomponents

import (
	"github.com/automoto/stomp-mp/shared/netconfig"
	"github.com/automoto/stomp-mp/shared/ticktimer"
	"github.com/yohamta/donburi"
)

// NetPlayerStateData is the replicated player controller state. Combat reads
// it on the server and presentation derives every visual from it on
// observers.
type NetPlayerStateData struct {
	PlayerIndex int
	State       netconfig.PowerupState
	FacingRight bool

	IsDead       bool
	IsRespawning bool
	FireDeath    bool
	IsFrozen     bool

	IsOnGround     bool
	IsStuckInBlock bool
	OnIce          bool
	InPipe         bool
	HitLeft        bool
	HitRight       bool
	WallSlideLeft  bool
	WallSlideRight bool

	IsSkidding            bool
	IsTurnaround          bool
	IsCrouching           bool
	IsGroundpounding      bool
	IsSliding             bool
	IsInShell             bool
	IsCrouchedInShell     bool
	IsInKnockback         bool
	IsWeakKnockback       bool
	IsForwardsKnockback   bool
	IsDrilling            bool
	IsSpinnerFlying       bool
	IsPropellerFlying     bool
	UsedPropellerThisJump bool
	IsSwimming            bool
	IsStarmanInvincible   bool

	OnSpinner    bool
	SpinnerSpeed float64 // degrees per second of the spinner being stood on

	ProperJump bool
	JumpState  netconfig.JumpState

	IsHolding     bool
	HoldingOnHead bool
	HoldStartTime float64 // simulation seconds when the held entity was picked up

	InputLeft  bool
	InputRight bool
	InputJump  bool

	CoyoteTime float64 // simulation seconds until which a late jump is still allowed

	DamageInvincibilityTimer ticktimer.Timer
	StarmanTimer             ticktimer.Timer
	MegaTimer                ticktimer.Timer
	MegaStartTimer           ticktimer.Timer
	PropellerLaunchTimer     ticktimer.Timer
	PropellerSpinTimer       ticktimer.Timer
	GroundpoundStartTimer    ticktimer.Timer
	PreRespawnTimer          ticktimer.Timer
	DeathAnimationTimer      ticktimer.Timer
	FireballDelayTimer       ticktimer.Timer

	StarCombo    int
	Coins        int
	BlockBumps   int    // ceiling tiles struck so far
	LastSequence uint32 // last input sequence applied by the server
}

var NetPlayerState = donburi.NewComponentType[NetPlayerStateData]()
