package config

// Animator boolean parameters written by the player presentation system.
const (
	AnimOnLeft            = "onLeft"
	AnimOnRight           = "onRight"
	AnimOnGround          = "onGround"
	AnimInvincible        = "invincible"
	AnimSkidding          = "skidding"
	AnimPropeller         = "propeller"
	AnimPropellerSpin     = "propellerSpin"
	AnimPropellerStart    = "propellerStart"
	AnimCrouching         = "crouching"
	AnimGroundpound       = "groundpound"
	AnimSliding           = "sliding"
	AnimKnockback         = "knockback"
	AnimFacingRight       = "facingRight"
	AnimFlying            = "flying"
	AnimDrill             = "drill"
	AnimDoubleJump        = "doublejump"
	AnimTripleJump        = "triplejump"
	AnimHolding           = "holding"
	AnimHeadCarry         = "head carry"
	AnimCarryStart        = "carry_start"
	AnimPipe              = "pipe"
	AnimBlueShell         = "blueshell"
	AnimMini              = "mini"
	AnimMega              = "mega"
	AnimInShell           = "inShell"
	AnimTurnaround        = "turnaround"
	AnimSwimming          = "swimming"
	AnimJumpHeld          = "a_held"
	AnimFireballKnockback = "fireballKnockback"
	AnimKnockForwards     = "knockforwards"
)

// Animator float parameters.
const (
	AnimVelocityX = "velocityX"
	AnimVelocityY = "velocityY"
)

// Animator clip names queried or forced by presentation.
const (
	ClipTurnaround = "turnaround"
	ClipFireball   = "fireball"
	ClipInShell    = "in-shell"
	ClipMegaScale  = "mega-scale"
)

// ParticleID names a player or entity particle emitter.
type ParticleID int

const (
	ParticleDrill ParticleID = iota
	ParticleSparkles
	ParticleDust
	ParticleGiant
	ParticleFire
	ParticleBubbles
	ParticleCount // Must be last - used for array sizing
)

// EffectID names a one-shot effect spawned at a position.
type EffectID int

const (
	EffectEnemySpecialKill EffectID = iota
	EffectIceShatter
)
