package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/stomp-mp/components"
	"github.com/automoto/stomp-mp/config"
	"github.com/automoto/stomp-mp/shared/netcomponents"
	"github.com/automoto/stomp-mp/shared/netconfig"
	"github.com/automoto/stomp-mp/shared/ticktimer"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// Model yaw for each facing, in degrees.
const (
	yawRight = 110
	yawLeft  = 250
	yawFront = 180
)

// Model depth.
const (
	zDefault = -4
	zDead    = -6
	zPipe    = 1
)

var presentedPlayers = donburi.NewQuery(filter.Contains(
	netcomponents.NetPlayerState,
	components.Presentation,
	components.Animator,
	components.Particles,
))

// PlayerPresenter derives the visuals of every player on an observing peer.
// It reads replicated state and writes only observer-local components.
type PlayerPresenter struct {
	Config *config.Config
	Clock  *ticktimer.Clock // follows the replicated match tick

	// LocalPlayer is the index this peer controls, -1 when spectating.
	LocalPlayer int
	// Seed makes each player's blink timing reproducible.
	Seed int64
}

func NewPlayerPresenter(cfg *config.Config, clock *ticktimer.Clock, localPlayer int) *PlayerPresenter {
	return &PlayerPresenter{Config: cfg, Clock: clock, LocalPlayer: localPlayer}
}

// AttachPlayerVisuals gives every replicated player the presentation
// components it lacks.
func (pp *PlayerPresenter) AttachPlayerVisuals(e *ecs.ECS) {
	var bare []*donburi.Entry
	netcomponents.NetPlayerState.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Presentation) {
			bare = append(bare, entry)
		}
	})
	for _, entry := range bare {
		entry.AddComponent(components.Presentation)
		if !entry.HasComponent(components.Animator) {
			entry.AddComponent(components.Animator)
			components.Animator.SetValue(entry, *components.NewAnimatorData())
		}
		if !entry.HasComponent(components.Particles) {
			entry.AddComponent(components.Particles)
		}
	}
}

// Update presents every player for one rendered frame of dt seconds.
func (pp *PlayerPresenter) Update(e *ecs.ECS, dt float64) {
	match := netcomponents.NetMatchData{}
	if entry, ok := netcomponents.NetMatch.First(e.World); ok {
		match = *netcomponents.NetMatch.Get(entry)
	}
	presentedPlayers.Each(e.World, func(entry *donburi.Entry) {
		pp.present(e, entry, match, dt)
	})
}

func (pp *PlayerPresenter) present(e *ecs.ECS, entry *donburi.Entry, match netcomponents.NetMatchData, dt float64) {
	ps := netcomponents.NetPlayerState.Get(entry)
	pres := components.Presentation.Get(entry)
	anim := components.Animator.Get(entry)
	parts := components.Particles.Get(entry)
	vel := replicatedVelocity(entry)
	cfg := pp.Config.Presentation

	if !pres.Initialized {
		pp.initPresentation(pres, ps)
	}
	pres.EnableGlow = match.Teams || ps.PlayerIndex != pp.LocalPlayer

	playerSounds(e, pres, ps)
	if pres.WasDead && !ps.IsDead {
		RestartBlink(pres, cfg)
	}
	pres.WasDead = ps.IsDead
	AdvanceBlink(pres, cfg, dt)

	if match.Starting {
		disableAllModels(pres, anim)
		return
	}

	DerivePlayerAnimator(anim, ps, vel, pp.Clock, cfg)
	pp.handleAnimations(pres, parts, ps, vel, match)
	pp.setFacingDirection(pres, anim, ps, vel, match, dt)
	pp.interpolateFacingDirection(pres, ps, match, dt)
	pp.handleMiscStates(pres, anim, ps, match)
}

func (pp *PlayerPresenter) initPresentation(pres *components.PresentationData, ps *netcomponents.NetPlayerStateData) {
	facing := facingYaw(ps.FacingRight)
	pres.ModelRotation = mgl64.Vec3{0, facing, 0}
	pres.RotationTarget = pres.ModelRotation
	pres.PropellerVelocity = pp.Config.Presentation.PropellerMaxVel
	pres.ModelScale = 1
	pres.BlinkRand = rand.New(rand.NewSource(pp.Seed + int64(ps.PlayerIndex)))
	pres.GlowColor = PlayerColor(ps.PlayerIndex, pp.Config.Presentation.MaxPlayers)
	RestartBlink(pres, pp.Config.Presentation)
	pres.WasDead = ps.IsDead
	hear(pres, ps)
	pres.Initialized = true
}

// PlayerColor spreads player glow colours evenly around the hue wheel.
func PlayerColor(index, maxPlayers int) colorful.Color {
	if maxPlayers <= 0 {
		maxPlayers = 1
	}
	hue := math.Mod(float64(index)/float64(maxPlayers)*360, 360)
	return colorful.Hsv(hue, 0.8, 1)
}

// DerivePlayerAnimator writes the animator parameter set for one frame.
//
// Booleans:
//
//	onLeft            WallSlideLeft
//	onRight           WallSlideRight
//	onGround          IsOnGround || IsStuckInBlock || now <= CoyoteTime - CoyoteGrace
//	invincible        IsStarmanInvincible
//	skidding          IsSkidding
//	propeller         IsPropellerFlying
//	propellerSpin     PropellerSpinTimer active
//	propellerStart    PropellerLaunchTimer active
//	crouching         IsCrouching
//	groundpound       IsGroundpounding
//	sliding           IsSliding
//	knockback         IsInKnockback
//	facingRight       InputRight when exactly one of left/right is held, else FacingRight
//	flying            IsSpinnerFlying
//	drill             IsDrilling
//	doublejump        ProperJump && JumpState == JumpDouble
//	triplejump        ProperJump && JumpState == JumpTriple
//	holding           IsHolding
//	head carry        IsHolding && HoldingOnHead
//	carry_start       head carry && now - HoldStartTime < PickupTime
//	pipe              InPipe
//	blueshell         State == BlueShell
//	mini              State == MiniMushroom
//	mega              State == MegaMushroom
//	inShell           IsInShell || (State == BlueShell && (IsCrouching || IsGroundpounding || IsSliding)
//	                  && GroundpoundStartTimer remaining <= 0.15s)
//	turnaround        IsTurnaround
//	swimming          IsSwimming && !IsGroundpounding && !IsDrilling
//	a_held            InputJump
//	fireballKnockback IsWeakKnockback
//	knockforwards     IsForwardsKnockback
//
// Floats:
//
//	velocityX  |velocity|, except: 0 when stuck in a block; PropellerSpeed while
//	           propeller flying; MegaAnimSpeed for a mega player holding a
//	           direction; at least WalkAnimSpeed (IceWalkSpeed on ice) when
//	           exactly one direction is held and no wall is hit; 0 on ice
//	           otherwise.
//	velocityY  vertical velocity.
//
// Timers that are not running count as zero remaining time.
func DerivePlayerAnimator(anim *components.AnimatorData, ps *netcomponents.NetPlayerStateData, vel mgl64.Vec2, clock *ticktimer.Clock, pc config.PresentationConfig) {
	if anim.Bools == nil {
		anim.Bools = make(map[string]bool)
	}
	if anim.Floats == nil {
		anim.Floats = make(map[string]float64)
	}
	anim.Played = anim.Played[:0]

	now := clock.Seconds()
	left, right := ps.InputLeft, ps.InputRight
	headCarry := ps.IsHolding && ps.HoldingOnHead
	gpStart, _ := ps.GroundpoundStartTimer.RemainingTime(clock)

	facing := ps.FacingRight
	if left != right {
		facing = right
	}

	b := anim.Bools
	b[config.AnimOnLeft] = ps.WallSlideLeft
	b[config.AnimOnRight] = ps.WallSlideRight
	b[config.AnimOnGround] = ps.IsOnGround || ps.IsStuckInBlock || now <= ps.CoyoteTime-pc.CoyoteGrace
	b[config.AnimInvincible] = ps.IsStarmanInvincible
	b[config.AnimSkidding] = ps.IsSkidding
	b[config.AnimPropeller] = ps.IsPropellerFlying
	b[config.AnimPropellerSpin] = ps.PropellerSpinTimer.IsActive(clock)
	b[config.AnimPropellerStart] = ps.PropellerLaunchTimer.IsActive(clock)
	b[config.AnimCrouching] = ps.IsCrouching
	b[config.AnimGroundpound] = ps.IsGroundpounding
	b[config.AnimSliding] = ps.IsSliding
	b[config.AnimKnockback] = ps.IsInKnockback
	b[config.AnimFacingRight] = facing
	b[config.AnimFlying] = ps.IsSpinnerFlying
	b[config.AnimDrill] = ps.IsDrilling
	b[config.AnimDoubleJump] = ps.ProperJump && ps.JumpState == netconfig.JumpDouble
	b[config.AnimTripleJump] = ps.ProperJump && ps.JumpState == netconfig.JumpTriple
	b[config.AnimHolding] = ps.IsHolding
	b[config.AnimHeadCarry] = headCarry
	b[config.AnimCarryStart] = headCarry && now-ps.HoldStartTime < pc.PickupTime
	b[config.AnimPipe] = ps.InPipe
	b[config.AnimBlueShell] = ps.State == netconfig.BlueShell
	b[config.AnimMini] = ps.State == netconfig.MiniMushroom
	b[config.AnimMega] = ps.State == netconfig.MegaMushroom
	b[config.AnimInShell] = ps.IsInShell || (ps.State == netconfig.BlueShell &&
		(ps.IsCrouching || ps.IsGroundpounding || ps.IsSliding) && gpStart <= 0.15)
	b[config.AnimTurnaround] = ps.IsTurnaround
	b[config.AnimSwimming] = ps.IsSwimming && !ps.IsGroundpounding && !ps.IsDrilling
	b[config.AnimJumpHeld] = ps.InputJump
	b[config.AnimFireballKnockback] = ps.IsWeakKnockback
	b[config.AnimKnockForwards] = ps.IsForwardsKnockback

	speed := vel.Len()
	switch {
	case ps.IsStuckInBlock:
		speed = 0
	case ps.IsPropellerFlying:
		speed = pc.PropellerSpeed
	case ps.State == netconfig.MegaMushroom && (left || right):
		speed = pc.MegaAnimSpeed
	case left != right && !ps.HitRight && !ps.HitLeft:
		walk := pc.WalkAnimSpeed
		if ps.OnIce {
			walk = pc.IceWalkSpeed
		}
		speed = max(walk, speed)
	case ps.OnIce:
		speed = 0
	}
	anim.Floats[config.AnimVelocityX] = speed
	anim.Floats[config.AnimVelocityY] = vel.Y()
}

// handleAnimations drives particle emission edges and the looping sounds
// that go with them.
func (pp *PlayerPresenter) handleAnimations(pres *components.PresentationData, parts *components.ParticlesData, ps *netcomponents.NetPlayerStateData, vel mgl64.Vec2, match netcomponents.NetMatchData) {
	if match.Ended {
		pres.ModelsActive = true
		for i := range parts.Emitters {
			setEmission(&parts.Emitters[i], false)
		}
		return
	}

	cfg := pp.Config.Presentation
	moving := vel.LenSqr() > cfg.MovingSqrSpeed
	preRespawn, _ := ps.PreRespawnTimer.RemainingTime(pp.Clock)
	deathTimer := cfg.PreRespawnDuration - preRespawn
	alive := !ps.IsDead

	dust := ps.WallSlideLeft || ps.WallSlideRight ||
		(ps.IsOnGround && (ps.IsSkidding || (ps.IsCrouching && moving))) ||
		(((ps.IsSliding && moving) || ps.IsInShell) && ps.IsOnGround)

	e := &parts.Emitters
	setEmission(&e[config.ParticleDrill], alive && ps.IsDrilling)
	setEmission(&e[config.ParticleSparkles], alive && ps.IsStarmanInvincible)
	setEmission(&e[config.ParticleDust], alive && dust && !ps.InPipe)
	setEmission(&e[config.ParticleGiant], alive && ps.State == netconfig.MegaMushroom && ps.MegaStartTimer.ExpiredOrNotRunning(pp.Clock))
	setEmission(&e[config.ParticleFire], !ps.IsRespawning && ps.FireDeath && ps.IsDead && deathTimer > cfg.DeathUpTime)
	setEmission(&e[config.ParticleBubbles], ps.IsSwimming)

	hb := PlayerHitboxSize(pp.Config.Player, ps)
	switch {
	case ps.IsCrouching || ps.IsSliding || ps.IsSkidding:
		e[config.ParticleDust].LocalX, e[config.ParticleDust].LocalY = 0, 0
	case ps.WallSlideLeft || ps.WallSlideRight:
		side := 1.0
		if ps.WallSlideLeft {
			side = -1
		}
		e[config.ParticleDust].LocalX = hb.X() * 0.75 * side
		e[config.ParticleDust].LocalY = hb.Y() * 0.75
	}
	e[config.ParticleBubbles].LocalY = hb.Y()

	pres.DustSound = config.SoundWallSlide
	if ps.IsInShell || ps.IsSliding || ps.IsCrouchedInShell {
		pres.DustSound = config.SoundShellSlide
	}
	pres.DrillSound = config.SoundSpinnerDrill
	if ps.IsPropellerFlying {
		pres.DrillSound = config.SoundPropellerDrill
	}
}

// setEmission plays a stopped emitter or stops a playing one. It never
// restarts an emitter that is already in the requested state.
func setEmission(em *components.Emitter, on bool) {
	if on {
		if !em.Playing {
			em.Playing = true
			em.Plays++
		}
		return
	}
	if em.Playing {
		em.Playing = false
		em.Stops++
	}
}

// spinningOnSpinner reports a player standing still on a spinner, who turns
// with it.
func (pp *PlayerPresenter) spinningOnSpinner(ps *netcomponents.NetPlayerStateData, vel mgl64.Vec2) bool {
	return ps.OnSpinner && ps.IsOnGround && ps.FireballDelayTimer.ExpiredOrNotRunning(pp.Clock) &&
		math.Abs(vel.X()) < pp.Config.Presentation.SpinnerStillSpeed && !ps.IsHolding
}

// setFacingDirection picks the model rotation target. Earlier cases win:
// knockback, death, in-shell spin, turnaround, spinner or propeller flight,
// wall slide, then plain facing.
func (pp *PlayerPresenter) setFacingDirection(pres *components.PresentationData, anim *components.AnimatorData, ps *netcomponents.NetPlayerStateData, vel mgl64.Vec2, match netcomponents.NetMatchData, dt float64) {
	if match.Ended || ps.IsFrozen {
		if ps.IsDead {
			pres.RotationTarget = mgl64.Vec3{0, yawFront, 0}
			pres.RotateInstantly = true
		}
		return
	}

	cfg := pp.Config.Presentation
	turnaroundClip := anim.CurrentClip == config.ClipTurnaround
	pres.RotateInstantly = false

	switch {
	case ps.IsInKnockback:
		pres.RotationTarget = mgl64.Vec3{0, facingYaw(ps.FacingRight), 0}
		pres.RotateInstantly = true

	case ps.IsDead:
		if ps.FireDeath && !ps.DeathAnimationTimer.IsRunning() {
			pres.RotationTarget = mgl64.Vec3{-15, facingYaw(ps.FacingRight), 0}
		} else {
			pres.RotationTarget = mgl64.Vec3{0, yawFront, 0}
		}
		pres.RotateInstantly = true

	case anim.Bools[config.AnimInShell] && (!ps.OnSpinner || math.Abs(vel.X()) > cfg.SpinnerStillSpeed):
		dir := 1.0
		if ps.FacingRight {
			dir = -1
		}
		pres.RotationTarget[1] += math.Abs(vel.X()) / pp.Config.Player.RunningMaxSpeed * dt * cfg.ShellSpinRate * dir
		pres.RotateInstantly = true

	case pres.WasTurnaround || ps.IsSkidding || ps.IsTurnaround || turnaroundClip:
		flip := ps.FacingRight != (turnaroundClip || ps.IsSkidding)
		pres.RotationTarget = mgl64.Vec3{0, yawRight, 0}
		if flip {
			pres.RotationTarget[1] = yawLeft
		}
		pres.RotateInstantly = true

	case pp.spinningOnSpinner(ps, vel) && anim.CurrentClip != config.ClipFireball:
		pres.RotationTarget[1] += ps.SpinnerSpeed * dt
		pres.RotateInstantly = true

	case ps.IsSpinnerFlying || ps.IsPropellerFlying:
		launch, _ := ps.PropellerLaunchTimer.RemainingTime(pp.Clock)
		spin := -cfg.SpinnerFlightSpin - launch*cfg.PropellerLaunchSpin
		if ps.IsDrilling {
			spin -= cfg.DrillSpin
		}
		if ps.IsPropellerFlying && ps.PropellerSpinTimer.ExpiredOrNotRunning(pp.Clock) && vel.Y() < 0 {
			spin += cfg.PropellerFallSpin
		}
		pres.RotationTarget[1] += spin * dt
		pres.RotateInstantly = true

	case ps.WallSlideLeft || ps.WallSlideRight:
		pres.RotationTarget = mgl64.Vec3{0, facingYaw(ps.WallSlideRight), 0}

	default:
		pres.RotationTarget = mgl64.Vec3{0, facingYaw(ps.FacingRight), 0}
	}
	pres.RotationTarget[1] = wrapDegrees(pres.RotationTarget[1])

	spinDir := 1.0
	if ps.IsSpinnerFlying || ps.IsPropellerFlying || ps.UsedPropellerThisJump {
		spinDir = -1
	}
	pres.PropellerVelocity = mgl64.Clamp(pres.PropellerVelocity+cfg.PropellerAccel*spinDir*dt, cfg.PropellerMinVel, cfg.PropellerMaxVel)

	pres.WasTurnaround = turnaroundClip
}

// interpolateFacingDirection moves the model toward its target. Instant
// states snap; everything else turns at most MaxRotationSpeed per axis.
func (pp *PlayerPresenter) interpolateFacingDirection(pres *components.PresentationData, ps *netcomponents.NetPlayerStateData, match netcomponents.NetMatchData, dt float64) {
	if ps.IsFrozen {
		return
	}

	switch {
	case pres.RotateInstantly || pres.WasTurnaround:
		pres.ModelRotation = pres.RotationTarget
	case !match.Ended:
		step := pp.Config.Presentation.MaxRotationSpeed * dt
		for i := range pres.ModelRotation {
			pres.ModelRotation[i] += mgl64.Clamp(pres.RotationTarget[i]-pres.ModelRotation[i], -step, step)
		}
	}
	for i := range pres.ModelRotation {
		pres.ModelRotation[i] = wrapDegrees(pres.ModelRotation[i])
	}

	if match.Ended {
		return
	}
	pres.PropellerAngle = wrapDegrees(pres.PropellerAngle + pres.PropellerVelocity*dt)
}

// handleMiscStates covers scale, material, hit flash, model selection and
// depth.
func (pp *PlayerPresenter) handleMiscStates(pres *components.PresentationData, anim *components.AnimatorData, ps *netcomponents.NetPlayerStateData, match netcomponents.NetMatchData) {
	cfg := pp.Config.Presentation

	if ps.MegaStartTimer.IsActive(pp.Clock) && anim.CurrentClip != config.ClipMegaScale {
		anim.Played = append(anim.Played, config.ClipMegaScale)
	}

	pres.ModelScale = PlayerScale(pp.Config.Player, ps, pp.Clock)

	m := &pres.Material
	m.RainbowEnabled = 0
	if ps.IsStarmanInvincible {
		m.RainbowEnabled = 1
	}
	m.PowerupState = materialPowerup(ps.State)
	m.EyeState = float64(pres.EyeState)
	if ps.IsDead {
		m.EyeState = float64(netconfig.EyeDeath)
	}
	m.ModelScale = pres.ModelScale
	m.MultiplyColor = mgl64.Vec3{1, 1, 1}
	if megaLeft, ok := ps.MegaTimer.RemainingTime(pp.Clock); ok && ps.State == netconfig.MegaMushroom && megaLeft < cfg.MegaFlashWindow {
		v := (math.Sin(megaLeft*20)+1)*0.45 + 0.1
		m.MultiplyColor = mgl64.Vec3{v, 1, v}
	}
	m.GlowEnabled = pres.EnableGlow
	m.GlowColor = pres.GlowColor

	flashLeft, _ := ps.DamageInvincibilityTimer.RemainingTime(pp.Clock)
	pres.ModelsActive = !ps.IsRespawning && (match.Ended || ps.IsDead || !hitFlashHidden(flashLeft))

	large := ps.State >= netconfig.Mushroom
	pres.LargeModel = large
	pres.SmallModel = !large
	pres.BlueShellModel = ps.State == netconfig.BlueShell
	pres.LargeShellExclude = anim.CurrentClip != config.ClipInShell
	pres.PropellerHelmet = ps.State == netconfig.PropellerMushroom
	anim.Large = large

	pres.Z = zDefault
	switch {
	case ps.IsDead:
		pres.Z = zDead
	case ps.InPipe:
		pres.Z = zPipe
	}
}

// hitFlashHidden reports whether the model blinks off with remaining
// invincibility seconds left. The blink speeds up in the last 0.75s.
func hitFlashHidden(remaining float64) bool {
	if remaining <= 0 {
		return false
	}
	rate := 2.0
	if remaining <= 0.75 {
		rate = 5
	}
	return math.Mod(remaining*rate, 0.2) < 0.1
}

func materialPowerup(state netconfig.PowerupState) float64 {
	switch state {
	case netconfig.FireFlower:
		return 1
	case netconfig.PropellerMushroom:
		return 2
	case netconfig.IceFlower:
		return 3
	}
	return 0
}

// PlayerScale is the model scale for a power-up. A growing mega player
// scales up over the grow window.
func PlayerScale(pc config.PlayerConfig, ps *netcomponents.NetPlayerStateData, clock *ticktimer.Clock) float64 {
	switch ps.State {
	case netconfig.MiniMushroom:
		return pc.MiniScale
	case netconfig.MegaMushroom:
		left, ok := ps.MegaStartTimer.RemainingTime(clock)
		if !ok || left <= 0 || pc.MegaGrowDuration <= 0 {
			return pc.MegaScale
		}
		t := 1 - left/pc.MegaGrowDuration
		return 1 + (pc.MegaScale-1)*mgl64.Clamp(t, 0, 1)
	}
	return 1
}

func disableAllModels(pres *components.PresentationData, anim *components.AnimatorData) {
	pres.SmallModel = false
	pres.LargeModel = false
	pres.BlueShellModel = false
	pres.PropellerHelmet = false
	anim.Large = false
}

func facingYaw(right bool) float64 {
	if right {
		return yawRight
	}
	return yawLeft
}

// wrapDegrees maps an angle into [0, 360).
func wrapDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

func replicatedVelocity(entry *donburi.Entry) mgl64.Vec2 {
	if !entry.HasComponent(netcomponents.NetVelocity) {
		return mgl64.Vec2{}
	}
	v := netcomponents.NetVelocity.Get(entry)
	return mgl64.Vec2{v.SpeedX, v.SpeedY}
}
