package systems

import (
	"log"
	"math"

	"github.com/automoto/stomp-mp/components"
	"github.com/automoto/stomp-mp/config"
	"github.com/automoto/stomp-mp/shared/gamemath"
	"github.com/automoto/stomp-mp/shared/netcomponents"
	"github.com/automoto/stomp-mp/shared/netconfig"
	"github.com/automoto/stomp-mp/shared/ticktimer"
	"github.com/automoto/stomp-mp/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Player is a handle on a player entity's controller state.
type Player struct {
	sim   *Sim
	entry *donburi.Entry
}

// Player returns the handle for entry, or false if entry is not a player.
func (s *Sim) Player(entry *donburi.Entry) (*Player, bool) {
	if entry == nil || !entry.Valid() {
		return nil, false
	}
	if !entry.HasComponent(components.Player) || !entry.HasComponent(netcomponents.NetPlayerState) {
		return nil, false
	}
	return &Player{sim: s, entry: entry}, true
}

func (p *Player) Entry() *donburi.Entry { return p.entry }

func (p *Player) State() *netcomponents.NetPlayerStateData {
	return netcomponents.NetPlayerState.Get(p.entry)
}

func (p *Player) Data() *components.PlayerData { return components.Player.Get(p.entry) }

func (p *Player) Body() *components.BodyData {
	if !p.entry.HasComponent(components.Body) {
		return nil
	}
	return components.Body.Get(p.entry)
}

func (p *Player) object() *components.ObjectData {
	if !p.entry.HasComponent(components.Object) {
		return nil
	}
	obj := components.Object.Get(p.entry)
	if obj.Object == nil {
		return nil
	}
	return obj
}

// Position is the feet-centre body position.
func (p *Player) Position() mgl64.Vec2 {
	if obj := p.object(); obj != nil {
		return obj.Position()
	}
	return mgl64.Vec2{}
}

// InstakillsEnemies reports whether touching an entity from any side kills it.
func (p *Player) InstakillsEnemies() bool {
	ps := p.State()
	sliding := ps.IsSliding
	if body := p.Body(); body != nil {
		sliding = sliding && math.Abs(body.Velocity.X()) > 0.1
	}
	return ps.IsStarmanInvincible || ps.IsInShell || sliding || ps.State == netconfig.MegaMushroom
}

// HasGroundpoundHitbox reports whether the player is falling in a ground-pound
// or drill with the hang time over.
func (p *Player) HasGroundpoundHitbox() bool {
	ps := p.State()
	pounding := ps.IsGroundpounding && ps.GroundpoundStartTimer.ExpiredOrNotRunning(p.sim.Clock)
	return (ps.IsDrilling || pounding) && !ps.IsOnGround
}

func (p *Player) IsDamageable() bool {
	ps := p.State()
	return !ps.IsDead && !ps.IsStarmanInvincible && ps.DamageInvincibilityTimer.ExpiredOrNotRunning(p.sim.Clock)
}

// Powerdown drops the player one power-up level, killing a small player.
func (p *Player) Powerdown() {
	if !p.IsDamageable() {
		return
	}
	ps := p.State()

	switch ps.State {
	case netconfig.MiniMushroom, netconfig.NoPowerup:
		p.Death(false)
		return
	case netconfig.Mushroom:
		ps.State = netconfig.NoPowerup
	default:
		ps.State = netconfig.Mushroom
	}

	ps.IsPropellerFlying = false
	ps.IsDrilling = false
	ps.IsInShell = false
	ps.IsCrouchedInShell = false
	ps.IsGroundpounding = false
	ps.DamageInvincibilityTimer = ticktimer.FromSeconds(p.sim.Clock, p.sim.Config.Combat.DamageInvincibility)
	p.resize()
}

// Death starts the death sequence. The player respawns once PreRespawnTimer
// expires.
func (p *Player) Death(fire bool) {
	ps := p.State()
	if ps.IsDead {
		return
	}
	c := p.sim.Clock
	pc := p.sim.Config.Player

	ps.IsDead = true
	ps.FireDeath = fire
	ps.IsRespawning = false
	ps.PreRespawnTimer = ticktimer.FromSeconds(c, pc.PreRespawnDuration)
	ps.DeathAnimationTimer = ticktimer.FromSeconds(c, p.sim.Config.Presentation.DeathUpTime)
	p.clearMovement()

	if body := p.Body(); body != nil {
		body.Velocity = mgl64.Vec2{}
		body.Freeze = true
	}
	log.Printf("[sim] player %d died (fire=%v)", ps.PlayerIndex, fire)
}

// Respawn returns a dead player to their spawn point small and briefly
// invincible.
func (p *Player) Respawn() {
	ps := p.State()
	c := p.sim.Clock

	ps.IsDead = false
	ps.FireDeath = false
	ps.IsRespawning = false
	ps.IsFrozen = false
	ps.State = netconfig.NoPowerup
	ps.FacingRight = true
	ps.StarCombo = 0
	ps.PreRespawnTimer = ticktimer.Timer{}
	ps.DeathAnimationTimer = ticktimer.Timer{}
	ps.DamageInvincibilityTimer = ticktimer.FromSeconds(c, p.sim.Config.Combat.DamageInvincibility)
	p.clearMovement()

	if body := p.Body(); body != nil {
		body.Velocity = mgl64.Vec2{}
		body.Gravity = mgl64.Vec2{0, -p.sim.Config.Player.Gravity}
		body.Freeze = false
	}
	p.resize()
	if obj := p.object(); obj != nil {
		obj.SetPosition(p.Data().SpawnPoint)
	}
}

func (p *Player) clearMovement() {
	ps := p.State()
	ps.IsSkidding = false
	ps.IsTurnaround = false
	ps.IsCrouching = false
	ps.IsGroundpounding = false
	ps.IsSliding = false
	ps.IsInShell = false
	ps.IsCrouchedInShell = false
	ps.IsInKnockback = false
	ps.IsDrilling = false
	ps.IsPropellerFlying = false
	ps.UsedPropellerThisJump = false
	ps.IsStarmanInvincible = false
	ps.StarmanTimer = ticktimer.Timer{}
	ps.MegaTimer = ticktimer.Timer{}
	ps.MegaStartTimer = ticktimer.Timer{}
	ps.GroundpoundStartTimer = ticktimer.Timer{}
	ps.PropellerLaunchTimer = ticktimer.Timer{}
	ps.JumpState = netconfig.JumpNone
}

// resize fits the hitbox and collision object to the power-up state, keeping
// the feet in place.
func (p *Player) resize() {
	obj := p.object()
	if obj == nil || !p.entry.HasComponent(components.Hitbox) {
		return
	}
	size := PlayerHitboxSize(p.sim.Config.Player, p.State())

	hb := components.Hitbox.Get(p.entry)
	hb.Size = size
	hb.Offset = mgl64.Vec2{0, size.Y() / 2}

	pos := obj.Position()
	obj.W = size.X() * components.PhysicsScale
	obj.H = size.Y() * components.PhysicsScale
	obj.SetPosition(pos)
}

// PlayerHitboxSize is the hurtbox a player has in its current power-up and
// stance.
func PlayerHitboxSize(pc config.PlayerConfig, ps *netcomponents.NetPlayerStateData) mgl64.Vec2 {
	size := mgl64.Vec2{pc.HitboxWidth, pc.SmallHitboxHeight}
	switch {
	case ps.State == netconfig.MiniMushroom:
		size = size.Mul(pc.MiniScale)
	case ps.State == netconfig.MegaMushroom:
		size = mgl64.Vec2{pc.HitboxWidth, pc.LargeHitboxHeight}.Mul(pc.MegaScale)
	case ps.State >= netconfig.Mushroom:
		size[1] = pc.LargeHitboxHeight
	}
	if ps.IsCrouching || ps.IsInShell {
		size[1] = min(size.Y(), pc.SmallHitboxHeight)
	}
	return size
}

// UpdatePlayers applies each player's latest input to their controller.
func (s *Sim) UpdatePlayers(e *ecs.ECS) {
	components.Player.Each(e.World, func(entry *donburi.Entry) {
		p, ok := s.Player(entry)
		if !ok {
			return
		}
		p.update()
	})
}

func (p *Player) update() {
	s := p.sim
	c := s.Clock
	ps := p.State()
	data := p.Data()
	body := p.Body()
	if body == nil {
		return
	}

	if ps.IsDead {
		if rem, ok := ps.PreRespawnTimer.RemainingTime(c); ok && rem <= 1 {
			ps.IsRespawning = true
		}
		if ps.PreRespawnTimer.Expired(c) {
			p.Respawn()
		}
		return
	}

	p.updateTimers()

	in := data.Input
	prev := data.PrevInput
	pc := s.Config.Player
	dt := c.DeltaTime()

	left := in.Pressed(netconfig.ActionMoveLeft) || in.Direction < 0
	right := in.Pressed(netconfig.ActionMoveRight) || in.Direction > 0
	crouch := in.Pressed(netconfig.ActionCrouch)
	sprint := in.Pressed(netconfig.ActionSprint)
	jumpPressed := in.Pressed(netconfig.ActionJump) && !prev.Pressed(netconfig.ActionJump)
	crouchPressed := crouch && !prev.Pressed(netconfig.ActionCrouch)
	attackPressed := in.Pressed(netconfig.ActionAttack) && !prev.Pressed(netconfig.ActionAttack)

	ps.InputLeft, ps.InputRight = left, right
	ps.InputJump = in.Pressed(netconfig.ActionJump)
	ps.LastSequence = in.Sequence
	ps.IsOnGround = body.OnGround
	ps.HitLeft, ps.HitRight = body.HitLeft, body.HitRight

	// Bounce off an entity stomped last tick
	if data.DoEntityBounce {
		body.Velocity[1] = s.Config.Combat.EntityBounceSpeed
		data.DoEntityBounce = false
		ps.IsOnGround = false
		ps.IsGroundpounding = false
	}

	if ps.IsOnGround {
		p.land()
	}

	// Horizontal movement
	dir := 0.0
	switch {
	case left && !right:
		dir = -1
	case right && !left:
		dir = 1
	}
	speed := pc.WalkSpeed
	if sprint {
		speed = pc.RunSpeed
	}
	vx := body.Velocity.X()
	switch {
	case ps.IsGroundpounding || ps.IsCrouching:
		vx = gamemath.ApplyFriction(vx, pc.Friction*dt)
	case dir != 0:
		vx = gamemath.Accelerate(vx, dir*speed, pc.Acceleration*dt)
		ps.FacingRight = dir > 0
	case ps.IsOnGround:
		vx = gamemath.ApplyFriction(vx, pc.Friction*dt)
	}
	wasSkidding := ps.IsSkidding
	ps.IsSkidding = ps.IsOnGround && dir != 0 && vx*dir < 0 && math.Abs(vx) > pc.WalkSpeed/2
	ps.IsTurnaround = wasSkidding && !ps.IsSkidding && dir != 0
	body.Velocity[0] = vx

	// Crouch, slide and shell
	ps.IsSliding = crouch && ps.IsOnGround && math.Abs(vx) >= pc.SlideSpeed
	ps.IsCrouching = crouch && ps.IsOnGround && !ps.IsSliding
	ps.IsInShell = ps.State == netconfig.BlueShell && sprint && ps.IsOnGround && math.Abs(vx) >= pc.RunSpeed*0.9
	ps.IsCrouchedInShell = ps.State == netconfig.BlueShell && ps.IsCrouching

	// Jumps
	canJump := ps.IsOnGround || ps.CoyoteTime > c.Seconds()
	switch {
	case jumpPressed && canJump:
		body.Velocity[1] = pc.JumpSpeed
		ps.ProperJump = true
		ps.IsOnGround = false
		ps.CoyoteTime = 0
		ps.JumpState = nextJump(ps.JumpState)
	case jumpPressed && ps.State == netconfig.PropellerMushroom && !ps.UsedPropellerThisJump:
		body.Velocity[1] = pc.JumpSpeed
		ps.IsPropellerFlying = true
		ps.UsedPropellerThisJump = true
		ps.PropellerLaunchTimer = ticktimer.FromSeconds(c, 1)
		ps.PropellerSpinTimer = ticktimer.Timer{}
	}

	// Ground-pound and drill
	if crouchPressed && !ps.IsOnGround && !ps.IsGroundpounding && !ps.IsDrilling {
		if ps.IsPropellerFlying {
			ps.IsDrilling = true
		} else {
			ps.IsGroundpounding = true
			ps.GroundpoundStartTimer = ticktimer.FromSeconds(c, pc.GroundpoundDelay)
		}
	}
	switch {
	case ps.IsGroundpounding && ps.GroundpoundStartTimer.IsActive(c):
		body.Velocity = mgl64.Vec2{}
	case ps.IsGroundpounding || ps.IsDrilling:
		body.Velocity[1] = -pc.GroundpoundSpeed
	}

	// Wall slide
	falling := !ps.IsOnGround && body.Velocity.Y() < 0
	ps.WallSlideLeft = falling && body.HitLeft && left
	ps.WallSlideRight = falling && body.HitRight && right

	if attackPressed {
		p.throwFireball()
	}

	if body.HitCeiling && body.Ceiling != nil {
		ps.BlockBumps++
		s.bumpBlock(body.Ceiling)
	}

	p.resize()
	data.PrevInput = in
}

func (p *Player) updateTimers() {
	c := p.sim.Clock
	ps := p.State()

	if ps.StarmanTimer.Expired(c) {
		ps.IsStarmanInvincible = false
		ps.StarmanTimer = ticktimer.Timer{}
	}
	if ps.MegaTimer.Expired(c) {
		ps.MegaTimer = ticktimer.Timer{}
		if ps.State == netconfig.MegaMushroom {
			ps.State = netconfig.Mushroom
		}
	}
	if ps.PropellerLaunchTimer.Expired(c) {
		ps.PropellerLaunchTimer = ticktimer.Timer{}
		ps.PropellerSpinTimer = ticktimer.FromSeconds(c, 0.5)
	}
}

// land resets the per-jump state once the player touches the ground.
func (p *Player) land() {
	ps := p.State()
	c := p.sim.Clock

	if !ps.IsStarmanInvincible {
		ps.StarCombo = 0
	}
	ps.IsGroundpounding = false
	ps.IsDrilling = false
	ps.IsPropellerFlying = false
	ps.UsedPropellerThisJump = false
	ps.ProperJump = false
	ps.CoyoteTime = c.Seconds() + p.sim.Config.Player.CoyoteTime
	if !ps.InputJump {
		ps.JumpState = netconfig.JumpNone
	}
}

func nextJump(j netconfig.JumpState) netconfig.JumpState {
	if j >= netconfig.JumpTriple {
		return netconfig.JumpSingle
	}
	return j + 1
}

func (p *Player) throwFireball() {
	s := p.sim
	ps := p.State()
	if ps.State != netconfig.FireFlower && ps.State != netconfig.IceFlower {
		return
	}
	if !ps.FireballDelayTimer.ExpiredOrNotRunning(s.Clock) {
		return
	}
	ps.FireballDelayTimer = ticktimer.FromSeconds(s.Clock, s.Config.Player.FireballDelay)

	pc := s.Config.Player
	pos := p.Position().Add(mgl64.Vec2{gamemath.Sign(ps.FacingRight) * pc.HitboxWidth / 2, pc.SmallHitboxHeight / 2})
	fireball := factory.CreateFireball(s.ECS, factory.FireballSpec{
		Owner:       p.entry.Entity(),
		Position:    pos,
		FacingRight: ps.FacingRight,
		IsIceball:   ps.State == netconfig.IceFlower,
		Speed:       pc.FireballSpeed,
		Size:        pc.FireballSize,
		Gravity:     pc.Gravity,
		Lifetime:    ticktimer.FromSeconds(s.Clock, pc.FireballLifetime),
	})
	s.spawned(fireball)
}
