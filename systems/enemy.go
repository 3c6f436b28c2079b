package systems

import (
	"github.com/automoto/stomp-mp/components"
	"github.com/automoto/stomp-mp/config"
	"github.com/automoto/stomp-mp/shared/gamemath"
	"github.com/automoto/stomp-mp/shared/netcomponents"
	"github.com/automoto/stomp-mp/shared/netconfig"
	"github.com/automoto/stomp-mp/shared/ticktimer"
	"github.com/automoto/stomp-mp/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
)

// Enemy is a handle on a killable entity. Behaviour that differs between
// kinds is chosen by switching on the replicated kind.
type Enemy struct {
	sim   *Sim
	entry *donburi.Entry
}

// Enemy returns the handle for entry, or false if entry is not killable.
func (s *Sim) Enemy(entry *donburi.Entry) (*Enemy, bool) {
	if entry == nil || !entry.Valid() {
		return nil, false
	}
	if !entry.HasComponent(netcomponents.NetEntity) || !entry.HasComponent(components.Killable) {
		return nil, false
	}
	return &Enemy{sim: s, entry: entry}, true
}

func (e *Enemy) Entry() *donburi.Entry { return e.entry }

func (e *Enemy) State() *netcomponents.NetEntityData { return netcomponents.NetEntity.Get(e.entry) }

func (e *Enemy) Kind() netconfig.EntityKind { return e.State().Kind }

func (e *Enemy) killable() *components.KillableData { return components.Killable.Get(e.entry) }

func (e *Enemy) typ() config.EntityTypeConfig { return e.killable().Type }

func (e *Enemy) body() *components.BodyData {
	if !e.entry.HasComponent(components.Body) {
		return nil
	}
	return components.Body.Get(e.entry)
}

func (e *Enemy) object() *components.ObjectData {
	if !e.entry.HasComponent(components.Object) {
		return nil
	}
	obj := components.Object.Get(e.entry)
	if obj.Object == nil {
		return nil
	}
	return obj
}

func (e *Enemy) hitbox() *components.HitboxData {
	if !e.entry.HasComponent(components.Hitbox) {
		return nil
	}
	return components.Hitbox.Get(e.entry)
}

// Position is the feet-centre body position.
func (e *Enemy) Position() mgl64.Vec2 {
	if obj := e.object(); obj != nil {
		return obj.Position()
	}
	return mgl64.Vec2{}
}

// HitboxCenter is the body position plus the hitbox offset.
func (e *Enemy) HitboxCenter() mgl64.Vec2 {
	pos := e.Position()
	if hb := e.hitbox(); hb != nil {
		return pos.Add(hb.Offset)
	}
	return pos
}

// NetworkID is the replicated identity, or 0 before the entity is synced.
func (e *Enemy) NetworkID() uint64 {
	return networkID(e.entry)
}

func networkID(entry *donburi.Entry) uint64 {
	if !entry.HasComponent(esync.NetworkIdComponent) {
		return 0
	}
	return uint64(*esync.NetworkIdComponent.Get(entry))
}

func (e *Enemy) IsActive() bool { return e.State().IsActive }
func (e *Enemy) IsDead() bool { return e.State().IsDead }
func (e *Enemy) IsFrozen() bool { return e.State().IsFrozen }
func (e *Enemy) IsFlying() bool { return e.typ().Flying }

// spikedTop kinds hurt a player who lands on them.
func (e *Enemy) spikedTop() bool {
	switch e.Kind() {
	case netconfig.KindSpiny, netconfig.KindPiranhaPlant:
		return true
	}
	return false
}

// Spawned runs once the entity exists in the world. The first call fixes the
// spawn location every later respawn returns to.
func (e *Enemy) Spawned() {
	k := e.killable()
	if !k.Spawned {
		k.SpawnLocation = e.Position()
		k.Spawned = true
	}

	if k.Respawning {
		e.DespawnEntity()
		k.RespawnTimer = ticktimer.FromSeconds(e.sim.Clock, e.sim.Config.Entity.InitialRespawnDelay)
		return
	}
	e.RespawnEntity()
}

// RespawnEntity activates an inactive entity at its spawn location with every
// death, freeze and combo field reset.
func (e *Enemy) RespawnEntity() {
	st := e.State()
	if st.IsActive {
		return
	}
	k := e.killable()

	st.IsActive = true
	st.IsDead = false
	st.IsFrozen = false
	st.FacingRight = false
	st.WasSpecialKilled = false
	st.WasGroundpounded = false
	st.ComboCounter = 0
	st.AngularVelocity = 0

	k.DespawnTimer = ticktimer.Timer{}
	k.RespawnTimer = ticktimer.Timer{}
	if e.entry.HasComponent(components.Frozen) {
		donburi.Remove[components.FrozenData](e.entry, components.Frozen)
	}

	if body := e.body(); body != nil {
		body.Velocity = mgl64.Vec2{}
		body.Gravity = mgl64.Vec2{}
		if k.Type.AffectedByGravity {
			body.Gravity = mgl64.Vec2{0, -e.sim.Config.Entity.AliveGravity}
		}
		body.Freeze = false
	}
	if hb := e.hitbox(); hb != nil {
		hb.Enabled = true
	}
	if obj := e.object(); obj != nil {
		obj.SetPosition(k.SpawnLocation)
	}
}

// DespawnEntity deactivates the entity. A despawned entity is always dead so
// late observers never see it as alive.
func (e *Enemy) DespawnEntity() {
	st := e.State()
	k := e.killable()

	st.IsActive = false
	if e.entry.Valid() {
		st.IsDead = true
	}
	st.AngularVelocity = 0

	if body := e.body(); body != nil {
		body.Velocity = mgl64.Vec2{}
	}
	if e.entry.HasComponent(components.Frozen) {
		donburi.Remove[components.FrozenData](e.entry, components.Frozen)
	}

	k.DespawnTimer = ticktimer.Timer{}
	k.RespawnTimer = ticktimer.Timer{}
	if k.Respawning {
		k.RespawnTimer = ticktimer.FromSeconds(e.sim.Clock, e.sim.Config.Entity.RespawnDelay)
	}
}

// FixedUpdate is the per-tick lifecycle dispatch.
func (e *Enemy) FixedUpdate() {
	body, obj := e.body(), e.object()
	if body == nil {
		return
	}
	st := e.State()

	if !st.IsActive {
		setLayer(body, obj, tags.LayerHitsNothing)
		st.AngularVelocity = 0
		body.Velocity = mgl64.Vec2{}
		body.Freeze = true
		return
	}

	if st.IsDead || st.IsFrozen {
		setLayer(body, obj, tags.LayerHitsNothing)
		body.Freeze = false
		if st.WasSpecialKilled {
			st.AngularVelocity = e.sim.Config.Entity.DeathSpin * gamemath.Sign(st.FacingRight)
		}
		return
	}

	setLayer(body, obj, tags.LayerEntity)
	body.Freeze = false

	t := e.typ()
	if (st.FacingRight && body.HitRight) || (!st.FacingRight && body.HitLeft) {
		st.FacingRight = !st.FacingRight
	}

	if t.CollideWithOtherEnemies {
		e.checkForEntityCollisions()
	}

	if t.DieWhenInsideBlock && !body.Freeze && e.sim.Physics.IsSolidAt(e.HitboxCenter()) {
		e.SpecialKill(st.FacingRight, false, 0)
		return
	}

	if t.WalkSpeed > 0 {
		body.Velocity[0] = t.WalkSpeed * gamemath.Sign(st.FacingRight)
	}
}

// Kill is a plain death. Goombas flatten; every other kind is launched.
func (e *Enemy) Kill() {
	if e.IsDead() {
		return
	}
	switch e.Kind() {
	case netconfig.KindGoomba:
		e.squish()
	default:
		e.SpecialKill(false, false, 0)
	}
}

func (e *Enemy) squish() {
	st := e.State()
	st.IsDead = true
	st.WasSpecialKilled = false
	st.WasGroundpounded = false
	st.ComboCounter = 0
	st.AngularVelocity = 0

	if body := e.body(); body != nil {
		body.Velocity = mgl64.Vec2{}
		body.Gravity = mgl64.Vec2{}
	}
	e.killable().DespawnTimer = ticktimer.FromSeconds(e.sim.Clock, e.sim.Config.Entity.SquishDespawnDelay)
	e.sim.spawnReward(e.HitboxCenter())
}

// SpecialKill launches the entity off screen spinning, toward right. combo
// selects the kill sound and is clamped to the sound table.
func (e *Enemy) SpecialKill(right, groundpound bool, combo int) {
	st := e.State()
	if st.IsDead {
		return
	}
	cfg := e.sim.Config.Entity
	sign := gamemath.Sign(right)

	st.IsDead = true
	st.WasSpecialKilled = true
	st.WasGroundpounded = groundpound
	st.ComboCounter = netcomponents.ClampCombo(combo)
	st.FacingRight = right
	st.AngularVelocity = cfg.DeathSpin * sign

	if body := e.body(); body != nil {
		body.Velocity = mgl64.Vec2{cfg.DeathHopX * sign, cfg.DeathHopY}
		body.Gravity = mgl64.Vec2{0, -cfg.DeathGravity}
	}
	e.killable().DespawnTimer = ticktimer.FromSeconds(e.sim.Clock, cfg.DeathDespawnDelay)
	e.sim.spawnReward(e.HitboxCenter())
}

// Freeze is called by the freezer once the ice block exists.
func (e *Enemy) Freeze() {
	e.State().IsFrozen = true
	if body := e.body(); body != nil {
		body.Velocity = mgl64.Vec2{}
		body.Freeze = true
	}
}

// Unfreeze breaks the ice. Leaving the ice always kills the entity.
func (e *Enemy) Unfreeze(reason netconfig.UnfreezeReason) {
	e.State().IsFrozen = false
	if e.entry.HasComponent(components.Frozen) {
		donburi.Remove[components.FrozenData](e.entry, components.Frozen)
	}
	if hb := e.hitbox(); hb != nil {
		hb.Enabled = true
	}
	e.SpecialKill(false, false, 0)
}

// BlockBump kills an entity standing on a tile that was hit from below.
func (e *Enemy) BlockBump() {
	e.SpecialKill(false, false, 0)
}
