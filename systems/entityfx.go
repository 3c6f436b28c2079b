package systems

import (
	"github.com/automoto/stomp-mp/components"
	"github.com/automoto/stomp-mp/config"
	"github.com/automoto/stomp-mp/shared/netcomponents"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EntityEffects reacts to replicated lifecycle changes of killable entities
// on an observing peer. It only writes observer-local components.
type EntityEffects struct {
	ECS    *ecs.ECS
	Config *config.Config
}

// Register subscribes the effect handlers to the change events.
func (fx *EntityEffects) Register() {
	w := fx.ECS.World
	IsActiveChanged.Subscribe(w, fx.onActiveChanged)
	IsDeadChanged.Subscribe(w, fx.onDeadChanged)
	IsFrozenChanged.Subscribe(w, fx.onFrozenChanged)
	FacingRightChanged.Subscribe(w, fx.onFacingChanged)
}

// AttachEntityVisuals gives every replicated entity a sprite. It runs before
// the change tracker so spawn events find one.
func (fx *EntityEffects) AttachEntityVisuals(e *ecs.ECS) {
	var bare []*donburi.Entry
	netcomponents.NetEntity.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Sprite) {
			bare = append(bare, entry)
		}
	})
	for _, entry := range bare {
		entry.AddComponent(components.Sprite)
		components.Sprite.SetValue(entry, components.SpriteData{AnimatorEnabled: true})
	}
}

// UpdateEntitySprites places sprites at their shown position and spins dead
// entities by their replicated angular velocity. It runs once per rendered
// frame, after interpolation.
func (fx *EntityEffects) UpdateEntitySprites(e *ecs.ECS, dt float64) {
	netcomponents.NetEntity.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Sprite) {
			return
		}
		sprite := components.Sprite.Get(entry)
		sprite.Position = ShownPosition(entry)

		st := netcomponents.NetEntity.Get(entry)
		if !st.IsActive || !st.IsDead {
			return
		}
		sprite.Rotation += st.AngularVelocity * dt
	})
}

func (fx *EntityEffects) lookup(w donburi.World, id donburi.Entity) (*donburi.Entry, *netcomponents.NetEntityData, bool) {
	if !w.Valid(id) {
		return nil, nil, false
	}
	entry := w.Entry(id)
	if !entry.HasComponent(netcomponents.NetEntity) {
		return nil, nil, false
	}
	return entry, netcomponents.NetEntity.Get(entry), true
}

func spriteOf(entry *donburi.Entry) *components.SpriteData {
	if !entry.HasComponent(components.Sprite) {
		return nil
	}
	return components.Sprite.Get(entry)
}

func (fx *EntityEffects) onActiveChanged(w donburi.World, ev FlagChanged) {
	entry, _, ok := fx.lookup(w, ev.Entity)
	if !ok {
		return
	}
	if sp := spriteOf(entry); sp != nil {
		sp.Enabled = ev.Value
	}
}

func (fx *EntityEffects) onDeadChanged(w donburi.World, ev FlagChanged) {
	entry, st, ok := fx.lookup(w, ev.Entity)
	if !ok {
		return
	}
	sp := spriteOf(entry)

	if !ev.Value {
		if sp != nil {
			sp.AnimatorEnabled = true
			sp.Rotation = 0
		}
		return
	}

	if sp != nil {
		sp.AnimatorEnabled = false
	}

	switch {
	case st.IsFrozen || ev.WasFrozen:
		PlaySFX(fx.ECS, config.SoundFreezeShatter)
	case st.WasSpecialKilled:
		PlaySFX(fx.ECS, config.ComboSound(int(st.ComboCounter)))
	default:
		PlaySFX(fx.ECS, config.SoundEnemyStomp)
	}

	if st.WasGroundpounded {
		SpawnEffect(fx.ECS, config.EffectEnemySpecialKill, fx.hitboxCenter(entry, st))
	}
}

func (fx *EntityEffects) onFrozenChanged(w donburi.World, ev FlagChanged) {
	entry, st, ok := fx.lookup(w, ev.Entity)
	if !ok {
		return
	}
	if ev.Value {
		StopSounds(fx.ECS, ev.Entity)
		PlaySFX(fx.ECS, config.SoundEnemyFreeze)
	}
	if sp := spriteOf(entry); sp != nil {
		sp.AnimatorEnabled = !ev.Value && !st.IsDead
	}
}

func (fx *EntityEffects) onFacingChanged(w donburi.World, ev FlagChanged) {
	entry, st, ok := fx.lookup(w, ev.Entity)
	if !ok {
		return
	}
	if sp := spriteOf(entry); sp != nil {
		sp.FlipX = ev.Value != fx.Config.TypeConfig(st.Kind).FlipSprite
	}
}

// hitboxCenter places an effect at the middle of the entity's hitbox.
func (fx *EntityEffects) hitboxCenter(entry *donburi.Entry, st *netcomponents.NetEntityData) mgl64.Vec2 {
	return ShownPosition(entry).Add(mgl64.Vec2{0, fx.Config.TypeConfig(st.Kind).HitboxHeight / 2})
}
