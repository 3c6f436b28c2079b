package systems

import (
	"testing"

	"github.com/automoto/stomp-mp/components"
	"github.com/automoto/stomp-mp/config"
	"github.com/automoto/stomp-mp/shared/netcomponents"
	"github.com/automoto/stomp-mp/shared/netconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

type observer struct {
	ecs     *ecs.ECS
	fx      *EntityEffects
	tracker *ChangeTracker
}

func newObserver() *observer {
	e := ecs.NewECS(donburi.NewWorld())
	fx := &EntityEffects{ECS: e, Config: config.Default()}
	fx.Register()
	return &observer{ecs: e, fx: fx, tracker: NewChangeTracker()}
}

// replicate creates an entity the way a snapshot would.
func (o *observer) replicate(st netcomponents.NetEntityData) *donburi.Entry {
	w := o.ecs.World
	entry := w.Entry(w.Create(netcomponents.NetEntity, netcomponents.NetPosition))
	netcomponents.NetEntity.SetValue(entry, st)
	netcomponents.NetPosition.SetValue(entry, netcomponents.NetPositionData{X: 4, Y: 2})
	return entry
}

func effectCount(e *ecs.ECS) int {
	return donburi.NewQuery(filter.Contains(components.Effect)).Count(e.World)
}

// frame runs the per-frame observer pipeline and returns the sounds played.
func (o *observer) frame() []config.SoundID {
	played, _ := o.frameWithStops()
	return played
}

func (o *observer) frameWithStops() ([]config.SoundID, []donburi.Entity) {
	o.fx.AttachEntityVisuals(o.ecs)
	o.tracker.Update(o.ecs)

	var played []config.SoundID
	var stopped []donburi.Entity
	DrainAudio(o.ecs,
		func(id config.SoundID) { played = append(played, id) },
		func(entity donburi.Entity) { stopped = append(stopped, entity) },
	)
	return played, stopped
}

func TestObserverSpawnShowsSprite(t *testing.T) {
	o := newObserver()
	goomba := o.replicate(netcomponents.NetEntityData{Kind: netconfig.KindGoomba, IsActive: true, FacingRight: true})
	koopa := o.replicate(netcomponents.NetEntityData{Kind: netconfig.KindKoopa, IsActive: true, FacingRight: true})

	played := o.frame()

	assert.Empty(t, played)
	sp := components.Sprite.Get(goomba)
	assert.True(t, sp.Enabled)
	assert.True(t, sp.FlipX)
	assert.True(t, sp.AnimatorEnabled)
	assert.False(t, components.Sprite.Get(koopa).FlipX, "koopa art faces the other way")
}

func TestObserverStompDeath(t *testing.T) {
	o := newObserver()
	entry := o.replicate(netcomponents.NetEntityData{IsActive: true})
	o.frame()

	netcomponents.NetEntity.Get(entry).IsDead = true
	played := o.frame()

	assert.Equal(t, []config.SoundID{config.SoundEnemyStomp}, played)
	assert.False(t, components.Sprite.Get(entry).AnimatorEnabled)
	assert.Equal(t, 0, effectCount(o.ecs))
}

func TestObserverGroundpoundDeathSpawnsEffect(t *testing.T) {
	o := newObserver()
	entry := o.replicate(netcomponents.NetEntityData{IsActive: true})
	o.frame()

	st := netcomponents.NetEntity.Get(entry)
	st.IsDead = true
	st.WasSpecialKilled = true
	st.WasGroundpounded = true
	st.ComboCounter = 3
	played := o.frame()

	assert.Equal(t, []config.SoundID{config.ComboSound(3)}, played)

	fxEntry, ok := components.Effect.First(o.ecs.World)
	require.True(t, ok)
	effect := components.Effect.Get(fxEntry)
	assert.Equal(t, config.EffectEnemySpecialKill, effect.ID)
	assert.InDelta(t, 4, effect.Position.X(), 1e-9)
	assert.InDelta(t, 2+o.fx.Config.TypeConfig(netconfig.KindGoomba).HitboxHeight/2, effect.Position.Y(), 1e-9)

	for i := 0; i < effectFrames; i++ {
		UpdateEffects(o.ecs)
	}
	assert.Equal(t, 0, effectCount(o.ecs))
}

func TestObserverFreezeThenShatter(t *testing.T) {
	o := newObserver()
	entry := o.replicate(netcomponents.NetEntityData{IsActive: true})
	o.frame()

	st := netcomponents.NetEntity.Get(entry)
	st.IsFrozen = true
	played, stopped := o.frameWithStops()
	assert.Equal(t, []config.SoundID{config.SoundEnemyFreeze}, played)
	assert.Equal(t, []donburi.Entity{entry.Entity()}, stopped, "freezing cuts the entity's sounds")
	assert.False(t, components.Sprite.Get(entry).AnimatorEnabled)

	_, stopped = o.frameWithStops()
	assert.Empty(t, stopped, "stops are delivered once")

	// The thaw and the death arrive in the same snapshot.
	st.IsFrozen = false
	st.IsDead = true
	st.WasSpecialKilled = true
	played = o.frame()
	assert.Equal(t, []config.SoundID{config.SoundFreezeShatter}, played)
	assert.False(t, components.Sprite.Get(entry).AnimatorEnabled)
}

func TestObserverSpinAndRevive(t *testing.T) {
	o := newObserver()
	entry := o.replicate(netcomponents.NetEntityData{IsActive: true})
	o.frame()

	st := netcomponents.NetEntity.Get(entry)
	st.IsDead = true
	st.WasSpecialKilled = true
	st.AngularVelocity = 400
	o.frame()

	o.fx.UpdateEntitySprites(o.ecs, 0.5)
	assert.InDelta(t, 200, components.Sprite.Get(entry).Rotation, 1e-9)

	st.IsDead = false
	st.AngularVelocity = 0
	o.frame()

	sp := components.Sprite.Get(entry)
	assert.Zero(t, sp.Rotation)
	assert.True(t, sp.AnimatorEnabled)
}

func TestObserverDespawnHidesSprite(t *testing.T) {
	o := newObserver()
	entry := o.replicate(netcomponents.NetEntityData{IsActive: true})
	o.frame()

	st := netcomponents.NetEntity.Get(entry)
	st.IsActive = false
	st.IsDead = true
	o.frame()

	assert.False(t, components.Sprite.Get(entry).Enabled)
	o.fx.UpdateEntitySprites(o.ecs, 1)
	assert.Zero(t, components.Sprite.Get(entry).Rotation, "inactive entities do not spin")
}

func TestChangeTrackerForgetReplaysSpawn(t *testing.T) {
	o := newObserver()
	entry := o.replicate(netcomponents.NetEntityData{IsActive: true})
	o.frame()

	components.Sprite.Get(entry).Enabled = false
	o.frame()
	assert.False(t, components.Sprite.Get(entry).Enabled, "unchanged state publishes nothing")

	o.tracker.Forget()
	o.frame()
	assert.True(t, components.Sprite.Get(entry).Enabled)
}
