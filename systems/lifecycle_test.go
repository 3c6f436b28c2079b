package systems

import (
	"testing"

	"github.com/automoto/stomp-mp/components"
	"github.com/automoto/stomp-mp/config"
	"github.com/automoto/stomp-mp/shared/leveldata"
	"github.com/automoto/stomp-mp/shared/netcomponents"
	"github.com/automoto/stomp-mp/shared/netconfig"
	"github.com/automoto/stomp-mp/systems/factory"
	"github.com/automoto/stomp-mp/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnedActivatesAtSpawnLocation(t *testing.T) {
	ts := newTestSim(t)
	en := ts.spawnEnemy(t, netconfig.KindGoomba, mgl64.Vec2{5, 1})

	st := en.State()
	assert.True(t, st.IsActive)
	assert.False(t, st.IsDead)
	assertVecNear(t, mgl64.Vec2{5, 1}, en.killable().SpawnLocation)
	assert.Equal(t, mgl64.Vec2{0, -ts.Config.Entity.AliveGravity}, en.body().Gravity)
}

func TestRespawnRestoresBaseline(t *testing.T) {
	ts := newTestSim(t)
	en := ts.spawnEnemy(t, netconfig.KindKoopa, mgl64.Vec2{5, 1})

	en.SpecialKill(true, true, 5)
	en.object().SetPosition(mgl64.Vec2{8, 3})
	en.DespawnEntity()
	require.False(t, en.IsActive())

	en.RespawnEntity()

	st := en.State()
	assert.True(t, st.IsActive)
	assert.False(t, st.IsDead)
	assert.False(t, st.IsFrozen)
	assert.False(t, st.FacingRight)
	assert.False(t, st.WasSpecialKilled)
	assert.False(t, st.WasGroundpounded)
	assert.Zero(t, st.ComboCounter)
	assert.Zero(t, st.AngularVelocity)
	assertVecNear(t, mgl64.Vec2{5, 1}, en.Position(), "respawns at the first spawn location")
	assert.Equal(t, mgl64.Vec2{0, -ts.Config.Entity.AliveGravity}, en.body().Gravity)
	assert.True(t, en.hitbox().Enabled)
	assert.False(t, en.killable().DespawnTimer.IsRunning())
}

func TestRespawnFromFrozenClearsIce(t *testing.T) {
	ts := newTestSim(t)
	en := ts.spawnEnemy(t, netconfig.KindGoomba, mgl64.Vec2{5, 1})

	ts.Freezer.FreezeEntity(en.Entry())
	require.True(t, en.IsFrozen())
	en.DespawnEntity()
	en.RespawnEntity()

	assert.False(t, en.IsFrozen())
	assert.False(t, en.Entry().HasComponent(components.Frozen))
	assert.True(t, en.hitbox().Enabled)
}

func TestRespawnIgnoredWhileActive(t *testing.T) {
	ts := newTestSim(t)
	en := ts.spawnEnemy(t, netconfig.KindGoomba, mgl64.Vec2{5, 1})

	en.State().FacingRight = true
	en.object().SetPosition(mgl64.Vec2{7, 1})
	en.RespawnEntity()

	assert.True(t, en.State().FacingRight)
	assertVecNear(t, mgl64.Vec2{7, 1}, en.Position())
}

func TestDespawnForcesDead(t *testing.T) {
	ts := newTestSim(t)
	en := ts.spawnEnemy(t, netconfig.KindGoomba, mgl64.Vec2{5, 1})
	require.False(t, en.IsDead())

	en.DespawnEntity()

	assert.False(t, en.IsActive())
	assert.True(t, en.IsDead())
	assert.Empty(t, ts.rewards.spawned, "despawn is not a kill")
}

func TestKillIsIdempotent(t *testing.T) {
	ts := newTestSim(t)
	en := ts.spawnEnemy(t, netconfig.KindKoopa, mgl64.Vec2{5, 1})

	en.Kill()
	first := *en.State()
	firstBody := *en.body()
	firstDespawn := en.killable().DespawnTimer

	ts.advance(0.5)
	en.Kill()
	en.SpecialKill(true, true, 4)

	assert.Equal(t, first, *en.State())
	assert.Equal(t, firstBody, *en.body())
	assert.Equal(t, firstDespawn, en.killable().DespawnTimer)
	assert.Len(t, ts.rewards.spawned, 1)
}

func TestGoombaKillSquishes(t *testing.T) {
	ts := newTestSim(t)
	en := ts.spawnEnemy(t, netconfig.KindGoomba, mgl64.Vec2{5, 1})

	en.Kill()

	st := en.State()
	assert.True(t, st.IsDead)
	assert.False(t, st.WasSpecialKilled)
	assert.Zero(t, st.AngularVelocity)
	assert.Equal(t, mgl64.Vec2{}, en.body().Velocity)
	assert.Len(t, ts.rewards.spawned, 1)
}

func TestSpecialKillLaunchesAndRewards(t *testing.T) {
	ts := newTestSim(t)
	en := ts.spawnEnemy(t, netconfig.KindKoopa, mgl64.Vec2{5, 1})
	cfg := ts.Config.Entity

	en.SpecialKill(false, false, 0)

	st := en.State()
	assert.True(t, st.IsDead)
	assert.True(t, st.WasSpecialKilled)
	assert.False(t, st.WasGroundpounded)
	assert.False(t, st.FacingRight)
	assert.Equal(t, -cfg.DeathSpin, st.AngularVelocity)
	assert.Equal(t, mgl64.Vec2{-cfg.DeathHopX, cfg.DeathHopY}, en.body().Velocity)
	assert.Equal(t, mgl64.Vec2{0, -cfg.DeathGravity}, en.body().Gravity)
	require.Len(t, ts.rewards.spawned, 1)
	assert.Equal(t, en.HitboxCenter(), ts.rewards.spawned[0])
}

func TestSpecialKillClampsCombo(t *testing.T) {
	ts := newTestSim(t)
	en := ts.spawnEnemy(t, netconfig.KindKoopa, mgl64.Vec2{5, 1})

	for combo := 0; combo <= 20; combo++ {
		en.DespawnEntity()
		en.RespawnEntity()
		en.SpecialKill(true, false, combo)

		counter := int(en.State().ComboCounter)
		assert.Equal(t, min(combo, netcomponents.MaxComboCounter), counter)
		assert.Equal(t, config.ComboSounds[min(len(config.ComboSounds)-1, combo)], config.ComboSound(counter))
	}
}

func TestFreezeThenUnfreezeAlwaysKills(t *testing.T) {
	reasons := []netconfig.UnfreezeReason{
		netconfig.UnfreezeOther,
		netconfig.UnfreezeTimer,
		netconfig.UnfreezeHitWall,
		netconfig.UnfreezeGroundpounded,
		netconfig.UnfreezeBlockBump,
	}
	for _, reason := range reasons {
		ts := newTestSim(t)
		en := ts.spawnEnemy(t, netconfig.KindGoomba, mgl64.Vec2{5, 1})

		ts.Freezer.FreezeEntity(en.Entry())
		require.True(t, en.IsFrozen())
		assert.False(t, en.hitbox().Enabled)
		assert.True(t, en.body().Freeze)
		assert.True(t, en.Entry().HasComponent(components.Frozen))

		en.Unfreeze(reason)

		assert.True(t, en.IsDead(), "reason %d", reason)
		assert.False(t, en.IsFrozen())
		assert.True(t, en.hitbox().Enabled)
		assert.False(t, en.Entry().HasComponent(components.Frozen))
	}
}

func TestFreezeIgnoresFrozenEntity(t *testing.T) {
	ts := newTestSim(t)
	en := ts.spawnEnemy(t, netconfig.KindGoomba, mgl64.Vec2{5, 1})

	ts.Freezer.FreezeEntity(en.Entry())
	thaw := components.Frozen.Get(en.Entry()).ThawTimer
	ts.advance(1)
	ts.Freezer.FreezeEntity(en.Entry())

	assert.Equal(t, thaw, components.Frozen.Get(en.Entry()).ThawTimer)
}

func TestFixedUpdateInactive(t *testing.T) {
	ts := newTestSim(t)
	en := ts.spawnEnemy(t, netconfig.KindGoomba, mgl64.Vec2{5, 1})
	en.DespawnEntity()
	en.body().Velocity = mgl64.Vec2{3, 3}
	en.State().AngularVelocity = 90

	en.FixedUpdate()

	assert.True(t, en.body().Freeze)
	assert.Equal(t, mgl64.Vec2{}, en.body().Velocity)
	assert.Zero(t, en.State().AngularVelocity)
	assert.Equal(t, tags.LayerHitsNothing, en.body().Layer)
	assert.True(t, en.object().HasTags(tags.LayerHitsNothing))
}

func TestFixedUpdateDeadSpins(t *testing.T) {
	ts := newTestSim(t)
	en := ts.spawnEnemy(t, netconfig.KindKoopa, mgl64.Vec2{5, 1})
	en.SpecialKill(true, false, 0)
	en.State().AngularVelocity = 0

	en.FixedUpdate()

	assert.False(t, en.body().Freeze)
	assert.Equal(t, tags.LayerHitsNothing, en.body().Layer)
	assert.Equal(t, ts.Config.Entity.DeathSpin, en.State().AngularVelocity)
}

func TestFixedUpdateFrozenDoesNotSpin(t *testing.T) {
	ts := newTestSim(t)
	en := ts.spawnEnemy(t, netconfig.KindGoomba, mgl64.Vec2{5, 1})
	ts.Freezer.FreezeEntity(en.Entry())

	en.FixedUpdate()

	assert.Equal(t, tags.LayerHitsNothing, en.body().Layer)
	assert.Zero(t, en.State().AngularVelocity)
	assert.False(t, en.IsDead())
}

func TestFixedUpdateAliveWalks(t *testing.T) {
	ts := newTestSim(t)
	en := ts.spawnEnemy(t, netconfig.KindGoomba, mgl64.Vec2{5, 1})

	en.FixedUpdate()

	assert.Equal(t, tags.LayerEntity, en.body().Layer)
	assert.True(t, en.object().HasTags(tags.LayerEntity))
	assert.False(t, en.object().HasTags(tags.LayerHitsNothing))
	assert.Equal(t, -ts.Config.TypeConfig(netconfig.KindGoomba).WalkSpeed, en.body().Velocity.X())
}

func TestFixedUpdateTurnsAtWall(t *testing.T) {
	ts := newTestSim(t)
	en := ts.spawnEnemy(t, netconfig.KindGoomba, mgl64.Vec2{5, 1})
	en.body().HitLeft = true

	en.FixedUpdate()

	assert.True(t, en.State().FacingRight)
	assert.Positive(t, en.body().Velocity.X())
}

func TestDieInsideBlock(t *testing.T) {
	ts := newTestSim(t)
	factory.CreateWall(ts.ECS, leveldata.SolidRect{X: 5, Y: 1, W: 1, H: 1})
	en := ts.spawnEnemy(t, netconfig.KindGoomba, mgl64.Vec2{5.5, 1})

	en.FixedUpdate()

	st := en.State()
	assert.True(t, st.IsDead)
	assert.True(t, st.WasSpecialKilled)
	assert.False(t, st.WasGroundpounded)
	assert.Zero(t, st.ComboCounter)
}

func TestDeadEntityDespawnsAfterDelay(t *testing.T) {
	ts := newTestSim(t)
	en := ts.spawnEnemy(t, netconfig.KindKoopa, mgl64.Vec2{5, 1})
	en.SpecialKill(true, false, 0)

	ts.UpdateLifecycle(ts.ECS)
	require.True(t, en.IsActive())

	ts.advance(ts.Config.Entity.DeathDespawnDelay)
	ts.UpdateLifecycle(ts.ECS)

	assert.False(t, en.IsActive())
	assert.True(t, en.IsDead())
	assert.False(t, en.killable().RespawnTimer.IsRunning(), "non-respawning kinds stay down")
}

func TestRespawningEntityComesBack(t *testing.T) {
	ts := newTestSim(t)
	entry := factory.CreateEnemy(ts.ECS, ts.Config, leveldata.EntitySpawn{X: 5, Y: 1, Kind: netconfig.KindGoomba, Respawning: true})
	en, ok := ts.Enemy(entry)
	require.True(t, ok)

	en.Spawned()
	require.False(t, en.IsActive(), "respawning kinds start despawned")

	ts.advance(ts.Config.Entity.InitialRespawnDelay)
	ts.UpdateLifecycle(ts.ECS)
	require.True(t, en.IsActive())
	assert.False(t, en.IsDead())

	en.Kill()
	ts.advance(ts.Config.Entity.SquishDespawnDelay)
	ts.UpdateLifecycle(ts.ECS)
	require.False(t, en.IsActive())

	ts.advance(ts.Config.Entity.RespawnDelay)
	ts.UpdateLifecycle(ts.ECS)
	assert.True(t, en.IsActive())
	assertVecNear(t, mgl64.Vec2{5, 1}, en.Position())
}

func TestKillPlaneDespawns(t *testing.T) {
	ts := newTestSim(t)
	en := ts.spawnEnemy(t, netconfig.KindGoomba, mgl64.Vec2{5, 1})
	en.object().SetPosition(mgl64.Vec2{5, -ts.Config.Entity.KillPlaneDepth - 1})

	ts.UpdateLifecycle(ts.ECS)

	assert.False(t, en.IsActive())
	assert.True(t, en.IsDead())
}
