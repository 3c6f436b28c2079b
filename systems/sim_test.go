package systems

import (
	"testing"

	"github.com/automoto/stomp-mp/components"
	"github.com/automoto/stomp-mp/config"
	"github.com/automoto/stomp-mp/shared/gamemath"
	"github.com/automoto/stomp-mp/shared/leveldata"
	"github.com/automoto/stomp-mp/shared/netconfig"
	"github.com/automoto/stomp-mp/shared/ticktimer"
	"github.com/automoto/stomp-mp/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/leap-fish/necs/esync"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type recordingRewards struct {
	spawned []mgl64.Vec2
}

func (r *recordingRewards) SpawnReward(pos mgl64.Vec2) {
	r.spawned = append(r.spawned, pos)
}

type testSim struct {
	*Sim
	rewards *recordingRewards
	nextID  uint
}

// newTestSim builds a 20x10 level with a one unit thick floor whose top is
// at y=1.
func newTestSim(t *testing.T) *testSim {
	t.Helper()

	cfg := config.Default()
	e := ecs.NewECS(donburi.NewWorld())
	clock := ticktimer.NewClock(60)

	spaceEntry := factory.CreateSpace(e, 20, 10, cfg.Physics.CellSize)
	factory.CreateLevel(e, "test", &leveldata.CollisionData{
		SolidRects: []leveldata.SolidRect{{X: 0, Y: 0, W: 20, H: 1}},
		Width:      20,
		Height:     10,
	})

	physics := NewPhysicsScene(components.Space.Get(spaceEntry).Space, gamemath.Wrap{})
	rewards := &recordingRewards{}
	return &testSim{Sim: NewSim(e, cfg, clock, physics, rewards), rewards: rewards}
}

// spawnEnemy creates an entity of kind with its feet at pos and activates it.
func (ts *testSim) spawnEnemy(t *testing.T, kind netconfig.EntityKind, pos mgl64.Vec2) *Enemy {
	t.Helper()
	ts.nextID++
	return ts.spawnEnemyWithID(t, kind, pos, ts.nextID)
}

func (ts *testSim) spawnEnemyWithID(t *testing.T, kind netconfig.EntityKind, pos mgl64.Vec2, id uint) *Enemy {
	t.Helper()
	entry := factory.CreateEnemy(ts.ECS, ts.Config, leveldata.EntitySpawn{X: pos.X(), Y: pos.Y(), Kind: kind})
	entry.AddComponent(esync.NetworkIdComponent)
	esync.NetworkIdComponent.SetValue(entry, esync.NetworkId(id))

	en, ok := ts.Enemy(entry)
	require.True(t, ok)
	en.Spawned()
	return en
}

func (ts *testSim) spawnPlayer(t *testing.T, pos mgl64.Vec2, state netconfig.PowerupState) *Player {
	t.Helper()
	entry := factory.CreatePlayer(ts.ECS, ts.Config, 0, pos, state)
	p, ok := ts.Player(entry)
	require.True(t, ok)
	return p
}

// advance moves the clock forward by seconds without running any system.
func (ts *testSim) advance(seconds float64) {
	ts.Clock.Tick += ts.Clock.Ticks(seconds)
}

func assertVecNear(t *testing.T, want, got mgl64.Vec2, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, want.X(), got.X(), 1e-9, msgAndArgs...)
	assert.InDelta(t, want.Y(), got.Y(), 1e-9, msgAndArgs...)
}
