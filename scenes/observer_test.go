package scenes

import (
	"testing"

	"github.com/automoto/stomp-mp/components"
	"github.com/automoto/stomp-mp/config"
	"github.com/automoto/stomp-mp/network"
	"github.com/automoto/stomp-mp/shared/netcomponents"
	"github.com/automoto/stomp-mp/shared/netconfig"
	"github.com/leap-fish/necs/esync"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScene() *ObserverScene {
	return NewObserverScene(config.Default(), network.NewClient(), 0, false)
}

func goombaReplica(st netcomponents.NetEntityData) network.Replica {
	return goombaReplicaAt(st, 4)
}

func goombaReplicaAt(st netcomponents.NetEntityData, x float64) network.Replica {
	st.Kind = netconfig.KindGoomba
	return network.Replica{ID: 1, Components: []any{netcomponents.NetPositionData{X: x, Y: 1}, st}}
}

func matchReplica(tick int64) network.Replica {
	return network.Replica{ID: 2, Components: []any{netcomponents.NetMatchData{Tick: tick, TickRate: 30}}}
}

func TestFrameFollowsServerClock(t *testing.T) {
	s := newTestScene()
	network.ApplyReplicas(s.World(), []network.Replica{matchReplica(450)})

	s.Frame(1.0 / 60)

	assert.Equal(t, int64(450), s.clock.Tick)
	assert.Equal(t, 30, s.clock.Rate)
}

func TestFrameReactsToReplicatedDeath(t *testing.T) {
	s := newTestScene()
	var played []config.SoundID
	s.Play = func(id config.SoundID) { played = append(played, id) }

	network.ApplyReplicas(s.World(), []network.Replica{
		matchReplica(10),
		goombaReplica(netcomponents.NetEntityData{IsActive: true}),
	})
	s.Frame(1.0 / 60)
	assert.Empty(t, played)

	network.ApplyReplicas(s.World(), []network.Replica{
		matchReplica(11),
		goombaReplica(netcomponents.NetEntityData{IsActive: true, IsDead: true}),
	})
	s.Frame(1.0 / 60)

	assert.Equal(t, []config.SoundID{config.SoundEnemyStomp}, played)

	entry := s.World().Entry(esync.FindByNetworkId(s.World(), 1))
	require.True(t, entry.HasComponent(components.Sprite))
	assert.False(t, components.Sprite.Get(entry).AnimatorEnabled)

	stats := s.Stats()
	assert.Equal(t, 2, stats.Frames)
	assert.Equal(t, 1, stats.Entities)
	assert.Equal(t, 0, stats.Alive)
	assert.Equal(t, 1, stats.Sounds)
}

func TestFrameDressesPlayers(t *testing.T) {
	s := newTestScene()
	network.ApplyReplicas(s.World(), []network.Replica{
		matchReplica(10),
		{ID: 3, Components: []any{
			netcomponents.NetPositionData{X: 2, Y: 1},
			netcomponents.NetVelocityData{},
			netcomponents.NetPlayerStateData{PlayerIndex: 0},
		}},
	})

	s.Frame(1.0 / 60)

	entry := s.World().Entry(esync.FindByNetworkId(s.World(), 3))
	assert.True(t, entry.HasComponent(components.Presentation))
	assert.Equal(t, 1, s.Stats().Players)
}

func TestAutoInputAlternatesDirection(t *testing.T) {
	s := newTestScene()
	s.clock.Rate = 60

	s.clock.Tick = 30
	first := s.autoInput()
	s.clock.Tick = 150
	second := s.autoInput()

	assert.Equal(t, 1, first.Direction)
	assert.Equal(t, -1, second.Direction)
	assert.Equal(t, uint32(2), second.Sequence)
	assert.True(t, second.Pressed(netconfig.ActionMoveLeft))
}

func TestSceneClockUsesInjectedTickRate(t *testing.T) {
	cfg := config.Default()
	cfg.Server.TickRate = 20

	s := NewObserverScene(cfg, network.NewClient(), 0, false)

	assert.Equal(t, 20, s.clock.Rate)
}

func TestSpriteGlidesBetweenSnapshots(t *testing.T) {
	s := newTestScene()
	alive := netcomponents.NetEntityData{IsActive: true}

	network.ApplyReplicas(s.World(), []network.Replica{matchReplica(10), goombaReplicaAt(alive, 4)})
	s.Frame(0)
	entry := s.World().Entry(esync.FindByNetworkId(s.World(), 1))
	assert.InDelta(t, 4.0, components.Sprite.Get(entry).Position.X(), 1e-9)

	network.ApplyReplicas(s.World(), []network.Replica{matchReplica(11), goombaReplicaAt(alive, 6)})

	// 30 ticks per second: one 60 Hz frame covers half a tick.
	s.Frame(1.0 / 60)
	assert.InDelta(t, 5.0, components.Sprite.Get(entry).Position.X(), 1e-9)
	assert.Equal(t, 6.0, netcomponents.NetPosition.Get(entry).X, "replicated state holds the snapshot")

	s.Frame(1.0 / 60)
	assert.InDelta(t, 6.0, components.Sprite.Get(entry).Position.X(), 1e-9)
	s.Frame(1.0 / 60)
	assert.InDelta(t, 6.0, components.Sprite.Get(entry).Position.X(), 1e-9)
}
