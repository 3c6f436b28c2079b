package network

import (
	"testing"

	"github.com/automoto/stomp-mp/shared/netcomponents"
	"github.com/automoto/stomp-mp/shared/netconfig"
	"github.com/leap-fish/necs/esync"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func entityReplica(id int, st netcomponents.NetEntityData, x, y float64) Replica {
	return Replica{
		ID: esync.NetworkId(id),
		Components: []any{
			netcomponents.NetPositionData{X: x, Y: y},
			st,
		},
	}
}

func TestApplyReplicasCreatesEntities(t *testing.T) {
	w := donburi.NewWorld()

	ApplyReplicas(w, []Replica{
		entityReplica(1, netcomponents.NetEntityData{Kind: netconfig.KindGoomba, IsActive: true}, 3, 1),
		{ID: 2, Components: []any{netcomponents.NetMatchData{Tick: 90, TickRate: 60}}},
	})

	entry := w.Entry(esync.FindByNetworkId(w, 1))
	require.True(t, entry.Valid())
	assert.Equal(t, netcomponents.NetPositionData{X: 3, Y: 1}, *netcomponents.NetPosition.Get(entry))
	assert.True(t, netcomponents.NetEntity.Get(entry).IsActive)

	match, ok := netcomponents.NetMatch.First(w)
	require.True(t, ok)
	assert.Equal(t, int64(90), netcomponents.NetMatch.Get(match).Tick)
}

func TestApplyReplicasUpdatesInPlace(t *testing.T) {
	w := donburi.NewWorld()
	ApplyReplicas(w, []Replica{entityReplica(1, netcomponents.NetEntityData{IsActive: true}, 3, 1)})
	before := esync.FindByNetworkId(w, 1)

	ApplyReplicas(w, []Replica{entityReplica(1, netcomponents.NetEntityData{IsActive: true, IsDead: true}, 4, 2)})

	after := esync.FindByNetworkId(w, 1)
	assert.Equal(t, before, after, "entity identity survives snapshots")
	entry := w.Entry(after)
	assert.True(t, netcomponents.NetEntity.Get(entry).IsDead)
	assert.Equal(t, 4.0, netcomponents.NetPosition.Get(entry).X)
}

func TestApplyReplicasAddsLateComponents(t *testing.T) {
	w := donburi.NewWorld()
	ApplyReplicas(w, []Replica{{ID: 5, Components: []any{netcomponents.NetPositionData{X: 1}}}})

	ApplyReplicas(w, []Replica{{ID: 5, Components: []any{
		netcomponents.NetPositionData{X: 1},
		netcomponents.NetProjectileData{IsIceball: true},
	}}})

	entry := w.Entry(esync.FindByNetworkId(w, 5))
	require.True(t, entry.HasComponent(netcomponents.NetProjectile))
	assert.True(t, netcomponents.NetProjectile.Get(entry).IsIceball)
}

func TestApplyReplicasRemovesMissing(t *testing.T) {
	w := donburi.NewWorld()
	ApplyReplicas(w, []Replica{
		entityReplica(1, netcomponents.NetEntityData{}, 0, 0),
		entityReplica(2, netcomponents.NetEntityData{}, 1, 0),
	})

	ApplyReplicas(w, []Replica{entityReplica(2, netcomponents.NetEntityData{}, 1, 0)})

	assert.False(t, w.Valid(esync.FindByNetworkId(w, 1)))
	assert.True(t, w.Valid(esync.FindByNetworkId(w, 2)))
	assert.Equal(t, 1, esync.NetworkEntityQuery.Count(w))
}

func TestClientStateString(t *testing.T) {
	assert.Equal(t, "connected", StateConnected.String())
	assert.Equal(t, "unknown", ClientState(42).String())
}

func TestPushSnapshotKeepsLatest(t *testing.T) {
	c := NewClient()
	assert.Nil(t, c.LatestSnapshot())

	c.pushSnapshot(esync.WorldSnapshot{})
	c.pushSnapshot(esync.WorldSnapshot{})

	assert.NotNil(t, c.LatestSnapshot())
	assert.Equal(t, 2, c.SnapshotsReceived())
	assert.Nil(t, c.LatestSnapshot())
}

func TestSendMessageRequiresConnection(t *testing.T) {
	c := NewClient()
	assert.Error(t, c.SendMessage("hello"))
}
