package components

import (
	"github.com/automoto/stomp-mp/config"
	"github.com/automoto/stomp-mp/shared/ticktimer"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// KillableData is the server-only lifecycle bookkeeping of a killable
// entity. The replicated half lives in netcomponents.NetEntity.
type KillableData struct {
	Type config.EntityTypeConfig

	SpawnLocation mgl64.Vec2 // fixed on first spawn
	Spawned       bool       // first spawn has happened
	Respawning    bool       // comes back after despawning

	DespawnTimer ticktimer.Timer // armed at death
	RespawnTimer ticktimer.Timer // armed at despawn for respawning entities
}

var Killable = donburi.NewComponentType[KillableData]()

// FrozenData marks an entity held in an ice block. The block pins the body
// at Anchor until it breaks; blocks around non-flying entities fall.
type FrozenData struct {
	Anchor    mgl64.Vec2
	FallSpeed float64
	Flying    bool
	ThawTimer ticktimer.Timer
}

var Frozen = donburi.NewComponentType[FrozenData]()
