package systems

import (
	"github.com/automoto/stomp-mp/config"
	"github.com/automoto/stomp-mp/shared/ticktimer"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RewardSpawner places a pickup at a world position. Fire and forget.
type RewardSpawner interface {
	SpawnReward(pos mgl64.Vec2)
}

// Freezer encases an entity in ice. The entity's own Freeze is called by the
// freezer once the ice exists.
type Freezer interface {
	FreezeEntity(target *donburi.Entry)
}

// Sim is the authoritative simulation. Every service the tick handlers need
// is a field here; nothing reads package-level state.
type Sim struct {
	ECS     *ecs.ECS
	Config  *config.Config
	Clock   *ticktimer.Clock
	Physics *PhysicsScene
	Rewards RewardSpawner
	Freezer Freezer

	// OnSpawn, if set, runs for every entity the simulation creates mid-game
	// so the host can start replicating it.
	OnSpawn func(*donburi.Entry)

	overlaps []*resolv.Object
}

// NewSim wires a simulation around an ECS and a physics scene. Rewards may be
// nil, in which case kills spawn nothing. The ice-block freezer is installed
// by default.
func NewSim(e *ecs.ECS, cfg *config.Config, clock *ticktimer.Clock, physics *PhysicsScene, rewards RewardSpawner) *Sim {
	s := &Sim{
		ECS:      e,
		Config:   cfg,
		Clock:    clock,
		Physics:  physics,
		Rewards:  rewards,
		overlaps: make([]*resolv.Object, cfg.Combat.OverlapBufferSize),
	}
	s.Freezer = &IceFreezer{sim: s}
	return s
}

// World returns the simulation's world.
func (s *Sim) World() donburi.World { return s.ECS.World }

// Register adds the tick pipeline to the ECS. Order matters: bodies move,
// lifecycle and entity pushback run on the new positions, then contacts
// resolve combat and timers settle the results.
func (s *Sim) Register() {
	s.ECS.AddSystem(s.UpdatePlayers)
	s.ECS.AddSystem(s.UpdateBodies)
	s.ECS.AddSystem(s.UpdateEntities)
	s.ECS.AddSystem(s.UpdateContacts)
	s.ECS.AddSystem(s.UpdateProjectiles)
	s.ECS.AddSystem(s.UpdateFrozen)
	s.ECS.AddSystem(s.UpdateLifecycle)
	s.ECS.AddSystem(s.UpdatePickups)
	s.ECS.AddSystem(s.WriteNetState)
}

// Step runs one tick and advances the clock.
func (s *Sim) Step() {
	s.ECS.Update()
	s.Clock.Advance()
}

func (s *Sim) spawnReward(pos mgl64.Vec2) {
	if s.Rewards != nil {
		s.Rewards.SpawnReward(pos)
	}
}

func (s *Sim) spawned(entry *donburi.Entry) {
	if s.OnSpawn != nil {
		s.OnSpawn(entry)
	}
}
