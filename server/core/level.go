package core

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/stomp-mp/components"
	"github.com/automoto/stomp-mp/shared/leveldata"
	"github.com/automoto/stomp-mp/shared/netcomponents"
	"github.com/automoto/stomp-mp/systems"
	"github.com/automoto/stomp-mp/systems/factory"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/yohamta/donburi"
)

// LoadLevel parses the TMX file at path. The level is named after the file
// stem.
func LoadLevel(path string) (string, *leveldata.CollisionData, error) {
	dir, file := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	data, err := leveldata.LoadCollisionData(os.DirFS(dir), file)
	if err != nil {
		return "", nil, fmt.Errorf("load level: %w", err)
	}
	return strings.TrimSuffix(file, filepath.Ext(file)), data, nil
}

// buildLevel creates the collision space, solid tiles, simulation and every
// level entity, then starts replicating them.
func (s *Server) buildLevel(name string, data *leveldata.CollisionData) error {
	cfg := s.config

	spaceEntry := factory.CreateSpace(s.ecs, data.Width, data.Height, cfg.Physics.CellSize)
	levelEntry := factory.CreateLevel(s.ecs, name, data)
	wrap := components.Level.Get(levelEntry).Wrap

	coins := &factory.CoinSpawner{ECS: s.ecs, Config: cfg, Clock: s.clock}
	physics := systems.NewPhysicsScene(components.Space.Get(spaceEntry).Space, wrap)
	s.sim = systems.NewSim(s.ecs, cfg, s.clock, physics, coins)

	onSpawn := func(entry *donburi.Entry) {
		if err := s.networkSync(entry); err != nil {
			log.Printf("[server] failed to sync spawned entity: %v", err)
		}
	}
	coins.OnSpawn = onSpawn
	s.sim.OnSpawn = onSpawn
	s.sim.Register()

	s.match = s.ecs.World.Entry(s.ecs.World.Create(netcomponents.NetMatch))
	netcomponents.NetMatch.SetValue(s.match, netcomponents.NetMatchData{
		Tick:     s.clock.Tick,
		TickRate: s.clock.Rate,
	})
	if err := s.networkSync(s.match); err != nil {
		return fmt.Errorf("sync match: %w", err)
	}

	for _, spawn := range data.EntitySpawns {
		entry := factory.CreateEnemy(s.ecs, cfg, spawn)
		if err := s.networkSync(entry); err != nil {
			return fmt.Errorf("sync %s: %w", spawn.Kind, err)
		}
		if en, ok := s.sim.Enemy(entry); ok {
			en.Spawned()
		}
	}

	log.Printf("[server] level %s ready: %d entities", name, len(data.EntitySpawns))
	return nil
}

// networkSync starts replicating entry with the components its kind needs.
// Positions and velocities are interpolated on observers; state is applied
// exactly.
func (s *Server) networkSync(entry *donburi.Entry) error {
	entity := entry.Entity()
	w := s.ecs.World

	switch {
	case entry.HasComponent(netcomponents.NetMatch):
		return srvsync.NetworkSync(w, &entity, netcomponents.NetMatch)
	case entry.HasComponent(netcomponents.NetPlayerState):
		return srvsync.NetworkSync(w, &entity,
			srvsync.WithInterp(netcomponents.NetPosition, netcomponents.NetVelocity),
			netcomponents.NetPlayerState,
		)
	case entry.HasComponent(netcomponents.NetEntity):
		return srvsync.NetworkSync(w, &entity,
			srvsync.WithInterp(netcomponents.NetPosition, netcomponents.NetVelocity),
			netcomponents.NetEntity,
		)
	case entry.HasComponent(netcomponents.NetProjectile):
		return srvsync.NetworkSync(w, &entity,
			srvsync.WithInterp(netcomponents.NetPosition),
			netcomponents.NetProjectile,
		)
	case entry.HasComponent(netcomponents.NetPickup):
		return srvsync.NetworkSync(w, &entity,
			srvsync.WithInterp(netcomponents.NetPosition),
			netcomponents.NetPickup,
		)
	}
	return fmt.Errorf("entity %v has no replicated state", entity)
}
