package core

import (
	"fmt"
	"log"
	"sync"

	"github.com/automoto/stomp-mp/components"
	"github.com/automoto/stomp-mp/config"
	"github.com/automoto/stomp-mp/shared/leveldata"
	"github.com/automoto/stomp-mp/shared/messages"
	"github.com/automoto/stomp-mp/shared/netcomponents"
	"github.com/automoto/stomp-mp/shared/netconfig"
	"github.com/automoto/stomp-mp/shared/ticktimer"
	"github.com/automoto/stomp-mp/systems"
	"github.com/automoto/stomp-mp/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// commandBuffer bounds how many router events can wait for the next tick.
const commandBuffer = 256

// Server owns the authoritative simulation and the client connections.
type Server struct {
	name   string
	config *config.Config

	ecs   *ecs.ECS
	clock *ticktimer.Clock
	sim   *systems.Sim
	match *donburi.Entry

	// tracker reports replicated state changes after each tick.
	tracker *systems.ChangeTracker
	deaths  int

	loop      *GameLoop
	transport *transports.WsServerTransport

	// Router callbacks run on transport goroutines. They only queue commands;
	// the game loop applies them between ticks.
	commands chan func()

	// Track which network client owns which entity
	clientEntities map[*router.NetworkClient]donburi.Entity
	nextPlayer     int
	mu             sync.RWMutex
}

// NewServer builds a server around a parsed level.
func NewServer(cfg *config.Config, levelName string, level *leveldata.CollisionData, name string, tickRate int) (*Server, error) {
	world := donburi.NewWorld()

	s := &Server{
		name:           name,
		config:         cfg,
		ecs:            ecs.NewECS(world),
		clock:          ticktimer.NewClock(tickRate),
		commands:       make(chan func(), commandBuffer),
		clientEntities: make(map[*router.NetworkClient]donburi.Entity),
	}
	s.loop = NewGameLoop(s, tickRate)

	// Set up the world for esync
	srvsync.UseEsync(world)

	if err := s.buildLevel(levelName, level); err != nil {
		return nil, fmt.Errorf("build level %s: %w", levelName, err)
	}

	s.tracker = systems.NewChangeTracker()
	systems.IsDeadChanged.Subscribe(world, s.onDeadChanged)

	s.setupRouterCallbacks()
	return s, nil
}

// Start begins the server on the given port
func (s *Server) Start(port uint) error {
	go s.loop.Run()

	log.Printf("[server] %s listening on port %d", s.name, port)
	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	s.loop.Stop()
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		s.enqueue(func() { s.onConnect(client) })
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.enqueue(func() { s.onDisconnect(client, err) })
	})

	router.On(func(client *router.NetworkClient, input messages.PlayerInput) {
		s.enqueue(func() { s.onPlayerInput(client, input) })
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("[server] client error: %v", err)
	})
}

// enqueue hands a command to the game loop. Commands arriving while the
// buffer is full are dropped; input is resent every frame anyway.
func (s *Server) enqueue(cmd func()) {
	select {
	case s.commands <- cmd:
	default:
		log.Printf("[server] command queue full, dropping command")
	}
}

// ProcessCommands applies every queued command. Called by the game loop at
// the start of each tick.
func (s *Server) ProcessCommands() {
	for {
		select {
		case cmd := <-s.commands:
			cmd()
		default:
			return
		}
	}
}

func (s *Server) onDeadChanged(w donburi.World, ev systems.FlagChanged) {
	if !ev.Value {
		return
	}
	s.deaths++
	if !w.Valid(ev.Entity) {
		return
	}
	if entry := w.Entry(ev.Entity); entry.HasComponent(netcomponents.NetEntity) {
		log.Printf("[server] %s died at tick %d", netcomponents.NetEntity.Get(entry).Kind, s.clock.Tick)
	}
}

// Deaths is the number of entity deaths seen since the server started.
func (s *Server) Deaths() int { return s.deaths }

func (s *Server) onConnect(client *router.NetworkClient) {
	log.Printf("[server] client connected: %s", client.Id())

	index := s.nextPlayer
	s.nextPlayer++

	spawn := s.spawnPoint(index)
	powerups := s.config.Player.StartPowerups
	state := powerups[index%len(powerups)]

	entry := factory.CreatePlayer(s.ecs, s.config, index, spawn, state)
	if err := s.networkSync(entry); err != nil {
		log.Printf("[server] failed to set up network sync for player %d: %v", index, err)
		s.sim.Destroy(entry)
		return
	}

	s.mu.Lock()
	s.clientEntities[client] = entry.Entity()
	s.mu.Unlock()

	log.Printf("[server] player %d spawned for client %s as %s", index, client.Id(), state)
}

func (s *Server) onDisconnect(client *router.NetworkClient, err error) {
	if err != nil {
		log.Printf("[server] client %s disconnected with error: %v", client.Id(), err)
	} else {
		log.Printf("[server] client %s disconnected", client.Id())
	}

	s.mu.Lock()
	entity, exists := s.clientEntities[client]
	if exists {
		delete(s.clientEntities, client)
	}
	s.mu.Unlock()

	if exists && s.ecs.World.Valid(entity) {
		s.sim.Destroy(s.ecs.World.Entry(entity))
		log.Printf("[server] player entity removed for client %s", client.Id())
	}
}

func (s *Server) onPlayerInput(client *router.NetworkClient, input messages.PlayerInput) {
	s.mu.RLock()
	entity, exists := s.clientEntities[client]
	s.mu.RUnlock()

	if !exists || !s.ecs.World.Valid(entity) {
		return
	}
	s.applyInput(s.ecs.World.Entry(entity), input)
}

// applyInput stores the newest input for the controller to consume. Stale
// or duplicate sequences are ignored.
func (s *Server) applyInput(entry *donburi.Entry, input messages.PlayerInput) {
	if !entry.HasComponent(components.Player) {
		return
	}
	data := components.Player.Get(entry)
	if input.Sequence != 0 && input.Sequence <= data.Input.Sequence {
		return
	}
	if input.Actions == nil {
		input.Actions = make(map[netconfig.ActionID]bool)
	}
	data.Input = input
}

func (s *Server) spawnPoint(index int) mgl64.Vec2 {
	level := components.Level.Get(components.Level.MustFirst(s.ecs.World))
	points := level.Data.SpawnPoints
	if len(points) == 0 {
		return mgl64.Vec2{1, level.Data.Height / 2}
	}
	p := points[index%len(points)]
	return mgl64.Vec2{p.X, p.Y}
}

// World returns the ECS world
func (s *Server) World() donburi.World {
	return s.ecs.World
}

// Sim returns the authoritative simulation.
func (s *Server) Sim() *systems.Sim {
	return s.sim
}

// PlayerCount returns the number of connected players
func (s *Server) PlayerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clientEntities)
}
