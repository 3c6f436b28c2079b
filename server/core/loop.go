package core

import (
	"log"
	"time"

	"github.com/automoto/stomp-mp/shared/netcomponents"
	"github.com/leap-fish/necs/esync/srvsync"
)

type GameLoop struct {
	server   *Server
	tickRate int
	running  bool
	stopChan chan struct{}
}

func NewGameLoop(server *Server, tickRate int) *GameLoop {
	return &GameLoop{
		server:   server,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

func (g *GameLoop) Run() {
	g.running = true
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("[loop] started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			g.running = false
			log.Println("[loop] stopped")
			return
		case <-ticker.C:
			g.tick()
		}
	}
}

func (g *GameLoop) Stop() {
	close(g.stopChan)
}

func (g *GameLoop) tick() {
	g.server.Step()

	if err := srvsync.DoSync(); err != nil {
		log.Printf("[loop] sync error: %v", err)
	}
}

// Step applies queued commands, runs one simulation tick, reports state
// changes and publishes the new tick to observers. It does not sync.
func (s *Server) Step() {
	s.ProcessCommands()
	s.sim.Step()
	s.tracker.Update(s.ecs)

	match := netcomponents.NetMatch.Get(s.match)
	match.Tick = s.clock.Tick
	match.TickRate = s.clock.Rate
}
