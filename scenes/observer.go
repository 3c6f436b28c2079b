package scenes

import (
	"log"

	"github.com/automoto/stomp-mp/components"
	"github.com/automoto/stomp-mp/config"
	"github.com/automoto/stomp-mp/network"
	"github.com/automoto/stomp-mp/shared/messages"
	"github.com/automoto/stomp-mp/shared/netcomponents"
	"github.com/automoto/stomp-mp/shared/netconfig"
	"github.com/automoto/stomp-mp/shared/ticktimer"
	"github.com/automoto/stomp-mp/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// ObserverScene mirrors the server's world and derives everything a peer
// shows from it: entity sprites and effects, player presentation and sounds.
type ObserverScene struct {
	ecs       *ecs.ECS
	client    *network.Client
	clock     *ticktimer.Clock
	tracker   *systems.ChangeTracker
	fx        *systems.EntityEffects
	presenter *systems.PlayerPresenter

	// Play receives every sound the frame produced.
	Play func(config.SoundID)
	// Stop receives every entity whose sounds were cut this frame.
	Stop func(donburi.Entity)

	autoplay bool
	inputSeq uint32
	frames   int
	sounds   int
	stops    int
}

func NewObserverScene(cfg *config.Config, client *network.Client, localPlayer int, autoplay bool) *ObserverScene {
	e := ecs.NewECS(donburi.NewWorld())
	clock := ticktimer.NewClock(cfg.Server.TickRate)

	fx := &systems.EntityEffects{ECS: e, Config: cfg}
	fx.Register()

	return &ObserverScene{
		ecs:       e,
		client:    client,
		clock:     clock,
		tracker:   systems.NewChangeTracker(),
		fx:        fx,
		presenter: systems.NewPlayerPresenter(cfg, clock, localPlayer),
		Play:      func(config.SoundID) {},
		Stop:      func(donburi.Entity) {},
		autoplay:  autoplay,
	}
}

func (s *ObserverScene) World() donburi.World { return s.ecs.World }

// Update applies the newest snapshot, if any, then renders one frame.
func (s *ObserverScene) Update(dt float64) {
	if snap := s.client.LatestSnapshot(); snap != nil {
		network.ApplyReplicas(s.ecs.World, network.DecodeSnapshot(*snap))
	}
	s.Frame(dt)

	if s.autoplay && s.client.State() == network.StateConnected {
		if err := s.client.SendMessage(s.autoInput()); err != nil {
			log.Printf("[observer] input: %v", err)
		}
	}
}

// Frame runs the per-frame presentation pipeline over the mirrored world.
func (s *ObserverScene) Frame(dt float64) {
	s.syncClock()
	systems.UpdateNetInterp(s.ecs, s.clock, dt)

	s.fx.AttachEntityVisuals(s.ecs)
	s.presenter.AttachPlayerVisuals(s.ecs)
	s.tracker.Update(s.ecs)
	s.presenter.Update(s.ecs, dt)
	s.fx.UpdateEntitySprites(s.ecs, dt)
	systems.UpdateEffects(s.ecs)
	systems.DrainAudio(s.ecs, func(id config.SoundID) {
		s.sounds++
		s.Play(id)
	}, func(entity donburi.Entity) {
		s.stops++
		s.Stop(entity)
	})

	s.frames++
}

// syncClock follows the server tick so replicated deadlines stay meaningful.
func (s *ObserverScene) syncClock() {
	match, ok := netcomponents.NetMatch.First(s.ecs.World)
	if !ok {
		return
	}
	m := netcomponents.NetMatch.Get(match)
	s.clock.Tick = m.Tick
	if m.TickRate > 0 {
		s.clock.Rate = m.TickRate
	}
}

// autoInput walks back and forth and jumps now and then.
func (s *ObserverScene) autoInput() messages.PlayerInput {
	s.inputSeq++
	in := messages.NewPlayerInput(s.inputSeq)

	phase := (s.clock.Tick / int64(s.clock.Rate*2)) % 2
	if phase == 0 {
		in.Direction = 1
		in.Actions[netconfig.ActionMoveRight] = true
	} else {
		in.Direction = -1
		in.Actions[netconfig.ActionMoveLeft] = true
	}
	if s.clock.Tick%int64(s.clock.Rate) < 10 {
		in.Actions[netconfig.ActionJump] = true
	}
	return in
}

// Stats summarizes the mirrored world for periodic logging.
type Stats struct {
	Frames   int
	Tick     int64
	Players  int
	Entities int
	Alive    int
	Effects  int
	Sounds   int
	Stops    int
}

func (s *ObserverScene) Stats() Stats {
	w := s.ecs.World
	st := Stats{
		Frames:  s.frames,
		Tick:    s.clock.Tick,
		Players: donburi.NewQuery(filter.Contains(netcomponents.NetPlayerState)).Count(w),
		Effects: donburi.NewQuery(filter.Contains(components.Effect)).Count(w),
		Sounds:  s.sounds,
		Stops:   s.stops,
	}
	netcomponents.NetEntity.Each(w, func(entry *donburi.Entry) {
		st.Entities++
		if e := netcomponents.NetEntity.Get(entry); e.IsActive && !e.IsDead {
			st.Alive++
		}
	})
	return st
}
