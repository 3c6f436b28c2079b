package systems

import (
	"math"

	"github.com/automoto/stomp-mp/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// enemies returns a handle for every killable entity. Handles are collected
// up front because kills spawn rewards and freezing changes archetypes.
func (s *Sim) enemies(w donburi.World) []*Enemy {
	var out []*Enemy
	components.Killable.Each(w, func(entry *donburi.Entry) {
		if en, ok := s.Enemy(entry); ok {
			out = append(out, en)
		}
	})
	return out
}

// UpdateEntities runs the per-tick lifecycle dispatch of every killable entity.
func (s *Sim) UpdateEntities(e *ecs.ECS) {
	for _, en := range s.enemies(e.World) {
		en.FixedUpdate()
	}
}

// UpdateLifecycle settles death and respawn deadlines. Dead entities despawn
// when their despawn deadline passes, anything that fell below the kill plane
// despawns at once, and respawning entities come back when their respawn
// deadline passes.
func (s *Sim) UpdateLifecycle(e *ecs.ECS) {
	killY := s.killPlane(e.World)

	for _, en := range s.enemies(e.World) {
		k := en.killable()
		if !en.IsActive() {
			if k.Respawning && k.RespawnTimer.Expired(s.Clock) {
				en.RespawnEntity()
			}
			continue
		}
		if k.DespawnTimer.Expired(s.Clock) || en.Position().Y() < killY {
			en.DespawnEntity()
		}
	}

	components.Player.Each(e.World, func(entry *donburi.Entry) {
		p, ok := s.Player(entry)
		if !ok || p.State().IsDead {
			return
		}
		if p.Position().Y() < killY {
			p.Death(false)
		}
	})
}

// killPlane is the height below which bodies are removed from play.
func (s *Sim) killPlane(w donburi.World) float64 {
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return math.Inf(-1)
	}
	return components.Level.Get(levelEntry).FloorY - s.Config.Entity.KillPlaneDepth
}
