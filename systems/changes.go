package systems

import (
	"github.com/automoto/stomp-mp/shared/netcomponents"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// FlagChanged reports a replicated flag that differs from its previous
// observed value.
type FlagChanged struct {
	Entity donburi.Entity
	Value  bool

	// WasFrozen is the entity's frozen flag at the previous observation, so a
	// death handler can tell a shatter from an ordinary kill.
	WasFrozen bool
}

var (
	IsActiveChanged    = events.NewEventType[FlagChanged]()
	IsDeadChanged      = events.NewEventType[FlagChanged]()
	IsFrozenChanged    = events.NewEventType[FlagChanged]()
	FacingRightChanged = events.NewEventType[FlagChanged]()
)

// ChangeTracker turns replicated entity state into change notifications. It
// remembers the last value it saw for every entity and publishes one event
// per field that differs. An entity seen for the first time publishes its
// active and facing flags only.
type ChangeTracker struct {
	seen map[donburi.Entity]netcomponents.NetEntityData
}

func NewChangeTracker() *ChangeTracker {
	return &ChangeTracker{seen: make(map[donburi.Entity]netcomponents.NetEntityData)}
}

// Update compares every entity with its previous observation and dispatches
// the resulting events. Handlers run after the scan, in a fixed order: active,
// dead, frozen, facing.
func (t *ChangeTracker) Update(e *ecs.ECS) {
	w := e.World
	live := make(map[donburi.Entity]struct{}, len(t.seen))

	netcomponents.NetEntity.Each(w, func(entry *donburi.Entry) {
		id := entry.Entity()
		cur := *netcomponents.NetEntity.Get(entry)
		live[id] = struct{}{}

		prev, ok := t.seen[id]
		t.seen[id] = cur
		if !ok {
			IsActiveChanged.Publish(w, FlagChanged{Entity: id, Value: cur.IsActive})
			FacingRightChanged.Publish(w, FlagChanged{Entity: id, Value: cur.FacingRight})
			return
		}

		publish := func(ev *events.EventType[FlagChanged], before, after bool) {
			if before != after {
				ev.Publish(w, FlagChanged{Entity: id, Value: after, WasFrozen: prev.IsFrozen})
			}
		}
		publish(IsActiveChanged, prev.IsActive, cur.IsActive)
		publish(IsDeadChanged, prev.IsDead, cur.IsDead)
		publish(IsFrozenChanged, prev.IsFrozen, cur.IsFrozen)
		publish(FacingRightChanged, prev.FacingRight, cur.FacingRight)
	})

	for id := range t.seen {
		if _, ok := live[id]; !ok {
			delete(t.seen, id)
		}
	}

	IsActiveChanged.ProcessEvents(w)
	IsDeadChanged.ProcessEvents(w)
	IsFrozenChanged.ProcessEvents(w)
	FacingRightChanged.ProcessEvents(w)
}

// Forget drops every remembered value, so the next update treats all entities
// as newly seen.
func (t *ChangeTracker) Forget() {
	clear(t.seen)
}
