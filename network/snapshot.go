package network

import (
	"log"

	"github.com/automoto/stomp-mp/components"
	"github.com/automoto/stomp-mp/shared/netcomponents"
	"github.com/automoto/stomp-mp/systems"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
)

// Replica is one decoded entity from a world snapshot.
type Replica struct {
	ID         esync.NetworkId
	Components []any
}

// DecodeSnapshot deserializes every component of every entity in snapshot.
// Components that fail to decode are skipped.
func DecodeSnapshot(snapshot esync.WorldSnapshot) []Replica {
	replicas := make([]Replica, 0, len(snapshot))
	for _, ent := range snapshot {
		var data []any
		for _, componentBytes := range ent.State {
			instance, err := esync.Mapper.Deserialize(componentBytes)
			if err != nil {
				log.Printf("[client] skipping component of %v: %v", ent.Id, err)
				continue
			}
			data = append(data, instance)
		}
		replicas = append(replicas, Replica{ID: ent.Id, Components: data})
	}
	return replicas
}

// ApplyReplicas mirrors replicas into world. Entities are matched by network
// id and created on first sight. Entities missing from replicas are removed.
// Replicated positions feed the entity's interpolation rather than jumping.
func ApplyReplicas(world donburi.World, replicas []Replica) {
	present := make(map[esync.NetworkId]bool, len(replicas))

	for _, r := range replicas {
		present[r.ID] = true

		entity := esync.FindByNetworkId(world, r.ID)
		if !world.Valid(entity) {
			entity = world.Create(componentTypesFromInstances(r.Components)...)
			entry := world.Entry(entity)
			entry.AddComponent(esync.NetworkIdComponent)
			esync.NetworkIdComponent.SetValue(entry, r.ID)
		}

		entry := world.Entry(entity)
		for _, data := range r.Components {
			applyComponentToEntry(entry, data)
		}
	}

	var stale []*donburi.Entry
	esync.NetworkEntityQuery.Each(world, func(entry *donburi.Entry) {
		id := esync.GetNetworkId(entry)
		if id == nil {
			return
		}
		if !present[*id] {
			stale = append(stale, entry)
		}
	})
	for _, entry := range stale {
		entry.Remove()
	}
}

func componentTypesFromInstances(components []any) []donburi.IComponentType {
	var ctypes []donburi.IComponentType
	for _, data := range components {
		switch data.(type) {
		case netcomponents.NetPositionData:
			ctypes = append(ctypes, netcomponents.NetPosition)
		case netcomponents.NetVelocityData:
			ctypes = append(ctypes, netcomponents.NetVelocity)
		case netcomponents.NetPlayerStateData:
			ctypes = append(ctypes, netcomponents.NetPlayerState)
		case netcomponents.NetEntityData:
			ctypes = append(ctypes, netcomponents.NetEntity)
		case netcomponents.NetPickupData:
			ctypes = append(ctypes, netcomponents.NetPickup)
		case netcomponents.NetProjectileData:
			ctypes = append(ctypes, netcomponents.NetProjectile)
		case netcomponents.NetMatchData:
			ctypes = append(ctypes, netcomponents.NetMatch)
		}
	}
	return ctypes
}

func applyComponentToEntry(entry *donburi.Entry, data any) {
	switch v := data.(type) {
	case netcomponents.NetPositionData:
		setComponent(entry, netcomponents.NetPosition, v)
		if !entry.HasComponent(components.NetInterp) {
			entry.AddComponent(components.NetInterp)
		}
		systems.ReceivePosition(components.NetInterp.Get(entry), v)
	case netcomponents.NetVelocityData:
		setComponent(entry, netcomponents.NetVelocity, v)
	case netcomponents.NetPlayerStateData:
		setComponent(entry, netcomponents.NetPlayerState, v)
	case netcomponents.NetEntityData:
		setComponent(entry, netcomponents.NetEntity, v)
	case netcomponents.NetPickupData:
		setComponent(entry, netcomponents.NetPickup, v)
	case netcomponents.NetProjectileData:
		setComponent(entry, netcomponents.NetProjectile, v)
	case netcomponents.NetMatchData:
		setComponent(entry, netcomponents.NetMatch, v)
	}
}

func setComponent[T any](entry *donburi.Entry, ctype *donburi.ComponentType[T], v T) {
	if !entry.HasComponent(ctype) {
		entry.AddComponent(ctype)
	}
	ctype.SetValue(entry, v)
}
