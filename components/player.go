package components

import (
	"github.com/automoto/stomp-mp/shared/messages"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// PlayerData is the server-only half of a player controller.
type PlayerData struct {
	Input          messages.PlayerInput // latest input received
	PrevInput      messages.PlayerInput // input applied on the previous tick
	SpawnPoint     mgl64.Vec2
	DoEntityBounce bool // bounce upward on the next tick
}

var Player = donburi.NewComponentType[PlayerData]()
