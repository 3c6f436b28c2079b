package netcomponents

import (
	"github.com/automoto/stomp-mp/shared/netconfig"
	"github.com/yohamta/donburi"
)

// MaxComboCounter is the highest combo value a special kill records. It is
// the last index of the combo sound table.
const MaxComboCounter = 7

// NetEntityData is the replicated lifecycle state of a killable entity. The
// server is the only writer; observers react to changes in these fields.
type NetEntityData struct {
	Kind             netconfig.EntityKind
	IsActive         bool
	IsDead           bool
	IsFrozen         bool
	FacingRight      bool
	WasSpecialKilled bool
	WasGroundpounded bool
	AngularVelocity  float64 // degrees per second, only meaningful while dead
	ComboCounter     uint8   // 0..MaxComboCounter
}

var NetEntity = donburi.NewComponentType[NetEntityData]()

// ClampCombo converts a combo count into the stored counter range.
func ClampCombo(combo int) uint8 {
	if combo < 0 {
		return 0
	}
	if combo > MaxComboCounter {
		return MaxComboCounter
	}
	return uint8(combo)
}
