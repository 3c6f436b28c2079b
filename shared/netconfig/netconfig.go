// Package netconfig defines lightweight types shared between observers and the
// server for network serialization. It must have zero dependencies on any
// graphics or audio library so the dedicated server binary stays headless.
package netconfig

// EntityKind identifies the variant of a killable entity. Behaviour that
// differs between variants is selected by switching on the kind.
type EntityKind int

const (
	KindGoomba EntityKind = iota
	KindKoopa
	KindSpiny
	KindPiranhaPlant
	KindBobOmb
)

var entityKindNames = map[EntityKind]string{
	KindGoomba:       "goomba",
	KindKoopa:        "koopa",
	KindSpiny:        "spiny",
	KindPiranhaPlant: "piranhaplant",
	KindBobOmb:       "bobomb",
}

func (k EntityKind) String() string {
	if name, ok := entityKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseEntityKind maps a level property value to a kind.
func ParseEntityKind(name string) (EntityKind, bool) {
	for k, n := range entityKindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// PowerupState is the player's current power-up. The order matters: any state
// at or above Mushroom uses the large model.
type PowerupState int

const (
	NoPowerup PowerupState = iota
	MiniMushroom
	Mushroom
	FireFlower
	IceFlower
	PropellerMushroom
	BlueShell
	MegaMushroom
)

var powerupNames = [...]string{"small", "mini", "mushroom", "fire", "ice", "propeller", "blueshell", "mega"}

func (p PowerupState) String() string {
	if p < 0 || int(p) >= len(powerupNames) {
		return "unknown"
	}
	return powerupNames[p]
}

// EyeState is the eye texture index exposed to the player material.
type EyeState int

const (
	EyeNormal EyeState = iota
	EyeHalfBlink
	EyeFullBlink
	EyeDeath
)

// JumpState tracks which jump of a chain the player is in.
type JumpState int

const (
	JumpNone JumpState = iota
	JumpSingle
	JumpDouble
	JumpTriple
)

// UnfreezeReason says why a frozen entity left its ice block.
type UnfreezeReason int

const (
	UnfreezeOther UnfreezeReason = iota
	UnfreezeTimer
	UnfreezeHitWall
	UnfreezeGroundpounded
	UnfreezeBlockBump
)

// ActionID represents a logical player action carried in input messages.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionJump
	ActionCrouch
	ActionSprint
	ActionAttack
	ActionCount // Must be last - used for array sizing
)
