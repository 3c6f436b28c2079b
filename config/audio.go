package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Entity death sounds
	SoundShellKick
	SoundCombo1
	SoundCombo2
	SoundCombo3
	SoundCombo4
	SoundCombo5
	SoundCombo6
	SoundCombo7
	SoundFreezeShatter
	SoundEnemyStomp
	SoundEnemyFreeze
	// Player sounds
	SoundPowerdown
	SoundPlayerDeath
	SoundFireball
	SoundBlockBump
	SoundCoin
	// Looping player sounds
	SoundWallSlide
	SoundShellSlide
	SoundSpinnerDrill
	SoundPropellerDrill
)

// ComboSounds is indexed by a special kill's combo counter. Kills beyond the
// table reuse the last entry.
var ComboSounds = [...]SoundID{
	SoundShellKick,
	SoundCombo1,
	SoundCombo2,
	SoundCombo3,
	SoundCombo4,
	SoundCombo5,
	SoundCombo6,
	SoundCombo7,
}

// ComboSound picks the death sound for a combo count.
func ComboSound(combo int) SoundID {
	if combo < 0 {
		combo = 0
	}
	return ComboSounds[min(len(ComboSounds)-1, combo)]
}

// SoundConfig maps sound IDs to clip names
type SoundConfig struct {
	Names map[SoundID]string
}

var Sound SoundConfig

func (s SoundID) String() string {
	if name, ok := Sound.Names[s]; ok {
		return name
	}
	return "none"
}

func init() {
	Sound = SoundConfig{
		Names: map[SoundID]string{
			SoundShellKick:      "enemy/shell_kick",
			SoundCombo1:         "enemy/shell_combo1",
			SoundCombo2:         "enemy/shell_combo2",
			SoundCombo3:         "enemy/shell_combo3",
			SoundCombo4:         "enemy/shell_combo4",
			SoundCombo5:         "enemy/shell_combo5",
			SoundCombo6:         "enemy/shell_combo6",
			SoundCombo7:         "enemy/shell_combo7",
			SoundFreezeShatter:  "enemy/freeze_shatter",
			SoundEnemyStomp:     "enemy/stomp",
			SoundEnemyFreeze:    "enemy/freeze",
			SoundPowerdown:      "player/powerdown",
			SoundPlayerDeath:    "player/death",
			SoundFireball:       "player/fireball",
			SoundBlockBump:      "world/block_bump",
			SoundCoin:           "world/coin",
			SoundWallSlide:      "player/wallslide",
			SoundShellSlide:     "player/shellslide",
			SoundSpinnerDrill:   "player/spinner_drill",
			SoundPropellerDrill: "player/propeller_drill",
		},
	}
}
