package config

import "github.com/automoto/stomp-mp/shared/netconfig"

// EntityTypeConfig contains per-kind configuration for killable entities
type EntityTypeConfig struct {
	Name      string
	WalkSpeed float64 // units/s, 0 for stationary hazards

	// Hitbox, relative to the feet-centre body position
	HitboxWidth  float64
	HitboxHeight float64

	// Behaviour flags
	AffectedByGravity       bool
	CollideWithOtherEnemies bool // turn away from overlapping entities
	DieWhenInsideBlock      bool // special-kill when the hitbox centre is in a solid tile
	FlipSprite              bool // invert the sprite flip derived from facing
	Flying                  bool
}

// EntityConfig contains lifecycle tuning shared by all killable entities
type EntityConfig struct {
	Types map[EntityKind]EntityTypeConfig

	AliveGravity float64 // units/s^2, pulls down
	DeathGravity float64
	DeathHopX    float64 // horizontal launch speed of a special kill
	DeathHopY    float64
	DeathSpin    float64 // degrees/s

	DeathDespawnDelay   float64 // seconds from special kill to despawn
	SquishDespawnDelay  float64
	RespawnDelay        float64 // seconds a despawned respawning entity waits
	InitialRespawnDelay float64
	KillPlaneDepth      float64 // units below the level floor that despawn a body
	FreezeDuration      float64 // seconds before an ice block thaws on its own
}

// CombatConfig contains interaction tuning
type CombatConfig struct {
	StompLiftHeight     float64 // raise the entity reference point before measuring direction
	FromAboveThreshold  float64 // minimum dot with up for a hit to count as a stomp
	OverlapBufferSize   int     // fixed capacity of entity overlap queries
	EntityBounceSpeed   float64 // vertical speed given to a player bouncing off an entity
	DamageInvincibility float64 // seconds
	CoinValue           int
}

// PhysicsConfig contains body integration values
type PhysicsConfig struct {
	CellSize     float64 // resolv cell size in units
	MaxFallSpeed float64 // units/s
}

// PlayerConfig contains the server-side player controller values
type PlayerConfig struct {
	WalkSpeed        float64
	RunSpeed         float64
	RunningMaxSpeed  float64 // reference speed for the in-shell spin rate
	Acceleration     float64 // units/s^2
	Friction         float64 // units/s^2
	JumpSpeed        float64
	Gravity          float64
	GroundpoundSpeed float64
	GroundpoundDelay float64 // seconds of hang time before a ground-pound drops
	SlideSpeed       float64

	HitboxWidth       float64
	SmallHitboxHeight float64
	LargeHitboxHeight float64

	CoyoteTime         float64
	FireballSpeed      float64
	FireballLifetime   float64
	FireballDelay      float64
	FireballSize       float64
	PreRespawnDuration float64 // seconds from death to respawn
	StarmanDuration    float64
	MegaDuration       float64
	MegaGrowDuration   float64
	MiniScale          float64
	MegaScale          float64

	StartPowerups []PowerupState // assigned by join order, cycling
}

// PresentationConfig contains observer-side derivation constants
type PresentationConfig struct {
	BlinkMinWait    float64
	BlinkRandomWait float64
	BlinkStep       float64

	MaxRotationSpeed    float64 // degrees/s per axis when blending
	ShellSpinRate       float64 // degrees/s at running max speed
	SpinnerFlightSpin   float64
	PropellerLaunchSpin float64
	DrillSpin           float64
	PropellerFallSpin   float64
	SpinnerStillSpeed   float64 // horizontal speed under which a player spins with a spinner

	PropellerAccel  float64
	PropellerMinVel float64
	PropellerMaxVel float64

	DeathUpTime        float64 // seconds before a fire death starts burning
	PreRespawnDuration float64
	MegaFlashWindow    float64 // seconds of mega left when the flash starts
	MovingSqrSpeed     float64 // squared speed above which crouch/slide dust emits
	CoyoteGrace        float64
	PickupTime         float64 // seconds the carry start pose lasts

	IceWalkSpeed   float64
	WalkAnimSpeed  float64
	MegaAnimSpeed  float64
	PropellerSpeed float64

	MaxPlayers int // glow colours are spread over this many hues
}

// ServerConfig contains dedicated server options
type ServerConfig struct {
	Name      string
	Port      uint
	TickRate  int
	LevelPath string
}

// Config bundles every section. Simulation services take a *Config rather
// than reading package globals, so tests can run isolated tunings.
type Config struct {
	Entity       EntityConfig
	Combat       CombatConfig
	Physics      PhysicsConfig
	Player       PlayerConfig
	Presentation PresentationConfig
	Server       ServerConfig
}

// Global configuration instances
var Entity EntityConfig
var Combat CombatConfig
var Physics PhysicsConfig
var Player PlayerConfig
var Presentation PresentationConfig
var Server ServerConfig

// Default returns a fresh bundle copied from the package defaults.
func Default() *Config {
	types := make(map[EntityKind]EntityTypeConfig, len(Entity.Types))
	for k, v := range Entity.Types {
		types[k] = v
	}
	entity := Entity
	entity.Types = types

	return &Config{
		Entity:       entity,
		Combat:       Combat,
		Physics:      Physics,
		Player:       Player,
		Presentation: Presentation,
		Server:       Server,
	}
}

// TypeConfig returns the configuration for kind, falling back to a Goomba.
func (c *Config) TypeConfig(kind EntityKind) EntityTypeConfig {
	if t, ok := c.Entity.Types[kind]; ok {
		return t
	}
	return c.Entity.Types[netconfig.KindGoomba]
}

func init() {
	Entity = EntityConfig{
		Types: map[EntityKind]EntityTypeConfig{
			netconfig.KindGoomba: {
				Name:                    "Goomba",
				WalkSpeed:               0.8,
				HitboxWidth:             0.45,
				HitboxHeight:            0.45,
				AffectedByGravity:       true,
				CollideWithOtherEnemies: true,
				DieWhenInsideBlock:      true,
			},
			netconfig.KindKoopa: {
				Name:                    "Koopa",
				WalkSpeed:               0.7,
				HitboxWidth:             0.45,
				HitboxHeight:            0.6,
				AffectedByGravity:       true,
				CollideWithOtherEnemies: true,
				DieWhenInsideBlock:      true,
				FlipSprite:              true,
			},
			netconfig.KindSpiny: {
				Name:                    "Spiny",
				WalkSpeed:               0.75,
				HitboxWidth:             0.45,
				HitboxHeight:            0.45,
				AffectedByGravity:       true,
				CollideWithOtherEnemies: true,
				DieWhenInsideBlock:      true,
			},
			netconfig.KindPiranhaPlant: {
				Name:         "PiranhaPlant",
				HitboxWidth:  0.4,
				HitboxHeight: 0.9,
			},
			netconfig.KindBobOmb: {
				Name:                    "BobOmb",
				WalkSpeed:               0.6,
				HitboxWidth:             0.4,
				HitboxHeight:            0.45,
				AffectedByGravity:       true,
				CollideWithOtherEnemies: true,
				DieWhenInsideBlock:      true,
			},
		},

		AliveGravity: 21.5,
		DeathGravity: 14.75,
		DeathHopX:    2,
		DeathHopY:    2.5,
		DeathSpin:    400,

		DeathDespawnDelay:   2.5,
		SquishDespawnDelay:  0.5,
		RespawnDelay:        5,
		InitialRespawnDelay: 1,
		KillPlaneDepth:      2,
		FreezeDuration:      3,
	}

	Combat = CombatConfig{
		StompLiftHeight:     0.1,
		FromAboveThreshold:  0.3,
		OverlapBufferSize:   32,
		EntityBounceSpeed:   6.5,
		DamageInvincibility: 2,
		CoinValue:           1,
	}

	Physics = PhysicsConfig{
		CellSize:     0.5,
		MaxFallSpeed: 9,
	}

	Player = PlayerConfig{
		WalkSpeed:        2.5,
		RunSpeed:         4.5,
		RunningMaxSpeed:  5.625,
		Acceleration:     12,
		Friction:         16,
		JumpSpeed:        7.5,
		Gravity:          21.5,
		GroundpoundSpeed: 8,
		GroundpoundDelay: 0.25,
		SlideSpeed:       4,

		HitboxWidth:       0.375,
		SmallHitboxHeight: 0.42,
		LargeHitboxHeight: 0.8,

		CoyoteTime:         0.07,
		FireballSpeed:      6.5,
		FireballLifetime:   2,
		FireballDelay:      0.25,
		FireballSize:       0.25,
		PreRespawnDuration: 3,
		StarmanDuration:    10,
		MegaDuration:       15,
		MegaGrowDuration:   1.5,
		MiniScale:          0.5,
		MegaScale:          3.5,

		StartPowerups: []PowerupState{
			netconfig.Mushroom,
			netconfig.FireFlower,
			netconfig.IceFlower,
			netconfig.PropellerMushroom,
			netconfig.BlueShell,
		},
	}

	Presentation = PresentationConfig{
		BlinkMinWait:    3,
		BlinkRandomWait: 6,
		BlinkStep:       0.1,

		MaxRotationSpeed:    2000,
		ShellSpinRate:       1400,
		SpinnerFlightSpin:   1200,
		PropellerLaunchSpin: 1400,
		DrillSpin:           900,
		PropellerFallSpin:   700,
		SpinnerStillSpeed:   0.3,

		PropellerAccel:  1200,
		PropellerMinVel: -2500,
		PropellerMaxVel: -300,

		DeathUpTime:        0.6,
		PreRespawnDuration: 3,
		MegaFlashWindow:    4,
		MovingSqrSpeed:     0.25,
		CoyoteGrace:        0.05,
		PickupTime:         0.5,

		IceWalkSpeed:   2.7,
		WalkAnimSpeed:  2,
		MegaAnimSpeed:  4.5,
		PropellerSpeed: 2,

		MaxPlayers: 10,
	}

	Server = ServerConfig{
		Name:      "Stomp Server",
		Port:      7373,
		TickRate:  60,
		LevelPath: "levels/arena.tmx",
	}
}
