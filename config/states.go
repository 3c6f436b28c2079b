package config

import "github.com/automoto/stomp-mp/shared/netconfig"

// Type aliases so config tables can be keyed without importing netconfig at
// every call site.
type EntityKind = netconfig.EntityKind
type PowerupState = netconfig.PowerupState
type EyeState = netconfig.EyeState
