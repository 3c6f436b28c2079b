package netcomponents

import "github.com/yohamta/donburi"

// NetMatchData is the session state every peer needs to evaluate replicated
// deadlines and session-wide presentation.
type NetMatchData struct {
	Tick     int64
	TickRate int
	Starting bool // countdown before play, players are hidden
	Ended    bool
	Teams    bool
}

var NetMatch = donburi.NewComponentType[NetMatchData]()
