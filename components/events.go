package components

import "github.com/yohamta/donburi"

type EventKind int

const (
	EventJumped EventKind = iota
	EventLanded
	EventSuperJump
	EventStomp
	EventHit
	EventFellOut
	EventRespawned
	EventCheckpoint
	EventCollected
	EventShot
	EventLevelComplete
)

var eventNames = map[EventKind]string{
	EventJumped:        "jumped",
	EventLanded:        "landed",
	EventSuperJump:     "superjump",
	EventStomp:         "stomp",
	EventHit:           "hit",
	EventFellOut:       "fell_out",
	EventRespawned:     "respawned",
	EventCheckpoint:    "checkpoint",
	EventCollected:     "collected",
	EventShot:          "shot",
	EventLevelComplete: "level_complete",
}

func (k EventKind) String() string {
	return eventNames[k]
}

// Event is something the host or the progress layer reacts to.
type Event struct {
	Kind        EventKind
	X, Y        float64
	ID          int
	FinalTimeMs int64
}

// EventsData collects the frame's events (singleton component).
type EventsData struct {
	Queue []Event
}

var Events = donburi.NewComponentType[EventsData]()
