package scenes

import (
	"errors"
	"fmt"
)

// SceneID names one screen of the game.
type SceneID int

const (
	SceneNone SceneID = iota
	SceneMainMenu
	SceneSlotSelect
	SceneCharacterSelect
	SceneWorldMap
	ScenePlaying
	SceneLevelComplete
	SceneWorldComplete
)

func (id SceneID) String() string {
	switch id {
	case SceneMainMenu:
		return "MainMenu"
	case SceneSlotSelect:
		return "SlotSelect"
	case SceneCharacterSelect:
		return "CharacterSelect"
	case SceneWorldMap:
		return "WorldMap"
	case ScenePlaying:
		return "Playing"
	case SceneLevelComplete:
		return "LevelComplete"
	case SceneWorldComplete:
		return "WorldComplete"
	}
	return "None"
}

// ErrInvalidTransition is returned for moves the table does not allow or a
// payload of the wrong type.
var ErrInvalidTransition = errors.New("invalid scene transition")

// LevelPayload starts a level.
type LevelPayload struct {
	LevelIndex int
}

// MapPayload opens the world map on a level. Message is shown on the map,
// e.g. why a level failed to load.
type MapPayload struct {
	WorldID    string
	LevelIndex int
	Message    string
}

// LevelCompletePayload reports a finished level.
type LevelCompletePayload struct {
	LevelIndex  int
	FinalTimeMs int64
	IsNewRecord bool
}

// WorldCompletePayload reports the last level of a world.
type WorldCompletePayload struct {
	WorldID            string
	RescuedCharacterID string
	TotalTimeMs        int64
}

var transitions = map[SceneID][]SceneID{
	SceneNone:            {SceneMainMenu},
	SceneMainMenu:        {SceneSlotSelect},
	SceneSlotSelect:      {SceneMainMenu, SceneCharacterSelect, SceneWorldMap},
	SceneCharacterSelect: {SceneSlotSelect, SceneWorldMap},
	SceneWorldMap:        {SceneMainMenu, SceneSlotSelect, SceneCharacterSelect, ScenePlaying},
	ScenePlaying:         {ScenePlaying, SceneWorldMap, SceneLevelComplete},
	SceneLevelComplete:   {ScenePlaying, SceneWorldMap, SceneWorldComplete},
	SceneWorldComplete:   {SceneWorldMap, SceneMainMenu},
}

// Flow is the scene state machine. It holds no ebiten state so it can be
// driven from tests.
type Flow struct {
	current SceneID
	payload interface{}
	history []SceneID
}

// NewFlow returns a flow that has not entered any scene yet.
func NewFlow() *Flow {
	return &Flow{}
}

// Current returns the active scene.
func (f *Flow) Current() SceneID {
	return f.current
}

// Payload returns the payload the active scene was entered with.
func (f *Flow) Payload() interface{} {
	return f.payload
}

// History returns the scenes entered so far, oldest first.
func (f *Flow) History() []SceneID {
	return f.history
}

// CanGo reports whether the table allows moving to the scene.
func (f *Flow) CanGo(to SceneID) bool {
	return allowed(f.current, to)
}

func allowed(from, to SceneID) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Go moves to another scene. The state is unchanged on error.
func (f *Flow) Go(to SceneID, payload interface{}) error {
	if !f.CanGo(to) {
		return fmt.Errorf("%s -> %s: %w", f.current, to, ErrInvalidTransition)
	}
	if !payloadFits(to, payload) {
		return fmt.Errorf("%s -> %s with %T: %w", f.current, to, payload, ErrInvalidTransition)
	}
	f.current = to
	f.payload = payload
	f.history = append(f.history, to)
	return nil
}

func payloadFits(to SceneID, payload interface{}) bool {
	switch to {
	case ScenePlaying:
		_, ok := payload.(LevelPayload)
		return ok
	case SceneWorldMap:
		if payload == nil {
			return true
		}
		_, ok := payload.(MapPayload)
		return ok
	case SceneLevelComplete:
		_, ok := payload.(LevelCompletePayload)
		return ok
	case SceneWorldComplete:
		_, ok := payload.(WorldCompletePayload)
		return ok
	}
	return payload == nil
}
