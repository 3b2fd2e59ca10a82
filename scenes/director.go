package scenes

import (
	"errors"
	"fmt"
	"log"
	"time"

	cfg "github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/persistence"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

var (
	// ErrNoSlot is returned when an action needs a save slot and none is in use.
	ErrNoSlot = errors.New("no save slot in use")
	// ErrLocked is returned for a level or character the slot has not unlocked.
	ErrLocked = errors.New("locked")
	// ErrUnknownLevel is returned for a level index outside every world.
	ErrUnknownLevel = errors.New("unknown level")
)

func errUnknownLevel(levelIndex int) error {
	return fmt.Errorf("level %d: %w", levelIndex, ErrUnknownLevel)
}

// Director owns the scene flow and the save slot in use. Scenes call it to
// move on; it builds the next scene and hands it to the SceneChanger.
type Director struct {
	flow   *Flow
	sc     SceneChanger
	repo   persistence.Repository
	slotID int
	quit   bool

	pendingWorld *WorldCompletePayload

	now func() time.Time
}

// NewDirector returns a director that has not shown any scene yet.
func NewDirector(sc SceneChanger, repo persistence.Repository) *Director {
	return &Director{flow: NewFlow(), sc: sc, repo: repo, now: time.Now}
}

// Flow exposes the state machine.
func (d *Director) Flow() *Flow {
	return d.flow
}

// SlotID returns the slot in use, 0 for none.
func (d *Director) SlotID() int {
	return d.slotID
}

// Quit asks the game loop to end.
func (d *Director) Quit() {
	d.quit = true
}

// Quitting reports whether Quit was called.
func (d *Director) Quitting() bool {
	return d.quit
}

// Go moves the flow and shows the new scene. A rejected move is logged and
// leaves the current scene in place.
func (d *Director) Go(to SceneID, payload interface{}) error {
	if err := d.flow.Go(to, payload); err != nil {
		log.Printf("Warning: %v", err)
		return err
	}
	d.sc.ChangeScene(d.build(to, payload))
	return nil
}

func (d *Director) build(to SceneID, payload interface{}) interface{} {
	switch to {
	case SceneMainMenu:
		return NewMainMenuScene(d)
	case SceneSlotSelect:
		return NewSlotSelectScene(d)
	case SceneCharacterSelect:
		return NewCharacterSelectScene(d)
	case SceneWorldMap:
		p, _ := payload.(MapPayload)
		return NewWorldMapScene(d, p)
	case ScenePlaying:
		return NewPlayScene(d, payload.(LevelPayload))
	case SceneLevelComplete:
		return NewLevelCompleteScene(d, payload.(LevelCompletePayload))
	case SceneWorldComplete:
		return NewWorldCompleteScene(d, payload.(WorldCompletePayload))
	}
	return nil
}

// Start shows the main menu.
func (d *Director) Start() error {
	return d.Go(SceneMainMenu, nil)
}

// ActiveSlot loads the slot in use.
func (d *Director) ActiveSlot() (*persistence.SaveSlot, error) {
	if d.slotID == 0 {
		return nil, ErrNoSlot
	}
	slot, err := d.repo.Load(d.slotID)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, fmt.Errorf("slot %d: %w", d.slotID, ErrNoSlot)
	}
	return slot, nil
}

// UseSlot makes the slot active, creating a fresh record if it is empty, and
// opens the world map on the saved cursor. A new record goes through
// character select first.
func (d *Director) UseSlot(id int) error {
	slot, err := d.repo.Load(id)
	if err != nil {
		return err
	}
	fresh := slot == nil
	if fresh {
		if slot, err = persistence.CreateSlot(d.repo, id, fmt.Sprintf("Slot %d", id), d.now()); err != nil {
			return err
		}
	} else {
		if err := d.repo.SetActiveSlot(id); err != nil {
			return err
		}
		if slot, err = persistence.Update(d.repo, id, func(s *persistence.SaveSlot) (*persistence.SaveSlot, error) {
			s.LastPlayedAt = d.now()
			return s, nil
		}); err != nil {
			return err
		}
	}
	d.slotID = id

	if fresh && len(slot.UnlockedCharacters) > 1 {
		return d.Go(SceneCharacterSelect, nil)
	}
	return d.Go(SceneWorldMap, MapPayload{WorldID: slot.Cursor.WorldID, LevelIndex: slot.Cursor.LevelIndex})
}

// DeleteSlot erases a slot. Erasing the slot in use drops it.
func (d *Director) DeleteSlot(id int) error {
	if err := d.repo.Delete(id); err != nil {
		return err
	}
	if d.slotID == id {
		d.slotID = 0
	}
	return nil
}

// ChooseCharacter stores the selection and returns to the map.
func (d *Director) ChooseCharacter(id string) error {
	slot, err := d.ActiveSlot()
	if err != nil {
		return err
	}
	if !slot.IsUnlocked(id) {
		return fmt.Errorf("character %s: %w", id, ErrLocked)
	}
	slot, err = persistence.Update(d.repo, d.slotID, func(s *persistence.SaveSlot) (*persistence.SaveSlot, error) {
		s.SelectCharacter(id)
		return s, nil
	})
	if err != nil {
		return err
	}
	return d.Go(SceneWorldMap, MapPayload{WorldID: slot.Cursor.WorldID, LevelIndex: slot.Cursor.LevelIndex})
}

// PlayLevel starts an unlocked level and moves the map cursor onto it.
func (d *Director) PlayLevel(levelIndex int) error {
	slot, err := d.ActiveSlot()
	if err != nil {
		return err
	}
	if !slot.LevelUnlocked(levelIndex) {
		return fmt.Errorf("level %d: %w", levelIndex, ErrLocked)
	}
	if world, ok := cfg.WorldForLevel(levelIndex); ok {
		if _, err := persistence.Update(d.repo, d.slotID, func(s *persistence.SaveSlot) (*persistence.SaveSlot, error) {
			s.Cursor = persistence.Cursor{WorldID: world.ID, LevelIndex: levelIndex}
			return s, nil
		}); err != nil {
			log.Printf("Warning: Could not save map cursor: %v", err)
		}
	}
	return d.Go(ScenePlaying, LevelPayload{LevelIndex: levelIndex})
}

// LevelFailed returns to the map with the load error.
func (d *Director) LevelFailed(levelIndex int, err error) error {
	world, _ := cfg.WorldForLevel(levelIndex)
	return d.Go(SceneWorldMap, MapPayload{WorldID: world.ID, LevelIndex: levelIndex, Message: err.Error()})
}

// LeaveLevel abandons the running level.
func (d *Director) LeaveLevel(levelIndex int) error {
	world, _ := cfg.WorldForLevel(levelIndex)
	return d.Go(SceneWorldMap, MapPayload{WorldID: world.ID, LevelIndex: levelIndex})
}

// LevelFinished shows the level result. A completed world is kept for after
// the result screen.
func (d *Director) LevelFinished(levelIndex int, result persistence.LevelResult) error {
	d.pendingWorld = nil
	if result.WorldCompleted {
		d.pendingWorld = &WorldCompletePayload{
			WorldID:            result.WorldID,
			RescuedCharacterID: result.RescuedCharacterID,
			TotalTimeMs:        result.TotalTimeMs,
		}
	}
	return d.Go(SceneLevelComplete, LevelCompletePayload{
		LevelIndex:  levelIndex,
		FinalTimeMs: result.FinalTimeMs,
		IsNewRecord: result.IsNewRecord,
	})
}

// Continue leaves the result screen: to the world summary if the world was
// just completed, else into the next level of the world, else to the map.
func (d *Director) Continue(levelIndex int) error {
	if d.pendingWorld != nil {
		p := *d.pendingWorld
		d.pendingWorld = nil
		return d.Go(SceneWorldComplete, p)
	}
	world, ok := cfg.WorldForLevel(levelIndex)
	next := levelIndex + 1
	if ok && next < world.FirstLevelIndex+len(world.Levels) {
		if err := d.PlayLevel(next); err == nil {
			return nil
		}
	}
	return d.Go(SceneWorldMap, MapPayload{WorldID: world.ID, LevelIndex: levelIndex})
}

// Retry replays the level from the result screen.
func (d *Director) Retry(levelIndex int) error {
	d.pendingWorld = nil
	return d.Go(ScenePlaying, LevelPayload{LevelIndex: levelIndex})
}
