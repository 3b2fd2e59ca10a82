package persistence

import (
	"fmt"
	"time"

	cfg "github.com/automoto/tilehop/config"
)

// LevelResult is what finishing a level changed in the save.
type LevelResult struct {
	FinalTimeMs int64
	IsNewRecord bool

	WorldCompleted     bool
	WorldID            string
	RescuedCharacterID string
	TotalTimeMs        int64 // sum of the world's best times when it completes
}

// CompleteLevel records a finished level in the slot in one read-modify-write:
// completion, best time, map cursor and, for the last level of a world, the
// world completion and the rescued character.
func CompleteLevel(repo Repository, slotID, levelIndex int, finalMs int64, now time.Time) (LevelResult, error) {
	result := LevelResult{FinalTimeMs: finalMs}
	world, inWorld := cfg.WorldForLevel(levelIndex)

	_, err := Update(repo, slotID, func(slot *SaveSlot) (*SaveSlot, error) {
		if slot == nil {
			slot = NewSlot(slotID, fmt.Sprintf("Slot %d", slotID), now)
		}
		slot.LastPlayedAt = now
		slot.CompleteLevel(levelIndex)
		result.IsNewRecord = slot.RecordBestTime(levelIndex, finalMs)

		if !inWorld {
			return slot, nil
		}
		result.WorldID = world.ID

		last := world.FirstLevelIndex + len(world.Levels) - 1
		next := levelIndex + 1
		if next > last {
			next = last
		}
		slot.Cursor = Cursor{WorldID: world.ID, LevelIndex: next}

		if levelIndex == last && !slot.HasCompletedWorld(world.ID) {
			slot.CompleteWorld(world.ID)
			slot.Unlock(world.RescuedCharacterID)
			result.WorldCompleted = true
			result.RescuedCharacterID = world.RescuedCharacterID
			for i := world.FirstLevelIndex; i <= last; i++ {
				ms, _ := slot.BestTime(i)
				result.TotalTimeMs += ms
			}
		}
		return slot, nil
	})
	if err != nil {
		return LevelResult{}, fmt.Errorf("complete level %d: %w", levelIndex, err)
	}
	return result, nil
}

// CreateSlot starts a new record in an empty or reused slot and selects it.
func CreateSlot(repo Repository, id int, name string, now time.Time) (*SaveSlot, error) {
	slot := NewSlot(id, name, now)
	if !ValidSlot(id) {
		return nil, fmt.Errorf("create slot %d: %w", id, ErrInvalidSlot)
	}
	if err := repo.Save(slot); err != nil {
		return nil, err
	}
	if err := repo.SetActiveSlot(id); err != nil {
		return nil, err
	}
	return slot, nil
}
