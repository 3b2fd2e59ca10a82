// Package persistence stores save slots. Records are JSON items in a small
// key/value store; gdata backs it in the game, a map backs it in tests.
package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"

	cfg "github.com/automoto/tilehop/config"
)

// ErrInvalidSlot is returned for slot ids outside 1..SlotCount.
var ErrInvalidSlot = errors.New("invalid save slot")

const activeSlotKey = "active_slot"

// Repository reads and writes save slots. Load returns nil for an empty slot;
// corrupt data also reads as empty.
type Repository interface {
	Load(id int) (*SaveSlot, error)
	Save(slot *SaveSlot) error
	Delete(id int) error
	ActiveSlot() (int, error)
	SetActiveSlot(id int) error
}

// itemStore is the subset of gdata.Manager the store needs.
type itemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Store is a Repository over a key/value item store.
type Store struct {
	items itemStore
}

func newStore(items itemStore) *Store {
	return &Store{items: items}
}

// ValidSlot reports whether id names a slot.
func ValidSlot(id int) bool {
	return id >= 1 && id <= cfg.Save.SlotCount
}

func slotKey(id int) string {
	return "slot_" + strconv.Itoa(id)
}

func (s *Store) Load(id int) (*SaveSlot, error) {
	if !ValidSlot(id) {
		return nil, fmt.Errorf("load slot %d: %w", id, ErrInvalidSlot)
	}
	data, err := s.items.LoadItem(slotKey(id))
	if err != nil {
		return nil, fmt.Errorf("load slot %d: %w", id, err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var slot SaveSlot
	if err := json.Unmarshal(data, &slot); err != nil {
		log.Printf("Warning: Could not parse save slot %d, treating it as empty: %v", id, err)
		return nil, nil
	}
	slot.ID = id
	if slot.BestTimes == nil {
		slot.BestTimes = map[int]int64{}
	}
	return &slot, nil
}

func (s *Store) Save(slot *SaveSlot) error {
	if slot == nil || !ValidSlot(slot.ID) {
		id := 0
		if slot != nil {
			id = slot.ID
		}
		return fmt.Errorf("save slot %d: %w", id, ErrInvalidSlot)
	}
	data, err := json.Marshal(slot)
	if err != nil {
		return fmt.Errorf("encode slot %d: %w", slot.ID, err)
	}
	if err := s.items.SaveItem(slotKey(slot.ID), data); err != nil {
		return fmt.Errorf("save slot %d: %w", slot.ID, err)
	}
	return nil
}

// Delete empties the slot. If it was the active slot the pointer is cleared.
func (s *Store) Delete(id int) error {
	if !ValidSlot(id) {
		return fmt.Errorf("delete slot %d: %w", id, ErrInvalidSlot)
	}
	if err := s.items.SaveItem(slotKey(id), nil); err != nil {
		return fmt.Errorf("delete slot %d: %w", id, err)
	}
	if active, err := s.ActiveSlot(); err == nil && active == id {
		return s.SetActiveSlot(0)
	}
	return nil
}

// ActiveSlot returns the live slot id, 0 when none is selected.
func (s *Store) ActiveSlot() (int, error) {
	data, err := s.items.LoadItem(activeSlotKey)
	if err != nil {
		return 0, fmt.Errorf("load active slot: %w", err)
	}
	if len(data) == 0 {
		return 0, nil
	}
	id, err := strconv.Atoi(string(data))
	if err != nil || !ValidSlot(id) {
		log.Printf("Warning: Ignoring invalid active slot %q", data)
		return 0, nil
	}
	return id, nil
}

// SetActiveSlot selects the live slot; 0 clears the selection.
func (s *Store) SetActiveSlot(id int) error {
	if id != 0 && !ValidSlot(id) {
		return fmt.Errorf("set active slot %d: %w", id, ErrInvalidSlot)
	}
	var data []byte
	if id != 0 {
		data = []byte(strconv.Itoa(id))
	}
	if err := s.items.SaveItem(activeSlotKey, data); err != nil {
		return fmt.Errorf("set active slot: %w", err)
	}
	return nil
}

// Update applies fn to a copy of the slot and saves the copy only if fn
// succeeds, so a failed update never leaves a half-written record. An empty
// slot is passed as nil; fn may return a new record to create it.
func Update(repo Repository, id int, fn func(slot *SaveSlot) (*SaveSlot, error)) (*SaveSlot, error) {
	current, err := repo.Load(id)
	if err != nil {
		return nil, err
	}
	var working *SaveSlot
	if current != nil {
		working = current.Clone()
	}
	updated, err := fn(working)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("update slot %d: empty result", id)
	}
	updated.ID = id
	if err := repo.Save(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// List returns every slot, nil entries for empty ones.
func List(repo Repository) ([]*SaveSlot, error) {
	slots := make([]*SaveSlot, cfg.Save.SlotCount)
	for i := range slots {
		slot, err := repo.Load(i + 1)
		if err != nil {
			return nil, err
		}
		slots[i] = slot
	}
	return slots, nil
}
