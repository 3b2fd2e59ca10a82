package persistence

import (
	"slices"
	"time"

	cfg "github.com/automoto/tilehop/config"
)

// Cursor is the last world map position.
type Cursor struct {
	WorldID    string `json:"worldId"`
	LevelIndex int    `json:"levelIndex"`
}

// SaveSlot is one save-progress record.
type SaveSlot struct {
	ID                 int           `json:"id"`
	Name               string        `json:"name"`
	CreatedAt          time.Time     `json:"createdAt"`
	LastPlayedAt       time.Time     `json:"lastPlayedAt"`
	CompletedLevels    []int         `json:"completedLevels"`
	CompletedWorlds    []string      `json:"completedWorlds"`
	UnlockedCharacters []string      `json:"unlockedCharacters"`
	SelectedCharacter  string        `json:"selectedCharacter"`
	Cursor             Cursor        `json:"cursor"`
	BestTimes          map[int]int64 `json:"bestTimes"` // level index -> ms
}

// NewSlot returns a fresh record with the starting characters unlocked and
// the cursor on the first world.
func NewSlot(id int, name string, now time.Time) *SaveSlot {
	s := &SaveSlot{
		ID:           id,
		Name:         name,
		CreatedAt:    now,
		LastPlayedAt: now,
		BestTimes:    map[int]int64{},
	}
	for _, c := range cfg.Characters {
		if c.Unlocked {
			s.UnlockedCharacters = append(s.UnlockedCharacters, c.ID)
		}
	}
	if len(s.UnlockedCharacters) > 0 {
		s.SelectedCharacter = s.UnlockedCharacters[0]
	}
	if len(cfg.Worlds) > 0 {
		s.Cursor = Cursor{WorldID: cfg.Worlds[0].ID, LevelIndex: cfg.Worlds[0].FirstLevelIndex}
	}
	return s
}

// Clone returns a deep copy.
func (s *SaveSlot) Clone() *SaveSlot {
	c := *s
	c.CompletedLevels = slices.Clone(s.CompletedLevels)
	c.CompletedWorlds = slices.Clone(s.CompletedWorlds)
	c.UnlockedCharacters = slices.Clone(s.UnlockedCharacters)
	c.BestTimes = make(map[int]int64, len(s.BestTimes))
	for k, v := range s.BestTimes {
		c.BestTimes[k] = v
	}
	return &c
}

// RecordBestTime stores ms for the level if it beats the stored time or none
// is stored. It never overwrites a better time.
func (s *SaveSlot) RecordBestTime(level int, ms int64) bool {
	if ms < 0 {
		return false
	}
	if s.BestTimes == nil {
		s.BestTimes = map[int]int64{}
	}
	if prev, ok := s.BestTimes[level]; ok && ms >= prev {
		return false
	}
	s.BestTimes[level] = ms
	return true
}

// BestTime returns the stored best time for the level.
func (s *SaveSlot) BestTime(level int) (int64, bool) {
	ms, ok := s.BestTimes[level]
	return ms, ok
}

func (s *SaveSlot) HasCompletedLevel(level int) bool {
	return slices.Contains(s.CompletedLevels, level)
}

func (s *SaveSlot) CompleteLevel(level int) {
	if !s.HasCompletedLevel(level) {
		s.CompletedLevels = append(s.CompletedLevels, level)
		slices.Sort(s.CompletedLevels)
	}
}

func (s *SaveSlot) HasCompletedWorld(id string) bool {
	return slices.Contains(s.CompletedWorlds, id)
}

func (s *SaveSlot) CompleteWorld(id string) {
	if !s.HasCompletedWorld(id) {
		s.CompletedWorlds = append(s.CompletedWorlds, id)
	}
}

func (s *SaveSlot) IsUnlocked(character string) bool {
	return slices.Contains(s.UnlockedCharacters, character)
}

// Unlock adds a character and reports whether it was new.
func (s *SaveSlot) Unlock(character string) bool {
	if character == "" || s.IsUnlocked(character) {
		return false
	}
	s.UnlockedCharacters = append(s.UnlockedCharacters, character)
	return true
}

// SelectCharacter switches to an unlocked character.
func (s *SaveSlot) SelectCharacter(character string) bool {
	if !s.IsUnlocked(character) {
		return false
	}
	s.SelectedCharacter = character
	return true
}

// LevelUnlocked reports whether the level can be entered from the map: the
// first level of each world is open once the previous world is done, later
// levels open when their predecessor is completed.
func (s *SaveSlot) LevelUnlocked(level int) bool {
	world, ok := cfg.WorldForLevel(level)
	if !ok {
		return false
	}
	if level > world.FirstLevelIndex {
		return s.HasCompletedLevel(level - 1)
	}
	for i, w := range cfg.Worlds {
		if w.ID == world.ID {
			return i == 0 || s.HasCompletedWorld(cfg.Worlds[i-1].ID)
		}
	}
	return false
}
