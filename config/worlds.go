package config

import "image/color"

// WorldConfig describes a group of consecutive levels. Finishing the last one
// rescues a character.
type WorldConfig struct {
	ID                 string
	Name               string
	Levels             []string // level files under the levels directory
	FirstLevelIndex    int      // global index of Levels[0]
	RescuedCharacterID string
}

// CharacterConfig describes a playable character.
type CharacterConfig struct {
	ID       string
	Name     string
	Unlocked bool // available from the start
	Color    color.RGBA
}

var (
	Worlds     []WorldConfig
	Characters []CharacterConfig
	LevelsDir  = "levels"
)

func init() {
	Worlds = []WorldConfig{
		{
			ID:                 "meadow",
			Name:               "Meadow",
			Levels:             []string{"level_01.tmx", "level_02.tmx"},
			FirstLevelIndex:    0,
			RescuedCharacterID: "pip",
		},
	}

	Characters = []CharacterConfig{
		{ID: "rocky", Name: "Rocky", Unlocked: true, Color: color.RGBA{R: 240, G: 200, B: 60, A: 255}},
		{ID: "pip", Name: "Pip", Color: color.RGBA{R: 120, G: 220, B: 140, A: 255}},
	}
}

// WorldByID returns the world with the given id.
func WorldByID(id string) (WorldConfig, bool) {
	for _, w := range Worlds {
		if w.ID == id {
			return w, true
		}
	}
	return WorldConfig{}, false
}

// WorldForLevel returns the world containing the global level index.
func WorldForLevel(levelIndex int) (WorldConfig, bool) {
	for _, w := range Worlds {
		if levelIndex >= w.FirstLevelIndex && levelIndex < w.FirstLevelIndex+len(w.Levels) {
			return w, true
		}
	}
	return WorldConfig{}, false
}

// CharacterByID returns the character with the given id.
func CharacterByID(id string) (CharacterConfig, bool) {
	for _, c := range Characters {
		if c.ID == id {
			return c, true
		}
	}
	return CharacterConfig{}, false
}
