package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Movement sounds
	SoundJump
	SoundLand
	SoundSuperJump
	// Gameplay sounds
	SoundStomp
	SoundHit
	SoundShoot
	SoundCheckpoint
	SoundCollect
	SoundGoal
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// SoundConfig maps sound IDs to the names the external audio layer plays.
type SoundConfig struct {
	Names      map[SoundID]string
	SampleRate int
	SFXVolume  float64
}

var Sound SoundConfig

func init() {
	Sound = SoundConfig{
		SampleRate: 44100,
		SFXVolume:  0.6,
		Names: map[SoundID]string{
			SoundJump:         "jump",
			SoundLand:         "land",
			SoundSuperJump:    "superjump",
			SoundStomp:        "stomp",
			SoundHit:          "hit",
			SoundShoot:        "shoot",
			SoundCheckpoint:   "checkpoint",
			SoundCollect:      "collect",
			SoundGoal:         "goal",
			SoundMenuNavigate: "menu_navigate",
			SoundMenuSelect:   "menu_select",
		},
	}
}

func (s SoundID) String() string {
	if name, ok := Sound.Names[s]; ok {
		return name
	}
	return "none"
}
