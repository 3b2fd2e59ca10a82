package config

// StateID is the animation signal the movement core publishes for the player.
type StateID int

const (
	StateNone StateID = iota
	Idle
	Walk
	Rise
	Fall
	Thrown
)

var stateNames = map[StateID]string{
	StateNone: "none",
	Idle:      "idle",
	Walk:      "walk",
	Rise:      "rise",
	Fall:      "fall",
	Thrown:    "thrown",
}

func (s StateID) String() string {
	return stateNames[s]
}

// DamageState is the player's damage cycle.
type DamageState int

const (
	DamageNormal DamageState = iota
	DamageRespawning
	DamageInvulnerable
)

func (d DamageState) String() string {
	switch d {
	case DamageRespawning:
		return "respawning"
	case DamageInvulnerable:
		return "invulnerable"
	default:
		return "normal"
	}
}
