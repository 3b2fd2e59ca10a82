package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// MovementData is the player's kinematic and jump state. Velocities are in
// units per second.
type MovementData struct {
	VX, VY float64

	Direction    float64 // -1, 0 or 1 as held this frame
	CurrentSpeed float64
	Facing       float64

	GroundContacts int
	LastGroundedAt time.Duration
	JumpPressedAt  time.Duration
	IsJumping      bool
	WasGrounded    bool

	// Frozen players are moved kinematically and skip integration and contacts.
	Frozen bool
}

// OnGround reports whether any ground contact is active.
func (m *MovementData) OnGround() bool {
	return m.GroundContacts > 0
}

var Movement = donburi.NewComponentType[MovementData]()
