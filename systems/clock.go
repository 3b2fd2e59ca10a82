package systems

import (
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the game clock by the frame delta and runs every
// deferred action that has come due. Actions scheduled while running fire on
// a later frame at the earliest.
func UpdateClock(e *ecs.ECS) {
	clock := clockOf(e)
	clock.Now += clock.Delta
	clock.Frame++

	for _, action := range schedulerOf(e).PopDue(clock.Now) {
		if action.Run != nil {
			action.Run(e)
		}
	}
}
