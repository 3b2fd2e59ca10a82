package systems

import "github.com/yohamta/donburi/ecs"

// Gameplay lists the simulation systems in frame order: the clock runs due
// actions, physics moves the player and collects contacts, the dispatcher
// reacts to them, and movement reads the resulting ground count. The camera
// follows last.
func Gameplay() []func(*ecs.ECS) {
	return []func(*ecs.ECS){
		UpdateClock,
		UpdatePhysics,
		UpdateContacts,
		UpdateMovement,
		UpdateEnemies,
		UpdateProjectiles,
		UpdateRespawn,
		UpdateBounds,
		UpdateCamera,
	}
}
