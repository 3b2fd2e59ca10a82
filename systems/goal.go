package systems

import (
	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ReachGoal completes the level. The final time is the session clock when the
// goal was touched.
func ReachGoal(e *ecs.ECS, entry *donburi.Entry) bool {
	if !entry.HasComponent(components.Goal) {
		return false
	}
	goal := components.Goal.Get(entry)
	if goal.Reached {
		return false
	}
	levelData, ok := levelOf(e)
	if !ok || levelData.Completed {
		return false
	}
	goal.Reached = true

	now := clockOf(e).Now
	levelData.Completed = true
	levelData.FinishedAt = now

	obj := components.Object.Get(entry)
	Emit(e, components.Event{
		Kind:        components.EventLevelComplete,
		X:           obj.X,
		Y:           obj.Y,
		FinalTimeMs: now.Milliseconds(),
	})
	PlaySFX(e, cfg.SoundGoal)
	return true
}
