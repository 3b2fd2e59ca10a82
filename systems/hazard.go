package systems

import (
	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/shared/leveldata"
	"github.com/automoto/tilehop/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TriggerTrampoline launches the player upward at the super-jump velocity.
// A player already rising is left alone, and each trampoline waits out the
// retrigger lockout between launches.
func TriggerTrampoline(e *ecs.ECS, hazardEntry, player *donburi.Entry) bool {
	if !hazardEntry.HasComponent(components.Hazard) {
		return false
	}
	h := components.Hazard.Get(hazardEntry)
	if h.Kind != leveldata.HazardTrampoline {
		return false
	}
	m := components.Movement.Get(player)
	if m.VY < 0 {
		return false
	}
	now := clockOf(e).Now
	if now-h.LastTriggerAt < cfg.Hazard.RetriggerLockout {
		return false
	}
	h.LastTriggerAt = now

	m.VY = -cfg.Hazard.SuperJumpVelocity
	m.IsJumping = false
	m.LastGroundedAt = factory.Never
	m.JumpPressedAt = factory.Never

	obj := components.Object.Get(player)
	Emit(e, components.Event{Kind: components.EventSuperJump, X: obj.X, Y: obj.Y})
	PlaySFX(e, cfg.SoundSuperJump)
	return true
}
