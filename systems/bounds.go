package systems

import (
	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBounds teleports a player who fell below the level back to the
// respawn point. Falling out is not damage: no arc and no invulnerability.
func UpdateBounds(e *ecs.ECS) {
	player, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	m := components.Movement.Get(player)
	if m.Frozen {
		return
	}
	levelData, ok := levelOf(e)
	if !ok {
		return
	}
	obj := components.Object.Get(player)
	if obj.Y <= levelData.Data.PixelHeight+cfg.Level.FallMargin {
		return
	}

	feetX, feetY := levelData.RespawnPoint()
	setPosition(obj.Object, feetX-obj.W/2, feetY-obj.H)
	ResetMovement(m, &cfg.Movement)
	components.Player.Get(player).Falls++

	Emit(e, components.Event{Kind: components.EventFellOut, X: feetX, Y: feetY})
}
