package systems

import (
	"math"

	"github.com/automoto/tilehop/components"
	"github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera follows the player with a small look-ahead and keeps the view
// inside the level. Levels smaller than the screen are centred.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	level, ok := levelOf(e)
	if !ok {
		return
	}
	obj := components.Object.Get(playerEntry)
	m := components.Movement.Get(playerEntry)

	// Only update look-ahead when player is moving - freeze offset when idle
	if math.Abs(m.VX) > config.Camera.LookAheadSpeedThreshold {
		target := m.Facing * config.Camera.LookAheadDistanceX
		camera.LookAheadX += (target - camera.LookAheadX) * config.Camera.LookAheadSmoothing
	}

	p := center(obj.Object)
	targetX := clampView(p.X+camera.LookAheadX, float64(config.C.Width), level.Data.PixelWidth)
	targetY := clampView(p.Y, float64(config.C.Height), level.Data.PixelHeight)

	// Follow faster during the respawn arc
	smoothing := config.Camera.FollowSmoothing
	if components.Player.Get(playerEntry).Damage == config.DamageRespawning {
		smoothing = math.Max(smoothing, 0.3)
	}
	camera.Position.X += (targetX - camera.Position.X) * smoothing
	camera.Position.Y += (targetY - camera.Position.Y) * smoothing
}

// clampView keeps a view of size screen centred at v inside [0, level].
func clampView(v, screen, level float64) float64 {
	if level <= screen {
		return level / 2
	}
	return math.Max(screen/2, math.Min(level-screen/2, v))
}

// ViewOffset returns the translation from world to screen coordinates.
func ViewOffset(e *ecs.ECS, width, height int) (float64, float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(cameraEntry)
	return float64(width)/2 - camera.Position.X, float64(height)/2 - camera.Position.Y
}
