package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every body in the space and prints the player's
// movement state. It is a no-op unless cfg.Debug.Enabled is set.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Enabled {
		return
	}
	space, ok := spaceOf(e)
	if !ok {
		return
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX, camY := ViewOffset(e, width, height)

	for _, obj := range space.Objects() {
		x, y := obj.X+camX, obj.Y+camY
		if x+obj.W < 0 || x > float64(width) || y+obj.H < 0 || y > float64(height) {
			continue
		}

		var c color.Color = cfg.Debug.Sensor
		switch {
		case obj.HasTags(tags.ResolvSolid):
			c = cfg.Debug.SolidColor
		case obj.HasTags(tags.ResolvPlayer):
			c = cfg.Debug.Player
		case obj.HasTags(tags.ResolvEnemyHead) || obj.HasTags(tags.ResolvEnemyBody):
			c = cfg.Debug.Enemy
		case obj.HasTags(tags.ResolvBall):
			c = cfg.Debug.Projectile
		}
		vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), 1, c, false)
	}

	player, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	m := components.Movement.Get(player)
	p := components.Player.Get(player)
	msg := fmt.Sprintf("state %s  damage %s\nvx %.0f vy %.0f  ground %d  jumping %t\nbodies %d  tps %.0f",
		p.State, p.Damage, m.VX, m.VY, m.GroundContacts, m.IsJumping, len(space.Objects()), ebiten.ActualTPS())
	ebitenutil.DebugPrintAt(screen, msg, 4, height-48)
}
