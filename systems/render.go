package systems

import (
	"image/color"
	"math"

	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/shared/leveldata"
	"github.com/automoto/tilehop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp      = &ebiten.DrawImageOptions{}
	playerImage *ebiten.Image
	playerColor color.RGBA
)

// cullPadding keeps shapes from popping at the screen edges.
const cullPadding = 32.0

// NewDrawBackground returns a renderer for the pre-rendered level image.
func NewDrawBackground(background *ebiten.Image) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if background == nil {
			return
		}
		camX, camY := ViewOffset(e, screen.Bounds().Dx(), screen.Bounds().Dy())
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(math.Round(camX), math.Round(camY))
		screen.DrawImage(background, drawOp)
	}
}

// DrawEntities draws markers, enemies, projectiles and the player as flat
// shapes over the background.
func DrawEntities(e *ecs.ECS, screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX, camY := ViewOffset(e, width, height)
	visible := func(obj *resolv.Object) bool {
		x, y := obj.X+camX, obj.Y+camY
		return x+obj.W >= -cullPadding && x <= float64(width)+cullPadding &&
			y+obj.H >= -cullPadding && y <= float64(height)+cullPadding
	}
	fill := func(obj *resolv.Object, c color.Color) {
		if visible(obj) {
			vector.FillRect(screen, float32(obj.X+camX), float32(obj.Y+camY), float32(obj.W), float32(obj.H), c, false)
		}
	}

	tags.Checkpoint.Each(e.World, func(entry *donburi.Entry) {
		c := cfg.Debug.Checkpoint
		if components.Checkpoint.Get(entry).Activated {
			c = cfg.Debug.CheckpointOn
		}
		fill(components.Object.Get(entry).Object, c)
	})

	tags.Goal.Each(e.World, func(entry *donburi.Entry) {
		fill(components.Object.Get(entry).Object, cfg.Debug.Goal)
	})

	tags.Hazard.Each(e.World, func(entry *donburi.Entry) {
		c := cfg.Debug.Spike
		if components.Hazard.Get(entry).Kind == leveldata.HazardTrampoline {
			c = cfg.Debug.Trampoline
		}
		fill(components.Object.Get(entry).Object, c)
	})

	tags.Collectible.Each(e.World, func(entry *donburi.Entry) {
		if components.Collectible.Get(entry).Collected {
			return
		}
		obj := components.Object.Get(entry).Object
		if visible(obj) {
			vector.DrawFilledCircle(screen, float32(obj.X+obj.W/2+camX), float32(obj.Y+obj.H/2+camY), float32(obj.W/2), cfg.Debug.Collectible, true)
		}
	})

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		c := cfg.Debug.Enemy
		if enemy.Stunned {
			c = cfg.Debug.Stunned
		}
		fill(components.Object.Get(entry).Object, c)
		if enemy.Head != nil {
			fill(enemy.Head, color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A})
		}
	})

	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		if components.Projectile.Get(entry).Waiting || components.Sprite.Get(entry).Hidden {
			return
		}
		obj := components.Object.Get(entry).Object
		if visible(obj) {
			vector.DrawFilledCircle(screen, float32(obj.X+obj.W/2+camX), float32(obj.Y+obj.H/2+camY), float32(obj.W/2), cfg.Debug.Projectile, true)
		}
	})

	drawPlayer(e, screen, camX, camY)
}

func drawPlayer(e *ecs.ECS, screen *ebiten.Image, camX, camY float64) {
	entry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	sprite := components.Sprite.Get(entry)
	if sprite.Hidden {
		return
	}
	obj := components.Object.Get(entry).Object

	c := cfg.Debug.Player
	if level, ok := components.Level.First(e.World); ok {
		if character, ok := cfg.CharacterByID(components.Level.Get(level).CharacterID); ok {
			c = character.Color
		}
	}

	w, h := int(math.Ceil(obj.W)), int(math.Ceil(obj.H))
	if playerImage == nil || playerImage.Bounds().Dx() != w || playerImage.Bounds().Dy() != h || playerColor != c {
		playerImage = ebiten.NewImage(w, h)
		playerImage.Fill(c)
		playerColor = c
		// Eye marks the facing side
		vector.FillRect(playerImage, float32(w)-5, 5, 3, 3, color.Black, false)
	}

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-obj.W/2, -obj.H/2)
	if sprite.FlipX {
		drawOp.GeoM.Scale(-1, 1)
	}
	drawOp.GeoM.Rotate(sprite.Rotation)
	drawOp.GeoM.Translate(obj.X+obj.W/2+camX, obj.Y+obj.H/2+camY)
	screen.DrawImage(playerImage, drawOp)
}
