package factory

import (
	"github.com/automoto/tilehop/archetypes"
	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/shared/gamemath"
	"github.com/automoto/tilehop/shared/leveldata"
	"github.com/automoto/tilehop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an enemy from a map prefab. The body hitbox hurts, the
// head hitbox sits on top of it and can be stomped. Both are sensors.
func CreateEnemy(ecs *ecs.ECS, prefab leveldata.Prefab, firstShot float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	w, h := prefab.W, prefab.H
	if w <= 0 || h <= 0 {
		w, h = cfg.Enemy.BodyWidth, cfg.Enemy.BodyHeight
	}
	// Point prefabs are centred on the marker.
	x, y := prefab.X, prefab.Y
	if prefab.W <= 0 || prefab.H <= 0 {
		x, y = prefab.X-w/2, prefab.Y-h/2
	}
	headH := cfg.Enemy.HeadHeight

	body := resolv.NewObject(x, y, w, h, tags.ResolvEnemyBody, tags.ResolvSensor)
	body.SetShape(resolv.NewRectangle(0, 0, w, h))
	components.Object.SetValue(enemy, components.ObjectData{Object: body})

	head := resolv.NewObject(x, y-headH, w, headH, tags.ResolvEnemyHead, tags.ResolvSensor)
	head.SetShape(resolv.NewRectangle(0, 0, w, headH))

	oscRange := cfg.Enemy.OscRange
	if prefab.Range > 0 {
		oscRange = prefab.Range
	}
	interval := gamemath.ShotInterval(cfg.Enemy.ShotInterval, cfg.Enemy.ShotVariation, firstShot)

	components.Enemy.SetValue(enemy, components.EnemyData{
		SpawnX:       x,
		SpawnY:       y,
		Phase:        prefab.Phase,
		Range:        oscRange,
		Oscillates:   cfg.Enemy.Oscillate,
		Shoots:       cfg.Enemy.Shoot,
		Alive:        true,
		LastShotAt:   0,
		ShotInterval: interval,
		NextShotAt:   interval,
		Head:         head,
	})
	components.Sprite.SetValue(enemy, components.SpriteData{})

	addToSpace(ecs, enemy, body)
	addToSpace(ecs, enemy, head)

	return enemy
}
