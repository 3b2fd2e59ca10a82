package factory

import (
	"math/rand"

	"github.com/automoto/tilehop/archetypes"
	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/shared/gamemath"
	"github.com/automoto/tilehop/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the per-session singletons.
func CreateSession(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Session.Spawn(ecs)
}

// CreateLevel builds every body and entity of a parsed level: static
// colliders, markers, the player, then prefabs that need the player to aim.
func CreateLevel(ecs *ecs.ECS, data *leveldata.Level, levelIndex int, worldID string, seed int64) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	rng := rand.New(rand.NewSource(seed))

	components.Level.SetValue(level, components.LevelData{
		Data:       data,
		LevelIndex: levelIndex,
		WorldID:    worldID,
		Total:      len(data.Collectibles),
		Rand:       rng,
	})

	cell := cfg.Level.SpaceCellSize
	CreateSpace(ecs, int(data.PixelWidth), int(data.PixelHeight), cell, cell)

	mode := cfg.Level.Colliders
	if mode != cfg.CollidersObjects {
		for _, r := range data.TileSolids {
			CreateWall(ecs, r.X, r.Y, r.W, r.H)
		}
	}
	if mode != cfg.CollidersTiles {
		for _, r := range data.Rects {
			CreateWall(ecs, r.X, r.Y, r.W, r.H)
		}
		for _, p := range data.Polygons {
			CreatePolygonWall(ecs, p)
		}
	}

	for _, m := range data.Checkpoints {
		CreateCheckpoint(ecs, m)
	}
	for _, m := range data.Collectibles {
		CreateCollectible(ecs, m)
	}
	for _, h := range data.Hazards {
		CreateHazard(ecs, h)
	}
	if data.Goal != nil {
		CreateGoal(ecs, *data.Goal)
	}

	player := CreatePlayer(ecs, data.Spawn.X, data.Spawn.Y)
	playerObj := components.Object.Get(player)
	target := gamemath.Vec{X: playerObj.X + playerObj.W/2, Y: playerObj.Y + playerObj.H/2}
	CreateCamera(ecs, target.X, target.Y)

	for _, p := range data.Prefabs {
		switch p.Kind {
		case leveldata.PrefabEnemy:
			CreateEnemy(ecs, p, rng.Float64()*2-1)
		case leveldata.PrefabBallSource:
			CreateProjectile(ecs, donburi.Null, p.Center(), target, cfg.Projectile.BallSpeed, components.ProjectileRespawn)
		}
	}

	return level
}
