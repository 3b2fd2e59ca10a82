package factory

import (
	"github.com/automoto/tilehop/archetypes"
	"github.com/automoto/tilehop/components"
	"github.com/automoto/tilehop/shared/leveldata"
	"github.com/automoto/tilehop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCheckpoint(ecs *ecs.ECS, m leveldata.Marker) *donburi.Entry {
	checkpoint := archetypes.Checkpoint.Spawn(ecs)

	obj := resolv.NewObject(m.X, m.Y, m.W, m.H, tags.ResolvCheckpoint, tags.ResolvSensor)
	obj.SetShape(resolv.NewRectangle(0, 0, m.W, m.H))
	components.Object.SetValue(checkpoint, components.ObjectData{Object: obj})

	feet := m.Feet()
	components.Checkpoint.SetValue(checkpoint, components.CheckpointData{
		CheckpointID: m.ID,
		SpawnX:       feet.X,
		SpawnY:       feet.Y,
	})

	addToSpace(ecs, checkpoint, obj)
	return checkpoint
}

func CreateCollectible(ecs *ecs.ECS, m leveldata.Marker) *donburi.Entry {
	c := archetypes.Collectible.Spawn(ecs)

	obj := resolv.NewObject(m.X, m.Y, m.W, m.H, tags.ResolvCollectible, tags.ResolvSensor)
	obj.SetShape(resolv.NewRectangle(0, 0, m.W, m.H))
	components.Object.SetValue(c, components.ObjectData{Object: obj})
	components.Collectible.SetValue(c, components.CollectibleData{ID: m.ID})

	addToSpace(ecs, c, obj)
	return c
}

func CreateGoal(ecs *ecs.ECS, r leveldata.Rect) *donburi.Entry {
	goal := archetypes.Goal.Spawn(ecs)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvGoal, tags.ResolvSensor)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	components.Object.SetValue(goal, components.ObjectData{Object: obj})

	addToSpace(ecs, goal, obj)
	return goal
}
