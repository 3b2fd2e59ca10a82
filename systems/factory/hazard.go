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

// CreateHazard builds a spike (sensor) or a trampoline. Trampolines are solid
// so the player can stand on them between bounces.
func CreateHazard(ecs *ecs.ECS, h leveldata.Hazard) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(ecs)

	var obj *resolv.Object
	switch h.Kind {
	case leveldata.HazardTrampoline:
		obj = resolv.NewObject(h.X, h.Y, h.W, h.H, tags.ResolvTrampoline, tags.ResolvSolid)
	default:
		obj = resolv.NewObject(h.X, h.Y, h.W, h.H, tags.ResolvSpike, tags.ResolvSensor)
	}
	obj.SetShape(resolv.NewRectangle(0, 0, h.W, h.H))
	components.Object.SetValue(hazard, components.ObjectData{Object: obj})
	components.Hazard.SetValue(hazard, components.HazardData{
		Kind:          h.Kind,
		LastTriggerAt: Never,
	})

	addToSpace(ecs, hazard, obj)
	return hazard
}
