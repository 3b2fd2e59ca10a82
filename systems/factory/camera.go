package factory

import (
	"github.com/automoto/tilehop/archetypes"
	"github.com/automoto/tilehop/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera spawns the camera centred on (x, y). The first camera update
// clamps it to the level.
func CreateCamera(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Position: math.NewVec2(x, y),
	})
	return camera
}
