package factory

import (
	"math"

	"github.com/automoto/tilehop/archetypes"
	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/shared/gamemath"
	"github.com/automoto/tilehop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProjectile spawns a sensor centred on origin, travelling at speed
// toward target. The direction is fixed here.
func CreateProjectile(ecs *ecs.ECS, owner donburi.Entity, origin, target gamemath.Vec, speed float64, mode components.ProjectileMode) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	size := cfg.Projectile.Size
	obj := resolv.NewObject(origin.X-size/2, origin.Y-size/2, size, size, tags.ResolvBall, tags.ResolvSensor)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	components.Object.SetValue(p, components.ObjectData{Object: obj})

	velocity := gamemath.Aim(origin, target, speed)
	components.Projectile.SetValue(p, components.ProjectileData{
		Mode:     mode,
		Origin:   origin,
		Velocity: velocity,
		Speed:    speed,
		Owner:    owner,
	})
	components.Sprite.SetValue(p, components.SpriteData{
		Rotation: math.Atan2(velocity.Y, velocity.X),
	})

	addToSpace(ecs, p, obj)

	return p
}
