package systems

import (
	"math"

	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/shared/gamemath"
	"github.com/automoto/tilehop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const relaunchAction = "relaunch"

// UpdateProjectiles moves projectiles along their fixed velocity and handles
// the ones that leave the level: enemy shots are destroyed, ball sources park
// and relaunch from their origin after a delay.
func UpdateProjectiles(e *ecs.ECS) {
	levelData, ok := levelOf(e)
	if !ok {
		return
	}
	dt := deltaSeconds(clockOf(e))
	margin := cfg.Projectile.BoundsMargin
	w, h := levelData.Data.PixelWidth, levelData.Data.PixelHeight

	var gone []*donburi.Entry
	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		p := components.Projectile.Get(entry)
		if p.Waiting {
			return
		}
		obj := components.Object.Get(entry)
		setPosition(obj.Object, obj.X+p.Velocity.X*dt, obj.Y+p.Velocity.Y*dt)

		c := center(obj.Object)
		if c.X < -margin || c.X > w+margin || c.Y < -margin || c.Y > h+margin {
			gone = append(gone, entry)
		}
	})

	for _, entry := range gone {
		if components.Projectile.Get(entry).Mode == components.ProjectileRespawn {
			ParkProjectile(e, entry)
		} else {
			DestroyProjectile(e, entry)
		}
	}
}

// ParkProjectile takes a projectile out of play and schedules its relaunch.
func ParkProjectile(e *ecs.ECS, entry *donburi.Entry) {
	p := components.Projectile.Get(entry)
	if p.Waiting {
		return
	}
	p.Waiting = true
	removeFromSpace(components.Object.Get(entry).Object)
	components.Sprite.Get(entry).Hidden = true

	at := clockOf(e).Now + cfg.Projectile.RespawnDelay
	schedulerOf(e).Schedule(at, entry.Entity(), relaunchAction, func(e *ecs.ECS) {
		if e.World.Valid(entry.Entity()) {
			RelaunchProjectile(e, e.World.Entry(entry.Entity()))
		}
	})
}

// RelaunchProjectile puts a parked projectile back at its origin, aimed at
// the player's current centre.
func RelaunchProjectile(e *ecs.ECS, entry *donburi.Entry) {
	p := components.Projectile.Get(entry)
	obj := components.Object.Get(entry)

	target := gamemath.Vec{X: p.Origin.X, Y: p.Origin.Y + 1}
	if player, ok := tags.Player.First(e.World); ok {
		target = center(components.Object.Get(player).Object)
	}
	p.Velocity = gamemath.Aim(p.Origin, target, p.Speed)
	p.Waiting = false

	setPosition(obj.Object, p.Origin.X-obj.W/2, p.Origin.Y-obj.H/2)
	if space, ok := spaceOf(e); ok && obj.Space == nil {
		space.Add(obj.Object)
	}

	sprite := components.Sprite.Get(entry)
	sprite.Hidden = false
	sprite.Rotation = math.Atan2(p.Velocity.Y, p.Velocity.X)
}

// DestroyProjectile removes a projectile, its body and any pending relaunch.
func DestroyProjectile(e *ecs.ECS, entry *donburi.Entry) {
	id := entry.Entity()
	p := components.Projectile.Get(entry)

	if p.Owner != donburi.Null && e.World.Valid(p.Owner) {
		if owner := e.World.Entry(p.Owner); owner.HasComponent(components.Enemy) {
			dropShot(components.Enemy.Get(owner), id)
		}
	}

	schedulerOf(e).Cancel(id)
	removeFromSpace(components.Object.Get(entry).Object)
	e.World.Remove(id)
}

func dropShot(enemy *components.EnemyData, id donburi.Entity) {
	kept := enemy.Projectiles[:0]
	for _, shot := range enemy.Projectiles {
		if shot != id {
			kept = append(kept, shot)
		}
	}
	enemy.Projectiles = kept
}
