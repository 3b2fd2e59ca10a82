package systems

import (
	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/shared/gamemath"
	"github.com/automoto/tilehop/systems/factory"
	"github.com/automoto/tilehop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies recovers stunned enemies, moves oscillating ones and fires
// for shooters whose interval has elapsed.
func UpdateEnemies(e *ecs.ECS) {
	clock := clockOf(e)
	now := clock.Now
	dt := deltaSeconds(clock)

	var target gamemath.Vec
	playerEntry, hasPlayer := tags.Player.First(e.World)
	if hasPlayer {
		target = center(components.Object.Get(playerEntry).Object)
	}

	var shooters []*donburi.Entry
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		if !enemy.Alive {
			return
		}

		if enemy.Stunned && now > enemy.StunExpiry {
			enemy.Stunned = false
			enemy.NextShotAt = now + cfg.Enemy.RecoverShotDelay
		}

		if enemy.Oscillates {
			factor := 1.0
			if enemy.Stunned {
				factor = cfg.Enemy.StunOscFactor
			}
			enemy.OscTime += dt * factor
			y := gamemath.Oscillate(enemy.SpawnY, enemy.OscTime, cfg.Enemy.OscSpeed, enemy.Phase, enemy.Range)
			placeEnemy(entry, enemy, y)
		}

		if enemy.Shoots && !enemy.Stunned && hasPlayer && now > enemy.NextShotAt {
			shooters = append(shooters, entry)
		}
	})

	for _, entry := range shooters {
		fireAt(e, entry, target)
	}
}

// placeEnemy moves the body to y and keeps the head on top of it.
func placeEnemy(entry *donburi.Entry, enemy *components.EnemyData, y float64) {
	body := components.Object.Get(entry)
	setPosition(body.Object, body.X, y)
	if enemy.Head != nil {
		setPosition(enemy.Head, body.X, y-enemy.Head.H)
	}
}

// fireAt launches a projectile from the enemy's centre toward target and
// draws the next interval.
func fireAt(e *ecs.ECS, entry *donburi.Entry, target gamemath.Vec) {
	enemy := components.Enemy.Get(entry)
	now := clockOf(e).Now
	origin := center(components.Object.Get(entry).Object)

	p := factory.CreateProjectile(e, entry.Entity(), origin, target, cfg.Projectile.Speed, components.ProjectileDespawn)
	enemy.Projectiles = append(enemy.Projectiles, p.Entity())

	u := 0.0
	if levelData, ok := levelOf(e); ok && levelData.Rand != nil {
		u = levelData.Rand.Float64()*2 - 1
	}
	enemy.LastShotAt = now
	enemy.ShotInterval = gamemath.ShotInterval(cfg.Enemy.ShotInterval, cfg.Enemy.ShotVariation, u)
	enemy.NextShotAt = now + enemy.ShotInterval

	Emit(e, components.Event{Kind: components.EventShot, X: origin.X, Y: origin.Y})
	PlaySFX(e, cfg.SoundShoot)
}

// StunEnemy stuns an alive, unstunned enemy. Stomping an already stunned
// enemy does nothing until it recovers.
func StunEnemy(e *ecs.ECS, entry *donburi.Entry) bool {
	if !entry.HasComponent(components.Enemy) {
		return false
	}
	enemy := components.Enemy.Get(entry)
	if !enemy.Alive || enemy.Stunned {
		return false
	}
	clock := clockOf(e)
	enemy.Stunned = true
	enemy.StunExpiry = clock.Now + cfg.Enemy.StunDuration
	enemy.StompedFrame = clock.Frame

	obj := components.Object.Get(entry)
	Emit(e, components.Event{Kind: components.EventStomp, X: obj.X, Y: obj.Y})
	PlaySFX(e, cfg.SoundStomp)
	return true
}
