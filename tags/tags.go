package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	Wall        = donburi.NewTag().SetName("Wall")
	Enemy       = donburi.NewTag().SetName("Enemy")
	Projectile  = donburi.NewTag().SetName("Projectile")
	Checkpoint  = donburi.NewTag().SetName("Checkpoint")
	Collectible = donburi.NewTag().SetName("Collectible")
	Hazard      = donburi.NewTag().SetName("Hazard")
	Goal        = donburi.NewTag().SetName("Goal")
)

// Resolv tags for physics collision
const (
	ResolvSolid       = "solid"
	ResolvSensor      = "sensor"
	ResolvPlayer      = "Player"
	ResolvEnemyHead   = "enemyhead"
	ResolvEnemyBody   = "enemybody"
	ResolvBall        = "ball"
	ResolvCheckpoint  = "checkpoint"
	ResolvCollectible = "collectible"
	ResolvSpike       = "spike"
	ResolvTrampoline  = "trampoline"
	ResolvGoal        = "goal"
)
