package components

import (
	"github.com/automoto/tilehop/shared/gamemath"
	"github.com/yohamta/donburi"
)

type ProjectileMode int

const (
	ProjectileDespawn ProjectileMode = iota
	ProjectileRespawn
)

// ProjectileData is a sensor that travels in a straight line. The velocity is
// fixed when launched and never re-aimed.
type ProjectileData struct {
	Mode     ProjectileMode
	Origin   gamemath.Vec // centre the projectile launches from
	Velocity gamemath.Vec
	Speed    float64
	Owner    donburi.Entity
	Waiting  bool // out of play until a relaunch fires
}

var Projectile = donburi.NewComponentType[ProjectileData]()
