package components

import (
	"time"

	"github.com/automoto/tilehop/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// RespawnData tracks the thrown-back-to-checkpoint animation and the
// invulnerability window that follows it.
type RespawnData struct {
	Arc      *gween.Tween
	Start    gamemath.Vec // top-left of the player when hit
	End      gamemath.Vec
	Height   float64
	Progress float64

	InvulnStart time.Duration
}

var Respawn = donburi.NewComponentType[RespawnData]()
