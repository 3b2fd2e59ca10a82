package components

import (
	"time"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	SpawnX, SpawnY float64
	Phase          float64
	Range          float64
	OscTime        float64 // accumulated oscillation time, slowed while stunned

	Oscillates bool
	Shoots     bool

	Alive      bool
	Stunned    bool
	StunExpiry time.Duration

	LastShotAt   time.Duration
	NextShotAt   time.Duration
	ShotInterval time.Duration

	StompedFrame uint64 // frame of the last stomp, suppresses a same-frame body hit
	Head         *resolv.Object
	Projectiles  []donburi.Entity
}

var Enemy = donburi.NewComponentType[EnemyData]()
