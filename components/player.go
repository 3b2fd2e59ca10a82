package components

import (
	"github.com/automoto/tilehop/config"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	State  config.StateID
	Damage config.DamageState

	Width, Height float64
	Hits          int
	Falls         int
}

var Player = donburi.NewComponentType[PlayerData]()
