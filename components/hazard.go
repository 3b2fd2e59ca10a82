package components

import (
	"time"

	"github.com/automoto/tilehop/shared/leveldata"
	"github.com/yohamta/donburi"
)

type HazardData struct {
	Kind          leveldata.HazardKind
	LastTriggerAt time.Duration
}

var Hazard = donburi.NewComponentType[HazardData]()

type GoalData struct {
	Reached bool
}

var Goal = donburi.NewComponentType[GoalData]()
