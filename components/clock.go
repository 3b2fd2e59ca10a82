package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the session's monotonic game clock (singleton component).
type ClockData struct {
	Now   time.Duration
	Delta time.Duration
	Frame uint64
}

var Clock = donburi.NewComponentType[ClockData]()
