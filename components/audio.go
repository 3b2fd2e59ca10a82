package components

import (
	cfg "github.com/automoto/tilehop/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sounds for the external player (singleton component).
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
