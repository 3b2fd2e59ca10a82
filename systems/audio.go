package systems

import (
	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
	"github.com/yohamta/donburi/ecs"
)

// PlaySFX queues a sound effect. Playback belongs to the host; the session
// hands the queue over every frame.
func PlaySFX(e *ecs.ECS, id cfg.SoundID) {
	if id == cfg.SoundNone {
		return
	}
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audio := components.Audio.Get(entry)
	audio.PendingSFX = append(audio.PendingSFX, id)
}

// DrainSFX returns and clears the queued sounds.
func DrainSFX(e *ecs.ECS) []cfg.SoundID {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return nil
	}
	audio := components.Audio.Get(entry)
	out := audio.PendingSFX
	audio.PendingSFX = nil
	return out
}
