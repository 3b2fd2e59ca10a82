package systems

import (
	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ActivateCheckpoint latches a checkpoint and makes it the respawn point.
// Returns false if it was already active.
func ActivateCheckpoint(e *ecs.ECS, entry *donburi.Entry) bool {
	if !entry.HasComponent(components.Checkpoint) {
		return false
	}
	checkpoint := components.Checkpoint.Get(entry)
	if checkpoint.Activated {
		return false
	}
	checkpoint.Activated = true

	if levelData, ok := levelOf(e); ok {
		levelData.ActiveCheckpoint = &components.ActiveCheckpointData{
			SpawnX:       checkpoint.SpawnX,
			SpawnY:       checkpoint.SpawnY,
			CheckpointID: checkpoint.CheckpointID,
		}
	}

	Emit(e, components.Event{
		Kind: components.EventCheckpoint,
		ID:   checkpoint.CheckpointID,
		X:    checkpoint.SpawnX,
		Y:    checkpoint.SpawnY,
	})
	PlaySFX(e, cfg.SoundCheckpoint)
	return true
}
