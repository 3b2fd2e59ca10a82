package components

import (
	"math/rand"
	"time"

	"github.com/automoto/tilehop/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Data             *leveldata.Level
	LevelIndex       int
	WorldID          string
	CharacterID      string
	ActiveCheckpoint *ActiveCheckpointData // Last activated checkpoint for respawn

	Collected  int
	Total      int
	Completed  bool
	FinishedAt time.Duration

	Rand *rand.Rand
}

// RespawnPoint returns the feet position the player returns to.
func (l *LevelData) RespawnPoint() (float64, float64) {
	if l.ActiveCheckpoint != nil {
		return l.ActiveCheckpoint.SpawnX, l.ActiveCheckpoint.SpawnY
	}
	return l.Data.Spawn.X, l.Data.Spawn.Y
}

var Level = donburi.NewComponentType[LevelData]()
