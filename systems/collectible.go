package systems

import (
	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Collect picks up a collectible once and takes it out of the space.
func Collect(e *ecs.ECS, entry *donburi.Entry) bool {
	if !entry.HasComponent(components.Collectible) {
		return false
	}
	c := components.Collectible.Get(entry)
	if c.Collected {
		return false
	}
	c.Collected = true

	obj := components.Object.Get(entry)
	removeFromSpace(obj.Object)

	if levelData, ok := levelOf(e); ok {
		levelData.Collected++
	}
	Emit(e, components.Event{Kind: components.EventCollected, ID: c.ID, X: obj.X, Y: obj.Y})
	PlaySFX(e, cfg.SoundCollect)
	return true
}
