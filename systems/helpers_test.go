package systems

import (
	"testing"
	"time"

	"github.com/automoto/tilehop/components"
	"github.com/automoto/tilehop/shared/gamemath"
	"github.com/automoto/tilehop/shared/leveldata"
	"github.com/automoto/tilehop/systems/factory"
	"github.com/automoto/tilehop/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const frame = 16 * time.Millisecond

// flatLevel is 640x240 with a floor whose top is at y=200 and the spawn on it.
func flatLevel() *leveldata.Level {
	return &leveldata.Level{
		Name:        "flat",
		Width:       40,
		Height:      15,
		TileWidth:   16,
		TileHeight:  16,
		PixelWidth:  640,
		PixelHeight: 240,
		Rects:       []leveldata.Rect{{X: 0, Y: 200, W: 640, H: 40}},
		Spawn:       gamemath.Vec{X: 100, Y: 200},
	}
}

func newWorld(t *testing.T, data *leveldata.Level) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSession(e)
	factory.CreateLevel(e, data, 0, "meadow", 1)
	for _, s := range Gameplay() {
		e.AddSystem(s)
	}
	return e
}

// step runs one frame with the given input.
func step(e *ecs.ECS, in components.InputState) {
	*components.Input.Get(components.Input.MustFirst(e.World)) = in
	clockOf(e).Delta = frame
	e.Update()
}

func run(e *ecs.ECS, frames int, in components.InputState) {
	for i := 0; i < frames; i++ {
		step(e, in)
	}
}

func playerOf(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	player, ok := tags.Player.First(e.World)
	require.True(t, ok)
	return player
}

// placePlayer puts the player's top-left corner at x, y with the given
// vertical speed.
func placePlayer(e *ecs.ECS, player *donburi.Entry, x, y, vy float64) {
	obj := components.Object.Get(player)
	setPosition(obj.Object, x, y)
	components.Movement.Get(player).VY = vy
}

func eventsOf(e *ecs.ECS, kind components.EventKind) []components.Event {
	var out []components.Event
	for _, ev := range components.Events.Get(components.Events.MustFirst(e.World)).Queue {
		if ev.Kind == kind {
			out = append(out, ev)
		}
	}
	return out
}

func clearEvents(e *ecs.ECS) {
	DrainEvents(e)
	DrainSFX(e)
}
