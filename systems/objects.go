package systems

import (
	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// clockOf returns the session clock. Systems only run inside a session, so
// the singleton always exists.
func clockOf(e *ecs.ECS) *components.ClockData {
	return components.Clock.Get(components.Clock.MustFirst(e.World))
}

func schedulerOf(e *ecs.ECS) *components.SchedulerData {
	return components.Scheduler.Get(components.Scheduler.MustFirst(e.World))
}

func levelOf(e *ecs.ECS) (*components.LevelData, bool) {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Level.Get(entry), true
}

func spaceOf(e *ecs.ECS) (*resolv.Space, bool) {
	entry, ok := components.Space.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Space.Get(entry), true
}

// Emit queues an event for the host.
func Emit(e *ecs.ECS, ev components.Event) {
	entry, ok := components.Events.First(e.World)
	if !ok {
		return
	}
	events := components.Events.Get(entry)
	events.Queue = append(events.Queue, ev)
}

// DrainEvents returns and clears the queued events.
func DrainEvents(e *ecs.ECS) []components.Event {
	entry, ok := components.Events.First(e.World)
	if !ok {
		return nil
	}
	events := components.Events.Get(entry)
	out := events.Queue
	events.Queue = nil
	return out
}

// deltaSeconds returns the frame delta in seconds, capped so a stalled frame
// cannot tunnel bodies through thin colliders.
func deltaSeconds(clock *components.ClockData) float64 {
	dt := clock.Delta.Seconds()
	if limit := cfg.Physics.MaxDeltaSeconds; limit > 0 && dt > limit {
		dt = limit
	}
	return dt
}

// center returns the centre of an object's bounding box.
func center(obj *resolv.Object) gamemath.Vec {
	return gamemath.Vec{X: obj.X + obj.W/2, Y: obj.Y + obj.H/2}
}

// setPosition moves obj's top-left corner and syncs its shape and cells.
func setPosition(obj *resolv.Object, x, y float64) {
	obj.X = x
	obj.Y = y
	obj.Update()
}

// entryOf returns the entity a resolv object belongs to.
func entryOf(obj *resolv.Object) (*donburi.Entry, bool) {
	entry, ok := obj.Data.(*donburi.Entry)
	if !ok || entry == nil || !entry.Valid() {
		return nil, false
	}
	return entry, true
}

// removeFromSpace takes obj out of the space if it is in one.
func removeFromSpace(obj *resolv.Object) {
	if obj != nil && obj.Space != nil {
		obj.Space.Remove(obj)
	}
}
