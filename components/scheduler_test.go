package components

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestSchedulerPopsDueInOrder(t *testing.T) {
	var s SchedulerData
	var order []string
	add := func(at time.Duration, name string) {
		s.Schedule(at, donburi.Null, name, func(*ecs.ECS) { order = append(order, name) })
	}
	add(30*time.Millisecond, "c")
	add(10*time.Millisecond, "a")
	add(10*time.Millisecond, "b")
	add(50*time.Millisecond, "late")

	for _, a := range s.PopDue(30 * time.Millisecond) {
		a.Run(nil)
	}

	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, 1, s.Len())
}

func TestSchedulerCancelByOwner(t *testing.T) {
	w := donburi.NewWorld()
	a := w.Create(Clock)
	b := w.Create(Clock)

	var s SchedulerData
	s.Schedule(time.Second, a, "relaunch", func(*ecs.ECS) {})
	s.Schedule(time.Second, a, "blink", func(*ecs.ECS) {})
	s.Schedule(time.Second, b, "relaunch", func(*ecs.ECS) {})

	assert.True(t, s.Pending(a, "relaunch"))
	assert.Equal(t, 1, s.CancelNamed(a, "relaunch"))
	assert.False(t, s.Pending(a, "relaunch"))
	assert.Equal(t, 1, s.Cancel(a))
	assert.Equal(t, 1, s.Len())

	s.Clear()
	assert.Empty(t, s.PopDue(time.Hour))
}
