package components

import (
	"sort"
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DeferredAction runs once the game clock reaches At.
type DeferredAction struct {
	At    time.Duration
	Owner donburi.Entity
	Name  string
	Run   func(e *ecs.ECS)

	seq uint64
}

// SchedulerData is the session's deferred-action queue (singleton component).
// Actions are polled once per frame and cleared on teardown.
type SchedulerData struct {
	pending []DeferredAction
	seq     uint64
}

// Schedule queues run to fire at the given clock time.
func (s *SchedulerData) Schedule(at time.Duration, owner donburi.Entity, name string, run func(e *ecs.ECS)) {
	s.seq++
	s.pending = append(s.pending, DeferredAction{At: at, Owner: owner, Name: name, Run: run, seq: s.seq})
}

// Cancel drops every pending action of owner and returns how many were dropped.
func (s *SchedulerData) Cancel(owner donburi.Entity) int {
	return s.filter(func(a DeferredAction) bool { return a.Owner == owner })
}

// CancelNamed drops owner's pending actions with the given name.
func (s *SchedulerData) CancelNamed(owner donburi.Entity, name string) int {
	return s.filter(func(a DeferredAction) bool { return a.Owner == owner && a.Name == name })
}

// Pending reports whether owner has an action with the given name queued.
func (s *SchedulerData) Pending(owner donburi.Entity, name string) bool {
	for _, a := range s.pending {
		if a.Owner == owner && a.Name == name {
			return true
		}
	}
	return false
}

// Clear drops everything.
func (s *SchedulerData) Clear() {
	s.pending = nil
}

// Len returns the number of pending actions.
func (s *SchedulerData) Len() int {
	return len(s.pending)
}

// PopDue removes and returns the actions due at now, earliest first and in
// scheduling order for equal times.
func (s *SchedulerData) PopDue(now time.Duration) []DeferredAction {
	var due []DeferredAction
	kept := s.pending[:0]
	for _, a := range s.pending {
		if a.At <= now {
			due = append(due, a)
		} else {
			kept = append(kept, a)
		}
	}
	s.pending = kept
	sort.Slice(due, func(i, j int) bool {
		if due[i].At != due[j].At {
			return due[i].At < due[j].At
		}
		return due[i].seq < due[j].seq
	})
	return due
}

func (s *SchedulerData) filter(drop func(DeferredAction) bool) int {
	kept := s.pending[:0]
	n := 0
	for _, a := range s.pending {
		if drop(a) {
			n++
			continue
		}
		kept = append(kept, a)
	}
	s.pending = kept
	return n
}

var Scheduler = donburi.NewComponentType[SchedulerData]()
