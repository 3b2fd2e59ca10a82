// Package session runs one play-through of a level: it owns the ECS world
// built from the map, advances it frame by frame and hands sounds and events
// to the host.
package session

import (
	"fmt"
	"io/fs"
	"log"
	"time"

	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/persistence"
	"github.com/automoto/tilehop/shared/gamemath"
	"github.com/automoto/tilehop/shared/leveldata"
	"github.com/automoto/tilehop/systems"
	"github.com/automoto/tilehop/systems/factory"
	"github.com/automoto/tilehop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SoundPlayer plays named sound effects. A nil player is silent.
type SoundPlayer interface {
	Play(id cfg.SoundID)
}

// Options select the level and the collaborators of a session.
type Options struct {
	FS         fs.FS
	LevelPath  string
	LevelIndex int
	WorldID    string

	CharacterID string // only changes how the player is drawn

	Repo   persistence.Repository // nil runs without saving
	SlotID int

	Sounds SoundPlayer
	Seed   int64

	// Renderers are registered on every rebuilt world, in order.
	Renderers []func(*ecs.ECS, *ebiten.Image)
}

// PlayerView is what the host draws and what the HUD reads.
type PlayerView struct {
	X, Y, W, H float64
	VX, VY     float64
	Facing     float64
	OnGround   bool
	State      cfg.StateID
	Damage     cfg.DamageState
	Rotation   float64
	Hidden     bool
	Hits       int
	Falls      int
}

// Session is a running level.
type Session struct {
	opts Options
	data *leveldata.Level
	ecs  *ecs.ECS

	result    *persistence.LevelResult
	saveError error
}

// LevelOptions converts the level config into loader options.
func LevelOptions() leveldata.Options {
	return leveldata.Options{
		BackgroundLayer: cfg.Level.BackgroundLayer,
		SolidLayer:      cfg.Level.SolidLayer,
		ObjectLayer:     cfg.Level.ObjectLayer,
		ColliderProp:    cfg.Level.ColliderProp,
		DefaultSpawn:    gamemath.Vec{X: cfg.Level.DefaultSpawnX, Y: cfg.Level.DefaultSpawnY},
		EllipseSegments: cfg.Level.EllipseSegments,
		Verbose:         cfg.Debug.Enabled,
	}
}

// New loads the level and builds its world. A malformed map is returned as
// an error wrapping leveldata.ErrMalformedMap.
func New(opts Options) (*Session, error) {
	if opts.FS == nil {
		return nil, fmt.Errorf("session: no level filesystem")
	}
	data, err := leveldata.Load(opts.FS, opts.LevelPath, LevelOptions())
	if err != nil {
		return nil, fmt.Errorf("start level %d: %w", opts.LevelIndex, err)
	}
	return FromLevel(data, opts), nil
}

// FromLevel starts a session on already parsed level data.
func FromLevel(data *leveldata.Level, opts Options) *Session {
	s := &Session{opts: opts, data: data}
	s.build()
	return s
}

func (s *Session) build() {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSession(e)
	factory.CreateLevel(e, s.data, s.opts.LevelIndex, s.opts.WorldID, s.opts.Seed)
	components.Level.Get(components.Level.MustFirst(e.World)).CharacterID = s.opts.CharacterID
	for _, system := range systems.Gameplay() {
		e.AddSystem(system)
	}
	for _, renderer := range s.opts.Renderers {
		e.AddRenderer(cfg.Default, renderer)
	}
	s.ecs = e
	s.result = nil
	s.saveError = nil
}

// Update advances the simulation by dt with the frame's input and returns the
// events it produced. A restart press rebuilds the level instead.
func (s *Session) Update(dt time.Duration, in components.InputState) []components.Event {
	if s.ecs == nil {
		return nil
	}
	if in.Restart {
		s.Restart()
		return nil
	}

	*components.Input.Get(components.Input.MustFirst(s.ecs.World)) = in
	clock := components.Clock.Get(components.Clock.MustFirst(s.ecs.World))
	clock.Delta = dt
	s.ecs.Update()

	for _, id := range systems.DrainSFX(s.ecs) {
		if s.opts.Sounds != nil {
			s.opts.Sounds.Play(id)
		}
	}

	events := systems.DrainEvents(s.ecs)
	for _, ev := range events {
		if ev.Kind == components.EventLevelComplete {
			s.recordCompletion(ev.FinalTimeMs)
		}
	}
	return events
}

func (s *Session) recordCompletion(finalMs int64) {
	result := persistence.LevelResult{FinalTimeMs: finalMs}
	if s.opts.Repo != nil && s.opts.SlotID != 0 {
		saved, err := persistence.CompleteLevel(s.opts.Repo, s.opts.SlotID, s.opts.LevelIndex, finalMs, time.Now())
		if err != nil {
			log.Printf("Warning: Could not save level result: %v", err)
			s.saveError = err
		} else {
			result = saved
		}
	}
	s.result = &result
}

// Result returns the saved outcome once the goal has been reached.
func (s *Session) Result() (persistence.LevelResult, bool) {
	if s.result == nil {
		return persistence.LevelResult{}, false
	}
	return *s.result, true
}

// SaveError returns the error of the last failed result write, if any.
func (s *Session) SaveError() error {
	return s.saveError
}

// Restart tears the world down and rebuilds it from the parsed level.
// Pending deferred actions and collected pickups are discarded.
func (s *Session) Restart() {
	s.Close()
	s.build()
}

// Close cancels every deferred action and removes all bodies from the space.
// The session is unusable afterwards until Restart.
func (s *Session) Close() {
	if s.ecs == nil {
		return
	}
	w := s.ecs.World
	if entry, ok := components.Scheduler.First(w); ok {
		components.Scheduler.Get(entry).Clear()
	}
	if entry, ok := components.Space.First(w); ok {
		space := components.Space.Get(entry)
		components.Object.Each(w, func(e *donburi.Entry) {
			if obj := components.Object.Get(e).Object; obj != nil && obj.Space == space {
				space.Remove(obj)
			}
		})
	}
	if entry, ok := tags.Player.First(w); ok {
		components.Contacts.Get(entry).Active = map[*resolv.Object]*components.Contact{}
	}
	s.ecs = nil
}

// Draw runs the registered renderers.
func (s *Session) Draw(screen *ebiten.Image) {
	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

// ECS exposes the world to the host renderer.
func (s *Session) ECS() *ecs.ECS {
	return s.ecs
}

// Level returns the parsed level.
func (s *Session) Level() *leveldata.Level {
	return s.data
}

// LevelIndex returns the global index of the running level.
func (s *Session) LevelIndex() int {
	return s.opts.LevelIndex
}

// WorldID returns the world the level belongs to.
func (s *Session) WorldID() string {
	return s.opts.WorldID
}

// Now returns the elapsed game time.
func (s *Session) Now() time.Duration {
	if s.ecs == nil {
		return 0
	}
	return components.Clock.Get(components.Clock.MustFirst(s.ecs.World)).Now
}

// Collected returns picked up and total collectibles.
func (s *Session) Collected() (int, int) {
	if s.ecs == nil {
		return 0, 0
	}
	entry, ok := components.Level.First(s.ecs.World)
	if !ok {
		return 0, 0
	}
	level := components.Level.Get(entry)
	return level.Collected, level.Total
}

// Completed reports whether the goal has been reached.
func (s *Session) Completed() bool {
	if s.ecs == nil {
		return false
	}
	entry, ok := components.Level.First(s.ecs.World)
	return ok && components.Level.Get(entry).Completed
}

// ActiveCheckpoint returns the id of the current checkpoint, if any.
func (s *Session) ActiveCheckpoint() (int, bool) {
	if s.ecs == nil {
		return 0, false
	}
	entry, ok := components.Level.First(s.ecs.World)
	if !ok {
		return 0, false
	}
	cp := components.Level.Get(entry).ActiveCheckpoint
	if cp == nil {
		return 0, false
	}
	return cp.CheckpointID, true
}

// Player returns the player's current state.
func (s *Session) Player() (PlayerView, bool) {
	if s.ecs == nil {
		return PlayerView{}, false
	}
	entry, ok := tags.Player.First(s.ecs.World)
	if !ok {
		return PlayerView{}, false
	}
	obj := components.Object.Get(entry)
	m := components.Movement.Get(entry)
	p := components.Player.Get(entry)
	sprite := components.Sprite.Get(entry)
	return PlayerView{
		X: obj.X, Y: obj.Y, W: obj.W, H: obj.H,
		VX: m.VX, VY: m.VY,
		Facing:   m.Facing,
		OnGround: m.OnGround(),
		State:    p.State,
		Damage:   p.Damage,
		Rotation: sprite.Rotation,
		Hidden:   sprite.Hidden,
		Hits:     p.Hits,
		Falls:    p.Falls,
	}, true
}
