package scenes

import (
	"image/color"
	"log"
	"sync"
	"time"

	"github.com/automoto/tilehop/assets"
	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/session"
	"github.com/automoto/tilehop/systems"
	"github.com/automoto/tilehop/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

var (
	sfxOnce sync.Once
	sfx     *assets.SFXPlayer
)

// sounds returns the shared effect player. The audio context can only be
// created once per process.
func sounds() *assets.SFXPlayer {
	sfxOnce.Do(func() {
		sfx = assets.NewSFXPlayer(cfg.Sound.SampleRate, cfg.Sound.SFXVolume)
	})
	return sfx
}

func menuSound(id cfg.SoundID) {
	sounds().Play(id)
}

// PlayScene runs one level session.
type PlayScene struct {
	director   *Director
	levelIndex int
	session    *session.Session
	actions    components.ActionsData
	once       sync.Once
	done       bool

	paused bool
	pause  *MenuScene
}

// NewPlayScene creates a scene for the level. The map is loaded on the first
// update.
func NewPlayScene(d *Director, p LevelPayload) *PlayScene {
	return &PlayScene{director: d, levelIndex: p.LevelIndex}
}

func (ps *PlayScene) configure() {
	levelPath, world, ok := assets.LevelPath(ps.levelIndex)
	if !ok {
		ps.fail(errUnknownLevel(ps.levelIndex))
		return
	}

	background, err := assets.LoadBackground(levelPath)
	if err != nil {
		log.Printf("Warning: Could not render level background: %v", err)
	}

	var character string
	if slot, err := ps.director.ActiveSlot(); err == nil {
		character = slot.SelectedCharacter
	}

	s, err := session.New(session.Options{
		FS:          assets.LevelFS(),
		LevelPath:   levelPath,
		LevelIndex:  ps.levelIndex,
		WorldID:     world.ID,
		CharacterID: character,
		Repo:        ps.director.repo,
		SlotID:      ps.director.slotID,
		Sounds:      sounds(),
		Seed:        time.Now().UnixNano(),
		Renderers: []func(*ecs.ECS, *ebiten.Image){
			systems.NewDrawBackground(background),
			systems.DrawEntities,
			systems.DrawHUD,
			systems.DrawDebug,
		},
	})
	if err != nil {
		ps.fail(err)
		return
	}
	ps.session = s
	ps.pause = ps.newPauseMenu()
	systems.PollActions(&ps.actions)
}

func (ps *PlayScene) newPauseMenu() *MenuScene {
	ms := &MenuScene{overlay: true}
	resume := func() { ps.paused = false }
	ms.onBack = resume
	ms.build = func() *ui.Menu {
		return ui.NewOverlayMenu("Paused", []ui.MenuItem{
			{Label: "Resume", OnSelect: resume},
			{Label: "Restart level", OnSelect: func() {
				ps.session.Restart()
				ps.paused = false
			}},
			{Label: "World map", OnSelect: func() {
				ps.finish()
				if err := ps.director.LeaveLevel(ps.levelIndex); err != nil {
					log.Printf("Warning: %v", err)
				}
			}},
		})
	}
	return ms
}

func (ps *PlayScene) fail(err error) {
	log.Printf("Warning: %v", err)
	ps.done = true
	if goErr := ps.director.LevelFailed(ps.levelIndex, err); goErr != nil {
		log.Printf("Warning: %v", goErr)
	}
}

func (ps *PlayScene) Update() {
	ps.once.Do(ps.configure)
	if ps.done || ps.session == nil {
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		cfg.Debug.Enabled = !cfg.Debug.Enabled
	}

	if ps.paused {
		ps.pause.Update()
		if !ps.paused {
			// Swallow the press that closed the menu
			systems.PollActions(&ps.actions)
		}
		return
	}

	systems.PollActions(&ps.actions)
	if systems.GetAction(&ps.actions, cfg.ActionMenuBack).JustPressed {
		ps.paused = true
		// The menu starts with the pause press already held
		ps.pause.actions = ps.actions
		return
	}

	dt := time.Second / time.Duration(cfg.C.TPS)
	for _, ev := range ps.session.Update(dt, systems.GameplayInput(&ps.actions)) {
		if ev.Kind != components.EventLevelComplete {
			continue
		}
		result, _ := ps.session.Result()
		ps.finish()
		if err := ps.director.LevelFinished(ps.levelIndex, result); err != nil {
			log.Printf("Warning: %v", err)
		}
		return
	}
}

func (ps *PlayScene) finish() {
	ps.done = true
	ps.session.Close()
}

func (ps *PlayScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.RGBA{R: 110, G: 170, B: 230, A: 255})

	if ps.session == nil {
		return
	}
	ps.session.Draw(screen)
	if ps.paused {
		ps.pause.Draw(screen)
	}
}
