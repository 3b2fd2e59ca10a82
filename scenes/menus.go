package scenes

import (
	"fmt"
	"image/color"
	"log"
	"sync"
	"time"

	"github.com/automoto/tilehop/assets"
	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/persistence"
	"github.com/automoto/tilehop/systems"
	"github.com/automoto/tilehop/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// MenuScene runs a ui.Menu with keyboard and gamepad navigation. build is
// called on the first update and again after rebuild.
type MenuScene struct {
	menu    *ui.Menu
	actions components.ActionsData
	once    sync.Once

	build   func() *ui.Menu
	onBack  func()
	overlay bool // draw over the previous frame instead of clearing
}

func (ms *MenuScene) configure() {
	ms.menu = ms.build()
	// Ignore buttons still held from the previous screen
	systems.PollActions(&ms.actions)
}

func (ms *MenuScene) rebuild() {
	ms.menu = ms.build()
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	systems.PollActions(&ms.actions)

	switch {
	case systems.GetAction(&ms.actions, cfg.ActionMenuUp).JustPressed:
		ms.menu.Navigate(-1)
		menuSound(cfg.SoundMenuNavigate)
	case systems.GetAction(&ms.actions, cfg.ActionMenuDown).JustPressed:
		ms.menu.Navigate(1)
		menuSound(cfg.SoundMenuNavigate)
	case systems.GetAction(&ms.actions, cfg.ActionMenuSelect).JustPressed:
		menuSound(cfg.SoundMenuSelect)
		ms.menu.Select()
		return
	case systems.GetAction(&ms.actions, cfg.ActionMenuBack).JustPressed:
		if ms.onBack != nil {
			ms.onBack()
			return
		}
	}
	ms.menu.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	if !ms.overlay {
		// Always clear screen to prevent white flashes from OS window background
		screen.Fill(color.Black)
	}

	if ms.menu == nil {
		return
	}
	ms.menu.Draw(screen)
}

func reportError(m *ui.Menu, err error) {
	if err != nil {
		log.Printf("Warning: %v", err)
		m.SetStatus(err.Error())
	}
}

// NewMainMenuScene creates the title screen.
func NewMainMenuScene(d *Director) *MenuScene {
	ms := &MenuScene{}
	ms.build = func() *ui.Menu {
		return ui.NewMenu("TILEHOP", []string{"Run, jump, stomp"}, []ui.MenuItem{
			{Label: "Play", OnSelect: func() { reportError(ms.menu, d.Go(SceneSlotSelect, nil)) }},
			{Label: "Quit", OnSelect: d.Quit},
		})
	}
	return ms
}

// NewSlotSelectScene lists the save slots. Picking one loads or creates it;
// the erase entries empty a slot.
func NewSlotSelectScene(d *Director) *MenuScene {
	ms := &MenuScene{}
	ms.onBack = func() { reportError(ms.menu, d.Go(SceneMainMenu, nil)) }
	ms.build = func() *ui.Menu {
		slots, err := persistence.List(d.repo)
		if err != nil {
			log.Printf("Warning: Could not list save slots: %v", err)
			slots = make([]*persistence.SaveSlot, cfg.Save.SlotCount)
		}

		var items, erase []ui.MenuItem
		for i, slot := range slots {
			id := i + 1
			items = append(items, ui.MenuItem{
				Label:    SlotLabel(id, slot),
				OnSelect: func() { reportError(ms.menu, d.UseSlot(id)) },
			})
			if slot != nil {
				erase = append(erase, ui.MenuItem{
					Label: fmt.Sprintf("Erase slot %d", id),
					OnSelect: func() {
						if err := d.DeleteSlot(id); err != nil {
							reportError(ms.menu, err)
							return
						}
						ms.rebuild()
					},
				})
			}
		}
		items = append(items, erase...)
		items = append(items, ui.MenuItem{Label: "Back", OnSelect: ms.onBack})
		return ui.NewMenu("Choose a save", nil, items)
	}
	return ms
}

// SlotLabel describes a slot for the slot list.
func SlotLabel(id int, slot *persistence.SaveSlot) string {
	if slot == nil {
		return fmt.Sprintf("Slot %d - new game", id)
	}
	return fmt.Sprintf("%s - %d levels, %d worlds", slot.Name, len(slot.CompletedLevels), len(slot.CompletedWorlds))
}

// NewCharacterSelectScene lists every character; locked ones are disabled.
func NewCharacterSelectScene(d *Director) *MenuScene {
	ms := &MenuScene{}
	back := func() {
		slot, err := d.ActiveSlot()
		if err != nil {
			reportError(ms.menu, d.Go(SceneSlotSelect, nil))
			return
		}
		reportError(ms.menu, d.Go(SceneWorldMap, MapPayload{WorldID: slot.Cursor.WorldID, LevelIndex: slot.Cursor.LevelIndex}))
	}
	ms.onBack = back
	ms.build = func() *ui.Menu {
		slot, err := d.ActiveSlot()
		if err != nil {
			log.Printf("Warning: %v", err)
			slot = persistence.NewSlot(0, "", time.Time{})
		}
		var items []ui.MenuItem
		selected := 0
		for i, c := range cfg.Characters {
			id := c.ID
			label := c.Name
			if !slot.IsUnlocked(id) {
				label += " (locked)"
			}
			if id == slot.SelectedCharacter {
				selected = i
			}
			items = append(items, ui.MenuItem{
				Label:    label,
				Disabled: !slot.IsUnlocked(id),
				OnSelect: func() { reportError(ms.menu, d.ChooseCharacter(id)) },
			})
		}
		items = append(items, ui.MenuItem{Label: "Back", OnSelect: back})
		m := ui.NewMenu("Choose a character", nil, items)
		m.Focus(selected)
		return m
	}
	return ms
}

// NewWorldMapScene lists the levels of every world with their best times.
func NewWorldMapScene(d *Director, p MapPayload) *MenuScene {
	ms := &MenuScene{}
	ms.onBack = func() { reportError(ms.menu, d.Go(SceneSlotSelect, nil)) }
	ms.build = func() *ui.Menu {
		slot, err := d.ActiveSlot()
		if err != nil {
			log.Printf("Warning: %v", err)
			slot = persistence.NewSlot(0, "", time.Time{})
		}

		subtitle := []string{fmt.Sprintf("%s - playing as %s", slot.Name, characterName(slot.SelectedCharacter))}
		var items []ui.MenuItem
		focus := 0
		for _, world := range cfg.Worlds {
			for i := range world.Levels {
				levelIndex := world.FirstLevelIndex + i
				if levelIndex == p.LevelIndex {
					focus = len(items)
				}
				items = append(items, ui.MenuItem{
					Label:    LevelLabel(world, i, slot),
					Disabled: !slot.LevelUnlocked(levelIndex),
					OnSelect: func() { reportError(ms.menu, d.PlayLevel(levelIndex)) },
				})
			}
		}
		items = append(items,
			ui.MenuItem{Label: "Change character", OnSelect: func() { reportError(ms.menu, d.Go(SceneCharacterSelect, nil)) }},
			ui.MenuItem{Label: "Change save", OnSelect: ms.onBack},
			ui.MenuItem{Label: "Main menu", OnSelect: func() { reportError(ms.menu, d.Go(SceneMainMenu, nil)) }},
		)

		m := ui.NewMenu("World map", subtitle, items)
		m.Focus(focus)
		if p.Message != "" {
			m.SetStatus(p.Message)
		}
		return m
	}
	return ms
}

// LevelLabel names a level on the map: world number, title, best time and
// a lock marker.
func LevelLabel(world cfg.WorldConfig, i int, slot *persistence.SaveSlot) string {
	levelIndex := world.FirstLevelIndex + i
	worldNumber := 1
	for n, w := range cfg.Worlds {
		if w.ID == world.ID {
			worldNumber = n + 1
		}
	}
	label := fmt.Sprintf("%d-%d %s", worldNumber, i+1, levelTitle(levelIndex))
	if !slot.LevelUnlocked(levelIndex) {
		return label + " (locked)"
	}
	if ms, ok := slot.BestTime(levelIndex); ok {
		label += "  " + systems.FormatTime(time.Duration(ms)*time.Millisecond)
	}
	return label
}

func levelTitle(levelIndex int) string {
	levelPath, _, ok := assets.LevelPath(levelIndex)
	if !ok {
		return fmt.Sprintf("Level %d", levelIndex+1)
	}
	return assets.LevelTitle(levelPath)
}

func characterName(id string) string {
	if c, ok := cfg.CharacterByID(id); ok {
		return c.Name
	}
	return id
}

// NewLevelCompleteScene shows the finish time of a level.
func NewLevelCompleteScene(d *Director, p LevelCompletePayload) *MenuScene {
	ms := &MenuScene{}
	ms.build = func() *ui.Menu {
		subtitle := []string{"Time " + systems.FormatTime(time.Duration(p.FinalTimeMs)*time.Millisecond)}
		if p.IsNewRecord {
			subtitle = append(subtitle, "New record!")
		}
		return ui.NewMenu("Level complete", subtitle, []ui.MenuItem{
			{Label: "Continue", OnSelect: func() { reportError(ms.menu, d.Continue(p.LevelIndex)) }},
			{Label: "Retry", OnSelect: func() { reportError(ms.menu, d.Retry(p.LevelIndex)) }},
			{Label: "World map", OnSelect: func() { reportError(ms.menu, d.LeaveLevel(p.LevelIndex)) }},
		})
	}
	return ms
}

// NewWorldCompleteScene shows the world total and the rescued character.
func NewWorldCompleteScene(d *Director, p WorldCompletePayload) *MenuScene {
	ms := &MenuScene{}
	ms.build = func() *ui.Menu {
		world, _ := cfg.WorldByID(p.WorldID)
		subtitle := []string{
			fmt.Sprintf("%s cleared in %s", world.Name, systems.FormatTime(time.Duration(p.TotalTimeMs)*time.Millisecond)),
		}
		if p.RescuedCharacterID != "" {
			subtitle = append(subtitle, characterName(p.RescuedCharacterID)+" joins the team!")
		}
		return ui.NewMenu("World complete", subtitle, []ui.MenuItem{
			{Label: "World map", OnSelect: func() {
				reportError(ms.menu, d.Go(SceneWorldMap, MapPayload{WorldID: p.WorldID, LevelIndex: world.FirstLevelIndex}))
			}},
			{Label: "Main menu", OnSelect: func() { reportError(ms.menu, d.Go(SceneMainMenu, nil)) }},
		})
	}
	return ms
}
