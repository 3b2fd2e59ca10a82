package main

import (
	"image"
	"log"
	"os"

	"github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/fonts"
	"github.com/automoto/tilehop/persistence"
	"github.com/automoto/tilehop/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds   image.Rectangle
	scene    Scene
	director *scenes.Director
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(repo persistence.Repository) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.director = scenes.NewDirector(g, repo)
	if err := g.director.Start(); err != nil {
		log.Fatalf("Failed to open main menu: %v", err)
	}
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.director.Quitting() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	if tuning := os.Getenv("TILEHOP_TUNING"); tuning != "" {
		if err := config.LoadOverridesFile(tuning); err != nil {
			log.Fatalf("Failed to load tuning overrides: %v", err)
		}
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	var repo persistence.Repository
	store, err := persistence.OpenGData(config.Save.AppName)
	if err != nil {
		log.Printf("Warning: Could not initialize persistence, progress will not be saved: %v", err)
		repo = persistence.NewMemory()
	} else {
		repo = store
	}

	ebiten.SetWindowSize(config.C.Width*config.C.Scale, config.C.Height*config.C.Scale)
	ebiten.SetWindowTitle("Tilehop")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(repo)); err != nil {
		log.Fatal(err)
	}
}
