package assets

import (
	"bytes"
	"embed"
	"fmt"
	_ "image/png"
	"io/fs"
	"log"
	"path"

	"github.com/automoto/tilehop/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LevelFS returns the embedded level files. Paths look like
// "levels/level_01.tmx".
func LevelFS() fs.FS {
	return assetFS
}

// LevelPath returns the TMX path of a global level index.
func LevelPath(levelIndex int) (string, config.WorldConfig, bool) {
	world, ok := config.WorldForLevel(levelIndex)
	if !ok {
		return "", config.WorldConfig{}, false
	}
	file := world.Levels[levelIndex-world.FirstLevelIndex]
	return path.Join(config.LevelsDir, file), world, true
}

// LevelTitle returns the map's "title" property, falling back to its file
// name.
func LevelTitle(levelPath string) string {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(assetFS))
	if err != nil {
		return path.Base(levelPath)
	}
	if title := levelMap.Properties.GetString("title"); title != "" {
		return title
	}
	return path.Base(levelPath)
}

// LoadBackground renders the level's image layers and visible tile layers
// into one image the size of the map.
func LoadBackground(levelPath string) (*ebiten.Image, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(assetFS))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", levelPath, err)
	}

	width := levelMap.Width * levelMap.TileWidth
	height := levelMap.Height * levelMap.TileHeight
	background := ebiten.NewImage(width, height)
	dir := path.Dir(levelPath)

	// Image layers are stretched over the whole map
	for _, imgLayer := range levelMap.ImageLayers {
		if imgLayer.Image == nil || imgLayer.Opacity <= 0 {
			continue
		}
		imgBytes, err := assetFS.ReadFile(path.Join(dir, imgLayer.Image.Source))
		if err != nil {
			log.Printf("Warning: Failed to load image layer %s: %v", imgLayer.Name, err)
			continue
		}
		img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
		if err != nil {
			log.Printf("Warning: Failed to decode image layer %s: %v", imgLayer.Name, err)
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(width)/float64(img.Bounds().Dx()), float64(height)/float64(img.Bounds().Dy()))
		op.GeoM.Translate(float64(imgLayer.OffsetX), float64(imgLayer.OffsetY))
		op.ColorScale.ScaleAlpha(float32(imgLayer.Opacity))
		background.DrawImage(img, op)
		img.Deallocate()
	}

	renderer, err := render.NewRendererWithFileSystem(levelMap, assetFS)
	if err != nil {
		return nil, fmt.Errorf("create renderer for %s: %w", levelPath, err)
	}

	for i, layer := range levelMap.Layers {
		if layer.Opacity <= 0 {
			continue
		}
		renderer.Clear()
		if err := renderer.RenderLayer(i); err != nil {
			log.Printf("Warning: Failed to render layer %s: %v", layer.Name, err)
			continue
		}
		layerImage := ebiten.NewImageFromImage(renderer.Result)
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(layer.Opacity))
		background.DrawImage(layerImage, op)
		layerImage.Deallocate()
	}

	return background, nil
}
