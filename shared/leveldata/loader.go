package leveldata

import (
	"fmt"
	"io/fs"
	"log"
	"path"
	"sort"
	"strings"

	"github.com/automoto/tilehop/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

const gidMask = 0x1FFFFFFF // strips Tiled's flip flags

type objectKind int

const (
	kindUnknown objectKind = iota
	kindSpawn
	kindGoal
	kindCheckpoint
	kindCollectible
	kindSpike
	kindTrampoline
	kindEnemy
	kindBallSource
	kindCollider
)

var kindNames = map[string]objectKind{
	"spawn":             kindSpawn,
	"player":            kindSpawn,
	"player-spawn":      kindSpawn,
	"start":             kindSpawn,
	"goal":              kindGoal,
	"flag":              kindGoal,
	"finish":            kindGoal,
	"checkpoint":        kindCheckpoint,
	"collectible":       kindCollectible,
	"coin":              kindCollectible,
	"gem":               kindCollectible,
	"fish":              kindCollectible,
	"spike":             kindSpike,
	"spikes":            kindSpike,
	"hazard":            kindSpike,
	"trampoline":        kindTrampoline,
	"superjump":         kindTrampoline,
	"spring":            kindTrampoline,
	"enemy":             kindEnemy,
	"ball":              kindBallSource,
	"hazard-ball":       kindBallSource,
	"projectile-source": kindBallSource,
	"cannon":            kindBallSource,
	"collider":          kindCollider,
	"solid":             kindCollider,
	"ground":            kindCollider,
	"wall":              kindCollider,
}

// Load parses a TMX file into a Level. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string, opts Options) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	return FromMap(levelMap, strings.TrimSuffix(path.Base(tmxPath), ".tmx"), opts)
}

// FromMap builds a Level from an already parsed map.
func FromMap(levelMap *tiled.Map, name string, opts Options) (*Level, error) {
	if levelMap.Width <= 0 || levelMap.Height <= 0 {
		return nil, fmt.Errorf("%s: missing map dimensions: %w", name, ErrMalformedMap)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("%s: missing tile size: %w", name, ErrMalformedMap)
	}
	if opts.EllipseSegments < 3 {
		opts.EllipseSegments = DefaultOptions().EllipseSegments
	}

	level := &Level{
		Name:        name,
		Width:       levelMap.Width,
		Height:      levelMap.Height,
		TileWidth:   levelMap.TileWidth,
		TileHeight:  levelMap.TileHeight,
		PixelWidth:  float64(levelMap.Width * levelMap.TileWidth),
		PixelHeight: float64(levelMap.Height * levelMap.TileHeight),
	}

	for _, imgLayer := range levelMap.ImageLayers {
		if imgLayer.Name == opts.BackgroundLayer && imgLayer.Image != nil {
			level.Background = imgLayer.Image.Source
			break
		}
	}

	loadSolidTiles(levelMap, level, opts)

	ld := &loader{levelMap: levelMap, level: level, opts: opts}
	for _, og := range objectGroups(levelMap, opts.ObjectLayer) {
		for _, o := range og.Objects {
			ld.loadObject(o)
		}
	}

	if !ld.spawnFound {
		log.Printf("Warning: %s has no spawn marker, using default (%.0f, %.0f)", name, opts.DefaultSpawn.X, opts.DefaultSpawn.Y)
		level.Spawn = opts.DefaultSpawn
		level.SpawnDefaulted = true
	}

	sort.SliceStable(level.Checkpoints, func(i, j int) bool {
		return level.Checkpoints[i].X < level.Checkpoints[j].X
	})

	return level, nil
}

func loadSolidTiles(levelMap *tiled.Map, level *Level, opts Options) {
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != opts.SolidLayer {
			continue
		}
		wholeLayer := layer.Properties.GetBool(opts.ColliderProp)
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				i := y*levelMap.Width + x
				if i >= len(layer.Tiles) {
					break
				}
				tile := layer.Tiles[i]
				if tile.IsNil() {
					continue
				}
				if !wholeLayer && !tileIsCollider(tile, opts.ColliderProp) {
					continue
				}
				level.TileSolids = append(level.TileSolids, Rect{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
		return
	}
}

func tileIsCollider(tile *tiled.LayerTile, prop string) bool {
	if tile.Tileset == nil {
		return false
	}
	tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
	if err != nil {
		return false
	}
	return tilesetTile.Properties.GetBool(prop)
}

// objectGroups returns the named object layer, or every group when the map
// does not have one.
func objectGroups(levelMap *tiled.Map, name string) []*tiled.ObjectGroup {
	for _, og := range levelMap.ObjectGroups {
		if og.Name == name {
			return []*tiled.ObjectGroup{og}
		}
	}
	if len(levelMap.ObjectGroups) > 0 {
		log.Printf("Warning: object layer %q not found, reading all %d object groups", name, len(levelMap.ObjectGroups))
	}
	return levelMap.ObjectGroups
}

type loader struct {
	levelMap   *tiled.Map
	level      *Level
	opts       Options
	spawnFound bool
}

func (ld *loader) loadObject(o *tiled.Object) {
	level := ld.level
	rect := objectRect(o)

	switch classify(ld.levelMap, o) {
	case kindSpawn:
		if ld.spawnFound {
			log.Printf("Warning: %s has more than one spawn marker, keeping the first", level.Name)
			return
		}
		ld.spawnFound = true
		level.Spawn = rect.Feet()
	case kindGoal:
		if level.Goal != nil {
			log.Printf("Warning: %s has more than one goal, keeping the first", level.Name)
			return
		}
		level.Goal = &rect
	case kindCheckpoint:
		id := o.Properties.GetInt("id")
		if id == 0 {
			id = int(o.ID)
		}
		level.Checkpoints = append(level.Checkpoints, Marker{ID: id, Name: o.Name, Rect: rect})
	case kindCollectible:
		level.Collectibles = append(level.Collectibles, Marker{ID: int(o.ID), Name: o.Name, Rect: rect})
	case kindSpike:
		level.Hazards = append(level.Hazards, Hazard{Kind: HazardSpike, Rect: rect})
	case kindTrampoline:
		level.Hazards = append(level.Hazards, Hazard{Kind: HazardTrampoline, Rect: rect})
	case kindEnemy:
		level.Prefabs = append(level.Prefabs, Prefab{
			Kind:  PrefabEnemy,
			Name:  o.Name,
			Phase: o.Properties.GetFloat("phase"),
			Range: o.Properties.GetFloat("range"),
			Rect:  rect,
		})
	case kindBallSource:
		level.Prefabs = append(level.Prefabs, Prefab{Kind: PrefabBallSource, Name: o.Name, Rect: rect})
	case kindCollider:
		loadCollider(level, o, rect, ld.opts)
	default:
		if ld.opts.Verbose {
			log.Printf("Debug: %s: skipping unclassified object %d %q", level.Name, o.ID, o.Name)
		}
	}
}

func loadCollider(level *Level, o *tiled.Object, rect Rect, opts Options) {
	switch {
	case len(o.Polygons) > 0:
		for _, poly := range o.Polygons {
			var pts []gamemath.Vec
			if poly.Points != nil {
				for _, p := range *poly.Points {
					pts = append(pts, gamemath.Vec{X: o.X + p.X, Y: o.Y + p.Y})
				}
			}
			if len(pts) < 3 {
				log.Printf("Warning: %s: polygon object %d has %d points, skipping", level.Name, o.ID, len(pts))
				continue
			}
			c, local := gamemath.Recenter(pts)
			level.Polygons = append(level.Polygons, Polygon{Centroid: c, Points: local})
		}
	case len(o.Ellipses) > 0:
		if rect.W <= 0 || rect.H <= 0 {
			log.Printf("Warning: %s: ellipse object %d has no size, skipping", level.Name, o.ID)
			return
		}
		pts := gamemath.EllipsePoints(rect.Center(), rect.W/2, rect.H/2, opts.EllipseSegments)
		c, local := gamemath.Recenter(pts)
		level.Polygons = append(level.Polygons, Polygon{Centroid: c, Points: local, Ellipse: true})
	case len(o.PolyLines) > 0:
		log.Printf("Warning: %s: polyline object %d cannot collide, skipping", level.Name, o.ID)
	default:
		if rect.W <= 0 || rect.H <= 0 {
			return
		}
		level.Rects = append(level.Rects, rect)
	}
}

// classify looks at the object's class/type, then its name, then the
// tileset its gid belongs to.
func classify(levelMap *tiled.Map, o *tiled.Object) objectKind {
	class := o.Class
	if class == "" {
		class = o.Type //nolint:staticcheck // older TMX files use type=
	}
	if k, ok := kindNames[strings.ToLower(class)]; ok {
		return k
	}
	if k, ok := kindNames[strings.ToLower(o.Name)]; ok {
		return k
	}
	if o.GID != 0 {
		if ts := tilesetForGID(levelMap, o.GID); ts != nil {
			if k, ok := kindNames[strings.ToLower(ts.Name)]; ok {
				return k
			}
		}
		return kindUnknown
	}
	if class == "" && o.Name == "" {
		// Unlabelled geometry is static level collision.
		return kindCollider
	}
	return kindUnknown
}

// tilesetForGID returns the tileset with the largest firstgid not above gid.
func tilesetForGID(levelMap *tiled.Map, gid uint32) *tiled.Tileset {
	gid &= gidMask
	var best *tiled.Tileset
	for _, ts := range levelMap.Tilesets {
		if ts.FirstGID <= gid && (best == nil || ts.FirstGID > best.FirstGID) {
			best = ts
		}
	}
	return best
}

// objectRect returns the object's bounds with tile objects moved from
// Tiled's bottom-left anchor to top-left.
func objectRect(o *tiled.Object) Rect {
	r := Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
	if o.GID != 0 {
		r.Y -= o.Height
	}
	return r
}
