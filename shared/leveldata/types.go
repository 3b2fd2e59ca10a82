// Package leveldata provides TMX level parsing for the simulation core.
// It has no dependencies on ebitengine, donburi or resolv.
package leveldata

import (
	"errors"

	"github.com/automoto/tilehop/shared/gamemath"
)

// ErrMalformedMap is returned when a map lacks its dimensions or tile size.
var ErrMalformedMap = errors.New("malformed map")

// Level holds everything the simulation builds a play session from.
type Level struct {
	Name        string
	Width       int // tiles
	Height      int
	TileWidth   int
	TileHeight  int
	PixelWidth  float64
	PixelHeight float64
	Background  string // image source of the background layer, if any

	// Static geometry
	TileSolids []Rect
	Rects      []Rect
	Polygons   []Polygon

	Spawn          gamemath.Vec // feet position
	SpawnDefaulted bool
	Goal           *Rect

	Checkpoints  []Marker
	Collectibles []Marker
	Hazards      []Hazard
	Prefabs      []Prefab
}

// Rect is an axis-aligned rectangle with its top-left corner at X, Y.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the rectangle's centre.
func (r Rect) Center() gamemath.Vec {
	return gamemath.Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Feet returns the bottom-centre point, used for spawn and respawn targets.
func (r Rect) Feet() gamemath.Vec {
	return gamemath.Vec{X: r.X + r.W/2, Y: r.Y + r.H}
}

// Polygon is a static collider placed at Centroid with vertices relative to it.
type Polygon struct {
	Centroid gamemath.Vec
	Points   []gamemath.Vec
	Ellipse  bool
}

// Marker is a positioned map object with an id.
type Marker struct {
	ID   int
	Name string
	Rect
}

type HazardKind string

const (
	HazardSpike      HazardKind = "spike"
	HazardTrampoline HazardKind = "trampoline"
)

type Hazard struct {
	Kind HazardKind
	Rect
}

type PrefabKind string

const (
	PrefabEnemy      PrefabKind = "enemy"
	PrefabBallSource PrefabKind = "ball"
)

// Prefab is a named entity template placed on the map.
type Prefab struct {
	Kind  PrefabKind
	Name  string
	Phase float64 // oscillation phase offset, radians
	Range float64 // oscillation range override; 0 keeps the default
	Rect
}

// Options controls layer names and fallbacks. It is filled from config by the
// caller so this package stays free of engine imports.
type Options struct {
	BackgroundLayer string
	SolidLayer      string
	ObjectLayer     string
	ColliderProp    string
	DefaultSpawn    gamemath.Vec
	EllipseSegments int
	Verbose         bool // log objects that match no known kind
}

// DefaultOptions returns the layer names used by the bundled maps.
func DefaultOptions() Options {
	return Options{
		BackgroundLayer: "bg",
		SolidLayer:      "solids",
		ObjectLayer:     "objects",
		ColliderProp:    "collider",
		DefaultSpawn:    gamemath.Vec{X: 32, Y: 32},
		EllipseSegments: 16,
	}
}
