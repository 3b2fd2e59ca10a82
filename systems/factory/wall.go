package factory

import (
	"log"

	"github.com/automoto/tilehop/archetypes"
	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/shared/gamemath"
	"github.com/automoto/tilehop/shared/leveldata"
	"github.com/automoto/tilehop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(ecs, wall, obj)

	return wall
}

// CreatePolygonWall builds a static convex collider from centroid-relative
// vertices. resolv positions shapes by their object's top-left corner, so the
// vertices are shifted into bounding-box space and the placement is checked
// against the intended centroid afterwards.
func CreatePolygonWall(ecs *ecs.ECS, poly leveldata.Polygon) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	min, max := gamemath.Bounds(poly.Points)
	boxPoints := make([]gamemath.Vec, len(poly.Points))
	for i, p := range poly.Points {
		boxPoints[i] = gamemath.Vec{X: p.X - min.X, Y: p.Y - min.Y}
	}

	obj := resolv.NewObject(poly.Centroid.X+min.X, poly.Centroid.Y+min.Y, max.X-min.X, max.Y-min.Y, tags.ResolvSolid)
	obj.SetShape(NewPolygonShape(boxPoints))

	if d, drifted := gamemath.Drift(poly.Centroid, ShapeCentroid(obj), cfg.Level.CentroidTolerance); drifted {
		log.Printf("Warning: polygon collider drifted by (%.2f, %.2f), moving back onto centroid", d.X, d.Y)
		obj.X += d.X
		obj.Y += d.Y
		obj.Update()
	}

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(ecs, wall, obj)

	return wall
}

// ShapeCentroid returns the area centroid of obj's shape as resolv places it
// in the world, or the centre of its box when it has no polygon.
func ShapeCentroid(obj *resolv.Object) gamemath.Vec {
	shape, ok := obj.Shape.(*resolv.ConvexPolygon)
	if !ok {
		return gamemath.Vec{X: obj.X + obj.W/2, Y: obj.Y + obj.H/2}
	}
	transformed := shape.Transformed()
	points := make([]gamemath.Vec, len(transformed))
	for i, p := range transformed {
		points[i] = gamemath.Vec{X: p.X(), Y: p.Y()}
	}
	return gamemath.Centroid(points)
}

// NewPolygonShape returns a convex polygon with the given vertices, relative to
// its object's position.
func NewPolygonShape(points []gamemath.Vec) *resolv.ConvexPolygon {
	shape := resolv.NewRectangle(0, 0, 0, 0)
	shape.Points = shape.Points[:0]
	flat := make([]float64, 0, len(points)*2)
	for _, p := range points {
		flat = append(flat, p.X, p.Y)
	}
	shape.AddPoints(flat...)
	return shape
}
