package factory

import (
	"testing"

	"github.com/automoto/tilehop/components"
	"github.com/automoto/tilehop/shared/gamemath"
	"github.com/automoto/tilehop/shared/leveldata"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestPolygonWallSitsOnCentroid(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	CreateSpace(e, 320, 240, 16, 16)

	// A right triangle: its area centroid is a third of the way in from the
	// right angle, well away from its bounding-box centre.
	world := []gamemath.Vec{{X: 100, Y: 100}, {X: 160, Y: 100}, {X: 100, Y: 40}}
	centroid, local := gamemath.Recenter(world)
	wall := CreatePolygonWall(e, leveldata.Polygon{Centroid: centroid, Points: local})

	obj := components.Object.Get(wall).Object
	got := ShapeCentroid(obj)
	assert.InDelta(t, 120, got.X, 0.1)
	assert.InDelta(t, 80, got.Y, 0.1)

	shape, ok := obj.Shape.(*resolv.ConvexPolygon)
	require.True(t, ok)
	for i, p := range shape.Transformed() {
		assert.InDelta(t, world[i].X, p.X(), 0.1)
		assert.InDelta(t, world[i].Y, p.Y(), 0.1)
	}
	assert.NotNil(t, obj.Space)
}

func TestShapeCentroidFollowsTheObject(t *testing.T) {
	obj := resolv.NewObject(10, 20, 30, 40)
	obj.SetShape(resolv.NewRectangle(0, 0, 30, 40))
	assert.Equal(t, gamemath.Vec{X: 25, Y: 40}, ShapeCentroid(obj))

	obj.X, obj.Y = 50, 60
	obj.Update()
	assert.Equal(t, gamemath.Vec{X: 65, Y: 80}, ShapeCentroid(obj))

	bare := resolv.NewObject(0, 0, 8, 6)
	assert.Equal(t, gamemath.Vec{X: 4, Y: 3}, ShapeCentroid(bare))
}
