package gamemath

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestArcPointEndpointsAreExact(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		start := Vec{X: rapid.Float64Range(-5000, 5000).Draw(t, "sx"), Y: rapid.Float64Range(-5000, 5000).Draw(t, "sy")}
		end := Vec{X: rapid.Float64Range(-5000, 5000).Draw(t, "ex"), Y: rapid.Float64Range(-5000, 5000).Draw(t, "ey")}
		h := rapid.Float64Range(0, 500).Draw(t, "h")

		if got := ArcPoint(start, end, h, 0); got != start {
			t.Fatalf("start: got %v want %v", got, start)
		}
		if got := ArcPoint(start, end, h, 1); got != end {
			t.Fatalf("end: got %v want %v", got, end)
		}
	})
}

func TestArcMidpointRisesForAnyHorizontalDistance(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		dx := rapid.Float64Range(0.001, 4000).Draw(t, "dx")
		if rapid.Bool().Draw(t, "neg") {
			dx = -dx
		}
		h := ArcHeight(dx, 0.35, 0, 160)
		start := Vec{X: 100, Y: 200}
		end := Vec{X: 100 + dx, Y: 200}
		mid := ArcPoint(start, end, h, 0.5)
		if !(mid.Y < 200) {
			t.Fatalf("midpoint did not rise: %v (h=%v)", mid, h)
		}
	})
}

func TestArcHeightIsCapped(t *testing.T) {
	assert.Equal(t, 160.0, ArcHeight(10000, 0.35, 24, 160))
	assert.Equal(t, 24.0, ArcHeight(0, 0.35, 24, 160))
	assert.InDelta(t, 35.0, ArcHeight(-100, 0.35, 24, 160), 1e-9)
}

func TestArcDurationBand(t *testing.T) {
	min, max := 600*time.Millisecond, 1400*time.Millisecond
	assert.Equal(t, min, ArcDuration(0, 2*time.Millisecond, min, max))
	assert.Equal(t, 800*time.Millisecond, ArcDuration(100, 2*time.Millisecond, min, max))
	assert.Equal(t, max, ArcDuration(100000, 2*time.Millisecond, min, max))
}

func TestCentroidOfRectangle(t *testing.T) {
	pts := []Vec{{0, 0}, {40, 0}, {40, 20}, {0, 20}}
	c := Centroid(pts)
	assert.InDelta(t, 20, c.X, 1e-9)
	assert.InDelta(t, 10, c.Y, 1e-9)
}

func TestCentroidOfIrregularPolygonDiffersFromBoundsCentre(t *testing.T) {
	// Right triangle: area centroid sits a third of the way in.
	pts := []Vec{{0, 0}, {30, 0}, {0, 30}}
	c := Centroid(pts)
	assert.InDelta(t, 10, c.X, 1e-9)
	assert.InDelta(t, 10, c.Y, 1e-9)

	min, max := Bounds(pts)
	assert.NotEqual(t, (min.X+max.X)/2, c.X)
}

func TestRecenterIsRelativeToCentroid(t *testing.T) {
	pts := []Vec{{100, 100}, {130, 100}, {100, 130}}
	c, local := Recenter(pts)
	for i := range pts {
		assert.InDelta(t, pts[i].X, c.X+local[i].X, 1e-9)
		assert.InDelta(t, pts[i].Y, c.Y+local[i].Y, 1e-9)
	}
	assert.InDelta(t, 0, Centroid(local).X, 1e-9)
	assert.InDelta(t, 0, Centroid(local).Y, 1e-9)
}

func TestDriftTolerance(t *testing.T) {
	_, moved := Drift(Vec{10, 10}, Vec{10.05, 9.95}, 0.1)
	assert.False(t, moved)

	d, moved := Drift(Vec{10, 10}, Vec{10.5, 10}, 0.1)
	assert.True(t, moved)
	assert.InDelta(t, -0.5, d.X, 1e-9)
}

func TestEllipsePointsStayOnEllipse(t *testing.T) {
	pts := EllipsePoints(Vec{50, 50}, 20, 10, 16)
	assert.Len(t, pts, 16)
	for _, p := range pts {
		nx := (p.X - 50) / 20
		ny := (p.Y - 50) / 10
		assert.InDelta(t, 1, nx*nx+ny*ny, 1e-9)
	}
}

func TestAimIsUnitVectorTimesSpeed(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		from := Vec{X: rapid.Float64Range(-1000, 1000).Draw(t, "fx"), Y: rapid.Float64Range(-1000, 1000).Draw(t, "fy")}
		to := Vec{X: rapid.Float64Range(-1000, 1000).Draw(t, "tx"), Y: rapid.Float64Range(-1000, 1000).Draw(t, "ty")}
		v := Aim(from, to, 180)
		if l := math.Hypot(v.X, v.Y); math.Abs(l-180) > 1e-6 {
			t.Fatalf("speed %v", l)
		}
	})
}

func TestShotIntervalStaysInBand(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		u := rapid.Float64Range(-1, 1).Draw(t, "u")
		got := ShotInterval(2*time.Second, 0.25, u)
		if got < 1500*time.Millisecond || got > 2500*time.Millisecond {
			t.Fatalf("interval %v out of band", got)
		}
	})
}

func TestOscillate(t *testing.T) {
	assert.InDelta(t, 100, Oscillate(100, 0, 2, 0, 24), 1e-9)
	assert.InDelta(t, 124, Oscillate(100, math.Pi/4, 2, 0, 24), 1e-9)
}

func TestDampAndApproach(t *testing.T) {
	assert.InDelta(t, 80, Damp(100, 0.8, 1.0/60), 1e-9)
	assert.Equal(t, 5.0, Approach(0, 10, 5))
	assert.Equal(t, 10.0, Approach(8, 10, 5))
	assert.Equal(t, -1.0, Sign(-3))
}
