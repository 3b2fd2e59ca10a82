package systems

import (
	"math"

	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/shared/gamemath"
	"github.com/automoto/tilehop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics moves the player by its velocity, pushes it out of solids
// and refreshes the contact registry for the dispatcher.
func UpdatePhysics(e *ecs.ECS) {
	player, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	m := components.Movement.Get(player)
	obj := components.Object.Get(player).Object
	contacts := components.Contacts.Get(player)
	contacts.Reset()

	if m.Frozen {
		return
	}

	dt := deltaSeconds(clockOf(e))
	resolveHorizontal(m, obj, m.VX*dt)
	resolveVertical(m, obj, m.VY*dt)

	DiffContacts(contacts, probeContacts(obj), center(obj).Y)
}

// resolveHorizontal moves obj sideways. Walls stop it just short of contact;
// a rise of at most StepHeight (slopes, tile seams) lifts it instead.
func resolveHorizontal(m *components.MovementData, obj *resolv.Object, dx float64) {
	if dx == 0 {
		return
	}
	check := obj.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		setPosition(obj, obj.X+dx, obj.Y)
		return
	}

	move, lift := dx, 0.0
	blocked := false
	feet := obj.Y + obj.H
	for _, solid := range check.Objects {
		top, _, ok := solidOverlap(obj, solid, dx, 0)
		if !ok {
			continue
		}
		if rise := feet - top; rise <= cfg.Physics.StepHeight {
			lift = math.Max(lift, rise)
			continue
		}
		// A wall already behind the leading edge allows no further move.
		limit := 0.0
		contact := check.ContactWithObject(solid).X()
		if dx > 0 && contact >= 0 {
			limit = contact - cfg.Physics.SideSeparation
		} else if dx < 0 && contact <= 0 {
			limit = contact + cfg.Physics.SideSeparation
		}
		if dx > 0 {
			move = math.Min(move, limit)
		} else {
			move = math.Max(move, limit)
		}
		blocked = true
	}

	setPosition(obj, obj.X+move, obj.Y-lift)
	if blocked {
		m.VX = 0
	}
}

// resolveVertical moves obj up or down. Falling stops on the highest surface
// under the player and rising stops under the lowest ceiling. A grounded
// player also snaps down onto a surface up to StepHeight below, so walking
// down a slope does not leave the ground.
func resolveVertical(m *components.MovementData, obj *resolv.Object, dy float64) {
	reach := dy
	if dy >= 0 && m.GroundContacts > 0 {
		reach = math.Max(dy, cfg.Physics.StepHeight)
	}
	if reach == 0 {
		return
	}

	move := dy
	hit := false
	if check := obj.Check(0, reach, tags.ResolvSolid); check != nil {
		step := cfg.Physics.StepHeight
		feet := obj.Y + obj.H
		for _, solid := range check.Objects {
			top, bottom, ok := solidSpan(solid, obj.X, obj.X+obj.W)
			if !ok {
				continue
			}
			if reach > 0 {
				gap := top - feet
				if gap < -step || gap > reach {
					continue
				}
				if !hit || gap < move {
					move = gap
				}
				hit = true
				continue
			}
			gap := bottom - obj.Y
			if gap > step || gap < reach {
				continue
			}
			if !hit || gap+cfg.Physics.SideSeparation > move {
				move = gap + cfg.Physics.SideSeparation
			}
			hit = true
		}
	}

	setPosition(obj, obj.X, obj.Y+move)
	if hit {
		m.VY = 0
	}
}

// solidSpan returns the top and bottom of solid across the columns x0..x1.
// Convex polygons are measured along their edges, so a slope's surface is
// where it actually is rather than at its bounding box.
func solidSpan(solid *resolv.Object, x0, x1 float64) (top, bottom float64, ok bool) {
	x0 = math.Max(x0, solid.X)
	x1 = math.Min(x1, solid.X+solid.W)
	if x0 >= x1 {
		return 0, 0, false
	}
	poly, isPoly := solid.Shape.(*resolv.ConvexPolygon)
	if !isPoly {
		return solid.Y, solid.Y + solid.H, true
	}

	points := poly.Transformed()
	if len(points) < 3 {
		return solid.Y, solid.Y + solid.H, true
	}
	columns := []float64{x0, x1}
	for _, p := range points {
		if p.X() > x0 && p.X() < x1 {
			columns = append(columns, p.X())
		}
	}

	top, bottom = math.Inf(1), math.Inf(-1)
	for _, x := range columns {
		for i := range points {
			a, b := points[i], points[(i+1)%len(points)]
			lo, hi := math.Min(a.X(), b.X()), math.Max(a.X(), b.X())
			if x < lo || x > hi {
				continue
			}
			if hi == lo {
				top = math.Min(top, math.Min(a.Y(), b.Y()))
				bottom = math.Max(bottom, math.Max(a.Y(), b.Y()))
				continue
			}
			y := a.Y() + (x-a.X())*(b.Y()-a.Y())/(b.X()-a.X())
			top = math.Min(top, y)
			bottom = math.Max(bottom, y)
		}
	}
	if top >= bottom {
		return 0, 0, false
	}
	return top, bottom, true
}

// solidOverlap reports whether obj moved by dx, dy would overlap solid, and
// the solid's span under the moved player.
func solidOverlap(obj, solid *resolv.Object, dx, dy float64) (top, bottom float64, ok bool) {
	top, bottom, ok = solidSpan(solid, obj.X+dx, obj.X+dx+obj.W)
	if !ok {
		return 0, 0, false
	}
	return top, bottom, top < obj.Y+dy+obj.H && bottom > obj.Y+dy
}

// ContactHit is a body the player overlaps this frame.
type ContactHit struct {
	Other *resolv.Object
	Point gamemath.Vec
}

// probeContacts lists what the player touches. Solids are probed GroundProbe
// below the feet so resting contacts stay alive between frames; sensors must
// overlap the player's box, including when one contains the other. The point
// is the centre of the overlap.
func probeContacts(obj *resolv.Object) []ContactHit {
	probe := cfg.Physics.GroundProbe
	var hits []ContactHit
	seen := map[*resolv.Object]bool{}
	for _, dy := range []float64{0, probe} {
		check := obj.Check(0, dy)
		if check == nil {
			continue
		}
		for _, other := range check.Objects {
			if seen[other] {
				continue
			}
			seen[other] = true
			if point, ok := overlapCenter(obj, other, probe); ok {
				hits = append(hits, ContactHit{Other: other, Point: point})
			}
		}
	}
	return hits
}

// overlapCenter returns the centre of the area obj shares with other. Solids
// are measured with obj's box stretched probe below the feet.
func overlapCenter(obj, other *resolv.Object, probe float64) (gamemath.Vec, bool) {
	x0, x1 := math.Max(obj.X, other.X), math.Min(obj.X+obj.W, other.X+other.W)
	top, bottom := other.Y, other.Y+other.H
	feet := obj.Y + obj.H
	if other.HasTags(tags.ResolvSolid) {
		var ok bool
		if top, bottom, ok = solidSpan(other, obj.X, obj.X+obj.W); !ok {
			return gamemath.Vec{}, false
		}
		feet += probe
	}
	y0, y1 := math.Max(obj.Y, top), math.Min(feet, bottom)
	if x0 >= x1 || y0 >= y1 {
		return gamemath.Vec{}, false
	}
	return gamemath.Vec{X: (x0 + x1) / 2, Y: (y0 + y1) / 2}, true
}

// ClassifyContact labels a body by its resolv tags.
func ClassifyContact(other *resolv.Object) components.ContactKind {
	switch {
	case other.HasTags(tags.ResolvBall):
		return components.ContactBall
	case other.HasTags(tags.ResolvEnemyHead):
		return components.ContactEnemyHead
	case other.HasTags(tags.ResolvEnemyBody):
		return components.ContactEnemyBody
	case other.HasTags(tags.ResolvCheckpoint):
		return components.ContactCheckpoint
	case other.HasTags(tags.ResolvCollectible):
		return components.ContactCollectible
	case other.HasTags(tags.ResolvSpike):
		return components.ContactSpike
	case other.HasTags(tags.ResolvTrampoline):
		return components.ContactTrampoline
	case other.HasTags(tags.ResolvGoal):
		return components.ContactGoal
	}
	return components.ContactSolid
}

// DiffContacts compares this frame's hits with the active registry and fills
// the Began, Ongoing and Ended lists. A new pair is ground when the other body
// is a non-sensor, non-ball collider touching below the player's centre.
func DiffContacts(c *components.ContactsData, hits []ContactHit, centerY float64) {
	if c.Active == nil {
		c.Active = map[*resolv.Object]*components.Contact{}
	}

	seen := make(map[*resolv.Object]bool, len(hits))
	for _, h := range hits {
		seen[h.Other] = true
		if existing, ok := c.Active[h.Other]; ok {
			existing.Point = h.Point
			c.Ongoing = append(c.Ongoing, existing)
			continue
		}
		kind := ClassifyContact(h.Other)
		sensor := h.Other.HasTags(tags.ResolvSensor)
		contact := &components.Contact{
			Other:  h.Other,
			Kind:   kind,
			Sensor: sensor,
			Ground: !sensor && kind != components.ContactBall && h.Point.Y > centerY,
			Point:  h.Point,
		}
		c.Active[h.Other] = contact
		c.Began = append(c.Began, contact)
	}

	for other, contact := range c.Active {
		if !seen[other] {
			delete(c.Active, other)
			c.Ended = append(c.Ended, contact)
		}
	}
}
