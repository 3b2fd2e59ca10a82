package systems

import (
	"testing"
	"time"

	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/shared/gamemath"
	"github.com/automoto/tilehop/shared/leveldata"
	"github.com/automoto/tilehop/systems/factory"
	"github.com/automoto/tilehop/tags"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestGroundCountMatchesActiveGroundPairs(t *testing.T) {
	bodies := []*resolv.Object{
		resolv.NewObject(0, 0, 16, 16, tags.ResolvSolid),
		resolv.NewObject(16, 0, 16, 16, tags.ResolvSolid),
		resolv.NewObject(32, 0, 16, 16, tags.ResolvTrampoline, tags.ResolvSolid),
		resolv.NewObject(0, 0, 8, 8, tags.ResolvBall, tags.ResolvSensor),
		resolv.NewObject(0, 0, 8, 8, tags.ResolvCheckpoint, tags.ResolvSensor),
		resolv.NewObject(0, 0, 8, 8, tags.ResolvEnemyHead, tags.ResolvSensor),
	}
	const centerY = 100.0

	rapid.Check(t, func(t *rapid.T) {
		var m components.MovementData
		var c components.ContactsData

		frames := rapid.IntRange(1, 100).Draw(t, "frames")
		for i := 0; i < frames; i++ {
			c.Reset()
			if rapid.IntRange(0, 20).Draw(t, "release") == 0 {
				ReleaseContacts(&m, &c)
			} else {
				var hits []ContactHit
				for _, body := range bodies {
					if !rapid.Bool().Draw(t, "touching") {
						continue
					}
					y := centerY - 10
					if rapid.Bool().Draw(t, "below") {
						y = centerY + 10
					}
					hits = append(hits, ContactHit{Other: body, Point: gamemath.Vec{Y: y}})
				}
				DiffContacts(&c, hits, centerY)
				ApplyGroundContacts(&m, &c)
			}

			ground := 0
			for _, contact := range c.Active {
				if contact.Ground {
					ground++
				}
			}
			if m.GroundContacts < 0 {
				t.Fatalf("frame %d: ground count %d", i, m.GroundContacts)
			}
			if m.GroundContacts != ground {
				t.Fatalf("frame %d: ground count %d, active ground pairs %d", i, m.GroundContacts, ground)
			}
		}
	})
}

func TestDiffContactsClassifiesOnce(t *testing.T) {
	floor := resolv.NewObject(0, 0, 16, 16, tags.ResolvSolid)
	ball := resolv.NewObject(0, 0, 8, 8, tags.ResolvBall, tags.ResolvSensor)
	var c components.ContactsData

	DiffContacts(&c, []ContactHit{
		{Other: floor, Point: gamemath.Vec{Y: 20}},
		{Other: ball, Point: gamemath.Vec{Y: 20}},
	}, 10)
	require.Len(t, c.Began, 2)
	assert.True(t, c.Active[floor].Ground)
	assert.False(t, c.Active[ball].Ground)
	assert.Equal(t, components.ContactBall, c.Active[ball].Kind)

	// A later frame touching above the centre keeps the recorded ground flag.
	c.Reset()
	DiffContacts(&c, []ContactHit{{Other: floor, Point: gamemath.Vec{Y: 0}}}, 10)
	assert.Empty(t, c.Began)
	require.Len(t, c.Ongoing, 1)
	require.Len(t, c.Ended, 1)
	assert.Same(t, ball, c.Ended[0].Other)
	assert.True(t, c.Active[floor].Ground)
}

func TestPlayerLandsOnFloor(t *testing.T) {
	e := newWorld(t, flatLevel())
	player := playerOf(t, e)
	placePlayer(e, player, 93, 120, 0)

	run(e, 120, components.InputState{})

	obj := components.Object.Get(player)
	m := components.Movement.Get(player)
	assert.Equal(t, 1, m.GroundContacts)
	assert.InDelta(t, 200.0, obj.Y+obj.H, 0.5)
	assert.Equal(t, cfg.Idle, components.Player.Get(player).State)
}

func TestWalkingIntoWallStops(t *testing.T) {
	data := flatLevel()
	data.Rects = append(data.Rects, leveldata.Rect{X: 160, Y: 100, W: 16, H: 100})
	e := newWorld(t, data)
	player := playerOf(t, e)

	run(e, 10, components.InputState{})
	run(e, 60, components.InputState{MoveRight: true})

	obj := components.Object.Get(player)
	assert.LessOrEqual(t, obj.X+obj.W, 160.0)
	assert.Equal(t, 1, components.Movement.Get(player).GroundContacts)
}

func TestCheckpointLatchesOnce(t *testing.T) {
	data := flatLevel()
	data.Checkpoints = []leveldata.Marker{{ID: 7, Rect: leveldata.Rect{X: 80, Y: 168, W: 32, H: 32}}}
	e := newWorld(t, data)
	player := playerOf(t, e)

	step(e, components.InputState{})
	require.Len(t, eventsOf(e, components.EventCheckpoint), 1)
	levelData, _ := levelOf(e)
	require.NotNil(t, levelData.ActiveCheckpoint)
	assert.Equal(t, 7, levelData.ActiveCheckpoint.CheckpointID)
	assert.Equal(t, 96.0, levelData.ActiveCheckpoint.SpawnX)
	assert.Equal(t, 200.0, levelData.ActiveCheckpoint.SpawnY)

	// Leave and come back.
	clearEvents(e)
	placePlayer(e, player, 300, 172, 0)
	run(e, 3, components.InputState{})
	placePlayer(e, player, 93, 172, 0)
	run(e, 3, components.InputState{})
	assert.Empty(t, eventsOf(e, components.EventCheckpoint))

	cp, ok := tags.Checkpoint.First(e.World)
	require.True(t, ok)
	assert.False(t, ActivateCheckpoint(e, cp))
}

func TestCollectibleCollectedOnce(t *testing.T) {
	data := flatLevel()
	data.Collectibles = []leveldata.Marker{{ID: 3, Rect: leveldata.Rect{X: 96, Y: 180, W: 8, H: 8}}}
	e := newWorld(t, data)

	run(e, 5, components.InputState{})

	levelData, _ := levelOf(e)
	assert.Equal(t, 1, levelData.Collected)
	assert.Equal(t, 1, levelData.Total)
	assert.Len(t, eventsOf(e, components.EventCollected), 1)

	coin, ok := tags.Collectible.First(e.World)
	require.True(t, ok)
	assert.False(t, Collect(e, coin))
	assert.Equal(t, 1, levelData.Collected)
}

func TestStompStunsOnceUntilExpiry(t *testing.T) {
	data := flatLevel()
	data.Prefabs = []leveldata.Prefab{{Kind: leveldata.PrefabEnemy, Rect: leveldata.Rect{X: 300, Y: 150, W: 20, H: 16}}}
	e := newWorld(t, data)
	player := playerOf(t, e)

	enemyEntry, ok := tags.Enemy.First(e.World)
	require.True(t, ok)
	enemy := components.Enemy.Get(enemyEntry)
	enemy.Oscillates = false
	enemy.Shoots = false
	headTop := enemy.Head.Y

	step(e, components.InputState{})
	clearEvents(e)

	placePlayer(e, player, 303, headTop-cfg.Movement.CollisionHeight, 100)
	step(e, components.InputState{})

	require.True(t, enemy.Stunned)
	assert.Len(t, eventsOf(e, components.EventStomp), 1)
	assert.Less(t, components.Movement.Get(player).VY, 0.0, "stomp bounces the player")
	assert.Equal(t, cfg.DamageNormal, components.Player.Get(player).Damage)
	expiry := enemy.StunExpiry

	// Bounce clear of the head, then stomp again before the stun ends.
	run(e, 5, components.InputState{})
	clearEvents(e)
	placePlayer(e, player, 303, headTop-cfg.Movement.CollisionHeight, 100)
	step(e, components.InputState{})

	assert.Empty(t, eventsOf(e, components.EventStomp))
	assert.Equal(t, expiry, enemy.StunExpiry)
	assert.Greater(t, components.Movement.Get(player).VY, 0.0, "no second bounce")

	// Park the player on the floor away from the enemy until it recovers.
	placePlayer(e, player, 50, 172, 0)
	run(e, int(cfg.Enemy.StunDuration/frame)+2, components.InputState{})
	assert.False(t, enemy.Stunned)
	assert.Greater(t, enemy.NextShotAt, enemy.StunExpiry)
}

func TestEnemyBodyDamagesUnlessStompedThisFrame(t *testing.T) {
	frameNo := uint64(9)
	enemy := &components.EnemyData{Alive: true}
	assert.True(t, enemyHurts(enemy, frameNo))
	enemy.StompedFrame = frameNo
	assert.False(t, enemyHurts(enemy, frameNo))
	assert.True(t, enemyHurts(enemy, frameNo+1))
	enemy.Alive = false
	assert.False(t, enemyHurts(enemy, frameNo+1))
}

func TestTrampolineLaunchesWithLockout(t *testing.T) {
	data := flatLevel()
	data.Hazards = []leveldata.Hazard{{Kind: leveldata.HazardTrampoline, Rect: leveldata.Rect{X: 200, Y: 192, W: 32, H: 8}}}
	e := newWorld(t, data)
	player := playerOf(t, e)

	step(e, components.InputState{})
	clearEvents(e)
	placePlayer(e, player, 209, 192-cfg.Movement.CollisionHeight-1, 120)
	run(e, 2, components.InputState{})

	require.Len(t, eventsOf(e, components.EventSuperJump), 1)
	m := components.Movement.Get(player)
	assert.Less(t, m.VY, -cfg.Hazard.SuperJumpVelocity+50)

	hazard, ok := tags.Hazard.First(e.World)
	require.True(t, ok)
	m.VY = 0
	assert.False(t, TriggerTrampoline(e, hazard, player), "lockout blocks an immediate retrigger")

	m.VY = -10
	clockOf(e).Now += cfg.Hazard.RetriggerLockout
	assert.False(t, TriggerTrampoline(e, hazard, player), "rising players are not launched")

	m.VY = 0
	assert.True(t, TriggerTrampoline(e, hazard, player))
	assert.Equal(t, -cfg.Hazard.SuperJumpVelocity, m.VY)
	assert.Equal(t, time.Duration(factory.Never), m.LastGroundedAt)
}
