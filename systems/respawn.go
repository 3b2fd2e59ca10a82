package systems

import (
	"math"

	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/shared/gamemath"
	"github.com/automoto/tilehop/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const invulnEndAction = "invuln-end"

// StartRespawn begins the damage cycle: the player is frozen, released from
// every contact and thrown along an arc back to the respawn point. Hits while
// not in the normal state are ignored.
func StartRespawn(e *ecs.ECS, player *donburi.Entry) bool {
	p := components.Player.Get(player)
	if p.Damage != cfg.DamageNormal {
		return false
	}
	levelData, ok := levelOf(e)
	if !ok {
		return false
	}

	p.Damage = cfg.DamageRespawning
	p.Hits++
	p.State = cfg.Thrown

	m := components.Movement.Get(player)
	ReleaseContacts(m, components.Contacts.Get(player))
	m.VX, m.VY = 0, 0
	m.IsJumping = false
	m.Frozen = true

	obj := components.Object.Get(player)
	feetX, feetY := levelData.RespawnPoint()
	start := gamemath.Vec{X: obj.X, Y: obj.Y}
	end := gamemath.Vec{X: feetX - obj.W/2, Y: feetY - obj.H}
	dx := end.X - start.X
	dist := math.Hypot(dx, end.Y-start.Y)

	rc := cfg.Respawn
	duration := gamemath.ArcDuration(dist, rc.DurationPerUnit, rc.MinDuration, rc.MaxDuration)
	r := components.Respawn.Get(player)
	*r = components.RespawnData{
		Arc:    gween.New(0, 1, float32(duration.Seconds()), ease.Linear),
		Start:  start,
		End:    end,
		Height: gamemath.ArcHeight(dx, rc.ArcHeightFactor, rc.MinArcHeight, rc.MaxArcHeight),
	}

	Emit(e, components.Event{Kind: components.EventHit, X: obj.X, Y: obj.Y})
	PlaySFX(e, cfg.SoundHit)
	return true
}

// UpdateRespawn drives the return arc and the invulnerability blink.
func UpdateRespawn(e *ecs.ECS) {
	player, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	p := components.Player.Get(player)
	clock := clockOf(e)

	switch p.Damage {
	case cfg.DamageRespawning:
		r := components.Respawn.Get(player)
		if r.Arc == nil {
			finishRespawn(e, player)
			return
		}
		progress, done := r.Arc.Update(float32(deltaSeconds(clock)))
		if done {
			finishRespawn(e, player)
			return
		}
		r.Progress = float64(progress)
		pos := gamemath.ArcPoint(r.Start, r.End, r.Height, r.Progress)
		obj := components.Object.Get(player)
		setPosition(obj.Object, pos.X, pos.Y)
		components.Sprite.Get(player).Rotation = r.Progress * cfg.Respawn.SpinTurns * 2 * math.Pi

	case cfg.DamageInvulnerable:
		if !cfg.Respawn.CheckpointBlinks || cfg.Respawn.BlinkInterval <= 0 {
			return
		}
		r := components.Respawn.Get(player)
		ticks := (clock.Now - r.InvulnStart) / cfg.Respawn.BlinkInterval
		components.Sprite.Get(player).Hidden = ticks%2 == 1
	}
}

// finishRespawn lands the player exactly on the respawn point and opens the
// invulnerability window.
func finishRespawn(e *ecs.ECS, player *donburi.Entry) {
	p := components.Player.Get(player)
	r := components.Respawn.Get(player)
	m := components.Movement.Get(player)
	obj := components.Object.Get(player)
	now := clockOf(e).Now

	setPosition(obj.Object, r.End.X, r.End.Y)
	r.Progress = 1
	r.Arc = nil
	r.InvulnStart = now

	ResetMovement(m, &cfg.Movement)
	m.Frozen = false
	p.Damage = cfg.DamageInvulnerable
	p.State = cfg.Idle

	sprite := components.Sprite.Get(player)
	sprite.Rotation = 0

	id := player.Entity()
	scheduler := schedulerOf(e)
	scheduler.CancelNamed(id, invulnEndAction)
	scheduler.Schedule(now+cfg.Respawn.InvulnWindow, id, invulnEndAction, func(e *ecs.ECS) {
		if !e.World.Valid(id) {
			return
		}
		entry := e.World.Entry(id)
		if pd := components.Player.Get(entry); pd.Damage == cfg.DamageInvulnerable {
			pd.Damage = cfg.DamageNormal
		}
		components.Sprite.Get(entry).Hidden = false
	})

	Emit(e, components.Event{Kind: components.EventRespawned, X: r.End.X, Y: r.End.Y})
}
