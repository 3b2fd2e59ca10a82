package systems

import (
	"math"
	"time"

	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/shared/gamemath"
	"github.com/automoto/tilehop/systems/factory"
	"github.com/automoto/tilehop/tags"
	"github.com/yohamta/donburi/ecs"
)

// StepResult reports what one movement step did.
type StepResult struct {
	Jumped bool
	Landed bool
	Cut    bool
	State  cfg.StateID
}

// StepMovement advances the player's movement state by one frame. It reads
// the ground count maintained by the contact dispatcher and never touches the
// collision space, so it can be driven directly in tests.
func StepMovement(m *components.MovementData, in components.InputState, now, dt time.Duration, mc *cfg.MovementConfig, pc *cfg.PhysicsConfig) StepResult {
	var res StepResult
	sec := dt.Seconds()
	if pc.MaxDeltaSeconds > 0 && sec > pc.MaxDeltaSeconds {
		sec = pc.MaxDeltaSeconds
	}

	grounded := m.OnGround()
	if grounded {
		m.LastGroundedAt = now
		if m.VY >= 0 {
			m.IsJumping = false
			if !m.WasGrounded {
				res.Landed = true
			}
		}
	}
	m.WasGrounded = grounded

	stepHorizontal(m, in, sec, mc)

	// Jump
	if in.JumpJustPressed {
		m.JumpPressedAt = now
	}
	inCoyote := now-m.LastGroundedAt <= mc.CoyoteTime
	buffered := now-m.JumpPressedAt <= mc.JumpBuffer
	launch := !m.IsJumping &&
		((in.JumpJustPressed && (grounded || inCoyote)) || (grounded && buffered))
	if !launch && mc.CanFly && in.JumpJustPressed {
		launch = true
	}
	if launch {
		m.VY = math.Min(m.VY, -mc.JumpForce)
		m.IsJumping = true
		m.LastGroundedAt = factory.Never
		m.JumpPressedAt = factory.Never
		res.Jumped = true
	}

	// Variable jump height
	if !in.JumpHeld && m.IsJumping && m.VY < 0 {
		m.VY *= mc.JumpCutMultiplier
		m.IsJumping = false
		res.Cut = true
	}

	// Gravity, heavier on the way down
	m.VY += pc.Gravity * sec
	if !grounded && m.VY > 0 {
		m.VY += pc.Gravity * pc.FallMultiplier * sec
	}
	m.VY = gamemath.Clamp(m.VY, -pc.MaxRiseSpeed, pc.MaxFallSpeed)

	switch {
	case !grounded && m.VY < 0:
		res.State = cfg.Rise
	case !grounded:
		res.State = cfg.Fall
	case m.VX != 0:
		res.State = cfg.Walk
	default:
		res.State = cfg.Idle
	}
	return res
}

func stepHorizontal(m *components.MovementData, in components.InputState, sec float64, mc *cfg.MovementConfig) {
	dir := 0.0
	if in.MoveLeft {
		dir--
	}
	if in.MoveRight {
		dir++
	}

	if dir != m.Direction {
		m.CurrentSpeed = mc.MinSpeed
		m.Direction = dir
	}

	if dir != 0 {
		m.CurrentSpeed = math.Min(mc.MaxSpeed, m.CurrentSpeed+mc.Acceleration*sec)
		m.VX = dir * m.CurrentSpeed
		m.Facing = dir
		return
	}

	switch mc.Deceleration {
	case cfg.DecelDamping:
		m.VX = gamemath.Damp(m.VX, mc.IdleDamping, sec)
		if math.Abs(m.VX) < 1 {
			m.VX = 0
		}
	default:
		m.VX = 0
	}
}

// ResetMovement puts the movement state back at rest, as after a teleport.
func ResetMovement(m *components.MovementData, mc *cfg.MovementConfig) {
	ground := m.GroundContacts
	*m = components.MovementData{
		CurrentSpeed:   mc.MinSpeed,
		Facing:         m.Facing,
		GroundContacts: ground,
		LastGroundedAt: factory.Never,
		JumpPressedAt:  factory.Never,
		Frozen:         m.Frozen,
	}
}

// UpdateMovement applies the frame's input to the player.
func UpdateMovement(e *ecs.ECS) {
	player, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	p := components.Player.Get(player)
	m := components.Movement.Get(player)
	if m.Frozen {
		p.State = cfg.Thrown
		return
	}

	clock := clockOf(e)
	in := *components.Input.Get(components.Input.MustFirst(e.World))
	res := StepMovement(m, in, clock.Now, clock.Delta, &cfg.Movement, &cfg.Physics)

	obj := components.Object.Get(player)
	if res.Jumped {
		Emit(e, components.Event{Kind: components.EventJumped, X: obj.X, Y: obj.Y})
		PlaySFX(e, cfg.SoundJump)
	}
	if res.Landed {
		Emit(e, components.Event{Kind: components.EventLanded, X: obj.X, Y: obj.Y})
		PlaySFX(e, cfg.SoundLand)
	}

	p.State = res.State
	components.Sprite.Get(player).FlipX = m.Facing < 0
}
