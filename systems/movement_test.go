package systems

import (
	"testing"
	"time"

	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func tuning() (cfg.MovementConfig, cfg.PhysicsConfig) {
	mc := cfg.Movement
	mc.MinSpeed = 160
	mc.MaxSpeed = 260
	mc.Acceleration = 200
	mc.JumpForce = 420
	mc.JumpCutMultiplier = 0.4
	mc.CoyoteTime = 100 * time.Millisecond
	mc.JumpBuffer = 100 * time.Millisecond
	mc.CanFly = false
	mc.Deceleration = cfg.DecelSnap

	pc := cfg.Physics
	pc.Gravity = 900
	pc.FallMultiplier = 0.6
	pc.MaxFallSpeed = 600
	pc.MaxRiseSpeed = 900
	pc.MaxDeltaSeconds = 0.05
	return mc, pc
}

func TestSpeedRampsAndClampsAtMax(t *testing.T) {
	mc, pc := tuning()
	m := factory.NewMovement()
	m.GroundContacts = 1
	dt := 16 * time.Millisecond

	prev := 0.0
	for now := time.Duration(0); now < time.Second; now += dt {
		StepMovement(&m, components.InputState{MoveRight: true}, now, dt, &mc, &pc)
		if now == 0 {
			assert.InDelta(t, 163.2, m.VX, 1e-9)
		}
		assert.GreaterOrEqual(t, m.VX, prev)
		assert.LessOrEqual(t, m.VX, mc.MaxSpeed)
		prev = m.VX
	}
	assert.Equal(t, 260.0, m.CurrentSpeed)
	assert.Equal(t, 260.0, m.VX)
	assert.Equal(t, 1.0, m.Facing)
}

func TestDirectionChangeResetsToMinSpeed(t *testing.T) {
	mc, pc := tuning()
	m := factory.NewMovement()
	m.GroundContacts = 1
	dt := 16 * time.Millisecond

	for i := 0; i < 30; i++ {
		StepMovement(&m, components.InputState{MoveRight: true}, time.Duration(i)*dt, dt, &mc, &pc)
	}
	require.Greater(t, m.CurrentSpeed, mc.MinSpeed+50)

	StepMovement(&m, components.InputState{MoveLeft: true}, 30*dt, dt, &mc, &pc)
	assert.InDelta(t, -(mc.MinSpeed + mc.Acceleration*dt.Seconds()), m.VX, 1e-9)
	assert.Equal(t, -1.0, m.Facing)
}

func TestIdleSnapsOrDamps(t *testing.T) {
	mc, pc := tuning()
	dt := 16 * time.Millisecond

	m := factory.NewMovement()
	m.GroundContacts = 1
	StepMovement(&m, components.InputState{MoveRight: true}, 0, dt, &mc, &pc)
	StepMovement(&m, components.InputState{}, dt, dt, &mc, &pc)
	assert.Zero(t, m.VX)

	mc.Deceleration = cfg.DecelDamping
	mc.IdleDamping = 0.8
	m = factory.NewMovement()
	m.GroundContacts = 1
	StepMovement(&m, components.InputState{MoveRight: true}, 0, dt, &mc, &pc)
	before := m.VX
	StepMovement(&m, components.InputState{}, dt, dt, &mc, &pc)
	assert.Greater(t, m.VX, 0.0)
	assert.Less(t, m.VX, before)

	for i := 2; i < 200; i++ {
		StepMovement(&m, components.InputState{}, time.Duration(i)*dt, dt, &mc, &pc)
	}
	assert.Zero(t, m.VX)
}

func TestJumpCutAppliesOnce(t *testing.T) {
	mc, pc := tuning()
	dt := 10 * time.Millisecond
	m := factory.NewMovement()
	m.GroundContacts = 1

	res := StepMovement(&m, components.InputState{JumpJustPressed: true, JumpHeld: true}, 0, dt, &mc, &pc)
	require.True(t, res.Jumped)
	assert.InDelta(t, -411.0, m.VY, 1e-9)
	m.GroundContacts = 0

	for now := dt; now < 50*time.Millisecond; now += dt {
		StepMovement(&m, components.InputState{JumpHeld: true}, now, dt, &mc, &pc)
	}
	assert.InDelta(t, -375.0, m.VY, 1e-9)

	cuts := 0
	res = StepMovement(&m, components.InputState{}, 50*time.Millisecond, dt, &mc, &pc)
	require.True(t, res.Cut)
	assert.InDelta(t, -141.0, m.VY, 1e-9)
	cuts++

	for now := 60 * time.Millisecond; now < 300*time.Millisecond; now += dt {
		if StepMovement(&m, components.InputState{}, now, dt, &mc, &pc).Cut {
			cuts++
		}
	}
	assert.Equal(t, 1, cuts)
	assert.False(t, m.IsJumping)
}

func TestCoyoteWindow(t *testing.T) {
	mc, pc := tuning()
	dt := 16 * time.Millisecond
	press := components.InputState{JumpJustPressed: true, JumpHeld: true}

	leaveGround := func() components.MovementData {
		m := factory.NewMovement()
		m.GroundContacts = 1
		StepMovement(&m, components.InputState{}, 0, dt, &mc, &pc)
		m.GroundContacts = 0
		return m
	}

	m := leaveGround()
	res := StepMovement(&m, press, mc.CoyoteTime, dt, &mc, &pc)
	assert.True(t, res.Jumped, "press at the edge of the coyote window jumps")

	m = leaveGround()
	res = StepMovement(&m, press, mc.CoyoteTime+time.Millisecond, dt, &mc, &pc)
	assert.False(t, res.Jumped, "press after the coyote window does not jump")
}

func TestJumpBuffer(t *testing.T) {
	mc, pc := tuning()
	dt := 16 * time.Millisecond
	press := components.InputState{JumpJustPressed: true, JumpHeld: true}
	held := components.InputState{JumpHeld: true}

	for _, tc := range []struct {
		name   string
		landAt time.Duration
		jumps  bool
	}{
		{"landing at the edge of the buffer", mc.JumpBuffer, true},
		{"landing after the buffer", mc.JumpBuffer + time.Millisecond, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m := factory.NewMovement()
			m.VY = 200
			res := StepMovement(&m, press, 0, dt, &mc, &pc)
			require.False(t, res.Jumped)

			m.GroundContacts = 1
			res = StepMovement(&m, held, tc.landAt, dt, &mc, &pc)
			assert.Equal(t, tc.jumps, res.Jumped)
			if tc.jumps {
				assert.Less(t, m.VY, 0.0)
			}
		})
	}
}

func TestFlyingJumpsInAir(t *testing.T) {
	mc, pc := tuning()
	mc.CanFly = true
	dt := 16 * time.Millisecond
	m := factory.NewMovement()

	res := StepMovement(&m, components.InputState{JumpJustPressed: true, JumpHeld: true}, time.Second, dt, &mc, &pc)
	assert.True(t, res.Jumped)
	assert.Less(t, m.VY, 0.0)
}

func TestFallIsClampedAndHeavier(t *testing.T) {
	mc, pc := tuning()
	dt := 16 * time.Millisecond
	m := factory.NewMovement()

	m.VY = 10
	StepMovement(&m, components.InputState{}, 0, dt, &mc, &pc)
	assert.InDelta(t, 10+900*0.016*1.6, m.VY, 1e-9)

	for i := 1; i < 200; i++ {
		StepMovement(&m, components.InputState{}, time.Duration(i)*dt, dt, &mc, &pc)
	}
	assert.Equal(t, pc.MaxFallSpeed, m.VY)
}

func TestIsJumpingSpansOneStretch(t *testing.T) {
	mc, pc := tuning()
	dt := 16 * time.Millisecond

	rapid.Check(t, func(t *rapid.T) {
		m := factory.NewMovement()
		frames := rapid.IntRange(1, 200).Draw(t, "frames")
		for i := 0; i < frames; i++ {
			if rapid.Bool().Draw(t, "grounded") {
				m.GroundContacts = 1
			} else {
				m.GroundContacts = 0
			}
			held := rapid.Bool().Draw(t, "held")
			in := components.InputState{
				JumpJustPressed: held && rapid.Bool().Draw(t, "just"),
				JumpHeld:        held,
			}

			wasJumping := m.IsJumping
			landed := m.GroundContacts > 0 && m.VY >= 0
			res := StepMovement(&m, in, time.Duration(i)*dt, dt, &mc, &pc)

			if res.Jumped && wasJumping && !landed {
				t.Fatalf("frame %d: jump started while a jump was in progress", i)
			}
			if m.IsJumping && !wasJumping && !res.Jumped {
				t.Fatalf("frame %d: isJumping set without a jump", i)
			}
			if m.VY < -pc.MaxRiseSpeed || m.VY > pc.MaxFallSpeed {
				t.Fatalf("frame %d: vy %.2f outside clamp", i, m.VY)
			}
		}
	})
}
