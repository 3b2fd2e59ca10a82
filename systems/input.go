package systems

import (
	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// PollActions reads keyboard, gamepad buttons and the left stick into the
// current frame. Sources are OR-combined.
func PollActions(input *components.ActionsData) {
	var current [cfg.ActionCount]bool

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					current[actionID] = true
				}
			}
		}
	}

	left, right, up, down := analogStickState(gamepadIDs)
	current[cfg.ActionMoveLeft] = current[cfg.ActionMoveLeft] || left
	current[cfg.ActionMenuLeft] = current[cfg.ActionMenuLeft] || left
	current[cfg.ActionMoveRight] = current[cfg.ActionMoveRight] || right
	current[cfg.ActionMenuRight] = current[cfg.ActionMenuRight] || right
	current[cfg.ActionMenuUp] = current[cfg.ActionMenuUp] || up
	current[cfg.ActionMenuDown] = current[cfg.ActionMenuDown] || down

	AdvanceActions(input, current)
}

// AdvanceActions swaps buffers: current becomes previous.
func AdvanceActions(input *components.ActionsData, current [cfg.ActionCount]bool) {
	input.Previous = input.Current
	input.Current = current
}

// analogStickState reads the left analog stick from all gamepads.
func analogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		left = left || horizontal < -deadzone
		right = right || horizontal > deadzone
		up = up || vertical < -deadzone
		down = down || vertical > deadzone
	}
	return
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.ActionsData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// GameplayInput converts actions into the simulation's per-frame input.
func GameplayInput(input *components.ActionsData) components.InputState {
	jump := GetAction(input, cfg.ActionJump)
	return components.InputState{
		MoveLeft:        input.Current[cfg.ActionMoveLeft],
		MoveRight:       input.Current[cfg.ActionMoveRight],
		JumpJustPressed: jump.JustPressed,
		JumpHeld:        jump.Pressed,
		Restart:         GetAction(input, cfg.ActionRestart).JustPressed,
	}
}
