package components

import (
	cfg "github.com/automoto/tilehop/config"
	"github.com/yohamta/donburi"
)

// InputState is one frame of player intent. Edge-triggered fields are true
// for exactly one frame per press; sources are OR-combined upstream.
type InputState struct {
	MoveLeft        bool
	MoveRight       bool
	JumpJustPressed bool
	JumpHeld        bool
	Restart         bool
}

// Merge ORs two input sources.
func (in InputState) Merge(other InputState) InputState {
	return InputState{
		MoveLeft:        in.MoveLeft || other.MoveLeft,
		MoveRight:       in.MoveRight || other.MoveRight,
		JumpJustPressed: in.JumpJustPressed || other.JumpJustPressed,
		JumpHeld:        in.JumpHeld || other.JumpHeld,
		Restart:         in.Restart || other.Restart,
	}
}

var Input = donburi.NewComponentType[InputState]()

// ActionState is the per-frame state of one logical action.
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// ActionsData holds raw action presses for this and the previous frame.
type ActionsData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}
