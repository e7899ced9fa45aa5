package movement

import "github.com/milk9111/smb/common"

// Input is the immutable per-frame sample the transition consumes. Held
// flags describe the key state this frame; Pressed/Released are edges.
type Input struct {
	Axis float64

	Left  bool
	Right bool
	Jump  bool

	JumpPressed bool

	LeftReleased  bool
	RightReleased bool
	JumpReleased  bool
}

// Buttons is the raw held state sampled from the keyboard or a gamepad.
type Buttons struct {
	Left  bool
	Right bool
	// Jump is the X key or the gamepad's bottom face button; JumpAlt is the
	// up arrow. Each key has its own press and release edges.
	Jump    bool
	JumpAlt bool
	// Stick is an analog horizontal value; zero means keys only.
	Stick float64
}

// NextInput derives this frame's snapshot from the previous frame's held
// buttons and the current ones. The axis is passed in already smoothed.
func NextInput(prev, cur Buttons, axis float64) Input {
	return Input{
		Axis:          axis,
		Left:          cur.Left,
		Right:         cur.Right,
		Jump:          cur.Jump || cur.JumpAlt,
		JumpPressed:   pressed(prev.Jump, cur.Jump) || pressed(prev.JumpAlt, cur.JumpAlt),
		LeftReleased:  released(prev.Left, cur.Left),
		RightReleased: released(prev.Right, cur.Right),
		JumpReleased:  released(prev.Jump, cur.Jump) || released(prev.JumpAlt, cur.JumpAlt),
	}
}

func pressed(prev, cur bool) bool  { return cur && !prev }
func released(prev, cur bool) bool { return prev && !cur }

// Target is the raw horizontal target for the axis smoother.
func (b Buttons) Target() float64 {
	if b.Stick != 0 {
		return common.Clamp(b.Stick, -1, 1)
	}
	t := 0.0
	if b.Left {
		t--
	}
	if b.Right {
		t++
	}
	return t
}
