package movement

import "math"

// Mode is the controller's posture.
type Mode uint8

const (
	ModeIdle Mode = iota
	ModeMoving
	ModeJumping
	modeCount
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeMoving:
		return "moving"
	case ModeJumping:
		return "jumping"
	}
	return "unknown"
}

// State is the runtime state of one controller.
type State struct {
	Mode       Mode
	Facing     Facing
	PrevFacing Facing

	// Speed is the horizontal speed the physics phase multiplies the axis
	// by. It is set to Config.MoveSpeed while a direction is held and zeroed
	// on stop.
	Speed float64

	JumpStart       float64
	CanContinueJump bool
	// Thrusting is true on frames where the jump check passed.
	Thrusting bool
	// Stopped is true on frames where a stop was detected.
	Stopped bool

	Clip Clip
}

// NewState is idle, facing right, with no jump on record.
func NewState() State {
	return State{
		Mode:       ModeIdle,
		Facing:     FacingRight,
		PrevFacing: FacingRight,
		JumpStart:  math.Inf(-1),
		Clip:       ClipIdleRight,
	}
}

// JumpActive reports whether the upward force applies at time now. The
// window is re-checked so a fixed step that lands past the deadline stops
// pushing even if the frame phase has not run yet.
func (s State) JumpActive(now float64, cfg Config) bool {
	return s.Thrusting && withinJumpWindow(now, s.JumpStart, cfg)
}

// windowEpsilon absorbs float error in frame times so a press held for
// exactly MaxJumpTime counts as expired.
const windowEpsilon = 1e-9

func withinJumpWindow(now, start float64, cfg Config) bool {
	return now-start < cfg.MaxJumpTime-windowEpsilon
}
