package movement

// Event is what a frame's input amounted to, strongest first.
type Event uint8

const (
	EventNone Event = iota
	EventMove
	EventStop
	EventJump
	eventCount
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventMove:
		return "move"
	case EventStop:
		return "stop"
	case EventJump:
		return "jump"
	}
	return "unknown"
}

var transitions = [modeCount][eventCount]Mode{
	ModeIdle: {
		EventNone: ModeIdle,
		EventMove: ModeMoving,
		EventStop: ModeIdle,
		EventJump: ModeJumping,
	},
	ModeMoving: {
		EventNone: ModeMoving,
		EventMove: ModeMoving,
		EventStop: ModeIdle,
		EventJump: ModeJumping,
	},
	// airborne after the jump window: stay jumping until a key says otherwise
	ModeJumping: {
		EventNone: ModeJumping,
		EventMove: ModeMoving,
		EventStop: ModeIdle,
		EventJump: ModeJumping,
	},
}

// Transition looks up the next mode.
func Transition(m Mode, e Event) Mode {
	if m >= modeCount || e >= eventCount {
		return m
	}
	return transitions[m][e]
}

func classify(jumping, moving, stopped bool) Event {
	switch {
	case jumping:
		return EventJump
	case stopped:
		return EventStop
	case moving:
		return EventMove
	}
	return EventNone
}

// Step advances a controller by one render tick. It is a pure function of
// its arguments.
func Step(prev State, in Input, now float64, grounded bool, cfg Config) State {
	s := prev
	s.Stopped = false

	jumping := s.checkJump(in, now, grounded, cfg)
	s.Thrusting = jumping

	moving := false
	if !jumping {
		switch {
		case in.Right:
			s.face(FacingRight, cfg)
			moving = true
		case in.Left:
			s.face(FacingLeft, cfg)
			moving = true
		}
	}

	// a stop cancels speed even on a jumping frame
	stopped := in.RightReleased || in.LeftReleased || in.JumpReleased || (in.Right && in.Left)
	if stopped {
		s.Speed = 0
		s.PrevFacing = s.Facing
		s.Stopped = true
	}

	ev := classify(jumping, moving, stopped)
	s.Mode = Transition(s.Mode, ev)
	s.Clip = selectClip(s, prev.Clip, ev, grounded, cfg)
	return s
}

func (s *State) face(f Facing, cfg Config) {
	s.Speed = cfg.MoveSpeed
	s.PrevFacing = s.Facing
	s.Facing = f
}

func (s *State) checkJump(in Input, now float64, grounded bool, cfg Config) bool {
	if cfg.GroundedJump {
		if grounded {
			s.CanContinueJump = true
			if in.JumpPressed {
				s.JumpStart = now
				return true
			}
		}
	} else if in.JumpPressed {
		s.JumpStart = now
		s.CanContinueJump = true
		return true
	}

	if in.Jump && (s.CanContinueJump || !cfg.GroundedJump) && withinJumpWindow(now, s.JumpStart, cfg) {
		return true
	}

	if in.JumpReleased {
		s.CanContinueJump = false
	}
	return false
}

func selectClip(s State, prev Clip, ev Event, grounded bool, cfg Config) Clip {
	switch ev {
	case EventJump:
		return jumpingClip(s.Facing)
	case EventStop:
		return idleClip(s.PrevFacing)
	case EventMove:
		if grounded || !cfg.GroundedWalk {
			return walkingClip(s.Facing)
		}
	}
	if prev == "" {
		return idleClip(s.Facing)
	}
	return prev
}
