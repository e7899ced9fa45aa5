package movement

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownRevision = errors.New("movement: unknown revision")
	ErrInvalidConfig   = errors.New("movement: invalid config")
)

const (
	RevisionClassic    = "classic"
	RevisionSimplified = "simplified"
)

// Config is the tuning of one controller. The transition never writes to it.
type Config struct {
	Revision string

	MoveSpeed   float64
	JumpForce   float64
	FallForce   float64
	MaxJumpTime float64

	// GroundedJump requires ground contact to start a jump and latches the
	// jump off when the key is released mid-air.
	GroundedJump bool
	// AirborneFallForce applies the downward force only while not grounded.
	AirborneFallForce bool
	// GroundedWalk selects walking clips only while grounded.
	GroundedWalk bool
	// JumpSound requests the jump sound while the jump force is applied.
	JumpSound bool
}

// Classic is the first controller revision: ground-gated jumps with a
// release latch, airborne-only fall force, a jump sound.
func Classic() Config {
	return Config{
		Revision:          RevisionClassic,
		MoveSpeed:         5,
		JumpForce:         30,
		FallForce:         25,
		MaxJumpTime:       0.40,
		GroundedJump:      true,
		AirborneFallForce: true,
		GroundedWalk:      true,
		JumpSound:         true,
	}
}

// Simplified is the later revision with no ground checks at all.
func Simplified() Config {
	return Config{
		Revision:    RevisionSimplified,
		MoveSpeed:   4,
		JumpForce:   30,
		FallForce:   25,
		MaxJumpTime: 0.40,
	}
}

// Preset resolves a revision name. An empty name is classic.
func Preset(name string) (Config, error) {
	switch name {
	case "", RevisionClassic:
		return Classic(), nil
	case RevisionSimplified:
		return Simplified(), nil
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownRevision, name)
	}
}

func (c Config) Validate() error {
	switch {
	case c.MoveSpeed < 0:
		return fmt.Errorf("%w: move speed %v", ErrInvalidConfig, c.MoveSpeed)
	case c.JumpForce < 0:
		return fmt.Errorf("%w: jump force %v", ErrInvalidConfig, c.JumpForce)
	case c.FallForce < 0:
		return fmt.Errorf("%w: fall force %v", ErrInvalidConfig, c.FallForce)
	case c.MaxJumpTime <= 0:
		return fmt.Errorf("%w: max jump time %v", ErrInvalidConfig, c.MaxJumpTime)
	}
	return nil
}
