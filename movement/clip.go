package movement

// Clip names an animation on the character's sheet.
type Clip string

const (
	ClipWalkingRight Clip = "MarioWalkingRight"
	ClipWalkingLeft  Clip = "MarioWalkingLeft"
	ClipJumpingRight Clip = "MarioJumpingRight"
	ClipJumpingLeft  Clip = "MarioJumpingLeft"
	ClipIdleRight    Clip = "MarioIdleRight"
	ClipIdleLeft     Clip = "MarioIdleLeft"
)

// Clips lists every clip a controller can select.
var Clips = []Clip{
	ClipWalkingRight,
	ClipWalkingLeft,
	ClipJumpingRight,
	ClipJumpingLeft,
	ClipIdleRight,
	ClipIdleLeft,
}

func walkingClip(f Facing) Clip {
	if f == FacingLeft {
		return ClipWalkingLeft
	}
	return ClipWalkingRight
}

func jumpingClip(f Facing) Clip {
	if f == FacingLeft {
		return ClipJumpingLeft
	}
	return ClipJumpingRight
}

func idleClip(f Facing) Clip {
	if f == FacingLeft {
		return ClipIdleLeft
	}
	return ClipIdleRight
}

// Facing reports which way the clip looks.
func (c Clip) Facing() Facing {
	switch c {
	case ClipWalkingLeft, ClipJumpingLeft, ClipIdleLeft:
		return FacingLeft
	}
	return FacingRight
}
