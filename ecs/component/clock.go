package component

// Clock is the world's time source, in seconds. Now and FixedNow are
// derived from the frame and step counters so they never drift.
type Clock struct {
	Now   float64
	Delta float64
	// FixedNow advances once per physics step.
	FixedNow   float64
	FixedDelta float64
	Frame      uint64
	FixedFrame uint64
}

var ClockComponent = NewComponent[Clock]()
