package puzzle

// ProgressStep is the fixed per-tick progress increment. At the default
// 200 ticks per second a slide completes in exactly 100 ticks, half a second.
const ProgressStep = 0.01

// Animation tracks an in-flight tile slide. The logical board is committed
// at move time; Animation only drives the visual interpolation. Invariant:
// Direction is DirNone exactly when Progress is 0.
type Animation struct {
	Direction Direction
	Progress  float64
}

// Active reports whether a slide is in flight. An active animation doubles
// as the input lock: new moves are rejected until the slide completes, so
// there is no separate "move in flight" flag to keep in sync.
func (a Animation) Active() bool {
	return a.Direction != DirNone
}

// advance steps the animation by one tick. Idle animations stay idle; an
// active one accumulates progress and resets to idle once the slide is done.
func (a Animation) advance() Animation {
	if !a.Active() {
		return a
	}
	p := a.Progress + ProgressStep
	if p >= 1 {
		return Animation{}
	}
	return Animation{Direction: a.Direction, Progress: p}
}
