package puzzle

import "testing"

func TestIdleAnimationTickIsNoOp(t *testing.T) {
	a := Animation{}
	next := a.advance()

	if next != a {
		t.Errorf("Idle animation changed on tick: %+v", next)
	}
}

func TestAnimationConvergesInExactly100Ticks(t *testing.T) {
	for _, dir := range []Direction{DirLeft, DirRight, DirUp, DirDown} {
		a := Animation{Direction: dir}

		for i := 0; i < 99; i++ {
			a = a.advance()
			if !a.Active() {
				t.Fatalf("%v: animation finished early after %d ticks", dir, i+1)
			}
			if a.Direction != dir {
				t.Fatalf("%v: direction changed mid-slide to %v", dir, a.Direction)
			}
		}

		a = a.advance()
		if a.Active() {
			t.Errorf("%v: animation still active after 100 ticks (progress %v)", dir, a.Progress)
		}
		if a.Progress != 0 {
			t.Errorf("%v: progress not reset after completion: %v", dir, a.Progress)
		}
	}
}

func TestAnimationInvariant(t *testing.T) {
	// Direction is DirNone exactly when Progress is 0.
	a := Animation{Direction: DirUp}
	for a.Active() {
		if a.Progress < 0 || a.Progress >= 1 {
			t.Fatalf("Progress out of [0,1): %v", a.Progress)
		}
		a = a.advance()
	}
	if a.Direction != DirNone || a.Progress != 0 {
		t.Errorf("Terminal state not {DirNone, 0}: %+v", a)
	}
}
