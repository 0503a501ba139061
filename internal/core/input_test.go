package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionPause)
	f.Set(ActionLeft)
	f.Set(ActionUp)

	if !f.Has(ActionPause) || f.Has(ActionRestart) {
		t.Errorf("Has() mismatch for %v", f.Actions)
	}

	moves := f.Moves()
	want := []Action{ActionUp, ActionLeft, ActionUp}
	if len(moves) != len(want) {
		t.Fatalf("Moves() = %v, expected %v", moves, want)
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Errorf("Moves()[%d] = %v, expected %v", i, moves[i], want[i])
		}
	}

	f.Clear()
	if len(f.Actions) != 0 || f.Has(ActionUp) {
		t.Error("Clear() should drop all actions")
	}
}

func TestActionString(t *testing.T) {
	if ActionLeft.String() != "Left" {
		t.Errorf("ActionLeft.String() = %q", ActionLeft.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action string = %q", Action(99).String())
	}
	if !ActionDown.IsMove() || ActionPause.IsMove() {
		t.Error("IsMove() mismatch")
	}
}
