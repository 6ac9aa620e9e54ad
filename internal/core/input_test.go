package core

import "testing"

func TestInputFrameKeepsOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionRotate)
	f.Set(ActionLeft)

	got := f.Ordered()
	want := []Action{ActionLeft, ActionRotate, ActionLeft}
	if len(got) != len(want) {
		t.Fatalf("Ordered() len = %d, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Ordered()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}

	if !f.Has(ActionRotate) || f.Has(ActionRight) {
		t.Error("Has() does not reflect recorded actions")
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)
	clone := f.Clone()

	f.Clear()
	if f.Has(ActionPause) || len(f.Ordered()) != 0 {
		t.Error("Clear() should drop all actions")
	}
	if !clone.Has(ActionPause) || len(clone.Ordered()) != 1 {
		t.Error("Clone() should be independent of the original")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionLeft) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionLeft)
	if !f.Has(ActionLeft) {
		t.Error("Set() on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionAccelerateBegin.String() != "AccelerateBegin" {
		t.Errorf("String() = %q", ActionAccelerateBegin.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("String() for unknown = %q", Action(99).String())
	}
}
