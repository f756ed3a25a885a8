package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionFire) {
		t.Error("New frame should have no actions")
	}

	f.Set(ActionFire)
	if !f.Has(ActionFire) {
		t.Error("Set(ActionFire) should be visible through Has")
	}

	f.Hold(ActionLeft, true)
	f.Clear()
	if f.Has(ActionFire) {
		t.Error("Clear should drop discrete actions")
	}
	if !f.IsHeld(ActionLeft) {
		t.Error("Clear should keep held actions")
	}

	f.Hold(ActionLeft, false)
	if f.IsHeld(ActionLeft) {
		t.Error("Hold(false) should release the action")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionPause) || f.IsHeld(ActionRight) {
		t.Error("Zero frame should report nothing")
	}
	f.Set(ActionPause)
	f.Hold(ActionRight, true)
	if !f.Has(ActionPause) || !f.IsHeld(ActionRight) {
		t.Error("Zero frame should lazily allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionFire.String() != "Fire" {
		t.Errorf("ActionFire.String() = %q", ActionFire.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
