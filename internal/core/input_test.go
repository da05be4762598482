package core

import "testing"

func TestIntentSetAndHas(t *testing.T) {
	var in Intent

	for _, d := range Directions {
		if in.Has(d) {
			t.Errorf("new intent should not hold %v", d)
		}
		in.Set(d, true)
		if !in.Has(d) {
			t.Errorf("Set(%v, true) should hold it", d)
		}
	}

	in.Set(DirLeft, false)
	if in.Has(DirLeft) {
		t.Error("Left should be released")
	}
	if !in.Has(DirRight) {
		t.Error("releasing Left should not touch Right")
	}

	in.Clear()
	if in != (Intent{}) {
		t.Errorf("Clear should release everything, got %+v", in)
	}
}

func TestIntentIgnoresInvalidDirections(t *testing.T) {
	var in Intent
	in.Set(DirNone, true)
	in.Set(Direction(42), true)

	if in != (Intent{}) {
		t.Errorf("invalid directions should be ignored, got %+v", in)
	}
	if Direction(42).Valid() || DirNone.Valid() {
		t.Error("Valid() should reject non-steering directions")
	}
	if Direction(42).String() != "Unknown" {
		t.Errorf("String() = %q, expected Unknown", Direction(42).String())
	}
}
