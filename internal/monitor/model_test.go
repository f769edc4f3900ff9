package monitor

import "testing"

// TestPrimary_Flagged verifies the flagged display wins.
func TestPrimary_Flagged(t *testing.T) {
	list := []Monitor{
		{Index: 1, W: 100, H: 100},
		{Index: 2, W: 200, H: 200, Primary: true},
	}
	m, ok := Primary(list)
	if !ok || m.Index != 2 {
		t.Fatalf("expected the primary display, got ok=%v monitor=%+v", ok, m)
	}
}

// TestPrimary_FallsBackToFirst verifies the first display is used when no
// primary flag is present.
func TestPrimary_FallsBackToFirst(t *testing.T) {
	list := []Monitor{
		{Index: 1, W: 100, H: 100},
		{Index: 2, W: 200, H: 200},
	}
	m, ok := Primary(list)
	if !ok || m.Index != 1 {
		t.Fatalf("expected the first display, got ok=%v monitor=%+v", ok, m)
	}
}

// TestPrimary_Empty verifies an empty list reports no display.
func TestPrimary_Empty(t *testing.T) {
	if _, ok := Primary(nil); ok {
		t.Fatalf("expected no display for an empty list")
	}
}
