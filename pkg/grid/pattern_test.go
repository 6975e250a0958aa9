package grid

import "testing"

func TestPatternOf_AllEmpty(t *testing.T) {
	g := NewEmptyGrid(GridConfig{Size: 3})
	row0 := acrossAt(g, 0)

	got := PatternOf(row0).String()
	if got != "___" {
		t.Errorf("expected all-wildcard pattern %q, got %q", "___", got)
	}
}

func TestPatternOf_PartiallyFilled(t *testing.T) {
	g := NewEmptyGrid(GridConfig{Size: 3})
	row0 := acrossAt(g, 0)
	col0 := downAt(g, 0)

	if _, err := g.Place(col0, "cat"); err != nil {
		t.Fatalf("Place failed: %v", err)
	}

	// row0 shares only its first cell with col0.
	got := PatternOf(row0).String()
	if got != "c__" {
		t.Errorf("expected %q, got %q", "c__", got)
	}
}

func TestPatternOf_FullyFilled(t *testing.T) {
	g := NewEmptyGrid(GridConfig{Size: 3})
	row0 := acrossAt(g, 0)

	if _, err := g.Place(row0, "cat"); err != nil {
		t.Fatalf("Place failed: %v", err)
	}

	got := PatternOf(row0).String()
	if got != "cat" {
		t.Errorf("expected %q, got %q", "cat", got)
	}
}
