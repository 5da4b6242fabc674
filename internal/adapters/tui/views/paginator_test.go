package views

import "testing"

func TestPaginator(t *testing.T) {
	p := NewPaginator(3)
	p.SetTotal(7)

	for i := 0; i < 4; i++ {
		p.CursorDown()
	}
	if p.Cursor() != 4 || p.CurrentPage() != 2 {
		t.Errorf("cursor %d page %d, want 4 and 2", p.Cursor(), p.CurrentPage())
	}
	if start, end := p.VisibleRange(); start != 3 || end != 6 {
		t.Errorf("VisibleRange() = %d, %d", start, end)
	}

	if !p.NextPage() || p.Cursor() != 6 {
		t.Errorf("expected last window at 6, got %d", p.Cursor())
	}
	if p.NextPage() {
		t.Error("NextPage past the end should fail")
	}
	if start, end := p.VisibleRange(); start != 6 || end != 7 {
		t.Errorf("VisibleRange() = %d, %d", start, end)
	}

	p.SetTotal(2)
	if p.Cursor() != 1 || p.CurrentPage() != 1 {
		t.Errorf("shrinking should clamp the cursor, got %d on page %d", p.Cursor(), p.CurrentPage())
	}

	p.SetTotal(0)
	if p.Cursor() != 0 || p.CursorUp() || p.CursorDown() {
		t.Error("empty list should pin the cursor at 0")
	}
	if p.TotalPages() != 1 {
		t.Errorf("TotalPages() = %d", p.TotalPages())
	}
}
