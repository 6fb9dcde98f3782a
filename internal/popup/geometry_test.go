package popup

import "testing"

func TestPlaceBelowWhenItFits(t *testing.T) {
	rect := Place(Placement{AnchorRow: 20, AnchorCol: 5, Items: 3, LabelWidth: 6, ViewTop: 0, ViewHeight: 24})
	if rect.Top != 20 || rect.Bottom != 23 {
		t.Fatalf("expected top 20 bottom 23, got %+v", rect)
	}
}

func TestPlaceFlipsAbove(t *testing.T) {
	rect := Place(Placement{AnchorRow: 23, AnchorCol: 5, Items: 3, LabelWidth: 6, ViewTop: 0, ViewHeight: 24})
	if rect.Top != 19 || rect.Bottom != 22 {
		t.Fatalf("expected top 19 bottom 22, got %+v", rect)
	}
}

func TestPlaceFlipRule(t *testing.T) {
	for _, tc := range []struct {
		anchor, items, viewTop, viewHeight int
	}{
		{0, 1, 0, 24},
		{10, 5, 0, 15},
		{10, 4, 0, 15},
		{30, 2, 10, 20},
		{29, 2, 10, 20},
		{5, 7, 5, 3},
	} {
		p := Placement{AnchorRow: tc.anchor, Items: tc.items, LabelWidth: 4, ViewTop: tc.viewTop, ViewHeight: tc.viewHeight}
		rect := Place(p)
		want := tc.anchor
		if tc.anchor+tc.items >= tc.viewTop+tc.viewHeight {
			want = tc.anchor - tc.items - 1
		}
		if rect.Top != want {
			t.Fatalf("%+v: expected top %d, got %d", tc, want, rect.Top)
		}
		if rect.Bottom != rect.Top+tc.items {
			t.Fatalf("%+v: expected bottom %d, got %d", tc, rect.Top+tc.items, rect.Bottom)
		}
		if again := Place(p); again != rect {
			t.Fatalf("%+v: placement not idempotent: %+v vs %+v", tc, rect, again)
		}
	}
}

func TestPlaceWidthLeadingSpace(t *testing.T) {
	atEdge := Place(Placement{AnchorRow: 1, AnchorCol: 0, Items: 1, LabelWidth: 5, ViewHeight: 24})
	if atEdge.Width != 6 {
		t.Fatalf("expected width 6 at the left edge, got %d", atEdge.Width)
	}
	inside := Place(Placement{AnchorRow: 1, AnchorCol: 3, Items: 1, LabelWidth: 5, ViewHeight: 24})
	if inside.Width != 7 {
		t.Fatalf("expected width 7 with left space, got %d", inside.Width)
	}
	if inside.Left != 3 {
		t.Fatalf("expected left 3, got %d", inside.Left)
	}
}

func TestPlaceClampsRightEdge(t *testing.T) {
	rect := Place(Placement{AnchorRow: 1, AnchorCol: 78, Items: 2, LabelWidth: 10, ViewLeft: 0, ViewWidth: 80, ViewHeight: 24})
	if rect.Left+rect.Width != 80 {
		t.Fatalf("expected popup to end at column 80, got %+v", rect)
	}
	narrow := Place(Placement{AnchorRow: 1, AnchorCol: 4, Items: 2, LabelWidth: 10, ViewLeft: 2, ViewWidth: 5, ViewHeight: 24})
	if narrow.Left != 2 {
		t.Fatalf("expected popup pinned to viewport left, got %+v", narrow)
	}
	unbounded := Place(Placement{AnchorRow: 1, AnchorCol: 200, Items: 2, LabelWidth: 10, ViewHeight: 24})
	if unbounded.Left != 200 {
		t.Fatalf("expected no clamp without viewport width, got %+v", unbounded)
	}
}

func TestRectItemAt(t *testing.T) {
	rect := Rect{Top: 10, Bottom: 13, Left: 4, Width: 8}
	cases := []struct {
		row, col, want int
	}{
		{10, 5, -1},
		{11, 4, 0},
		{12, 12, 1},
		{13, 8, 2},
		{14, 8, -1},
		{12, 3, -1},
		{12, 13, -1},
	}
	for _, tc := range cases {
		if got := rect.ItemAt(tc.row, tc.col); got != tc.want {
			t.Fatalf("ItemAt(%d,%d): expected %d, got %d", tc.row, tc.col, tc.want, got)
		}
	}
	if !rect.Contains(10, 4) || rect.Contains(9, 4) {
		t.Fatalf("unexpected Contains result on the anchor row")
	}
}
