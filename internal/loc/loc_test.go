package loc

import "testing"

func TestOffsetToPosition(t *testing.T) {
	src := "abc\ndef\nghi"
	cases := []struct {
		offset int
		want   Position
	}{
		{0, Position{Line: 1, Column: 1}},
		{3, Position{Line: 1, Column: 4}},
		{4, Position{Line: 2, Column: 1}},
		{7, Position{Line: 2, Column: 4}},
		{8, Position{Line: 3, Column: 1}},
		{11, Position{Line: 3, Column: 4}},
	}
	for _, c := range cases {
		if got := OffsetToPosition(src, c.offset); got != c.want {
			t.Errorf("OffsetToPosition(%d) = %+v, want %+v", c.offset, got, c.want)
		}
	}
}

func TestOffsetToPositionClamps(t *testing.T) {
	src := "abc"
	if got := OffsetToPosition(src, 100); got != (Position{Line: 1, Column: 4}) {
		t.Errorf("out-of-range offset = %+v, want clamped to end", got)
	}
	if got := OffsetToPosition(src, -5); got != (Position{Line: 1, Column: 1}) {
		t.Errorf("negative offset = %+v, want clamped to start", got)
	}
}

func TestRangeEnd(t *testing.T) {
	r := Range{Loc: Loc{Start: 10}, Len: 5}
	if got := r.End(); got != 15 {
		t.Errorf("Range.End() = %d, want 15", got)
	}
}

func TestSpanLen(t *testing.T) {
	s := Span{Start: 3, End: 9}
	if got := s.Len(); got != 6 {
		t.Errorf("Span.Len() = %d, want 6", got)
	}
}
