package source

import "testing"

func TestSpanCover(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Span
		expected Span
	}{
		{"disjoint", Span{File: 1, Start: 2, End: 4}, Span{File: 1, Start: 8, End: 9}, Span{File: 1, Start: 2, End: 9}},
		{"nested", Span{File: 1, Start: 2, End: 10}, Span{File: 1, Start: 3, End: 4}, Span{File: 1, Start: 2, End: 10}},
		{"other file", Span{File: 1, Start: 2, End: 4}, Span{File: 2, Start: 0, End: 9}, Span{File: 1, Start: 2, End: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cover(tt.b); got != tt.expected {
				t.Errorf("Cover() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSpanContainsAndLen(t *testing.T) {
	outer := Span{File: 0, Start: 0, End: 10}
	if !outer.Contains(Span{Start: 3, End: 10}) {
		t.Error("expected containment")
	}
	if outer.Contains(Span{Start: 3, End: 11}) {
		t.Error("span past the end must not be contained")
	}
	if outer.Len() != 10 || outer.Empty() {
		t.Errorf("unexpected Len/Empty for %v", outer)
	}
}

func TestMakeSpanClamps(t *testing.T) {
	tests := []struct {
		start, end int
		want       Span
	}{
		{1, 4, Span{File: 2, Start: 1, End: 4}},
		{-3, 2, Span{File: 2, Start: 0, End: 2}},
		{5, 1, Span{File: 2, Start: 5, End: 5}},
		{1, 1 << 40, Span{File: 2, Start: 1, End: 1<<32 - 1}},
	}
	for _, tt := range tests {
		if got := MakeSpan(2, tt.start, tt.end); got != tt.want {
			t.Errorf("MakeSpan(%d, %d) = %v, want %v", tt.start, tt.end, got, tt.want)
		}
	}
	if p := PointAt(1, 7); !p.Empty() || p.Start != 7 {
		t.Errorf("PointAt = %v", p)
	}
}
