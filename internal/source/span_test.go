package source

import "testing"

func TestSpanCover(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want Span
	}{
		{"disjoint", Span{Start: 2, End: 4}, Span{Start: 8, End: 10}, Span{Start: 2, End: 10}},
		{"nested", Span{Start: 0, End: 10}, Span{Start: 3, End: 5}, Span{Start: 0, End: 10}},
		{"reversed", Span{Start: 8, End: 10}, Span{Start: 1, End: 2}, Span{Start: 1, End: 10}},
		{"other file", Span{File: 1, Start: 2, End: 4}, Span{File: 2, Start: 0, End: 9}, Span{File: 1, Start: 2, End: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cover(tt.b); got != tt.want {
				t.Fatalf("Cover() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpanLenEmpty(t *testing.T) {
	s := Span{Start: 5, End: 5}
	if !s.Empty() || s.Len() != 0 {
		t.Fatalf("expected empty span, got %v", s)
	}
	s.End = 9
	if s.Empty() || s.Len() != 4 {
		t.Fatalf("unexpected len %d for %v", s.Len(), s)
	}
	if got := s.String(); got != "0:5-9" {
		t.Fatalf("String() = %q", got)
	}
}
