package motion

import "testing"

func TestRectUnion(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"disjoint", XYWH(0, 0, 10, 10), XYWH(20, 5, 5, 10), Rect{0, 0, 25, 15}},
		{"contained", XYWH(0, 0, 10, 10), XYWH(2, 2, 2, 2), Rect{0, 0, 10, 10}},
		{"empty left", Rect{}, XYWH(1, 2, 3, 4), Rect{1, 2, 4, 6}},
		{"empty right", XYWH(1, 2, 3, 4), Rect{5, 5, 5, 9}, Rect{1, 2, 4, 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Union(tt.b); got != tt.want {
				t.Errorf("Union() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectIsEmpty(t *testing.T) {
	tests := []struct {
		r    Rect
		want bool
	}{
		{Rect{}, true},
		{XYWH(0, 0, 0, 5), true},
		{XYWH(0, 0, 5, -1), true},
		{XYWH(-3, -3, 1, 1), false},
	}
	for _, tt := range tests {
		if got := tt.r.IsEmpty(); got != tt.want {
			t.Errorf("%v.IsEmpty() = %v, want %v", tt.r, got, tt.want)
		}
	}
}
