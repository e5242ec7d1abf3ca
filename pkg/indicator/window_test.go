package indicator

import "testing"

func TestWindow(t *testing.T) {
	tests := []struct {
		name      string
		dotCount  int
		ref       int
		pageCount int
		want      Span
	}{
		{"left edge", 5, 0, 11, Span{0, 4}},
		{"left half", 5, 3, 11, Span{1, 5}},
		{"center", 5, 5, 11, Span{3, 7}},
		{"right edge", 5, 10, 11, Span{6, 10}},
		{"near right", 5, 9, 11, Span{6, 10}},
		{"even pages center", 5, 5, 10, Span{3, 7}},
		{"even pages left", 5, 4, 10, Span{2, 6}},
		{"all shown", 4, 0, 4, Span{0, 3}},
		{"all shown right half", 4, 3, 4, Span{0, 3}},
		{"single dot", 1, 7, 11, Span{7, 7}},
		{"single page", 1, 0, 1, Span{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Window(tt.dotCount, tt.ref, tt.pageCount)
			if got != tt.want {
				t.Errorf("Window(%d, %d, %d) = %v, want %v", tt.dotCount, tt.ref, tt.pageCount, got, tt.want)
			}
		})
	}
}

// TestWindowLength 窗口长度恒等于实际圆点数
func TestWindowLength(t *testing.T) {
	for pageCount := 1; pageCount <= 20; pageCount++ {
		for configured := 1; configured <= 9; configured++ {
			n := EffectiveDotCount(configured, pageCount)
			for ref := 0; ref < pageCount; ref++ {
				w := Window(n, ref, pageCount)
				if w.Len() != n {
					t.Errorf("Window(%d, %d, %d) = %v, len %d want %d", n, ref, pageCount, w, w.Len(), n)
				}
				if w.First < 0 || w.Last > pageCount-1 {
					t.Errorf("Window(%d, %d, %d) = %v out of range", n, ref, pageCount, w)
				}
				if !w.Contains(ref) {
					t.Errorf("Window(%d, %d, %d) = %v does not contain reference page", n, ref, pageCount, w)
				}
			}
		}
	}
}

func TestSpanPad(t *testing.T) {
	tests := []struct {
		span      Span
		pageCount int
		want      Span
	}{
		{Span{0, 4}, 11, Span{0, 5}},
		{Span{3, 7}, 11, Span{2, 8}},
		{Span{6, 10}, 11, Span{5, 10}},
		{Span{0, 2}, 3, Span{0, 2}},
	}

	for _, tt := range tests {
		if got := tt.span.Pad(1, tt.pageCount); got != tt.want {
			t.Errorf("%v.Pad(1, %d) = %v, want %v", tt.span, tt.pageCount, got, tt.want)
		}
	}
}

func TestSpanEmpty(t *testing.T) {
	s := Window(5, 0, 0)
	if s.Len() != 0 {
		t.Errorf("Window with zero pages: len = %d, want 0", s.Len())
	}
	if s.Contains(0) {
		t.Error("empty span should not contain 0")
	}
}
