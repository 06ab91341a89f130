package blend

import "testing"

func TestApplyCoverage(t *testing.T) {
	tests := []struct {
		alpha, coverage, want uint8
	}{
		{255, 255, 255},
		{255, 0, 0},
		{0, 255, 0},
		{255, 128, 128},
		{128, 255, 128},
		{128, 128, 64},
	}

	for _, tt := range tests {
		if got := ApplyCoverage(tt.alpha, tt.coverage); got != tt.want {
			t.Errorf("ApplyCoverage(%d, %d) = %d, want %d", tt.alpha, tt.coverage, got, tt.want)
		}
	}
}

func TestSourceOver_OpaqueSourceReplaces(t *testing.T) {
	r, g, b, a := SourceOver(10, 20, 30, 255, 200, 210, 220, 40)
	if r != 10 || g != 20 || b != 30 || a != 255 {
		t.Errorf("got (%d,%d,%d,%d), want (10,20,30,255)", r, g, b, a)
	}
}

func TestSourceOver_TransparentSourceKeepsDestination(t *testing.T) {
	r, g, b, a := SourceOver(10, 20, 30, 0, 200, 210, 220, 40)
	if r != 200 || g != 210 || b != 220 || a != 40 {
		t.Errorf("got (%d,%d,%d,%d), want (200,210,220,40)", r, g, b, a)
	}
}

func TestSourceOver_HalfOverOpaqueWhite(t *testing.T) {
	r, g, b, a := SourceOver(255, 0, 0, 128, 255, 255, 255, 255)
	if a != 255 {
		t.Errorf("alpha %d, want 255", a)
	}
	if r != 255 {
		t.Errorf("red %d, want 255", r)
	}
	// 128/255 red over white: green and blue land at 127.
	if g != 127 || b != 127 {
		t.Errorf("green/blue (%d,%d), want (127,127)", g, b)
	}
}

func TestSourceOver_BothTransparent(t *testing.T) {
	r, g, b, a := SourceOver(50, 60, 70, 0, 0, 0, 0, 0)
	if r != 0 || g != 0 || b != 0 || a != 0 {
		t.Errorf("got (%d,%d,%d,%d), want all zero", r, g, b, a)
	}
}

func TestSourceOver_TranslucentOverTransparent(t *testing.T) {
	// Blending onto a fully transparent destination keeps the source color
	// and alpha: the destination contributes nothing.
	r, g, b, a := SourceOver(80, 90, 100, 128, 0, 0, 0, 0)
	if r != 80 || g != 90 || b != 100 {
		t.Errorf("color (%d,%d,%d), want (80,90,100)", r, g, b)
	}
	if a != 128 {
		t.Errorf("alpha %d, want 128", a)
	}
}

func TestSourceOver_AlphaAccumulates(t *testing.T) {
	// Two translucent layers leave a more opaque result than one.
	_, _, _, once := SourceOver(0, 0, 0, 100, 255, 255, 255, 100)
	if once <= 100 {
		t.Errorf("composited alpha %d should exceed either layer's 100", once)
	}
}
