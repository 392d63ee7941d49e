package water

import (
	stdmath "math"
	"testing"
)

func TestBuildPlane(t *testing.T) {
	p := BuildPlane(100)

	if len(p.Vertices) != 4*6 {
		t.Fatalf("len(Vertices) = %d, want 24", len(p.Vertices))
	}
	for i := 0; i < 4; i++ {
		v := p.Vertices[i*6:]
		if v[1] != 0 {
			t.Errorf("vertex %d y = %v, want 0", i, v[1])
		}
		if v[3] != 0 || v[4] != 1 || v[5] != 0 {
			t.Errorf("vertex %d normal = %v, want up", i, v[3:6])
		}
		if stdmath.Abs(float64(v[0])) != 100 || stdmath.Abs(float64(v[2])) != 100 {
			t.Errorf("vertex %d = (%v, %v), want corners at ±100", i, v[0], v[2])
		}
	}
}

func TestTideLevel(t *testing.T) {
	tide := &Tide{Amplitude: 50, Offset: -30, AngularSpeed: 0.125}

	if got := tide.Level(); got != -30 {
		t.Errorf("initial level = %v, want -30", got)
	}

	// sin(0.125 * 4pi) = sin(pi/2) = 1
	tide.Update(4 * stdmath.Pi)
	if got := tide.Level(); stdmath.Abs(float64(got-20)) > 1e-3 {
		t.Errorf("high tide = %v, want 20", got)
	}

	m := tide.Model()
	if m[13] != tide.Level() {
		t.Errorf("model Y translation = %v, want %v", m[13], tide.Level())
	}
}
