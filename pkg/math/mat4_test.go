package math

import "testing"

func TestMulIdentity(t *testing.T) {
	m := Translate(Vec3{1, 2, 3})
	if got := m.Mul(Identity()); got != m {
		t.Errorf("M * I = %v, want %v", got, m)
	}
	if got := Identity().Mul(m); got != m {
		t.Errorf("I * M = %v, want %v", got, m)
	}
}

func TestTranslateThenScale(t *testing.T) {
	// Scale applied first, then translation.
	m := Translate(Vec3{10, 0, 0}).Mul(Scale(Vec3{2, 2, 2}))
	got := m.TransformPoint(Vec3{1, 1, 1})
	want := Vec3{12, 2, 2}
	if got != want {
		t.Errorf("TransformPoint() = %v, want %v", got, want)
	}
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	eye := Vec3{0, 10, 20}
	view := LookAt(eye, Vec3{}, Up)
	got := view.TransformPoint(eye)
	if !approx(got.X, 0) || !approx(got.Y, 0) || !approx(got.Z, 0) {
		t.Errorf("eye in view space = %v, want origin", got)
	}

	// The target sits on the -Z axis in view space.
	target := view.TransformPoint(Vec3{})
	if target.Z >= 0 || !approx(target.X, 0) {
		t.Errorf("target in view space = %v, want on -Z", target)
	}
}

func TestOrthoMapsBoxToClipSpace(t *testing.T) {
	m := Ortho(0, 100, 0, 50, -1, 1)
	corner := m.TransformPoint(Vec3{100, 50, 0})
	if !approx(corner.X, 1) || !approx(corner.Y, 1) {
		t.Errorf("top-right corner = %v, want (1, 1)", corner)
	}
	origin := m.TransformPoint(Vec3{})
	if !approx(origin.X, -1) || !approx(origin.Y, -1) {
		t.Errorf("origin = %v, want (-1, -1)", origin)
	}
}

func TestPerspectiveDepthOrder(t *testing.T) {
	p := Perspective(Radians(45), 16.0/9.0, 0.1, 2000)
	near := p.TransformPoint(Vec3{0, 0, -1})
	far := p.TransformPoint(Vec3{0, 0, -1000})
	if near.Z >= far.Z {
		t.Errorf("near depth %v should be less than far depth %v", near.Z, far.Z)
	}
}
