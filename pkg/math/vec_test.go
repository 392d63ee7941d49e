package math

import (
	"math"
	"testing"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	if got := v.Length(); got != 5 {
		t.Errorf("Vec2.Length() = %v, want 5", got)
	}
	if got := v.LengthSquared(); got != 25 {
		t.Errorf("Vec2.LengthSquared() = %v, want 25", got)
	}
}

func TestVec2NormalizeZero(t *testing.T) {
	if got := (Vec2{}).Normalize(); got != (Vec2{}) {
		t.Errorf("Vec2{}.Normalize() = %v, want zero", got)
	}
}

func TestVec3Cross(t *testing.T) {
	tests := []struct {
		a, b, want Vec3
	}{
		{Vec3{1, 0, 0}, Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{Vec3{0, 1, 0}, Vec3{1, 0, 0}, Vec3{0, 0, -1}},
		{Vec3{0, 0, 1}, Vec3{1, 0, 0}, Vec3{0, 1, 0}},
	}
	for _, tt := range tests {
		if got := tt.a.Cross(tt.b); got != tt.want {
			t.Errorf("%v.Cross(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{0, 4, 0}.Normalize()
	if n != Up {
		t.Errorf("Normalize() = %v, want %v", n, Up)
	}

	l := Vec3{1, 2, 3}.Normalize().Length()
	if !approx(l, 1) {
		t.Errorf("Normalize().Length() = %v, want ~1", l)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, want float32
	}{
		{-1, 0},
		{0.5, 0.5},
		{2, 1},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, 0, 1); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
