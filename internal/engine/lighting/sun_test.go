package lighting

import (
	stdmath "math"
	"testing"
)

func TestSunStartsOnHorizon(t *testing.T) {
	s := NewSun(1024, 800, 0.5)

	p := s.Position()
	if p.X != 1024 || p.Y != 0 {
		t.Errorf("start position = %v, want (1024, 0, 0)", p)
	}
	if s.Strength() != 0 {
		t.Errorf("Strength() = %v, want 0 on the horizon", s.Strength())
	}
}

func TestSunZenith(t *testing.T) {
	s := NewSun(1024, 800, 0.5)
	s.Update(stdmath.Pi) // angle pi/2

	p := s.Position()
	if stdmath.Abs(float64(p.X)) > 1e-3 || stdmath.Abs(float64(p.Y-800)) > 1e-3 {
		t.Errorf("zenith position = %v, want (0, 800, 0)", p)
	}
	if got := s.Strength(); stdmath.Abs(float64(got-1.6)) > 1e-4 {
		t.Errorf("Strength() = %v, want 1.6", got)
	}

	light := s.Light()
	if stdmath.Abs(float64(light.Diffuse.X-0.9*1.6)) > 1e-4 {
		t.Errorf("diffuse = %v, want %v", light.Diffuse.X, 0.9*1.6)
	}
	if light.Constant != AttenuationConstant {
		t.Errorf("constant = %v, want %v", light.Constant, AttenuationConstant)
	}
}

func TestSunBelowHorizonKeepsAmbient(t *testing.T) {
	s := NewSun(1024, 800, 0.5)
	s.Update(3 * stdmath.Pi) // angle 3pi/2, lowest point

	if s.Position().Y >= 0 {
		t.Fatalf("sun should be below the horizon, at %v", s.Position())
	}
	if s.Strength() != 0 {
		t.Errorf("Strength() = %v, want 0", s.Strength())
	}

	light := s.Light()
	if light.Diffuse.X != 0 || light.Specular.X != 0 {
		t.Errorf("diffuse/specular = %v/%v, want 0", light.Diffuse, light.Specular)
	}
	if stdmath.Abs(float64(light.Ambient.X-0.3)) > 1e-6 {
		t.Errorf("ambient = %v, want 0.3", light.Ambient.X)
	}
}
