package demo

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/fractal-terrain/internal/config"
	"github.com/Faultbox/fractal-terrain/internal/heightfield"
)

func TestBuildTerrain(t *testing.T) {
	cfg := config.Default().Terrain
	cfg.Level = 4

	mesh, err := buildTerrain(heightfield.NewGenerator(7), cfg)
	if err != nil {
		t.Fatalf("buildTerrain: %v", err)
	}
	if mesh.VertexCount != 17*17 {
		t.Errorf("VertexCount = %d, want %d", mesh.VertexCount, 17*17)
	}
	if mesh.StripsCount != 16 {
		t.Errorf("StripsCount = %d, want 16", mesh.StripsCount)
	}
}

func TestNewGeneratorUsesSeed(t *testing.T) {
	cfg := config.Default().Terrain
	cfg.Seed = 42
	cfg.Roughness = 0.5

	g := newGenerator(cfg)
	if g.Seed() != 42 {
		t.Errorf("Seed() = %d, want 42", g.Seed())
	}
	if g.Roughness != 0.5 {
		t.Errorf("Roughness = %v, want 0.5", g.Roughness)
	}
}

func TestMovement(t *testing.T) {
	tests := []struct {
		name       string
		keys       []sdl.Scancode
		wantX      float32
		wantY      float32
		wantZ      float32
		wantSprint bool
	}{
		{"idle", nil, 0, 0, 0, false},
		{"forward", []sdl.Scancode{sdl.SCANCODE_W}, 0, 0, 1, false},
		{"back left", []sdl.Scancode{sdl.SCANCODE_S, sdl.SCANCODE_A}, -1, 0, -1, false},
		{"opposites cancel", []sdl.Scancode{sdl.SCANCODE_W, sdl.SCANCODE_S}, 0, 0, 0, false},
		{"rise sprint", []sdl.Scancode{sdl.SCANCODE_E, sdl.SCANCODE_LSHIFT}, 0, 1, 0, true},
		{"sink", []sdl.Scancode{sdl.SCANCODE_Q}, 0, -1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			held := func(code sdl.Scancode) bool {
				for _, k := range tt.keys {
					if k == code {
						return true
					}
				}
				return false
			}
			dir, sprint := movement(held)
			if dir.X != tt.wantX || dir.Y != tt.wantY || dir.Z != tt.wantZ {
				t.Errorf("dir = %v, want (%v, %v, %v)", dir, tt.wantX, tt.wantY, tt.wantZ)
			}
			if sprint != tt.wantSprint {
				t.Errorf("sprint = %v, want %v", sprint, tt.wantSprint)
			}
		})
	}
}

func TestSpawner(t *testing.T) {
	cfg := config.Default().Balls
	a := NewSpawner(1, cfg, 800, 600)
	b := NewSpawner(1, cfg, 800, 600)

	for i := 0; i < 20; i++ {
		ba, bb := a.Next(0.01), b.Next(0.01)
		if ba != bb {
			t.Fatalf("spawn %d differs for the same seed: %+v vs %+v", i, ba, bb)
		}
		if ba.Radius < cfg.MinRadius || ba.Radius > cfg.MaxRadius {
			t.Errorf("radius %v outside [%v, %v]", ba.Radius, cfg.MinRadius, cfg.MaxRadius)
		}
		if ba.Position.X-ba.Previous.X <= 0 {
			t.Errorf("spawn %d should move right", i)
		}
	}
}
