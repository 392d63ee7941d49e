// Package demo implements the interactive terrain and ball demo loops.
package demo

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/fractal-terrain/internal/config"
	"github.com/Faultbox/fractal-terrain/internal/engine/camera"
	"github.com/Faultbox/fractal-terrain/internal/engine/input"
	"github.com/Faultbox/fractal-terrain/internal/engine/lighting"
	"github.com/Faultbox/fractal-terrain/internal/engine/scene"
	"github.com/Faultbox/fractal-terrain/internal/engine/screenshot"
	"github.com/Faultbox/fractal-terrain/internal/engine/water"
	"github.com/Faultbox/fractal-terrain/internal/engine/window"
	"github.com/Faultbox/fractal-terrain/internal/heightfield"
	"github.com/Faultbox/fractal-terrain/internal/logger"
	"github.com/Faultbox/fractal-terrain/internal/terrain"
	"github.com/Faultbox/fractal-terrain/pkg/math"
)

// Terrain is the fly-through terrain demo.
type Terrain struct {
	cfg *config.Config
	log *zap.Logger

	window *window.Window
	input  *input.Input
	scene  *scene.Scene

	camera *camera.FlyCamera
	sun    *lighting.Sun
	tide   *water.Tide

	generator *heightfield.Generator
}

// NewTerrain opens the window, generates the first terrain and uploads it.
func NewTerrain(cfg *config.Config) (*Terrain, error) {
	d := &Terrain{
		cfg: cfg,
		log: logger.Named("demo"),
		sun: lighting.NewSun(cfg.Scene.SunOrbitRadius, cfg.Scene.SunOrbitHeight, cfg.Scene.SunAngularSpeed),
		tide: &water.Tide{
			Amplitude:    cfg.Scene.SeaAmplitude,
			Offset:       cfg.Scene.SeaOffset,
			AngularSpeed: cfg.Scene.SeaAngularSpeed,
		},
		generator: newGenerator(cfg.Terrain),
	}

	d.log.Info("initializing terrain demo",
		zap.Int("width", cfg.Terrain.Width()),
		zap.Uint64("seed", d.generator.Seed()))

	var err error
	d.window, err = openWindow(cfg.Window)
	if err != nil {
		return nil, err
	}

	w, h := d.window.GetSize()
	d.scene, err = scene.New(int32(w), int32(h), water.DefaultHalfExtent)
	if err != nil {
		d.window.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}

	d.input = input.New()
	d.camera = camera.NewFlyCamera(math.Vec3{Y: 150, Z: 300}, -90, -20)
	d.camera.Speed = cfg.Scene.MoveSpeed

	if err := d.regenerate(); err != nil {
		d.Close()
		return nil, err
	}

	d.window.CaptureMouse(true)
	return d, nil
}

// Run drives the frame loop until the window is closed or Escape is pressed.
func (d *Terrain) Run() error {
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	d.log.Info("starting terrain loop")

	for {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if d.input.Update() {
			return nil
		}
		if w, h, ok := d.input.Resized(); ok {
			d.scene.Resize(int32(w), int32(h))
		}

		if d.input.IsKeyPressed(sdl.SCANCODE_R) {
			if err := d.regenerate(); err != nil {
				return err
			}
		}

		d.update(dt)
		d.scene.Render(d.camera, d.sun, d.tide)
		if d.input.IsKeyPressed(sdl.SCANCODE_F12) {
			d.screenshot()
		}
		d.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			d.log.Debug("fps", zap.Int("count", frameCount), zap.Float32("sun_strength", d.sun.Strength()))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}
}

func (d *Terrain) update(dt float32) {
	d.sun.Update(dt)
	d.tide.Update(dt)

	dx, dy := d.input.MouseDelta()
	d.camera.Look(float32(dx), float32(dy))
	if s := d.input.Scroll(); s != 0 {
		d.camera.Zoom(float32(s))
	}

	dir, sprint := movement(d.input.IsKeyHeld)
	scale := float32(1)
	if sprint {
		scale = d.cfg.Scene.SprintFactor
	}
	d.camera.Move(dir, scale, dt)
}

// regenerate replaces the heightfield and mesh with a fresh one.
func (d *Terrain) regenerate() error {
	start := time.Now()
	mesh, err := buildTerrain(d.generator, d.cfg.Terrain)
	if err != nil {
		return err
	}
	d.scene.SetTerrain(mesh, d.cfg.Terrain.HorizontalScale)

	d.log.Info("terrain ready",
		zap.Int("strips", mesh.StripsCount),
		zap.Int("vertices", mesh.VertexCount),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

func (d *Terrain) screenshot() {
	w, h := d.window.GetSize()
	name, err := screenshot.Capture(d.cfg.Scene.ScreenshotDir, w, h)
	if err != nil {
		d.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	d.log.Info("screenshot saved", zap.String("file", name))
}

// Close releases GPU and window resources.
func (d *Terrain) Close() {
	d.log.Info("closing terrain demo")
	if d.scene != nil {
		d.scene.Destroy()
	}
	if d.window != nil {
		d.window.Close()
	}
}

func newGenerator(cfg config.TerrainConfig) *heightfield.Generator {
	var g *heightfield.Generator
	if cfg.Seed == 0 {
		g = heightfield.NewRandomGenerator()
	} else {
		g = heightfield.NewGenerator(cfg.Seed)
	}
	g.Roughness = cfg.Roughness
	return g
}

// buildTerrain generates a heightfield and meshes it. The heightfield is
// dropped once the mesh exists.
func buildTerrain(g *heightfield.Generator, cfg config.TerrainConfig) (*terrain.Mesh, error) {
	hf, err := g.Generate(cfg.Width())
	if err != nil {
		return nil, fmt.Errorf("generate terrain: %w", err)
	}
	return terrain.BuildMesh(hf, cfg.HorizontalScale, cfg.HeightScale), nil
}

// movement maps held keys to a camera-space direction: WASD on the
// horizontal plane, E/Q up and down, shift to sprint.
func movement(held func(sdl.Scancode) bool) (dir math.Vec3, sprint bool) {
	axis := func(pos, neg sdl.Scancode) float32 {
		var v float32
		if held(pos) {
			v++
		}
		if held(neg) {
			v--
		}
		return v
	}
	dir = math.Vec3{
		X: axis(sdl.SCANCODE_D, sdl.SCANCODE_A),
		Y: axis(sdl.SCANCODE_E, sdl.SCANCODE_Q),
		Z: axis(sdl.SCANCODE_W, sdl.SCANCODE_S),
	}
	return dir, held(sdl.SCANCODE_LSHIFT) || held(sdl.SCANCODE_RSHIFT)
}

func openWindow(cfg config.WindowConfig) (*window.Window, error) {
	w, err := window.New(window.Config{
		Title:      cfg.Title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Fullscreen: cfg.Fullscreen,
		VSync:      cfg.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	return w, nil
}
