package demo

import (
	"context"
	"errors"
	"fmt"
	stdmath "math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/fractal-terrain/internal/config"
	"github.com/Faultbox/fractal-terrain/internal/engine/input"
	"github.com/Faultbox/fractal-terrain/internal/engine/scene"
	"github.com/Faultbox/fractal-terrain/internal/engine/window"
	"github.com/Faultbox/fractal-terrain/internal/logger"
	"github.com/Faultbox/fractal-terrain/internal/physics"
	"github.com/Faultbox/fractal-terrain/pkg/math"
)

// Balls is the verlet ball demo. The simulation runs on its own goroutine;
// this loop only spawns balls and draws the latest snapshot.
type Balls struct {
	cfg *config.Config
	log *zap.Logger

	window   *window.Window
	input    *input.Input
	renderer *scene.BallRenderer

	sim     *physics.Simulator
	spawner *Spawner
	width   float32
	height  float32
}

// NewBalls opens the window and prepares an empty world of window size.
func NewBalls(cfg *config.Config) (*Balls, error) {
	d := &Balls{
		cfg: cfg,
		log: logger.Named("demo"),
	}

	var err error
	d.window, err = openWindow(cfg.Window)
	if err != nil {
		return nil, err
	}

	w, h := d.window.GetSize()
	d.width, d.height = float32(w), float32(h)

	d.renderer, err = scene.NewBallRenderer(cfg.Balls.MaxBalls)
	if err != nil {
		d.window.Close()
		return nil, fmt.Errorf("failed to create ball renderer: %w", err)
	}

	world := physics.NewWorld(d.width, d.height, cfg.Balls.Gravity, cfg.Balls.SubSteps)
	d.sim = physics.NewSimulator(world, cfg.Balls.TickRate, cfg.Balls.MaxBalls)
	d.spawner = NewSpawner(uint64(time.Now().UnixNano()), cfg.Balls, d.width, d.height)
	d.input = input.New()

	d.log.Info("ball demo ready",
		zap.Int("max_balls", cfg.Balls.MaxBalls),
		zap.Int("tick_rate", cfg.Balls.TickRate),
		zap.Int("sub_steps", cfg.Balls.SubSteps))
	return d, nil
}

// Run starts the simulator goroutine and the render loop. It returns once
// the window is closed and the simulator has stopped.
func (d *Balls) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	var simErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := d.sim.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			simErr = err
		}
	}()

	lastTime := time.Now()
	var spawnTimer float32
	spawned := 0

	for !d.input.Update() {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		spawnTimer += dt
		for spawnTimer >= d.cfg.Balls.SpawnInterval && spawned < d.cfg.Balls.MaxBalls {
			spawnTimer -= d.cfg.Balls.SpawnInterval
			if d.sim.Spawn(d.spawner.Next(d.sim.Dt())) {
				spawned++
			}
		}

		gl.ClearColor(0.05, 0.05, 0.08, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		d.renderer.Render(d.sim.Latest(), d.width, d.height)
		d.window.SwapBuffers()
	}

	cancel()
	wg.Wait()
	d.log.Info("ball demo stopped", zap.Uint64("steps", d.sim.Latest().Step))
	return simErr
}

// Close releases GPU and window resources.
func (d *Balls) Close() {
	if d.renderer != nil {
		d.renderer.Destroy()
	}
	if d.window != nil {
		d.window.Close()
	}
}

// Spawner produces balls entering from the top left with a sweeping
// launch angle and a rainbow colour cycle.
type Spawner struct {
	rng    *rand.Rand
	cfg    config.BallsConfig
	origin math.Vec2
	speed  float32
	count  int
}

// NewSpawner returns a deterministic spawner for the given box.
func NewSpawner(seed uint64, cfg config.BallsConfig, width, height float32) *Spawner {
	return &Spawner{
		rng:    rand.New(rand.NewPCG(seed, seed>>1|1)),
		cfg:    cfg,
		origin: math.Vec2{X: cfg.MaxRadius * 2, Y: height - cfg.MaxRadius*2},
		speed:  width / 2,
	}
}

// Next returns the next ball for a simulation step of dt.
func (s *Spawner) Next(dt float32) physics.Ball {
	t := float64(s.count)
	s.count++

	angle := -stdmath.Pi/8 + 0.3*stdmath.Sin(t*0.1)
	velocity := math.Vec2{
		X: s.speed * float32(stdmath.Cos(angle)),
		Y: s.speed * float32(stdmath.Sin(angle)),
	}
	radius := s.cfg.MinRadius + s.rng.Float32()*(s.cfg.MaxRadius-s.cfg.MinRadius)

	b := physics.NewBall(s.origin, velocity, radius, dt)
	b.Color = rainbow(t * 0.05)
	return b
}

func rainbow(t float64) [3]float32 {
	r := stdmath.Sin(t)
	g := stdmath.Sin(t + 2*stdmath.Pi/3)
	b := stdmath.Sin(t + 4*stdmath.Pi/3)
	return [3]float32{float32(r * r), float32(g * g), float32(b * b)}
}
