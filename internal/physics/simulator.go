package physics

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/fractal-terrain/internal/logger"
)

// Snapshot is an immutable copy of the world published to the renderer.
type Snapshot struct {
	Step  uint64
	Balls []Ball
}

// Simulator owns a World on its own goroutine. The render thread only ever
// sees Snapshots, and only sends Balls through Spawn.
type Simulator struct {
	world    *World
	tick     time.Duration
	dt       float32
	spawns   chan Ball
	latest   atomic.Pointer[Snapshot]
	maxBalls int
	steps    uint64
}

// NewSimulator wraps world, stepping it tickRate times per second.
func NewSimulator(world *World, tickRate, maxBalls int) *Simulator {
	if tickRate < 1 {
		tickRate = 1
	}
	s := &Simulator{
		world:    world,
		tick:     time.Second / time.Duration(tickRate),
		dt:       1 / float32(tickRate),
		spawns:   make(chan Ball, 64),
		maxBalls: maxBalls,
	}
	s.publish()
	return s
}

// Dt returns the fixed simulation step in seconds.
func (s *Simulator) Dt() float32 {
	return s.dt
}

// Spawn queues a ball for insertion at the next step. It never blocks; it
// reports false when the queue is full.
func (s *Simulator) Spawn(b Ball) bool {
	select {
	case s.spawns <- b:
		return true
	default:
		return false
	}
}

// Latest returns the most recent snapshot. Safe from any goroutine.
func (s *Simulator) Latest() *Snapshot {
	return s.latest.Load()
}

// Run steps the world at the fixed tick rate until ctx is cancelled.
func (s *Simulator) Run(ctx context.Context) error {
	log := logger.Named("physics")
	log.Info("simulation started", zap.Duration("tick", s.tick), zap.Int("sub_steps", s.world.SubSteps))

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("simulation stopped", zap.Uint64("steps", s.steps), zap.Int("balls", len(s.world.Balls)))
			return ctx.Err()
		case <-ticker.C:
			s.StepOnce()
		}
	}
}

// StepOnce drains pending spawns, advances the world by one tick and
// publishes a snapshot. Run calls it; tests call it directly.
func (s *Simulator) StepOnce() {
	s.drainSpawns()
	s.world.Step(s.dt)
	s.steps++
	s.publish()
}

func (s *Simulator) drainSpawns() {
	for {
		select {
		case b := <-s.spawns:
			if s.maxBalls > 0 && len(s.world.Balls) >= s.maxBalls {
				continue
			}
			s.world.Add(b)
		default:
			return
		}
	}
}

func (s *Simulator) publish() {
	balls := make([]Ball, len(s.world.Balls))
	copy(balls, s.world.Balls)
	s.latest.Store(&Snapshot{Step: s.steps, Balls: balls})
}
