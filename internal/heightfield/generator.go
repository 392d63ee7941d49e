package heightfield

import (
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/fractal-terrain/internal/logger"
)

// Generator produces HeightFields. A Generator is not safe for concurrent
// use; each goroutine should own its own.
type Generator struct {
	rng  *rand.Rand
	seed uint64

	// Roughness scales the random perturbation. 0 gives a flat grid.
	Roughness float32
}

// NewGenerator returns a deterministic generator: equal seeds produce equal
// sequences of heightfields.
func NewGenerator(seed uint64) *Generator {
	return &Generator{
		rng:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		seed:      seed,
		Roughness: 1,
	}
}

// NewRandomGenerator returns a generator seeded from the runtime's entropy.
func NewRandomGenerator() *Generator {
	return NewGenerator(rand.Uint64())
}

// Seed returns the seed the generator was created with.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// Generate synthesizes a width x width grid. width must be 2^k + 1, k >= 1;
// otherwise nothing is allocated and ErrIncompatibleWidth is returned.
func (g *Generator) Generate(width int) (*HeightField, error) {
	if !IsValidWidth(width) {
		return nil, fmt.Errorf("generating %dx%d heightfield: %w", width, width, ErrIncompatibleWidth)
	}
	if width > MaxWidth {
		return nil, fmt.Errorf("generating %dx%d heightfield: %w (max %d)", width, width, ErrWidthTooLarge, MaxWidth)
	}

	start := time.Now()
	hf := &HeightField{
		width:   width,
		heights: make([]float32, width*width),
	}
	g.diamondSquare(hf)

	lo, hi := hf.MinMax()
	logger.Named("heightfield").Debug("heightfield generated",
		zap.Int("width", width),
		zap.Uint64("seed", g.seed),
		zap.Float32("min", lo),
		zap.Float32("max", hi),
		zap.Duration("took", time.Since(start)),
	)
	return hf, nil
}

// passSizes lists the sub-square sizes visited for a grid, coarsest first.
func passSizes(width int) []int {
	var sizes []int
	for size := width - 1; size/2 >= 1; size /= 2 {
		sizes = append(sizes, size)
	}
	return sizes
}

// diamondSquare refines the single owned buffer pass by pass.
func (g *Generator) diamondSquare(hf *HeightField) {
	for _, size := range passSizes(hf.width) {
		reach := size / 2

		for z := reach; z < hf.width; z += size {
			for x := reach; x < hf.width; x += size {
				hf.heights[z*hf.width+x] = squareAverage(hf, x, z, reach) + g.perturb(reach)
			}
		}

		// Even column ordinals sit on sub-square corners and take the edge
		// midpoints at z = reach; odd ordinals sit on centres and start at z = 0.
		for col, x := 0, 0; x < hf.width; col, x = col+1, x+reach {
			z0 := reach
			if col%2 == 1 {
				z0 = 0
			}
			for z := z0; z < hf.width; z += size {
				hf.heights[z*hf.width+x] = diamondAverage(hf, x, z, reach) + g.perturb(reach)
			}
		}
	}
}

// perturb returns a uniform offset in [-reach, reach] scaled by Roughness.
func (g *Generator) perturb(reach int) float32 {
	return (g.rng.Float32()*2 - 1) * float32(reach) * g.Roughness
}

// squareAverage averages the diagonal corners at distance reach that lie
// inside the grid.
func squareAverage(hf *HeightField, x, z, reach int) float32 {
	return neighbourAverage(hf, x, z, [4][2]int{
		{-reach, -reach}, {-reach, reach}, {reach, -reach}, {reach, reach},
	})
}

// diamondAverage averages the axis-aligned neighbours at distance reach that
// lie inside the grid.
func diamondAverage(hf *HeightField, x, z, reach int) float32 {
	return neighbourAverage(hf, x, z, [4][2]int{
		{-reach, 0}, {reach, 0}, {0, -reach}, {0, reach},
	})
}

// neighbourAverage divides by the number of in-bounds contributors, never by
// a fixed 4. Out-of-bounds offsets are skipped, not wrapped.
func neighbourAverage(hf *HeightField, x, z int, offsets [4][2]int) float32 {
	var sum float32
	count := 0
	for _, o := range offsets {
		nx, nz := x+o[0], z+o[1]
		if nx < 0 || nz < 0 || nx >= hf.width || nz >= hf.width {
			continue
		}
		sum += hf.heights[nz*hf.width+nx]
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float32(count)
}
