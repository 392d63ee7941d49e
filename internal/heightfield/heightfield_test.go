package heightfield

import (
	"errors"
	"testing"
)

func TestGenerateShape(t *testing.T) {
	for level := 1; level <= 8; level++ {
		width := WidthForLevel(level)
		hf, err := NewGenerator(1).Generate(width)
		if err != nil {
			t.Fatalf("Generate(%d): %v", width, err)
		}
		if hf.Width() != width {
			t.Errorf("Width() = %d, want %d", hf.Width(), width)
		}
		if got := len(hf.Heights()); got != width*width {
			t.Errorf("width %d: %d cells, want %d", width, got, width*width)
		}
	}
}

func TestGenerateRejectsIncompatibleWidth(t *testing.T) {
	for _, width := range []int{-1, 0, 1, 2, 4, 6, 7, 10, 1024, 1026} {
		hf, err := NewGenerator(1).Generate(width)
		if !errors.Is(err, ErrIncompatibleWidth) {
			t.Errorf("Generate(%d) error = %v, want ErrIncompatibleWidth", width, err)
		}
		if hf != nil {
			t.Errorf("Generate(%d) returned a grid alongside the error", width)
		}
	}
}

func TestGenerateRejectsHugeWidth(t *testing.T) {
	_, err := NewGenerator(1).Generate(WidthForLevel(15))
	if !errors.Is(err, ErrWidthTooLarge) {
		t.Errorf("error = %v, want ErrWidthTooLarge", err)
	}
}

func TestIsValidWidth(t *testing.T) {
	tests := []struct {
		width int
		want  bool
	}{
		{1, false},
		{2, false},
		{3, true},
		{5, true},
		{9, true},
		{11, false},
		{1025, true},
		{1023, false},
	}
	for _, tt := range tests {
		if got := IsValidWidth(tt.width); got != tt.want {
			t.Errorf("IsValidWidth(%d) = %v, want %v", tt.width, got, tt.want)
		}
	}
}

func TestPassSizesStayCompatible(t *testing.T) {
	for level := 1; level <= 12; level++ {
		width := WidthForLevel(level)
		sizes := passSizes(width)
		if len(sizes) != level {
			t.Errorf("width %d: %d passes, want %d", width, len(sizes), level)
		}
		for _, size := range sizes {
			if !IsValidWidth(size + 1) {
				t.Errorf("width %d: pass with sub-width %d is not 2^j+1", width, size+1)
			}
		}
		if last := sizes[len(sizes)-1]; last != 2 {
			t.Errorf("width %d: finest pass size %d, want 2 (reach 1)", width, last)
		}
	}
}

func TestSquareAverageCornerUsesSingleNeighbour(t *testing.T) {
	heights := make([]float32, 25)
	for i := range heights {
		heights[i] = 100
	}
	heights[2*5+2] = 8 // (2,2)

	hf, err := FromHeights(5, heights)
	if err != nil {
		t.Fatalf("FromHeights: %v", err)
	}

	// Only (2,2) is in bounds at reach 2 from the corner.
	if got := squareAverage(hf, 0, 0, 2); got != 8 {
		t.Errorf("squareAverage(0,0,2) = %v, want 8", got)
	}
	// Centre sees all four corners.
	if got := squareAverage(hf, 2, 2, 2); got != 100 {
		t.Errorf("squareAverage(2,2,2) = %v, want 100", got)
	}
}

func TestDiamondAverageEdgeDividesByCount(t *testing.T) {
	heights := make([]float32, 25)
	heights[0*5+0] = 3  // (0,0)
	heights[4*5+0] = 6  // (0,4)
	heights[2*5+2] = 12 // (2,2)

	hf, err := FromHeights(5, heights)
	if err != nil {
		t.Fatalf("FromHeights: %v", err)
	}

	// (0,2) has three in-bounds neighbours: (0,0), (0,4), (2,2).
	if got := diamondAverage(hf, 0, 2, 2); got != 7 {
		t.Errorf("diamondAverage(0,2,2) = %v, want 7", got)
	}
}

func TestGenerateTouchesEveryNonCornerCell(t *testing.T) {
	hf, err := NewGenerator(99).Generate(33)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	w := hf.Width()
	corners := map[[2]int]bool{{0, 0}: true, {w - 1, 0}: true, {0, w - 1}: true, {w - 1, w - 1}: true}
	for z := 0; z < w; z++ {
		for x := 0; x < w; x++ {
			v := hf.At(x, z)
			if corners[[2]int{x, z}] {
				if v != 0 {
					t.Errorf("corner (%d,%d) = %v, want 0", x, z, v)
				}
				continue
			}
			if v == 0 {
				t.Errorf("cell (%d,%d) was never displaced", x, z)
			}
		}
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	a, err := NewGenerator(42).Generate(17)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := NewGenerator(42).Generate(17)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	ha, hb := a.Heights(), b.Heights()
	for i := range ha {
		if ha[i] != hb[i] {
			t.Fatalf("cell %d differs for equal seeds: %v vs %v", i, ha[i], hb[i])
		}
	}
}

func TestSuccessiveGenerationsDiffer(t *testing.T) {
	g := NewRandomGenerator()
	a, err := g.Generate(5)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := g.Generate(5)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if a.Width() != b.Width() {
		t.Fatalf("shapes differ: %d vs %d", a.Width(), b.Width())
	}
	ha, hb := a.Heights(), b.Heights()
	same := true
	for i := range ha {
		if ha[i] != hb[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("two generations produced identical grids")
	}
}

func TestZeroRoughnessIsFlat(t *testing.T) {
	g := NewGenerator(5)
	g.Roughness = 0
	hf, err := g.Generate(9)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	lo, hi := hf.MinMax()
	if lo != 0 || hi != 0 {
		t.Errorf("MinMax() = (%v, %v), want (0, 0)", lo, hi)
	}
}

func TestPerturbationShrinksWithReach(t *testing.T) {
	g := NewGenerator(7)
	for _, reach := range []int{1, 4, 64} {
		for i := 0; i < 1000; i++ {
			p := g.perturb(reach)
			if p < -float32(reach) || p > float32(reach) {
				t.Fatalf("perturb(%d) = %v, outside [-%d, %d]", reach, p, reach, reach)
			}
		}
	}
}

func TestFromHeightsValidation(t *testing.T) {
	if _, err := FromHeights(0, nil); err == nil {
		t.Error("expected error for zero width")
	}
	if _, err := FromHeights(3, make([]float32, 8)); err == nil {
		t.Error("expected error for short data")
	}

	src := []float32{1, 2, 3, 4}
	hf, err := FromHeights(2, src)
	if err != nil {
		t.Fatalf("FromHeights: %v", err)
	}
	src[0] = 99
	if hf.At(0, 0) != 1 {
		t.Error("HeightField aliases caller data")
	}
	if row := hf.Row(1); row[0] != 3 || row[1] != 4 {
		t.Errorf("Row(1) = %v, want [3 4]", row)
	}
}
