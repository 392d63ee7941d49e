package terrain

import (
	stdmath "math"
	"testing"

	"github.com/Faultbox/fractal-terrain/internal/heightfield"
	"github.com/Faultbox/fractal-terrain/pkg/math"
)

func near(a, b float32) bool {
	return stdmath.Abs(float64(a-b)) < 1e-5
}

func nearVec(a, b math.Vec3) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z)
}

func flatField(t *testing.T, width int) *heightfield.HeightField {
	t.Helper()
	hf, err := heightfield.FromHeights(width, make([]float32, width*width))
	if err != nil {
		t.Fatalf("FromHeights: %v", err)
	}
	return hf
}

// rampField rises by one unit per column.
func rampField(t *testing.T, width int) *heightfield.HeightField {
	t.Helper()
	heights := make([]float32, width*width)
	for z := 0; z < width; z++ {
		for x := 0; x < width; x++ {
			heights[z*width+x] = float32(x)
		}
	}
	hf, err := heightfield.FromHeights(width, heights)
	if err != nil {
		t.Fatalf("FromHeights: %v", err)
	}
	return hf
}

func TestBuildMeshCounts(t *testing.T) {
	hf, err := heightfield.NewGenerator(3).Generate(5)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	m := BuildMesh(hf, DefaultHorizontalScale, DefaultHeightScale)

	if m.VertexCount != 25 {
		t.Errorf("VertexCount = %d, want 25", m.VertexCount)
	}
	if len(m.Vertices) != 25*FloatsPerVertex {
		t.Errorf("len(Vertices) = %d, want %d", len(m.Vertices), 25*FloatsPerVertex)
	}
	if len(m.Indices) != 40 {
		t.Errorf("len(Indices) = %d, want 40", len(m.Indices))
	}
	if m.StripsCount != 4 {
		t.Errorf("StripsCount = %d, want 4", m.StripsCount)
	}
	if m.VerticesPerStrip != 10 {
		t.Errorf("VerticesPerStrip = %d, want 10", m.VerticesPerStrip)
	}
}

func TestStripWinding(t *testing.T) {
	m := BuildMesh(flatField(t, 3), 1, 1)

	want := [][]uint32{
		{0, 3, 1, 4, 2, 5},
		{3, 6, 4, 7, 5, 8},
	}
	for s, strip := range want {
		got := m.Strip(s)
		if len(got) != len(strip) {
			t.Fatalf("strip %d: len %d, want %d", s, len(got), len(strip))
		}
		for k := range strip {
			if got[k] != strip[k] {
				t.Errorf("strip %d = %v, want %v", s, got, strip)
				break
			}
		}
	}
}

func TestStripsAlternateRows(t *testing.T) {
	const width = 9
	m := BuildMesh(flatField(t, width), 1, 1)

	for s := 0; s < m.StripsCount; s++ {
		for k, idx := range m.Strip(s) {
			row, col := int(idx)/width, int(idx)%width
			if row != s+k%2 {
				t.Errorf("strip %d index %d: row %d, want %d", s, k, row, s+k%2)
			}
			if col != k/2 {
				t.Errorf("strip %d index %d: column %d, want %d", s, k, col, k/2)
			}
		}
	}
}

func TestStripByteOffset(t *testing.T) {
	m := BuildMesh(flatField(t, 5), 1, 1)
	if got := m.StripByteOffset(3); got != 3*10*4 {
		t.Errorf("StripByteOffset(3) = %d, want %d", got, 3*10*4)
	}
}

func TestFlatNormalsPointUp(t *testing.T) {
	m := BuildMesh(flatField(t, 5), DefaultHorizontalScale, DefaultHeightScale)

	for i := 0; i < m.VertexCount; i++ {
		if n := m.Normal(i); n != math.Up {
			t.Errorf("normal %d = %v, want %v", i, n, math.Up)
		}
	}
}

func TestVertexPositions(t *testing.T) {
	heights := []float32{
		0, 1, 2,
		3, 4, 5,
		6, 7, 8,
	}
	hf, err := heightfield.FromHeights(3, heights)
	if err != nil {
		t.Fatalf("FromHeights: %v", err)
	}

	m := BuildMesh(hf, 2, 0.5)

	// Vertex 5 is column 2, row 1.
	if got, want := m.Position(5), (math.Vec3{X: 4, Y: 2.5, Z: 2}); got != want {
		t.Errorf("Position(5) = %v, want %v", got, want)
	}
	if m.Bounds.Min != (math.Vec3{}) {
		t.Errorf("Bounds.Min = %v, want origin", m.Bounds.Min)
	}
	if want := (math.Vec3{X: 4, Y: 4, Z: 4}); m.Bounds.Max != want {
		t.Errorf("Bounds.Max = %v, want %v", m.Bounds.Max, want)
	}
}

func TestSlopeNormalsTiltDownhill(t *testing.T) {
	const width = 5
	m := BuildMesh(rampField(t, width), 1, 1)

	s := float32(stdmath.Sqrt2 / 2)
	interior := m.Normal(2*width + 2)
	if want := (math.Vec3{X: -s, Y: s}); !nearVec(interior, want) {
		t.Errorf("interior normal = %v, want %v", interior, want)
	}

	// Left border: left neighbour is the cell itself, so the slope is halved.
	border := m.Normal(2 * width)
	if want := (math.Vec3{X: -2, Y: 4}).Normalize(); !nearVec(border, want) {
		t.Errorf("border normal = %v, want %v", border, want)
	}

	for i := 0; i < m.VertexCount; i++ {
		if m.Normal(i).Y <= 0 {
			t.Errorf("normal %d = %v faces down", i, m.Normal(i))
		}
	}
}

func TestEmptyMesh(t *testing.T) {
	single, err := heightfield.FromHeights(1, []float32{7})
	if err != nil {
		t.Fatalf("FromHeights: %v", err)
	}

	for name, hf := range map[string]*heightfield.HeightField{"nil": nil, "width 1": single} {
		m := BuildMesh(hf, 1, 1)
		if !m.IsEmpty() || m.StripsCount != 0 {
			t.Errorf("%s: StripsCount = %d, want 0", name, m.StripsCount)
		}
		if len(m.Indices) != 0 || len(m.Vertices) != 0 {
			t.Errorf("%s: mesh has data", name)
		}
		if m.Triangles() != nil {
			t.Errorf("%s: Triangles() should be nil", name)
		}
	}
}

func TestTrianglesKeepUpwardWinding(t *testing.T) {
	m := BuildMesh(flatField(t, 4), 1, 1)
	tris := m.Triangles()

	if want := m.StripsCount * (m.VerticesPerStrip - 2) * 3; len(tris) != want {
		t.Fatalf("len(Triangles()) = %d, want %d", len(tris), want)
	}
	for i := 0; i < len(tris); i += 3 {
		a, b, c := m.Position(int(tris[i])), m.Position(int(tris[i+1])), m.Position(int(tris[i+2]))
		face := b.Sub(a).Cross(c.Sub(a))
		if face.Y <= 0 {
			t.Errorf("triangle %d (%d,%d,%d) faces down", i/3, tris[i], tris[i+1], tris[i+2])
		}
	}
}
