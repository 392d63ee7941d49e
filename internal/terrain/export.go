package terrain

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/Faultbox/fractal-terrain/internal/heightfield"
)

// WritePNG encodes the heightfield as a 16-bit grayscale image, lowest cell
// black and highest white. Row z maps to image row z.
func WritePNG(w io.Writer, hf *heightfield.HeightField) error {
	width := hf.Width()
	if width == 0 {
		return fmt.Errorf("empty heightfield")
	}

	lo, hi := hf.MinMax()
	span := hi - lo
	img := image.NewGray16(image.Rect(0, 0, width, width))
	for z := 0; z < width; z++ {
		for x := 0; x < width; x++ {
			var v float32
			if span > 0 {
				v = (hf.At(x, z) - lo) / span
			}
			img.SetGray16(x, z, color.Gray16{Y: uint16(v*65535 + 0.5)})
		}
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// WriteOBJ writes the mesh as a Wavefront OBJ. Strips are expanded to
// triangles since OBJ has no strip primitive.
func WriteOBJ(w io.Writer, m *Mesh) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# fractal terrain")
	fmt.Fprintf(bw, "# %d vertices, %d strips\n", m.VertexCount, m.StripsCount)
	fmt.Fprintln(bw, "o terrain")

	for i := 0; i < m.VertexCount; i++ {
		p := m.Position(i)
		fmt.Fprintf(bw, "v %f %f %f\n", p.X, p.Y, p.Z)
	}
	for i := 0; i < m.VertexCount; i++ {
		n := m.Normal(i)
		fmt.Fprintf(bw, "vn %f %f %f\n", n.X, n.Y, n.Z)
	}

	// OBJ indices are 1-based.
	tris := m.Triangles()
	for i := 0; i+2 < len(tris); i += 3 {
		a, b, c := tris[i]+1, tris[i+1]+1, tris[i+2]+1
		fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
	}

	return bw.Flush()
}

// Document builds a glTF document holding the mesh, sharing one position and
// one normal accessor between per-strip TRIANGLE_STRIP primitives.
func Document(m *Mesh) (*gltf.Document, error) {
	if m.IsEmpty() {
		return nil, fmt.Errorf("empty mesh")
	}

	positions := make([][3]float32, m.VertexCount)
	normals := make([][3]float32, m.VertexCount)
	for i := range positions {
		positions[i] = m.Position(i).Array()
		normals[i] = m.Normal(i).Array()
	}

	doc := gltf.NewDocument()
	posAcc := modeler.WritePosition(doc, positions)
	nrmAcc := modeler.WriteNormal(doc, normals)

	prims := make([]*gltf.Primitive, 0, m.StripsCount)
	for s := 0; s < m.StripsCount; s++ {
		strip := make([]uint32, m.VerticesPerStrip)
		copy(strip, m.Strip(s))
		prims = append(prims, &gltf.Primitive{
			Mode:    gltf.PrimitiveTriangleStrip,
			Indices: gltf.Index(modeler.WriteIndices(doc, strip)),
			Attributes: gltf.PrimitiveAttributes{
				gltf.POSITION: posAcc,
				gltf.NORMAL:   nrmAcc,
			},
		})
	}

	doc.Meshes = []*gltf.Mesh{{Name: "terrain", Primitives: prims}}
	doc.Nodes = []*gltf.Node{{Name: "terrain", Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)
	return doc, nil
}

// SaveGLB writes the mesh as a binary glTF file.
func SaveGLB(path string, m *Mesh) error {
	doc, err := Document(m)
	if err != nil {
		return err
	}
	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
