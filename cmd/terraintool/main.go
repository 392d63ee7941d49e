// terraintool generates diamond-square heightfields and exports them.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/Faultbox/fractal-terrain/internal/heightfield"
	"github.com/Faultbox/fractal-terrain/internal/terrain"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "png":
		cmdPNG(args)
	case "obj":
		cmdOBJ(args)
	case "gltf", "glb":
		cmdGLTF(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`terraintool - fractal heightfield utility

Usage:
  terraintool <command> [options] [output]

Commands:
  info                 Generate a heightfield and print statistics
  png  <out.png>       Write the heightfield as a 16-bit grayscale image
  obj  <out.obj>       Write the mesh as Wavefront OBJ
  gltf <out.glb>       Write the mesh as binary glTF (one strip per row pair)

Options (all commands):
  -level N             Grid width is 2^N+1 (default 8)
  -seed N              Random seed, 0 picks one (default 0)
  -roughness F         Perturbation multiplier (default 1)
  -hscale F            Horizontal spacing (default 0.5)
  -vscale F            Height scale (default 0.5)

Examples:
  terraintool info -level 10 -seed 42
  terraintool png -level 9 heights.png
  terraintool gltf -seed 7 terrain.glb`)
}

type options struct {
	level     int
	seed      uint64
	roughness float64
	hscale    float64
	vscale    float64
}

func parse(name string, args []string) (*flag.FlagSet, options) {
	var o options
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.IntVar(&o.level, "level", 8, "Grid width is 2^level+1")
	fs.Uint64Var(&o.seed, "seed", 0, "Random seed (0 = random)")
	fs.Float64Var(&o.roughness, "roughness", 1, "Perturbation multiplier")
	fs.Float64Var(&o.hscale, "hscale", terrain.DefaultHorizontalScale, "Horizontal spacing")
	fs.Float64Var(&o.vscale, "vscale", terrain.DefaultHeightScale, "Height scale")
	fs.Parse(args)
	return fs, o
}

func generate(o options) *heightfield.HeightField {
	var g *heightfield.Generator
	if o.seed == 0 {
		g = heightfield.NewRandomGenerator()
	} else {
		g = heightfield.NewGenerator(o.seed)
	}
	g.Roughness = float32(o.roughness)

	hf, err := g.Generate(heightfield.WidthForLevel(o.level))
	if err != nil {
		fail(err)
	}
	fmt.Fprintf(os.Stderr, "Generated %dx%d heightfield (seed %d)\n", hf.Width(), hf.Width(), g.Seed())
	return hf
}

func mesh(o options, hf *heightfield.HeightField) *terrain.Mesh {
	return terrain.BuildMesh(hf, float32(o.hscale), float32(o.vscale))
}

func output(fs *flag.FlagSet, usage string) string {
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: terraintool "+usage)
		os.Exit(1)
	}
	return fs.Arg(0)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func cmdInfo(args []string) {
	_, o := parse("info", args)
	hf := generate(o)
	m := mesh(o, hf)
	lo, hi := hf.MinMax()

	fmt.Printf("Width:      %d\n", hf.Width())
	fmt.Printf("Heights:    %.3f .. %.3f\n", lo, hi)
	fmt.Printf("Vertices:   %d\n", m.VertexCount)
	fmt.Printf("Strips:     %d x %d indices\n", m.StripsCount, m.VerticesPerStrip)
	fmt.Printf("Indices:    %d\n", len(m.Indices))
	fmt.Printf("Bounds:     (%.2f, %.2f, %.2f) .. (%.2f, %.2f, %.2f)\n",
		m.Bounds.Min.X, m.Bounds.Min.Y, m.Bounds.Min.Z,
		m.Bounds.Max.X, m.Bounds.Max.Y, m.Bounds.Max.Z)
}

func cmdPNG(args []string) {
	fs, o := parse("png", args)
	path := output(fs, "png [options] <out.png>")
	hf := generate(o)

	writeFile(path, func(w *bufio.Writer) error {
		return terrain.WritePNG(w, hf)
	})
}

func cmdOBJ(args []string) {
	fs, o := parse("obj", args)
	path := output(fs, "obj [options] <out.obj>")
	m := mesh(o, generate(o))

	writeFile(path, func(w *bufio.Writer) error {
		return terrain.WriteOBJ(w, m)
	})
}

func cmdGLTF(args []string) {
	fs, o := parse("gltf", args)
	path := output(fs, "gltf [options] <out.glb>")
	m := mesh(o, generate(o))

	if err := terrain.SaveGLB(path, m); err != nil {
		fail(err)
	}
	fmt.Printf("Wrote %s\n", path)
}

func writeFile(path string, write func(*bufio.Writer) error) {
	f, err := os.Create(path)
	if err != nil {
		fail(err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := write(w); err != nil {
		fail(err)
	}
	if err := w.Flush(); err != nil {
		fail(err)
	}
	fmt.Printf("Wrote %s\n", path)
}
