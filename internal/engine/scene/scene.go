// Package scene renders the terrain demo: lit terrain strips, the
// translucent sea and the sun sphere.
package scene

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/fractal-terrain/internal/engine/camera"
	"github.com/Faultbox/fractal-terrain/internal/engine/lighting"
	"github.com/Faultbox/fractal-terrain/internal/engine/scene/shaders"
	"github.com/Faultbox/fractal-terrain/internal/engine/shader"
	"github.com/Faultbox/fractal-terrain/internal/engine/water"
	"github.com/Faultbox/fractal-terrain/internal/logger"
	"github.com/Faultbox/fractal-terrain/internal/terrain"
	"github.com/Faultbox/fractal-terrain/pkg/math"
)

// Scene owns the lit program and every renderer of the terrain demo.
type Scene struct {
	width  int32
	height int32

	litProgram *shader.Program

	Terrain *TerrainRenderer
	Sea     *SeaRenderer
	Sun     *SunRenderer

	ClearColor math.Vec3
}

// New compiles programs and creates renderers. A GL context must be current.
func New(width, height int32, seaHalfExtent float32) (*Scene, error) {
	lit, err := shader.NewProgram("lit", shaders.LitVertexShader, shaders.LitFragmentShader)
	if err != nil {
		return nil, err
	}

	sun, err := NewSunRenderer()
	if err != nil {
		lit.Delete()
		return nil, err
	}

	s := &Scene{
		litProgram: lit,
		Terrain:    NewTerrainRenderer(),
		Sea:        NewSeaRenderer(water.BuildPlane(seaHalfExtent)),
		Sun:        sun,
		ClearColor: math.Vec3{X: 0.53, Y: 0.71, Z: 0.92},
	}
	s.Resize(width, height)

	gl.Enable(gl.DEPTH_TEST)

	logger.Named("scene").Info("scene ready",
		zap.Int32("width", width),
		zap.Int32("height", height))
	return s, nil
}

// SetTerrain uploads a new terrain mesh, replacing the previous one.
func (s *Scene) SetTerrain(mesh *terrain.Mesh, horizontalScale float32) {
	s.Terrain.Upload(mesh, horizontalScale)
}

// Resize updates the viewport.
func (s *Scene) Resize(width, height int32) {
	s.width, s.height = max(width, 1), max(height, 1)
	gl.Viewport(0, 0, s.width, s.height)
}

// Aspect returns the viewport aspect ratio.
func (s *Scene) Aspect() float32 {
	return float32(s.width) / float32(s.height)
}

// Render draws one frame. The sky darkens with the sun strength.
func (s *Scene) Render(cam *camera.FlyCamera, sun *lighting.Sun, tide *water.Tide) {
	sky := s.ClearColor.Scale(math.Clamp(sun.Strength(), 0.05, 1))
	gl.ClearColor(sky.X, sky.Y, sky.Z, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	view := cam.ViewMatrix()
	proj := cam.ProjectionMatrix(s.Aspect())

	s.litProgram.Use()
	s.litProgram.SetMat4("uView", view)
	s.litProgram.SetMat4("uProjection", proj)
	s.litProgram.SetVec3("uViewPos", cam.Position)
	s.setLight(sun.Light())

	s.Terrain.Render(s)
	s.Sea.Render(s, tide)

	s.Sun.Render(proj.Mul(view), sun.Position())
}

func (s *Scene) setLight(l lighting.PointLight) {
	p := s.litProgram
	p.SetVec3("uLight.position", l.Position)
	p.SetVec3("uLight.ambient", l.Ambient)
	p.SetVec3("uLight.diffuse", l.Diffuse)
	p.SetVec3("uLight.specular", l.Specular)
	p.SetFloat("uLight.constant", l.Constant)
	p.SetFloat("uLight.linear", l.Linear)
	p.SetFloat("uLight.quadratic", l.Quadratic)
}

// Destroy releases all GPU resources.
func (s *Scene) Destroy() {
	s.Terrain.Destroy()
	s.Sea.Destroy()
	s.Sun.Destroy()
	s.litProgram.Delete()
}
