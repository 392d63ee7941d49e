// Package shaders embeds the GLSL sources used by the scene renderers.
package shaders

import _ "embed"

// Terrain and sea share the lit program.
var (
	//go:embed lit.vert
	LitVertexShader string
	//go:embed lit.frag
	LitFragmentShader string
)

// Sun sphere.
var (
	//go:embed sun.vert
	SunVertexShader string
	//go:embed sun.frag
	SunFragmentShader string
)

// Ball point sprites.
var (
	//go:embed balls.vert
	BallsVertexShader string
	//go:embed balls.frag
	BallsFragmentShader string
)
