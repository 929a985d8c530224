// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// MapTextureVertexShader is the vertex shader shared by the plain
// texture and team color programs.
//
//go:embed maptexture.vert
var MapTextureVertexShader string

// MapTextureFragmentShader is the fragment shader for plain texture
// sampling.
//
//go:embed maptexture.frag
var MapTextureFragmentShader string

// TeamColorsFragmentShader recolors alpha-marked texels with the owning
// player's team color.
//
//go:embed teamcolors.frag
var TeamColorsFragmentShader string

// AlphaMaskVertexShader is the vertex shader for alpha-masked
// compositing.
//
//go:embed alphamask.vert
var AlphaMaskVertexShader string

// AlphaMaskFragmentShader composites an overlay texture through a blend
// mask's alpha channel.
//
//go:embed alphamask.frag
var AlphaMaskFragmentShader string
