// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// SpriteVertexShader places a unit quad with the model and projection matrices.
//
//go:embed sprite.vert
var SpriteVertexShader string

// SpriteFragmentShader samples the sprite sheet at the current frame offset.
//
//go:embed sprite.frag
var SpriteFragmentShader string

// OutlineVertexShader places world-space line vertices.
//
//go:embed outline.vert
var OutlineVertexShader string

// OutlineFragmentShader fills lines with a flat color.
//
//go:embed outline.frag
var OutlineFragmentShader string
