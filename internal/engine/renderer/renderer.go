// Package renderer draws textured, animated sprite quads with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/shogunato/internal/engine/renderer/shaders"
	"github.com/Faultbox/shogunato/internal/engine/shader"
	"github.com/Faultbox/shogunato/internal/game/entity"
	"github.com/Faultbox/shogunato/internal/logger"
)

// Logical playfield size. The projection maps it onto the whole viewport.
const (
	ViewWidth  = 800
	ViewHeight = 600
)

// Sky-blue clear color.
var ClearColor = [4]float32{193.0 / 255.0, 229.0 / 255.0, 245.0 / 255.0, 1.0}

// floats per vertex: x, y, z, s, t
const vertexStride = 5

// Config holds renderer configuration.
type Config struct {
	Width  int // viewport width in pixels
	Height int // viewport height in pixels
}

// Renderer owns the sprite shader and every quad it allocated.
type Renderer struct {
	config Config

	program    uint32
	locProj    int32
	locModel   int32
	locTexture int32
	locOffset  int32

	projection mgl32.Mat4

	vaos []uint32
	vbos []uint32

	// Collision box overlay
	outlineProgram  uint32
	locOutlineProj  int32
	locOutlineColor int32
	outlineVAO      uint32
	outlineVBO      uint32
}

// New creates a renderer. The OpenGL context must already be current.
//
// A shader that fails to compile or link is logged and rendering continues
// with the broken program, so the game stays playable without visuals.
func New(cfg Config) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	r := &Renderer{
		config:     cfg,
		projection: Projection(),
	}

	program, err := shader.CompileProgram(shaders.SpriteVertexShader, shaders.SpriteFragmentShader)
	if err != nil {
		logger.Warn("sprite shader failed, continuing", zap.Error(err))
	}
	r.program = program
	r.locProj = shader.GetUniform(program, "uProjection")
	r.locModel = shader.GetUniform(program, "uModel")
	r.locTexture = shader.GetUniform(program, "uTexture")
	r.locOffset = shader.GetUniform(program, "uTexOffset")

	// Later sprites always draw over earlier ones.
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.ALWAYS)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(ClearColor[0], ClearColor[1], ClearColor[2], ClearColor[3])

	gl.UseProgram(r.program)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.locTexture, 0)
	gl.UniformMatrix4fv(r.locProj, 1, false, &r.projection[0])

	r.initOutline()

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// initOutline prepares the line program and the streaming buffer used by DrawLineLoop.
func (r *Renderer) initOutline() {
	program, err := shader.CompileProgram(shaders.OutlineVertexShader, shaders.OutlineFragmentShader)
	if err != nil {
		logger.Warn("outline shader failed, continuing", zap.Error(err))
	}
	r.outlineProgram = program
	r.locOutlineProj = shader.GetUniform(program, "uProjection")
	r.locOutlineColor = shader.GetUniform(program, "uColor")

	gl.UseProgram(program)
	gl.UniformMatrix4fv(r.locOutlineProj, 1, false, &r.projection[0])

	gl.GenVertexArrays(1, &r.outlineVAO)
	gl.BindVertexArray(r.outlineVAO)
	gl.GenBuffers(1, &r.outlineVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.outlineVBO)
	gl.BufferData(gl.ARRAY_BUFFER, 4*3*4, nil, gl.DYNAMIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	gl.UseProgram(r.program)
}

// Projection returns the orthographic projection of the logical playfield.
// The origin is the bottom-left corner.
func Projection() mgl32.Mat4 {
	return mgl32.Ortho(0, ViewWidth, 0, ViewHeight, -1, 1)
}

// ModelMatrix places a unit quad: translate, then rotate about z, then scale.
func ModelMatrix(s *entity.Sprite) mgl32.Mat4 {
	return mgl32.Translate3D(s.Pos.X(), s.Pos.Y(), s.Pos.Z()).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(s.Angle))).
		Mul4(mgl32.Scale3D(s.Size.X(), s.Size.Y(), s.Size.Z()))
}

// QuadVertices returns two triangles covering a unit quad centered on the
// origin, with texture coordinates spanning one ds×dt sheet cell.
func QuadVertices(ds, dt float32) []float32 {
	return []float32{
		// x     y     z    s   t
		-0.5, 0.5, 0.0, 0, dt,
		-0.5, -0.5, 0.0, 0, 0,
		0.5, 0.5, 0.0, ds, dt,

		-0.5, -0.5, 0.0, 0, 0,
		0.5, 0.5, 0.0, ds, dt,
		0.5, -0.5, 0.0, ds, 0,
	}
}

// AllocQuad uploads a sprite quad and returns its vertex array object.
func (r *Renderer) AllocQuad(ds, dt float32) uint32 {
	vertices := QuadVertices(ds, dt)

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	// Position attribute (location = 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride*4, 0)
	gl.EnableVertexAttribArray(0)

	// Texture coordinate attribute (location = 1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, vertexStride*4, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.vaos = append(r.vaos, vao)
	r.vbos = append(r.vbos, vbo)

	logger.Debug("sprite quad allocated",
		zap.Uint32("vao", vao),
		zap.Float32("ds", ds),
		zap.Float32("dt", dt),
	)
	return vao
}

// Draw renders one sprite at its current frame.
func (r *Renderer) Draw(s *entity.Sprite) {
	model := ModelMatrix(s)
	offset := s.TexOffset()

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locModel, 1, false, &model[0])
	gl.Uniform2f(r.locOffset, offset.X(), offset.Y())

	gl.BindVertexArray(s.VAO)
	gl.BindTexture(gl.TEXTURE_2D, s.Texture)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.BindVertexArray(0)
}

// DrawLineLoop draws a closed loop through world-space xyz vertices.
func (r *Renderer) DrawLineLoop(vertices []float32, color mgl32.Vec4) {
	if len(vertices) < 6 {
		return
	}

	gl.UseProgram(r.outlineProgram)
	gl.Uniform4f(r.locOutlineColor, color.X(), color.Y(), color.Z(), color.W())

	gl.BindVertexArray(r.outlineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.outlineVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.DYNAMIC_DRAW)
	gl.DrawArrays(gl.LINE_LOOP, 0, int32(len(vertices)/3))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// ReadPixels returns the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}

// Begin clears the frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Resize sets the viewport to the drawable size.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("viewport resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Close releases all quads and the shader program.
func (r *Renderer) Close() {
	logger.Info("closing renderer", zap.Int("quads", len(r.vaos)))
	if len(r.vaos) > 0 {
		gl.DeleteVertexArrays(int32(len(r.vaos)), &r.vaos[0])
		gl.DeleteBuffers(int32(len(r.vbos)), &r.vbos[0])
		r.vaos, r.vbos = nil, nil
	}
	if r.outlineVAO != 0 {
		gl.DeleteVertexArrays(1, &r.outlineVAO)
		gl.DeleteBuffers(1, &r.outlineVBO)
	}
	for _, p := range []*uint32{&r.program, &r.outlineProgram} {
		if *p != 0 {
			gl.DeleteProgram(*p)
			*p = 0
		}
	}
}
