// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/flycam/internal/engine/debug"
	"github.com/Faultbox/flycam/internal/engine/renderer/shaders"
	"github.com/Faultbox/flycam/internal/engine/scene"
	"github.com/Faultbox/flycam/internal/engine/shader"
	"github.com/Faultbox/flycam/internal/logger"
	"github.com/Faultbox/flycam/pkg/math"
)

// Uniform names shared with the embedded shaders.
const (
	uniformWorldViewProj  = "gWorldViewProj"
	uniformWorldMatrix    = "gWorldMatrix"
	uniformViewInverse    = "gViewInverseMatrix"
	uniformLightDirection = "gLightDirection"
	uniformLineViewProj   = "gViewProj"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Frame carries the per-frame camera state the renderer needs.
type Frame struct {
	ViewProjection math.Mat4
	InvView        math.Mat4

	ShowGrid    bool
	ShowOutline bool
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
	log    *zap.Logger

	meshProgram *shader.Program
	lineProgram *shader.Program

	mesh    meshBuffers
	grid    lineBuffers
	outline lineBuffers
}

type meshBuffers struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

type lineBuffers struct {
	vao, vbo    uint32
	vertexCount int32
}

// New creates a new renderer and uploads the scene's static geometry.
// Must be called after the OpenGL context is created.
func New(cfg Config, s *scene.Scene) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0) // Dark blue-gray background
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.meshProgram, err = shader.NewProgram(shaders.MeshVertexShader, shaders.MeshFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("mesh shader: %w", err)
	}
	r.lineProgram, err = shader.NewProgram(shaders.LineVertexShader, shaders.LineFragmentShader)
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("line shader: %w", err)
	}

	r.mesh = uploadMesh(s.Model.Mesh)
	r.grid = uploadLines(debug.Flatten(s.Grid), gl.STATIC_DRAW)
	r.outline = uploadLines(make([]float32, debug.BBoxWireframeVertexCount*6), gl.DYNAMIC_DRAW)

	r.log.Debug("scene uploaded",
		zap.Int32("indices", r.mesh.indexCount),
		zap.Int32("grid_vertices", r.grid.vertexCount),
	)
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	r.mesh.delete()
	r.grid.delete()
	r.outline.delete()
	if r.meshProgram != nil {
		r.meshProgram.Delete()
	}
	if r.lineProgram != nil {
		r.lineProgram.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Render draws the scene for one frame.
func (r *Renderer) Render(s *scene.Scene, f Frame) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	world := s.Model.World()
	r.meshProgram.Use()
	r.meshProgram.SetMat4(uniformWorldViewProj, world.Mul(f.ViewProjection))
	r.meshProgram.SetMat4(uniformWorldMatrix, world)
	r.meshProgram.SetMat4(uniformViewInverse, f.InvView)
	r.meshProgram.SetVec3(uniformLightDirection, s.LightDir)

	gl.BindVertexArray(r.mesh.vao)
	gl.DrawElements(gl.TRIANGLES, r.mesh.indexCount, gl.UNSIGNED_INT, nil)

	if f.ShowGrid || f.ShowOutline {
		r.lineProgram.Use()
		r.lineProgram.SetMat4(uniformLineViewProj, f.ViewProjection)
	}
	if f.ShowGrid {
		gl.BindVertexArray(r.grid.vao)
		gl.DrawArrays(gl.LINES, 0, r.grid.vertexCount)
	}
	if f.ShowOutline {
		outline := debug.Flatten(s.ModelOutline())
		gl.BindBuffer(gl.ARRAY_BUFFER, r.outline.vbo)
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(outline)*4, gl.Ptr(outline))
		gl.BindBuffer(gl.ARRAY_BUFFER, 0)

		gl.BindVertexArray(r.outline.vao)
		gl.DrawArrays(gl.LINES, 0, r.outline.vertexCount)
	}

	gl.BindVertexArray(0)
}

// ReadPixels returns the current back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

func uploadMesh(mesh scene.Mesh) meshBuffers {
	var b meshBuffers
	vertices := mesh.Flatten()

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &b.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)
	b.indexCount = int32(len(mesh.Indices))

	// Position (0), normal (1), color (2)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, scene.VertexStride, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, scene.VertexStride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(2, 3, gl.FLOAT, false, scene.VertexStride, gl.PtrOffset(6*4))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return b
}

func uploadLines(vertices []float32, usage uint32) lineBuffers {
	var b lineBuffers

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	if len(vertices) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), usage)
	}
	b.vertexCount = int32(len(vertices) / 6)

	// Position (0), color (1)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, debug.LineVertexStride, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, debug.LineVertexStride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return b
}

func (b *meshBuffers) delete() {
	if b.ebo != 0 {
		gl.DeleteBuffers(1, &b.ebo)
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
	}
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
	}
	*b = meshBuffers{}
}

func (b *lineBuffers) delete() {
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
	}
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
	}
	*b = lineBuffers{}
}
