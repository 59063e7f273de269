// Package renderer presents CPU frame buffers through OpenGL. Each frame is
// uploaded into a streaming texture and drawn as a fullscreen quad.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/wolfcast/internal/engine/framebuffer"
	"github.com/Faultbox/wolfcast/internal/engine/shader"
	"github.com/Faultbox/wolfcast/internal/logger"
)

const vertexShader = `
#version 410 core

layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aUV;

out vec2 uv;

void main() {
	gl_Position = vec4(aPos, 0.0, 1.0);
	uv = aUV;
}
`

const fragmentShader = `
#version 410 core

in vec2 uv;
out vec4 FragColor;

uniform sampler2D uFrame;

void main() {
	FragColor = texture(uFrame, uv);
}
`

// Config holds renderer configuration.
type Config struct {
	Width  int // drawable size in pixels
	Height int
}

// Renderer draws frame buffers to the current GL context.
type Renderer struct {
	config Config
	log    *zap.Logger

	program uint32
	quadVAO uint32
	quadVBO uint32
	texture uint32

	texW, texH int
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
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

	gl.Disable(gl.DEPTH_TEST)
	gl.ClearColor(0, 0, 0, 1)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.program, err = shader.CompileProgram(vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	loc, err := shader.Uniform(r.program, "uFrame")
	if err != nil {
		r.Close()
		return nil, err
	}
	gl.UseProgram(r.program)
	gl.Uniform1i(loc, 0)

	r.createQuad()
	r.createTexture()

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.texture != 0 {
		gl.DeleteTextures(1, &r.texture)
	}
	if r.quadVAO != 0 {
		gl.DeleteVertexArrays(1, &r.quadVAO)
	}
	if r.quadVBO != 0 {
		gl.DeleteBuffers(1, &r.quadVBO)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize handles drawable resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Present uploads fb and draws it stretched over the viewport.
func (r *Renderer) Present(fb *framebuffer.FrameBuffer) {
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.texture)
	if fb.Width != r.texW || fb.Height != r.texH {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(fb.Width), int32(fb.Height), 0,
			gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(fb.Pix))
		r.texW, r.texH = fb.Width, fb.Height
		r.log.Debug("frame texture reallocated", zap.Int("width", fb.Width), zap.Int("height", fb.Height))
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(fb.Width), int32(fb.Height),
			gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(fb.Pix))
	}

	gl.UseProgram(r.program)
	gl.BindVertexArray(r.quadVAO)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)
}

// createQuad creates a fullscreen quad. Frame buffer row 0 is the top of
// the screen, so V is flipped against GL's bottom-left origin.
func (r *Renderer) createQuad() {
	vertices := []float32{
		// Position  // UV
		-1, 1, 0, 0,
		-1, -1, 0, 1,
		1, 1, 1, 0,
		1, -1, 1, 1,
	}

	gl.GenVertexArrays(1, &r.quadVAO)
	gl.BindVertexArray(r.quadVAO)

	gl.GenBuffers(1, &r.quadVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(2*4))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.log.Debug("quad created", zap.Uint32("vao", r.quadVAO), zap.Uint32("vbo", r.quadVBO))
}

// createTexture allocates the streaming frame texture. Nearest filtering
// keeps the blocky look of low ray counts.
func (r *Renderer) createTexture() {
	gl.GenTextures(1, &r.texture)
	gl.BindTexture(gl.TEXTURE_2D, r.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
}
