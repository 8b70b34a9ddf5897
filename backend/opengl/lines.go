package opengl

import (
	"log/slog"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/outline"
)

const lineVertexShader = `
#version 410 core
layout (location = 0) in vec2 aPos;

void main() {
    gl_Position = vec4(aPos, 0.0, 1.0);
}
` + "\x00"

const lineFragmentShader = `
#version 410 core
out vec4 FragColor;

uniform vec4 u_Color;

void main() {
    FragColor = u_Color;
}
` + "\x00"

// pointSize is the byte size of one vertex: two packed float32.
const pointSize = int(unsafe.Sizeof(outline.Point{}))

// lineBuffer is the GPU buffer pair of one line.
type lineBuffer struct {
	vao, vbo uint32
}

// LineRenderer draws session lines as line strips with one shared color.
// Buffer pairs are created the first time a line is drawable and refilled
// every frame after that.
type LineRenderer struct {
	program   uint32
	colorLoc  int32
	buffers   []lineBuffer
	maxPoints int
	logger    *slog.Logger
}

// NewLineRenderer compiles the line shader. Lines holding more than
// maxPoints points are skipped. A shader failure is logged and the renderer
// keeps going with the unusable program.
func NewLineRenderer(maxPoints int, logger *slog.Logger) *LineRenderer {
	if logger == nil {
		logger = slog.Default()
	}
	r := &LineRenderer{
		maxPoints: maxPoints,
		logger:    logger,
		buffers:   make([]lineBuffer, 0, 16),
	}

	program, err := buildProgram(lineVertexShader, lineFragmentShader)
	if err != nil {
		logger.Error("line shader failed", "err", err)
	}
	r.program = program
	r.colorLoc = gl.GetUniformLocation(program, gl.Str("u_Color\x00"))

	return r
}

// Draw uploads and draws every drawable line in index order.
func (r *LineRenderer) Draw(lines [][]outline.Point, color outline.Color) {
	gl.UseProgram(r.program)
	gl.Uniform4f(r.colorLoc, color[0], color[1], color[2], 1)

	for i, line := range lines {
		if !drawable(len(line), r.maxPoints) {
			continue
		}
		buf := r.buffer(i)

		gl.BindVertexArray(buf.vao)
		gl.BindBuffer(gl.ARRAY_BUFFER, buf.vbo)
		gl.BufferData(gl.ARRAY_BUFFER, vertexBytes(len(line)), gl.Ptr(line), gl.DYNAMIC_DRAW)
		gl.DrawArrays(gl.LINE_STRIP, 0, int32(len(line)))
	}

	gl.BindVertexArray(0)
}

// BufferCount returns the number of buffer pairs created so far.
func (r *LineRenderer) BufferCount() int {
	n := 0
	for _, b := range r.buffers {
		if b.vao != 0 {
			n++
		}
	}
	return n
}

// Delete frees every buffer pair and the program.
func (r *LineRenderer) Delete() {
	for i := range r.buffers {
		b := &r.buffers[i]
		if b.vbo != 0 {
			gl.DeleteBuffers(1, &b.vbo)
		}
		if b.vao != 0 {
			gl.DeleteVertexArrays(1, &b.vao)
		}
	}
	r.buffers = r.buffers[:0]

	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}

// buffer returns the buffer pair of line i, creating it on first use.
func (r *LineRenderer) buffer(i int) lineBuffer {
	for len(r.buffers) <= i {
		r.buffers = append(r.buffers, lineBuffer{})
	}
	b := &r.buffers[i]
	if b.vao != 0 {
		return *b
	}

	gl.GenVertexArrays(1, &b.vao)
	gl.GenBuffers(1, &b.vbo)

	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, int32(pointSize), 0)
	gl.EnableVertexAttribArray(0)

	r.logger.Debug("line buffer created", "line", i, "vao", b.vao, "vbo", b.vbo)
	return *b
}

// drawable reports whether a line of n points is drawn.
func drawable(n, maxPoints int) bool {
	return n >= 1 && n <= maxPoints
}

// vertexBytes returns the upload size of n points.
func vertexBytes(n int) int {
	return n * pointSize
}
