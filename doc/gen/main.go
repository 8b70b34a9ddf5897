// Command gen draws scripted strokes through a session, renders them with
// the overlay panel into a hidden window, and saves JPEG screenshots to
// doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/outline"
	"github.com/go-theft-auto/outline/backend/opengl"
	"github.com/go-theft-auto/outline/gui"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// stroke is one press-drag-release gesture in window pixels.
type stroke [][2]float64

// screenshot defines a single capture.
type screenshot struct {
	name     string // filename without extension
	strokes  []stroke
	settings outline.Settings
	panel    bool
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(outline.WindowWidth, outline.WindowHeight, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(outline.WindowWidth, outline.WindowHeight)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, outline.WindowWidth, outline.WindowHeight)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	const width, height = outline.WindowWidth, outline.WindowHeight

	session := outline.NewSession(width, height, outline.WithLogger(slog.Default()))
	for _, st := range s.strokes {
		replay(session, st)
	}

	lines := opengl.NewLineRenderer(session.MaxPointsPerLine(), slog.Default())
	defer lines.Delete()

	// Fresh GUI per screenshot so widget state does not leak between captures.
	ui := gui.New(renderer, gui.WithStyle(gui.DarkStyle()))
	settings := s.settings

	// The second frame has a settled framerate.
	for range 2 {
		gl.Viewport(0, 0, width, height)
		bg := settings.Background
		gl.ClearColor(bg[0], bg[1], bg[2], 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		lines.Draw(session.Lines(), settings.Foreground)

		if s.panel {
			ctx := ui.Begin(&gui.InputState{}, gui.Vec2{X: width, Y: height}, 1.0/60.0)
			outline.DrawPanel(ctx, &settings)
			if err := ui.End(); err != nil {
				return err
			}
		}
	}

	pixels := make([]byte, width*height*4)
	gl.ReadPixels(0, 0, width, height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	flipRows(pixels, width*4, height)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// replay feeds a stroke to the session the way the frame loop does: a
// press, one sample per frame while held, then a release.
func replay(session *outline.Session, st stroke) {
	if len(st) == 0 {
		return
	}
	session.Press(st[0][0], st[0][1])
	for _, p := range st[1:] {
		session.Sample(p[0], p[1])
	}
	session.Release()
}

// flipRows reverses row order in place. OpenGL's origin is bottom-left.
func flipRows(pixels []byte, rowLen, rows int) {
	tmp := make([]byte, rowLen)
	for y := 0; y < rows/2; y++ {
		top := y * rowLen
		bot := (rows - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}
}

// spiral returns an Archimedean spiral around (cx, cy).
func spiral(cx, cy, turns, spacing float64, n int) stroke {
	st := make(stroke, n)
	for i := range st {
		a := turns * 2 * math.Pi * float64(i) / float64(n)
		r := spacing * a
		st[i] = [2]float64{cx + r*math.Cos(a), cy + r*math.Sin(a)}
	}
	return st
}

// wave returns a sine wave from x0 to x1 along y.
func wave(x0, x1, y, amplitude float64, n int) stroke {
	st := make(stroke, n)
	for i := range st {
		t := float64(i) / float64(n-1)
		x := x0 + t*(x1-x0)
		st[i] = [2]float64{x, y + amplitude*math.Sin(t*4*math.Pi)}
	}
	return st
}

func buildScreenshots() []screenshot {
	drawing := []stroke{
		spiral(520, 330, 4, 8, 400),
		wave(60, 740, 520, 30, 200),
		{{300, 200}},
	}

	inverted := outline.DefaultSettings()
	inverted.Background = outline.Color{0.95, 0.95, 0.92}
	inverted.Foreground = outline.Color{0.1, 0.2, 0.6}

	return []screenshot{
		{name: "outline", strokes: drawing, settings: outline.DefaultSettings(), panel: true},
		{name: "outline_light", strokes: drawing, settings: inverted, panel: true},
		{name: "canvas", strokes: drawing, settings: outline.DefaultSettings()},
	}
}
