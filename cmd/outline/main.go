// Command outline opens an 800x600 sketchpad window. Drag with the left
// mouse button to draw lines; the overlay panel edits the background and
// line colors.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./cmd/outline/     # run the sketchpad
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/outline"
	"github.com/go-theft-auto/outline/backend/opengl"
	"github.com/go-theft-auto/outline/gui"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(outline.DefaultConfig()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg outline.Config) error {
	gui.SetVerbose(cfg.Verbose)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: gui.LogLevel()}))

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	logger.Info("opengl ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	session := outline.NewSession(cfg.Width, cfg.Height,
		outline.WithCapacity(cfg.Capacity), outline.WithLogger(logger))

	lines := opengl.NewLineRenderer(session.MaxPointsPerLine(), logger)
	defer lines.Delete()

	// Without the overlay the canvas still draws with the default colors.
	var ui *gui.GUI
	var overlay opengl.Overlay
	if renderer, err := opengl.NewRenderer(cfg.Width, cfg.Height); err != nil {
		logger.Error("overlay disabled", "err", err)
	} else {
		defer renderer.Delete()
		ui = gui.New(renderer, gui.WithStyle(gui.DarkStyle()))
		overlay = ui
	}
	input := opengl.NewGLFWInputAdapter(window, session, overlay)

	settings := cfg.Settings
	displaySize := gui.Vec2{X: float32(cfg.Width), Y: float32(cfg.Height)}
	lastTime := glfw.GetTime()

	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := float32(now - lastTime)
		lastTime = now

		if session.Drawing() {
			session.Sample(input.CursorPos())
		}

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		bg := settings.Background
		gl.ClearColor(bg[0], bg[1], bg[2], 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		lines.Draw(session.Lines(), settings.Foreground)

		input.BeginFrame()
		glfw.PollEvents()

		if ui != nil {
			ctx := ui.Begin(input.Input(), displaySize, dt)
			outline.DrawPanel(ctx, &settings)
			if err := ui.End(); err != nil {
				return fmt.Errorf("gui render: %w", err)
			}
		}

		window.SwapBuffers()
	}

	logger.Info("window closed",
		"lines", session.LineIndex(),
		"points", session.PointCount(),
		"buffers", lines.BufferCount())
	return nil
}
