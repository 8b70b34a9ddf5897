/*
Package outline implements a freehand line-drawing sketchpad.

The user presses the left mouse button to start a line, drags to extend it,
and releases to finish it. Points are stored in normalized device
coordinates so the GL backend can upload them as vertex data without any
transformation.

# Quick Start

	cfg := outline.DefaultConfig()
	session := outline.NewSession(cfg.Width, cfg.Height, outline.WithCapacity(cfg.Capacity))

	// Mouse callbacks
	session.Press(x, y)
	session.Release()

	// Each frame
	if session.Drawing() {
	    session.Sample(window.GetCursorPos())
	}
	lines.Draw(session.Lines(), settings.Foreground)

The session is a plain value owned by the frame loop. It is not safe for
concurrent use; GLFW delivers callbacks on the main thread.

# Capacity

A session has a capacity C. Each line holds at most C/2-1 points and at most
C lines are stored. Points past either limit are dropped silently.
*/
package outline
