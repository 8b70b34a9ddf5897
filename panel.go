package outline

import (
	"fmt"

	"github.com/go-theft-auto/outline/gui"
)

// PanelTitle is the title of the overlay panel.
const PanelTitle = "Outline"

// Panel position in window pixels.
const (
	panelX = 10
	panelY = 10
)

// DrawPanel composes the overlay panel for one frame and edits s in place.
// It returns true if any setting changed.
func DrawPanel(ctx *gui.Context, s *Settings) bool {
	changed := false

	ctx.SetCursorPos(panelX, panelY)
	ctx.Panel(PanelTitle)(func() {
		ctx.Text("Options")
		if ctx.ColorEdit3("BG color", (*[3]float32)(&s.Background)) {
			changed = true
		}
		if ctx.SliderFloat("Scale", &s.Scale, 0, 1, gui.WithFormat("%.3f")) {
			changed = true
		}
		if ctx.ColorEdit3("FG color", (*[3]float32)(&s.Foreground)) {
			changed = true
		}
		ctx.Text(FrameStats(ctx.FrameTime, ctx.Framerate))
	})

	return changed
}

// FrameStats formats the frame time in milliseconds and the frame rate
// shown in the panel.
func FrameStats(ms, fps float32) string {
	return fmt.Sprintf("Application average %.3f ms/frame (%.1f FPS)", ms, fps)
}
