package gui_test

import (
	"math"
	"testing"

	"github.com/go-theft-auto/outline/gui"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestSliderFloatDrag(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	value := float32(0)

	// Track starts at x=0 with no label; the grab is 12 wide on a 150 track,
	// so x=75 is the midpoint of the usable range.
	input.SetMousePos(75, 4)
	input.SetMouseButton(gui.MouseButtonLeft, true)

	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	changed := ctx.SliderFloat("", &value, 0, 1)
	_ = ui.End()

	if !changed {
		t.Error("press on track should change value")
	}
	if !near(value, 0.5) {
		t.Errorf("value = %v, want 0.5", value)
	}

	// Drag continues outside the track while the button is held.
	input.Reset()
	input.SetMousePos(500, 200)
	ctx = ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.SliderFloat("", &value, 0, 1)
	_ = ui.End()

	if value != 1 {
		t.Errorf("value after drag past end = %v, want 1", value)
	}

	// Releasing ends the drag.
	input.Reset()
	input.SetMouseButton(gui.MouseButtonLeft, false)
	input.SetMousePos(0, 4)
	ctx = ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	changed = ctx.SliderFloat("", &value, 0, 1)
	_ = ui.End()

	if changed || value != 1 {
		t.Errorf("release should not change value: changed=%v value=%v", changed, value)
	}
}

func TestSliderFloatHoverWithoutPress(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	value := float32(0.3)

	input.SetMousePos(75, 4)
	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	if ctx.SliderFloat("", &value, 0, 1) {
		t.Error("hover alone should not change value")
	}
	_ = ui.End()
}

func TestSliderFloatStep(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	value := float32(0)

	// Ratio 0.3 snaps down to 0.25.
	input.SetMousePos(6+138*0.3, 4)
	input.SetMouseButton(gui.MouseButtonLeft, true)

	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.SliderFloat("", &value, 0, 1, gui.WithStep(0.25))
	_ = ui.End()

	if !near(value, 0.25) {
		t.Errorf("value = %v, want 0.25", value)
	}
}

func TestSliderFloatWheel(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	value := float32(0.5)

	input.SetMousePos(75, 4)
	input.SetMouseWheel(0, 2)

	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	if !ctx.SliderFloat("", &value, 0, 1) {
		t.Error("wheel over slider should change value")
	}
	_ = ui.End()

	if !near(value, 0.52) {
		t.Errorf("value = %v, want 0.52", value)
	}
}

func TestSliderFloatLabelOffsetsTrack(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	value := float32(0)

	// A press left of the track lands on the label and is ignored.
	input.SetMousePos(2, 4)
	input.SetMouseButton(gui.MouseButtonLeft, true)

	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	if ctx.SliderFloat("Scale", &value, 0, 1) {
		t.Error("press on label should not change value")
	}
	_ = ui.End()
}

func TestColorEdit3(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	col := [3]float32{0.1, 0.2, 0.3}

	// Middle of the red channel: 64 wide track, 12 wide grab.
	input.SetMousePos(32, 4)
	input.SetMouseButton(gui.MouseButtonLeft, true)

	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	changed := ctx.ColorEdit3("BG color", &col)
	_ = ui.End()

	if !changed {
		t.Fatal("press on red channel should report a change")
	}
	if !near(col[0], 0.5) {
		t.Errorf("red = %v, want 0.5", col[0])
	}
	if col[1] != 0.2 || col[2] != 0.3 {
		t.Errorf("other channels changed: %v", col)
	}
}

func TestColorEdit3Untouched(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	col := [3]float32{0.07, 0.07, 0.07}

	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	if ctx.ColorEdit3("BG color", &col) {
		t.Error("no input should not change color")
	}
	_ = ui.End()
}
