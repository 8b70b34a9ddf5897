package gui

import (
	"fmt"
	"strings"
)

// SliderState tracks state for slider widgets.
type SliderState struct {
	Dragging bool // True while the grab handle follows the mouse
}

var sliderStore = NewFrameStore[SliderState]()

const (
	defaultSliderWidth = 150
	sliderGrabWidth    = 12
)

// SliderFloat draws a horizontal slider for float32 values: an optional
// label, the track, and the formatted value. Returns true if the value
// changed this frame.
//
//	if ctx.SliderFloat("Scale", &scale, 0, 1) {
//	    applyScale(scale)
//	}
//
// Pressing anywhere on the track starts a drag that continues while the left
// button is held, even outside the track. The wheel nudges the value by 1%
// (or the step) while hovered.
func (ctx *Context) SliderFloat(label string, value *float32, minVal, maxVal float32, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	id := ctx.GetID(label)
	if optID := GetOpt(o, OptID); optID != "" {
		id = ctx.GetID(optID)
	}
	state := sliderStore.Get(id, SliderState{})

	labelWidth := float32(0)
	if label != "" {
		labelWidth = ctx.MeasureText(label).X + ctx.style.ItemSpacing
	}
	sliderWidth := float32(defaultSliderWidth)
	if w := GetOpt(o, OptWidth); w > 0 {
		sliderWidth = w
	}
	h := ctx.LineHeight() + 4
	trackX := pos.X + labelWidth
	trackH := h * 0.5
	trackY := pos.Y + (h-trackH)/2

	rect := Rect{X: trackX, Y: pos.Y, W: sliderWidth, H: h}
	hovered := ctx.isHovered(rect)
	step := GetOpt(o, OptStep)
	changed := false

	set := func(v float32) {
		if step > 0 {
			v = minVal + float32(int((v-minVal)/step+0.5))*step
		}
		v = clampf(v, minVal, maxVal)
		if v != *value {
			*value = v
			changed = true
		}
	}

	if ctx.Input != nil {
		if hovered && ctx.Input.MouseClicked(MouseButtonLeft) {
			state.Dragging = true
			if guiVerbose() {
				guiLogger.Debug("slider drag start", "id", id, "label", label)
			}
		}

		if state.Dragging {
			if ctx.Input.MouseDown(MouseButtonLeft) {
				relX := ctx.Input.MouseX - trackX - sliderGrabWidth/2
				ratio := clampf(relX/(sliderWidth-sliderGrabWidth), 0, 1)
				set(minVal + ratio*(maxVal-minVal))
			} else {
				state.Dragging = false
			}
		}

		if hovered && ctx.Input.MouseWheelY != 0 {
			wheelStep := step
			if wheelStep == 0 {
				wheelStep = (maxVal - minVal) / 100
			}
			set(*value + ctx.Input.MouseWheelY*wheelStep)
		}
	}

	ratio := float32(0)
	if maxVal > minVal {
		ratio = clampf((*value-minVal)/(maxVal-minVal), 0, 1)
	}
	grabX := trackX + ratio*(sliderWidth-sliderGrabWidth)

	if label != "" {
		ctx.AddText(pos.X, pos.Y+(h-ctx.LineHeight())/2, label, ctx.style.TextColor)
	}

	ctx.DrawList.AddRect(trackX, trackY, sliderWidth, trackH, ctx.style.SliderTrackColor)
	if fill := ratio * sliderWidth; fill > 0 {
		ctx.DrawList.AddRect(trackX, trackY, fill, trackH, ctx.style.SliderFillColor)
	}

	grabColor := ctx.style.SliderGrabColor
	if state.Dragging {
		grabColor = ctx.style.SliderGrabActive
	} else if hovered {
		grabColor = ctx.style.SliderGrabHovered
	}
	ctx.DrawList.AddRect(grabX, pos.Y, sliderGrabWidth, h, grabColor)
	ctx.DrawList.AddRectOutline(grabX, pos.Y, sliderGrabWidth, h, ctx.style.InputBorderColor, 1)

	valueText := formatValue(GetOpt(o, OptFormat), *value)
	valueWidth := ctx.MeasureText(valueText).X
	ctx.AddText(trackX+sliderWidth+ctx.style.ItemSpacing, pos.Y+(h-ctx.LineHeight())/2, valueText, ctx.style.TextColor)

	ctx.AdvanceCursor(Vec2{labelWidth + sliderWidth + ctx.style.ItemSpacing + valueWidth, h})
	return changed
}

// formatValue renders v with format, accepting integer verbs for floats.
func formatValue(format string, v float32) string {
	if format == "" {
		format = "%.2f"
	}
	if strings.Contains(format, "%d") {
		return fmt.Sprintf(format, int(v))
	}
	return fmt.Sprintf(format, v)
}
