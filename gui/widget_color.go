package gui

const (
	colorChannelWidth = 64
	colorSwatchSize   = 12
)

var colorChannelIDs = [3]string{"r", "g", "b"}

// ColorEdit3 draws one slider per RGB channel followed by a swatch of the
// resulting color and the label. Channels are edited in place in the 0..1
// range. Returns true if any channel changed this frame.
//
//	if ctx.ColorEdit3("BG color", &bg) {
//	    gl.ClearColor(bg[0], bg[1], bg[2], 1)
//	}
func (ctx *Context) ColorEdit3(label string, col *[3]float32, opts ...Option) bool {
	o := applyOptions(opts)
	channelWidth := float32(colorChannelWidth)
	if w := GetOpt(o, OptWidth); w > 0 {
		channelWidth = w / 3
	}

	changed := false
	ctx.PushID(label)
	ctx.HStack()(func() {
		for i := range col {
			if ctx.SliderFloat("", &col[i], 0, 1,
				WithID(colorChannelIDs[i]), WithWidth(channelWidth), WithFormat("%.2f")) {
				changed = true
			}
		}

		pos := ctx.ItemPos()
		h := ctx.LineHeight() + 4
		swatch := RGBAf(col[0], col[1], col[2], 1)
		ctx.DrawList.AddRect(pos.X, pos.Y, colorSwatchSize, h, swatch)
		ctx.DrawList.AddRectOutline(pos.X, pos.Y, colorSwatchSize, h, ctx.style.InputBorderColor, 1)
		ctx.AdvanceCursor(Vec2{colorSwatchSize, h})

		if label != "" {
			labelPos := ctx.ItemPos()
			ctx.AddText(labelPos.X, labelPos.Y+2, label, ctx.style.TextColor)
			ctx.AdvanceCursor(Vec2{ctx.MeasureText(label).X, h})
		}
	})
	ctx.PopID()

	if changed && guiVerbose() {
		guiLogger.Debug("color edited", "label", label, "r", col[0], "g", col[1], "b", col[2])
	}
	return changed
}
