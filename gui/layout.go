package gui

// LayoutType defines the direction of a layout.
type LayoutType uint8

const (
	LayoutVertical   LayoutType = iota // Items stack vertically (default)
	LayoutHorizontal                   // Items stack horizontally
)

// Layout tracks the state of one layout container.
type Layout struct {
	Type LayoutType

	StartX, StartY      float32
	Width               float32 // Minimum width (0 = size to content)
	MaxWidth, MaxHeight float32 // Accumulated content size

	Gap     float32 // Space between children
	Padding float32 // Panel inner padding

	ItemCount int
}

// LayoutOption configures a layout container.
type LayoutOption func(*Layout)

// Gap sets spacing between children.
func Gap(pixels float32) LayoutOption {
	return func(l *Layout) { l.Gap = pixels }
}

// Padding sets a panel's inner padding.
func Padding(pixels float32) LayoutOption {
	return func(l *Layout) { l.Padding = pixels }
}

// Width sets a minimum width for a panel.
func Width(w float32) LayoutOption {
	return func(l *Layout) { l.Width = w }
}

func (ctx *Context) pushLayout(layout *Layout) {
	layout.StartX = ctx.cursor.X
	layout.StartY = ctx.cursor.Y
	ctx.layoutStack = append(ctx.layoutStack, layout)
}

// popLayout removes the current layout and reports its content bounds to
// the parent as a single item.
func (ctx *Context) popLayout() Rect {
	n := len(ctx.layoutStack)
	if n == 0 {
		return Rect{}
	}

	layout := ctx.layoutStack[n-1]
	ctx.layoutStack = ctx.layoutStack[:n-1]

	bounds := Rect{X: layout.StartX, Y: layout.StartY, W: layout.MaxWidth, H: layout.MaxHeight}

	if n > 1 {
		ctx.cursor = Vec2{X: layout.StartX, Y: layout.StartY}
		ctx.AdvanceCursor(Vec2{X: bounds.W, Y: bounds.H})
	}

	return bounds
}

// Panel draws a titled panel around its contents and returns a function
// that takes the content closure.
//
//	ctx.Panel("Settings", gui.Padding(12))(func() {
//	    ctx.Text("Hello")
//	})
//
// The background is inserted behind the contents once their size is known.
// A panel under the mouse sets WantCaptureMouse, and its rect is kept for
// OverPanel.
func (ctx *Context) Panel(title string, opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		layout := &Layout{
			Type:    LayoutVertical,
			Padding: ctx.style.PanelPadding,
			Gap:     ctx.style.ItemSpacing,
		}
		for _, opt := range opts {
			opt(layout)
		}
		pad := layout.Padding

		startX, startY := ctx.cursor.X, ctx.cursor.Y

		headerH := float32(0)
		if title != "" {
			headerH = ctx.LineHeight() + pad*2
		}

		ctx.cursor.X += pad
		ctx.cursor.Y += headerH + pad

		ctx.pushLayout(layout)
		contents()
		bounds := ctx.popLayout()

		panelW := maxf(bounds.W+pad*2, layout.Width)
		if title != "" {
			panelW = maxf(panelW, ctx.MeasureText(title).X+pad*2)
		}
		panelH := bounds.H + pad*2 + headerH

		ctx.DrawList.InsertRect(startX, startY, panelW, panelH, ctx.style.PanelColor)

		if title != "" {
			headerBg := ctx.style.PanelHeaderBgColor
			if headerBg == 0 {
				headerBg = ctx.style.FrameBgColor
			}
			ctx.DrawList.AddRect(startX, startY, panelW, headerH, headerBg)

			headerText := ctx.style.PanelHeaderTextColor
			if headerText == 0 {
				headerText = ctx.style.TextColor
			}
			ctx.AddText(startX+pad, startY+pad, title, headerText)
		}

		if ctx.style.BorderSize > 0 {
			ctx.DrawList.AddRectOutline(startX, startY, panelW, panelH,
				ctx.style.PanelBorderColor, ctx.style.BorderSize)
		}

		panelRect := Rect{X: startX, Y: startY, W: panelW, H: panelH}
		ctx.panels = append(ctx.panels, panelRect)
		if ctx.isHovered(panelRect) {
			ctx.WantCaptureMouse = true
		}

		ctx.cursor = Vec2{X: startX, Y: startY + panelH}
	}
}

// HStack lays out its contents horizontally.
//
//	ctx.HStack(gui.Gap(4))(func() {
//	    ctx.Text("Label:")
//	    ctx.Text("Value")
//	})
func (ctx *Context) HStack(opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		layout := &Layout{Type: LayoutHorizontal, Gap: ctx.style.ItemSpacing}
		for _, opt := range opts {
			opt(layout)
		}
		ctx.ItemPos()
		ctx.pushLayout(layout)
		contents()
		ctx.popLayout()
	}
}
