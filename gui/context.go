package gui

import "unicode/utf8"

// Context holds all state for UI rendering in a single frame.
// This is NOT context.Context - it's a dedicated GUI context type.
type Context struct {
	DrawList *DrawList

	style Style

	cursor      Vec2
	layoutStack []*Layout

	// Input (read-only during frame)
	Input *InputState

	idStack   []ID
	idCounter uint32

	DisplaySize Vec2
	FrameCount  uint64
	DeltaTime   float32

	// Framerate is the rolling average frames per second, FrameTime the
	// matching average frame duration in milliseconds.
	Framerate float32
	FrameTime float32

	// FontTextureID is the renderer's texture for the built-in font.
	FontTextureID uint32

	// WantCaptureMouse is true once any panel drawn this frame contains the
	// mouse. The application should not treat such clicks as its own.
	WantCaptureMouse bool

	// panels are the rects of panels drawn since the last Reset.
	panels []Rect

	textMeasureCache map[string]Vec2
}

// NewContext creates a new GUI context with default settings.
func NewContext() *Context {
	return &Context{
		style:            DefaultStyle(),
		layoutStack:      make([]*Layout, 0, 8),
		idStack:          make([]ID, 0, 8),
		textMeasureCache: make(map[string]Vec2, 32),
	}
}

// Style returns the current style.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle sets the base style.
func (ctx *Context) SetStyle(style Style) {
	ctx.style = style
	clear(ctx.textMeasureCache)
}

// Reset prepares the context for a new frame.
func (ctx *Context) Reset(displaySize Vec2, deltaTime float32) {
	NextFrame()

	ctx.FrameCount++
	ctx.cursor = Vec2{}
	ctx.layoutStack = ctx.layoutStack[:0]
	ctx.idStack = ctx.idStack[:0]
	ctx.idCounter = 0
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime
	ctx.WantCaptureMouse = false
	ctx.panels = ctx.panels[:0]
}

// OverPanel reports whether (x, y) lies inside a panel drawn since the last
// Reset. Between End and the next Begin that is the previous frame's layout.
func (ctx *Context) OverPanel(x, y float32) bool {
	p := Vec2{X: x, Y: y}
	for _, r := range ctx.panels {
		if r.Contains(p) {
			return true
		}
	}
	return false
}

// SetCursorPos sets the position of the next widget.
func (ctx *Context) SetCursorPos(x, y float32) {
	ctx.cursor = Vec2{X: x, Y: y}
}

// CursorPos returns the position of the next widget.
func (ctx *Context) CursorPos() Vec2 {
	return ctx.cursor
}

func (ctx *Context) mousePos() Vec2 {
	return Vec2{ctx.Input.MouseX, ctx.Input.MouseY}
}

func (ctx *Context) isHovered(rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	return rect.Contains(ctx.mousePos())
}

// LineHeight returns the height of a single line of text.
func (ctx *Context) LineHeight() float32 {
	return ctx.style.lineHeight()
}

// MeasureText returns the size of rendered text.
func (ctx *Context) MeasureText(text string) Vec2 {
	if cached, ok := ctx.textMeasureCache[text]; ok {
		return cached
	}

	cell := GlyphSize * ctx.style.FontScale
	size := Vec2{X: float32(utf8.RuneCountInString(text)) * cell, Y: cell}
	ctx.textMeasureCache[text] = size
	return size
}

// AddText draws text with the built-in font at an absolute position.
func (ctx *Context) AddText(x, y float32, text string, color uint32) {
	ctx.DrawList.SetTexture(ctx.FontTextureID)
	ctx.DrawList.AddText(x, y, text, color, ctx.style.FontScale)
	ctx.DrawList.SetTexture(0)
}

func (ctx *Context) currentLayout() *Layout {
	if len(ctx.layoutStack) > 0 {
		return ctx.layoutStack[len(ctx.layoutStack)-1]
	}
	return nil
}

// ItemPos applies the layout gap and returns where the next widget goes.
func (ctx *Context) ItemPos() Vec2 {
	if layout := ctx.currentLayout(); layout != nil && layout.ItemCount > 0 {
		gap := layout.Gap
		if gap == 0 {
			gap = ctx.style.ItemSpacing
		}
		if layout.Type == LayoutVertical {
			ctx.cursor.Y += gap
		} else {
			ctx.cursor.X += gap
		}
	}
	return ctx.cursor
}

// AdvanceCursor moves the cursor past an item of the given size.
func (ctx *Context) AdvanceCursor(size Vec2) {
	layout := ctx.currentLayout()
	if layout == nil {
		ctx.cursor.Y += size.Y + ctx.style.ItemSpacing
		return
	}

	if layout.Type == LayoutVertical {
		ctx.cursor.Y += size.Y
		layout.MaxWidth = maxf(layout.MaxWidth, ctx.cursor.X+size.X-layout.StartX)
		layout.MaxHeight = ctx.cursor.Y - layout.StartY
	} else {
		ctx.cursor.X += size.X
		layout.MaxWidth = ctx.cursor.X - layout.StartX
		layout.MaxHeight = maxf(layout.MaxHeight, size.Y)
	}
	layout.ItemCount++
}
