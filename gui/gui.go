package gui

// Renderer is the interface for rendering GUI draw data.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
}

// GUI manages the immediate mode UI system.
type GUI struct {
	renderer Renderer
	style    Style
	ctx      *Context
	timer    FrameTimer
}

// GUIOption configures a GUI instance.
type GUIOption func(*GUI)

// WithStyle sets the GUI style.
func WithStyle(style Style) GUIOption {
	return func(g *GUI) { g.style = style }
}

// New creates a new GUI instance.
func New(renderer Renderer, opts ...GUIOption) *GUI {
	g := &GUI{
		renderer: renderer,
		style:    DefaultStyle(),
		ctx:      NewContext(),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Begin starts a new frame and returns the GUI context.
// Call this at the start of each frame before drawing any UI.
func (g *GUI) Begin(input *InputState, displaySize Vec2, deltaTime float32) *Context {
	ctx := g.ctx

	ctx.DrawList = AcquireDrawList()
	ctx.Input = input
	ctx.SetStyle(g.style)
	ctx.FontTextureID = g.renderer.FontTextureID()

	ctx.Reset(displaySize, deltaTime)

	g.timer.Add(deltaTime)
	ctx.Framerate = g.timer.Framerate()
	ctx.FrameTime = g.timer.FrameTime()

	return ctx
}

// End finishes the frame and renders the UI.
// Call this after all UI drawing is complete.
func (g *GUI) End() error {
	if g.ctx.DrawList == nil {
		return nil
	}

	g.ctx.DrawList.Finalize()
	err := g.renderer.Render(g.ctx.DrawList)

	ReleaseDrawList(g.ctx.DrawList)
	g.ctx.DrawList = nil

	return err
}

// Context returns the current GUI context.
// Only valid between Begin() and End() calls.
func (g *GUI) Context() *Context {
	return g.ctx
}

// Contains reports whether (x, y) in window pixels falls on a panel from
// the most recent frame. Input callbacks run between frames, so this is the
// layout the user saw when they pressed.
func (g *GUI) Contains(x, y float32) bool {
	return g.ctx.OverPanel(x, y)
}
