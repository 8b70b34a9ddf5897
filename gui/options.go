package gui

// Option configures a widget.
type Option func(*options)

type options struct {
	extensions map[string]any
}

// OptKey is a typed key for widget options.
//
//	var OptThing = gui.NewOptKey("thing", defaultValue)
//	ctx.MyWidget("id", gui.WithOpt(OptThing, value))
//	value := gui.GetOpt(o, OptThing)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value, or the key's default if unset.
func GetOpt[T any](o options, key OptKey[T]) T {
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Built-in option keys.
var (
	OptID     = NewOptKey("id", "")
	OptWidth  = NewOptKey("width", float32(0))
	OptFormat = NewOptKey("format", "")
	OptStep   = NewOptKey("step", float32(0))
)

// WithID overrides the label-derived widget ID.
func WithID(id string) Option { return WithOpt(OptID, id) }

// WithWidth sets the widget's main width in pixels.
func WithWidth(width float32) Option { return WithOpt(OptWidth, width) }

// WithFormat sets the printf format of a displayed value.
func WithFormat(format string) Option { return WithOpt(OptFormat, format) }

// WithStep snaps slider values to multiples of step.
func WithStep(step float32) Option { return WithOpt(OptStep, step) }
