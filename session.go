package outline

import "log/slog"

// DefaultCapacity is the point buffer capacity used when none is configured.
const DefaultCapacity = 10000

// minCapacity keeps room for at least one point per line.
const minCapacity = 4

// State is the input state of a Session.
type State int

const (
	StateIdle    State = iota // No button held
	StateDrawing              // Left button held, points are being recorded
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDrawing:
		return "drawing"
	default:
		return "unknown"
	}
}

// Session is a drawing session: the point store plus the input state
// machine that feeds it.
//
// Lines are indexed from zero. The current line is the one receiving points;
// every line before it is finished and never changes again.
type Session struct {
	width, height int
	capacity      int

	lines   [][]Point
	current int
	state   State

	// fullLogged avoids logging every dropped sample of a saturated line.
	fullLogged bool

	logger *slog.Logger
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithCapacity sets the point buffer capacity.
// Values below the minimum are raised to it.
func WithCapacity(capacity int) SessionOption {
	return func(s *Session) { s.capacity = capacity }
}

// WithLogger sets the logger used for debug diagnostics.
func WithLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) { s.logger = logger }
}

// NewSession creates an idle session for a window of the given pixel size.
func NewSession(width, height int, opts ...SessionOption) *Session {
	s := &Session{
		width:    width,
		height:   height,
		capacity: DefaultCapacity,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.capacity < minCapacity {
		s.capacity = minCapacity
	}
	s.width = max(s.width, 1)
	s.height = max(s.height, 1)
	if s.logger == nil {
		s.logger = slog.Default()
	}

	s.lines = make([][]Point, 1, 16)
	return s
}

// Capacity returns the point buffer capacity.
func (s *Session) Capacity() int {
	return s.capacity
}

// MaxPointsPerLine returns the number of points a single line can hold.
func (s *Session) MaxPointsPerLine() int {
	return s.capacity/2 - 1
}

// State returns the current input state.
func (s *Session) State() State {
	return s.state
}

// Drawing reports whether the left button is held.
func (s *Session) Drawing() bool {
	return s.state == StateDrawing
}

// LineIndex returns the index of the current line.
// After K complete press/release cycles it equals K.
func (s *Session) LineIndex() int {
	return s.current
}

// Normalize converts window pixel coordinates to NDC for this session's
// window size.
func (s *Session) Normalize(x, y float64) Point {
	return Normalize(x, y, s.width, s.height)
}

// AddPoint appends the normalized position to the current line.
// It returns false when the point was dropped because the line is full or
// the line index is past capacity.
func (s *Session) AddPoint(x, y float64) bool {
	if s.current >= s.capacity {
		return false
	}

	line := s.lines[s.current]
	if len(line) >= s.MaxPointsPerLine() {
		if !s.fullLogged {
			s.logger.Debug("line full, dropping points",
				"line", s.current,
				"points", len(line))
			s.fullLogged = true
		}
		return false
	}

	s.lines[s.current] = append(line, s.Normalize(x, y))
	return true
}

// Press handles a left button press at the given window position.
// It records one point and enters the drawing state.
func (s *Session) Press(x, y float64) {
	s.AddPoint(x, y)
	s.state = StateDrawing
}

// Sample appends the cursor position while drawing.
// It does nothing when idle.
func (s *Session) Sample(x, y float64) {
	if s.state != StateDrawing {
		return
	}
	s.AddPoint(x, y)
}

// Release handles a left button release. It finishes the current line and
// advances to a new, empty one. It does nothing when idle.
func (s *Session) Release() {
	if s.state != StateDrawing {
		return
	}
	s.state = StateIdle
	s.current++
	s.fullLogged = false

	if s.current < s.capacity {
		s.lines = append(s.lines, nil)
	}

	s.logger.Debug("line finished",
		"line", s.current-1,
		"points", len(s.Line(s.current-1)))
}

// Line returns the points of line i, or nil if i is out of range.
// The returned slice must not be modified.
func (s *Session) Line(i int) []Point {
	if i < 0 || i >= len(s.lines) {
		return nil
	}
	return s.lines[i]
}

// Lines returns every stored line from index 0 up to and including the
// current line, in creation order. The current line may be empty.
// The returned slices must not be modified.
func (s *Session) Lines() [][]Point {
	return s.lines
}

// PointCount returns the total number of stored points.
func (s *Session) PointCount() int {
	n := 0
	for _, line := range s.lines {
		n += len(line)
	}
	return n
}
