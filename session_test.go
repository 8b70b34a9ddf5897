package outline_test

import (
	"math"
	"testing"

	"github.com/go-theft-auto/outline"
)

func newSession(opts ...outline.SessionOption) *outline.Session {
	return outline.NewSession(outline.WindowWidth, outline.WindowHeight, opts...)
}

func TestNormalizeCorners(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want outline.Point
	}{
		{"top-left", 0, 0, outline.Point{X: -1, Y: 1}},
		{"bottom-right", 800, 600, outline.Point{X: 1, Y: -1}},
		{"center", 400, 300, outline.Point{X: 0, Y: 0}},
		{"top-right", 800, 0, outline.Point{X: 1, Y: 1}},
		{"bottom-left", 0, 600, outline.Point{X: -1, Y: -1}},
		{"quarter", 200, 150, outline.Point{X: -0.5, Y: 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outline.Normalize(tt.x, tt.y, 800, 600)
			if got != tt.want {
				t.Errorf("Normalize(%v, %v) = %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestNormalizeStaysInRange(t *testing.T) {
	for x := 0; x <= 800; x += 7 {
		for y := 0; y <= 600; y += 11 {
			p := outline.Normalize(float64(x), float64(y), 800, 600)
			if !p.InNDC() {
				t.Fatalf("Normalize(%d, %d) = %+v, outside [-1, 1]", x, y, p)
			}
		}
	}
}

func TestPressReleaseRecordsOnePoint(t *testing.T) {
	s := newSession()

	s.Press(400, 300)
	if !s.Drawing() {
		t.Fatal("expected drawing state after press")
	}
	s.Release()

	if s.Drawing() {
		t.Error("expected idle state after release")
	}
	if got := s.LineIndex(); got != 1 {
		t.Errorf("LineIndex() = %d, want 1", got)
	}

	line := s.Line(0)
	if len(line) != 1 {
		t.Fatalf("line 0 has %d points, want 1", len(line))
	}
	if line[0] != (outline.Point{X: 0, Y: 0}) {
		t.Errorf("line 0 point = %+v, want origin", line[0])
	}
	if n := len(s.Line(1)); n != 0 {
		t.Errorf("new line has %d points, want 0", n)
	}
}

func TestDragSamples(t *testing.T) {
	s := newSession()

	const samples = 25
	s.Press(10, 10)
	for i := range samples {
		s.Sample(float64(10+i), float64(20+i))
	}
	s.Release()

	n := len(s.Line(0))
	if n < 1 || n > samples+1 {
		t.Errorf("line has %d points, want between 1 and %d", n, samples+1)
	}
	if n != samples+1 {
		t.Errorf("line has %d points, want %d with ample capacity", n, samples+1)
	}
}

func TestSampleWhileIdleIsIgnored(t *testing.T) {
	s := newSession()

	s.Sample(100, 100)
	if got := s.PointCount(); got != 0 {
		t.Errorf("PointCount() = %d after idle sample, want 0", got)
	}
}

func TestReleaseWhileIdleIsIgnored(t *testing.T) {
	s := newSession()

	s.Release()
	if got := s.LineIndex(); got != 0 {
		t.Errorf("LineIndex() = %d after idle release, want 0", got)
	}
}

func TestPressWhileDrawingExtendsLine(t *testing.T) {
	s := newSession()

	s.Press(0, 0)
	s.Press(800, 600)
	s.Release()

	if got := len(s.Line(0)); got != 2 {
		t.Errorf("line has %d points, want 2", got)
	}
	if got := s.LineIndex(); got != 1 {
		t.Errorf("LineIndex() = %d, want 1", got)
	}
}

func TestLineTruncatesAtCapacity(t *testing.T) {
	s := newSession(outline.WithCapacity(20))
	limit := s.MaxPointsPerLine()
	if limit != 9 {
		t.Fatalf("MaxPointsPerLine() = %d, want 9", limit)
	}

	s.Press(0, 0)
	for i := 0; i < limit-1; i++ {
		if !s.AddPoint(float64(i), float64(i)) {
			t.Fatalf("AddPoint %d dropped before the line was full", i)
		}
	}
	if got := len(s.Line(0)); got != limit {
		t.Fatalf("line has %d points, want %d", got, limit)
	}

	if s.AddPoint(1, 1) {
		t.Error("AddPoint on a full line reported success")
	}
	s.Sample(2, 2)
	if got := len(s.Line(0)); got != limit {
		t.Errorf("line grew to %d points past the limit %d", got, limit)
	}

	// The next line starts empty and accepts points again.
	s.Release()
	s.Press(5, 5)
	if got := len(s.Line(1)); got != 1 {
		t.Errorf("line 1 has %d points, want 1", got)
	}
}

func TestCompleteCycles(t *testing.T) {
	s := newSession()

	const cycles = 12
	for k := range cycles {
		s.Press(float64(k*10), float64(k*5))
		s.Sample(float64(k*10+1), float64(k*5+1))
		s.Release()
	}

	if got := s.LineIndex(); got != cycles {
		t.Fatalf("LineIndex() = %d, want %d", got, cycles)
	}
	for k := range cycles {
		line := s.Line(k)
		if len(line) == 0 {
			t.Errorf("line %d is empty", k)
			continue
		}
		want := s.Normalize(float64(k*10), float64(k*5))
		if line[0] != want {
			t.Errorf("line %d starts at %+v, want %+v", k, line[0], want)
		}
	}

	if got := len(s.Lines()); got != cycles+1 {
		t.Errorf("len(Lines()) = %d, want %d including the empty current line", got, cycles+1)
	}
}

func TestLineIndexPastCapacity(t *testing.T) {
	s := newSession(outline.WithCapacity(4))

	for range 6 {
		s.Press(1, 1)
		s.Release()
	}

	if got := s.LineIndex(); got != 6 {
		t.Errorf("LineIndex() = %d, want 6", got)
	}
	if got := len(s.Lines()); got != 4 {
		t.Errorf("stored %d lines, want capacity 4", got)
	}
	if s.AddPoint(1, 1) {
		t.Error("AddPoint past line capacity reported success")
	}
	if s.Line(5) != nil {
		t.Error("Line past capacity should be nil")
	}
}

func TestMinimumCapacity(t *testing.T) {
	s := newSession(outline.WithCapacity(0))
	if s.MaxPointsPerLine() < 1 {
		t.Errorf("MaxPointsPerLine() = %d, want at least 1", s.MaxPointsPerLine())
	}
}

func TestZeroSizeStaysFinite(t *testing.T) {
	s := outline.NewSession(0, -5)
	s.Press(0, 0)
	s.Release()

	p := s.Line(0)[0]
	if math.IsInf(float64(p.X), 0) || math.IsNaN(float64(p.X)) ||
		math.IsInf(float64(p.Y), 0) || math.IsNaN(float64(p.Y)) {
		t.Fatalf("point = %v, want finite", p)
	}
	if p != (outline.Point{X: -1, Y: 1}) {
		t.Errorf("point = %v, want the top-left corner", p)
	}
}

func TestStateString(t *testing.T) {
	if got := outline.StateIdle.String(); got != "idle" {
		t.Errorf("StateIdle.String() = %q", got)
	}
	if got := outline.StateDrawing.String(); got != "drawing" {
		t.Errorf("StateDrawing.String() = %q", got)
	}
}
