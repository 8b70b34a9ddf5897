package outline

// Point is a position in normalized device coordinates.
// The layout is two packed float32 values so a []Point can be uploaded
// directly as a vertex buffer with two floats per vertex.
type Point struct {
	X, Y float32
}

// Normalize converts window pixel coordinates to normalized device
// coordinates for a window of the given size. The window origin is the
// top-left corner; NDC has +Y pointing up.
func Normalize(x, y float64, width, height int) Point {
	return Point{
		X: 2*float32(x)/float32(width) - 1,
		Y: 1 - 2*float32(y)/float32(height),
	}
}

// InNDC reports whether p lies within the [-1, 1] square.
func (p Point) InNDC() bool {
	return p.X >= -1 && p.X <= 1 && p.Y >= -1 && p.Y <= 1
}
