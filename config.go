package outline

// Window defaults.
const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "Outline"
)

// Color is an RGB color with components in [0, 1].
type Color [3]float32

// Settings holds the values edited by the overlay panel.
type Settings struct {
	Background Color   // Clear color
	Foreground Color   // Line color, shared by every line
	Scale      float32 // Cosmetic; nothing reads it yet
}

// DefaultSettings returns the initial panel values.
func DefaultSettings() Settings {
	return Settings{
		Background: Color{0.07, 0.07, 0.07},
		Foreground: Color{0.82, 0.0, 0.23},
		Scale:      0.3,
	}
}

// Config describes the window and session of a sketchpad run.
// Nothing is read from flags, the environment or disk.
type Config struct {
	Width    int
	Height   int
	Title    string
	Capacity int
	Settings Settings

	// Verbose enables debug logging for the session, the renderers and
	// the overlay.
	Verbose bool
}

// DefaultConfig returns the fixed 800x600 configuration.
func DefaultConfig() Config {
	return Config{
		Width:    WindowWidth,
		Height:   WindowHeight,
		Title:    WindowTitle,
		Capacity: DefaultCapacity,
		Settings: DefaultSettings(),
	}
}
