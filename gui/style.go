package gui

// Style defines the visual appearance of UI elements.
type Style struct {
	TextColor uint32

	PanelColor           uint32
	PanelBorderColor     uint32
	PanelHeaderBgColor   uint32 // 0 = use FrameBgColor
	PanelHeaderTextColor uint32 // 0 = use TextColor

	FrameBgColor     uint32 // Widget frame background (color swatches)
	InputBorderColor uint32

	SliderTrackColor  uint32
	SliderFillColor   uint32
	SliderGrabColor   uint32
	SliderGrabHovered uint32
	SliderGrabActive  uint32

	FontScale    float32
	ItemSpacing  float32 // Default gap between items
	PanelPadding float32
	BorderSize   float32
}

// DefaultStyle returns a neutral gray style.
func DefaultStyle() Style {
	return Style{
		TextColor: ColorWhite,

		PanelColor:           RGBA(20, 20, 20, 200),
		PanelBorderColor:     RGBA(80, 80, 80, 255),
		PanelHeaderBgColor:   RGBA(40, 40, 45, 255),
		PanelHeaderTextColor: 0,

		FrameBgColor:     RGBA(30, 30, 30, 255),
		InputBorderColor: RGBA(100, 100, 100, 255),

		SliderTrackColor:  RGBA(40, 40, 40, 255),
		SliderFillColor:   RGBA(50, 100, 150, 255),
		SliderGrabColor:   RGBA(100, 100, 100, 255),
		SliderGrabHovered: RGBA(120, 120, 120, 255),
		SliderGrabActive:  RGBA(140, 140, 140, 255),

		FontScale:    1.0,
		ItemSpacing:  4,
		PanelPadding: 8,
		BorderSize:   1,
	}
}

// DarkStyle returns the blue-accented dark theme used by the sketchpad
// overlay.
func DarkStyle() Style {
	s := DefaultStyle()
	s.PanelColor = RGBA(15, 15, 15, 240)
	s.PanelBorderColor = RGBA(110, 110, 128, 128)
	s.PanelHeaderBgColor = RGBA(41, 74, 122, 255)
	s.FrameBgColor = RGBA(41, 74, 122, 138)
	s.InputBorderColor = RGBA(66, 150, 250, 255)
	s.SliderTrackColor = RGBA(41, 74, 122, 138)
	s.SliderFillColor = RGBA(66, 150, 250, 102)
	s.SliderGrabColor = RGBA(61, 133, 224, 255)
	s.SliderGrabHovered = RGBA(66, 150, 250, 255)
	s.SliderGrabActive = RGBA(110, 180, 255, 255)
	s.ItemSpacing = 6
	return s
}

// lineHeight returns the height of one line of built-in font text.
func (s Style) lineHeight() float32 {
	return GlyphSize * s.FontScale
}
