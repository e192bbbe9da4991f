package gui

// Style defines the visual appearance of UI elements.
type Style struct {
	// Text
	TextColor         uint32
	TextDisabledColor uint32

	// Window
	WindowBgColor     uint32
	WindowBorderColor uint32
	TitleBgColor      uint32

	// Button
	ButtonColor        uint32
	ButtonHoveredColor uint32
	ButtonActiveColor  uint32

	// Input
	InputBgColor        uint32
	InputFocusedBgColor uint32
	InputBorderColor    uint32

	// Checkbox
	CheckMarkColor uint32

	// Slider
	SliderTrackColor uint32
	SliderFillColor  uint32
	SliderGrabColor  uint32
	SliderGrabActive uint32

	// Separator
	SeparatorColor uint32

	// Sizing
	FontScale     float32
	CharWidth     float32
	CharHeight    float32
	ItemSpacing   float32 // Vertical gap between items
	WindowPadding float32
	FramePadding  float32
	BorderSize    float32
}

// DefaultStyle returns a dark style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		TextColor:         ColorWhite,
		TextDisabledColor: ColorGray,

		WindowBgColor:     RGBA(24, 24, 28, 240),
		WindowBorderColor: RGBA(80, 80, 80, 255),
		TitleBgColor:      RGBA(40, 40, 48, 255),

		ButtonColor:        RGBA(50, 50, 50, 255),
		ButtonHoveredColor: RGBA(70, 70, 70, 255),
		ButtonActiveColor:  RGBA(90, 90, 90, 255),

		InputBgColor:        RGBA(30, 30, 30, 255),
		InputFocusedBgColor: RGBA(40, 40, 50, 255),
		InputBorderColor:    RGBA(90, 90, 90, 255),

		CheckMarkColor: RGBA(120, 180, 250, 255),

		SliderTrackColor: RGBA(40, 40, 40, 255),
		SliderFillColor:  RGBA(70, 110, 160, 255),
		SliderGrabColor:  RGBA(130, 130, 140, 255),
		SliderGrabActive: RGBA(180, 180, 190, 255),

		SeparatorColor: RGBA(80, 80, 80, 255),

		FontScale:     1.5,
		CharWidth:     8,
		CharHeight:    8,
		ItemSpacing:   6,
		WindowPadding: 10,
		FramePadding:  4,
		BorderSize:    1,
	}
}
