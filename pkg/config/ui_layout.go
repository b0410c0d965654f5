package config

// Logical screen size. Ebitengine scales it to the window.
const (
	GameWindowWidth  = 960
	GameWindowHeight = 540
)

// Menu button layout, centered horizontally on the screen.
const (
	MenuButtonWidth   = 240
	MenuButtonHeight  = 44
	MenuButtonSpacing = 14
	MenuFirstButtonY  = 220
)

// Settings panel layout. The panel is centered; rows are laid out from the top.
const (
	SettingsPanelWidth  = 420
	SettingsPanelHeight = 280
	SettingsRowHeight   = 40
	SettingsRowSpacing  = 22
	SettingsPadding     = 30
)

// SliderStep is the per-input change applied to a focused volume slider.
const SliderStep = 0.1

// Overlay colors (RGBA).
var (
	OverlayDimColor     = [4]uint8{0, 0, 0, 150}
	PanelColor          = [4]uint8{24, 32, 40, 230}
	ButtonIdleColor     = [4]uint8{52, 64, 78, 255}
	ButtonFocusColor    = [4]uint8{214, 170, 72, 255}
	ButtonDisabledColor = [4]uint8{40, 44, 50, 160}
	SliderFillColor     = [4]uint8{120, 190, 160, 255}
	TextColor           = [4]uint8{240, 240, 232, 255}
)

// Island scene tuning.
const (
	PlayerSize  = 24.0
	PlayerSpeed = 180.0 // world units per second
	// TriggerDebugAlpha is the fill alpha used to show uncollected trigger volumes.
	TriggerDebugAlpha = 90
)
