package core

import "fmt"

// Color is a foreground color for a screen cell.
// It holds either an ANSI 256-color index ("1", "208") or a true-color
// hex value ("#a0c8ff"); the platform layer passes it straight to lipgloss.
type Color string

// Predefined colors for HUD and frame elements.
const (
	ColorDefault      Color = ""
	ColorYellow       Color = "3"
	ColorCyan         Color = "6"
	ColorWhite        Color = "7"
	ColorBrightYellow Color = "11"
	ColorBrightWhite  Color = "15"
	ColorGray         Color = "245"
)

// RGB is a 24-bit color, used for piece and locked-cell colors.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Color converts the RGB value to a true-color screen Color.
func (c RGB) Color() Color {
	return Color(c.Hex())
}
