package model

type Color string

const (
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorRed    Color = "red"
	ColorYellow Color = "yellow"
	ColorPurple Color = "purple"
	ColorOrange Color = "orange"
)

// DefaultColor is used whenever a color tag is absent or unknown.
const DefaultColor = ColorBlue

var colors = []Color{ColorBlue, ColorGreen, ColorRed, ColorYellow, ColorPurple, ColorOrange}

func Colors() []Color {
	return append([]Color(nil), colors...)
}

func (c Color) Valid() bool {
	for _, v := range colors {
		if c == v {
			return true
		}
	}
	return false
}

// ParseColor never fails: anything outside the palette, including a
// differently cased or padded tag, becomes DefaultColor.
func ParseColor(s string) Color {
	c := Color(s)
	if !c.Valid() {
		return DefaultColor
	}
	return c
}
