package console

import "github.com/fatih/color"

// Color identifies one of the closed set of console text colors. Bright
// variants carry the ANSI intensity bit; Dark* variants are the plain hues.
// Gray is the neutral default every print resets to.
type Color uint8

// Console text colors
const (
	Gray Color = iota
	Black
	White
	Red
	Green
	Blue
	Cyan
	Magenta
	Yellow
	DarkGray
	DarkRed
	DarkGreen
	DarkBlue
	DarkCyan
	DarkMagenta
	DarkYellow

	colorCount // sentinel, keep last
)

// colorAttributes maps each Color to its ANSI SGR attributes.
var colorAttributes = [colorCount][]color.Attribute{
	Gray:        {color.FgWhite},
	Black:       {color.FgBlack},
	White:       {color.FgHiWhite},
	Red:         {color.FgHiRed},
	Green:       {color.FgHiGreen},
	Blue:        {color.FgHiBlue},
	Cyan:        {color.FgHiCyan},
	Magenta:     {color.FgHiMagenta},
	Yellow:      {color.FgHiYellow},
	DarkGray:    {color.FgHiBlack},
	DarkRed:     {color.FgRed},
	DarkGreen:   {color.FgGreen},
	DarkBlue:    {color.FgBlue},
	DarkCyan:    {color.FgCyan},
	DarkMagenta: {color.FgMagenta},
	DarkYellow:  {color.FgYellow},
}

var colorNames = [colorCount]string{
	Gray:        "gray",
	Black:       "black",
	White:       "white",
	Red:         "red",
	Green:       "green",
	Blue:        "blue",
	Cyan:        "cyan",
	Magenta:     "magenta",
	Yellow:      "yellow",
	DarkGray:    "dark_gray",
	DarkRed:     "dark_red",
	DarkGreen:   "dark_green",
	DarkBlue:    "dark_blue",
	DarkCyan:    "dark_cyan",
	DarkMagenta: "dark_magenta",
	DarkYellow:  "dark_yellow",
}

// String returns the lowercase name of the color
func (c Color) String() string {
	if c >= colorCount {
		return "unknown"
	}
	return colorNames[c]
}
