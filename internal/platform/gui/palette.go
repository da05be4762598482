package gui

import (
	"image/color"

	"github.com/vovakirdan/road-rush/internal/core"
)

var (
	asphaltColor   = color.RGBA{0x6d, 0x71, 0x74, 0xff}
	laneColor      = color.RGBA{0xff, 0xff, 0xff, 0xff}
	wheelColor     = color.RGBA{0x22, 0x22, 0x22, 0xff}
	playerWindow   = color.RGBA{0x29, 0x80, 0xb9, 0xff}
	opponentWindow = color.RGBA{0xc0, 0x39, 0x2b, 0xff}
	overlayColor   = color.RGBA{0x00, 0x00, 0x00, 0xb0}
	titleColor     = color.RGBA{0xff, 0xc8, 0x32, 0xff}
	hudColor       = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
)

// carColors maps config colors to desktop colors.
var carColors = map[core.Color]color.RGBA{
	core.ColorRed:           {0xe7, 0x4c, 0x3c, 0xff},
	core.ColorGreen:         {0x2e, 0xcc, 0x71, 0xff},
	core.ColorYellow:        {0xf1, 0xc4, 0x0f, 0xff},
	core.ColorBlue:          {0x34, 0x98, 0xdb, 0xff},
	core.ColorMagenta:       {0x9b, 0x59, 0xb6, 0xff},
	core.ColorCyan:          {0x1a, 0xbc, 0x9c, 0xff},
	core.ColorWhite:         {0xec, 0xf0, 0xf1, 0xff},
	core.ColorBrightRed:     {0xff, 0x55, 0x55, 0xff},
	core.ColorBrightGreen:   {0x55, 0xff, 0x55, 0xff},
	core.ColorBrightYellow:  {0xff, 0xff, 0x55, 0xff},
	core.ColorBrightBlue:    {0x55, 0x55, 0xff, 0xff},
	core.ColorBrightMagenta: {0xff, 0x55, 0xff, 0xff},
	core.ColorBrightCyan:    {0x55, 0xff, 0xff, 0xff},
	core.ColorBrightWhite:   {0xff, 0xff, 0xff, 0xff},
	core.ColorOrange:        {0xf3, 0x9c, 0x12, 0xff},
	core.ColorGray:          {0x95, 0xa5, 0xa6, 0xff},
}

// carColor returns the body color for c. Unset colors fall back to white.
func carColor(c core.Color) color.RGBA {
	if rgba, ok := carColors[c]; ok {
		return rgba
	}
	return carColors[core.ColorWhite]
}

// part is one filled rectangle of a car drawing.
type part struct {
	rect  core.Rect
	color color.RGBA
}

// carParts lays out a car: body, front and rear window bands, and four
// wheels sticking out of the sides.
func carParts(r core.Rect, body, window color.RGBA) []part {
	return []part{
		{r, body},
		{core.NewRect(r.X+5, r.Y+10, r.W-10, 20), window},
		{core.NewRect(r.X+5, r.Y+40, r.W-10, 20), window},
		{core.NewRect(r.X-5, r.Y+10, 5, 20), wheelColor},
		{core.NewRect(r.X-5, r.Y+50, 5, 20), wheelColor},
		{core.NewRect(r.Right(), r.Y+10, 5, 20), wheelColor},
		{core.NewRect(r.Right(), r.Y+50, 5, 20), wheelColor},
	}
}
