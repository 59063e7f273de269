package world

import "image/color"

// wallColors maps wall type ids to base colours. Index 0 is unused.
var wallColors = [...]color.RGBA{
	{255, 255, 255, 255},
	{160, 160, 160, 255}, // grey brick
	{64, 80, 224, 255},   // blue stone
	{106, 70, 34, 255},   // wood
	{160, 0, 0, 255},     // red brick
	{24, 148, 148, 255},  // steel
	{160, 160, 90, 255},  // dirty brick
	{160, 0, 160, 255},   // purple
	{220, 162, 128, 255}, // brown marble
	{252, 248, 92, 255},  // stained glass
}

// WallColor returns the base colour for a wall type. Unknown types are white.
func WallColor(wallType int) color.RGBA {
	if wallType <= 0 || wallType >= len(wallColors) {
		return wallColors[0]
	}
	return wallColors[wallType]
}
