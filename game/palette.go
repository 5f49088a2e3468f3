package game

import "image/color"

// Palette is the hull colouring enemies use on a level
type Palette struct {
	Pod    color.RGBA
	Panel  color.RGBA
	Stroke color.RGBA
	Accent color.RGBA
}

var levelPalettes = [...]Palette{
	{Pod: color.RGBA{0x33, 0x33, 0x33, 0xff}, Panel: color.RGBA{0x22, 0x22, 0x22, 0xff}, Stroke: color.RGBA{0x44, 0x44, 0x44, 0xff}, Accent: color.RGBA{0x55, 0x55, 0x55, 0xff}},
	{Pod: color.RGBA{0x33, 0x44, 0x55, 0xff}, Panel: color.RGBA{0x22, 0x33, 0x44, 0xff}, Stroke: color.RGBA{0x44, 0x55, 0x66, 0xff}, Accent: color.RGBA{0x55, 0x66, 0x77, 0xff}},
	{Pod: color.RGBA{0x44, 0x33, 0x55, 0xff}, Panel: color.RGBA{0x33, 0x22, 0x44, 0xff}, Stroke: color.RGBA{0x55, 0x44, 0x66, 0xff}, Accent: color.RGBA{0x66, 0x55, 0x77, 0xff}},
	{Pod: color.RGBA{0x55, 0x33, 0x33, 0xff}, Panel: color.RGBA{0x44, 0x22, 0x22, 0xff}, Stroke: color.RGBA{0x66, 0x44, 0x44, 0xff}, Accent: color.RGBA{0x77, 0x55, 0x55, 0xff}},
	{Pod: color.RGBA{0x55, 0x22, 0x22, 0xff}, Panel: color.RGBA{0x33, 0x11, 0x11, 0xff}, Stroke: color.RGBA{0x77, 0x33, 0x33, 0xff}, Accent: color.RGBA{0x99, 0x44, 0x44, 0xff}},
	{Pod: color.RGBA{0x22, 0x55, 0x55, 0xff}, Panel: color.RGBA{0x11, 0x33, 0x33, 0xff}, Stroke: color.RGBA{0x33, 0x77, 0x77, 0xff}, Accent: color.RGBA{0x44, 0x99, 0x99, 0xff}},
	{Pod: color.RGBA{0x33, 0x55, 0x22, 0xff}, Panel: color.RGBA{0x22, 0x33, 0x11, 0xff}, Stroke: color.RGBA{0x55, 0x77, 0x33, 0xff}, Accent: color.RGBA{0x77, 0x99, 0x44, 0xff}},
	{Pod: color.RGBA{0x55, 0x55, 0x22, 0xff}, Panel: color.RGBA{0x33, 0x33, 0x11, 0xff}, Stroke: color.RGBA{0x77, 0x77, 0x33, 0xff}, Accent: color.RGBA{0x99, 0x99, 0x44, 0xff}},
	{Pod: color.RGBA{0x77, 0x22, 0x22, 0xff}, Panel: color.RGBA{0x55, 0x11, 0x11, 0xff}, Stroke: color.RGBA{0x99, 0x44, 0x44, 0xff}, Accent: color.RGBA{0xbb, 0x66, 0x66, 0xff}},
	{Pod: color.RGBA{0x66, 0x11, 0x33, 0xff}, Panel: color.RGBA{0x44, 0x00, 0x11, 0xff}, Stroke: color.RGBA{0x88, 0x22, 0x44, 0xff}, Accent: color.RGBA{0xaa, 0x33, 0x66, 0xff}},
}

// LevelPalette returns the enemy colours for level, clamped to 1..10
func LevelPalette(level int) Palette {
	if level < 1 {
		level = 1
	}
	if level > len(levelPalettes) {
		level = len(levelPalettes)
	}
	return levelPalettes[level-1]
}
