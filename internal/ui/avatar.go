package ui

import (
	"image"
	"image/color"
	"strings"
)

// ramp runs from dark to light.
const ramp = " .:-=+*#%@"

// AvatarArt renders img as width columns of text. Terminal cells are roughly
// twice as tall as they are wide, so each row samples two pixel rows' worth.
func AvatarArt(img image.Image, width int) string {
	if img == nil || width <= 0 {
		return ""
	}
	b := img.Bounds()
	if b.Empty() {
		return ""
	}
	if width > b.Dx() {
		width = b.Dx()
	}
	cell := float64(b.Dx()) / float64(width)
	height := int(float64(b.Dy()) / (cell * 2))
	if height < 1 {
		height = 1
	}

	var sb strings.Builder
	for row := 0; row < height; row++ {
		y := b.Min.Y + int((float64(row)+0.5)*cell*2)
		if y >= b.Max.Y {
			y = b.Max.Y - 1
		}
		for col := 0; col < width; col++ {
			x := b.Min.X + int((float64(col)+0.5)*cell)
			if x >= b.Max.X {
				x = b.Max.X - 1
			}
			sb.WriteByte(shade(img.At(x, y)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func shade(c color.Color) byte {
	g := color.GrayModel.Convert(c).(color.Gray)
	_, _, _, a := c.RGBA()
	// Transparent pixels render as background.
	if a == 0 {
		return ramp[0]
	}
	return ramp[int(g.Y)*(len(ramp)-1)/255]
}
