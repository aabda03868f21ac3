package render

import (
	"image"
	"image/color"
)

// fillRGBA copies row-major cell colors into buf as RGBA bytes.
func fillRGBA(buf []byte, cells []color.RGBA) {
	for i, c := range cells {
		base := i * 4
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = c.A
	}
}

// Frame renders a w×h row-major cell snapshot into an image where every cell
// covers a scale×scale block. It returns nil when cells does not match w*h.
func Frame(cells []color.RGBA, w, h, scale int) *image.RGBA {
	if w <= 0 || h <= 0 || len(cells) != w*h {
		return nil
	}
	if scale <= 0 {
		scale = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	if scale == 1 {
		fillRGBA(img.Pix, cells)
		return img
	}
	for y := 0; y < h; y++ {
		for s := 0; s < scale; s++ {
			row := img.Pix[(y*scale+s)*img.Stride:]
			for x := 0; x < w; x++ {
				c := cells[y*w+x]
				for k := 0; k < scale; k++ {
					base := (x*scale + k) * 4
					row[base+0] = c.R
					row[base+1] = c.G
					row[base+2] = c.B
					row[base+3] = c.A
				}
			}
		}
	}
	return img
}
