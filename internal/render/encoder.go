package render

import "image/color"

// Encoder converts changed cells into packed RGBA pixels, one 4-byte group
// per cell in row-major order.
type Encoder struct {
	Alive color.RGBA
	Dead  color.RGBA
}

// NewEncoder returns an encoder with the default palette: black live cells
// on a white background, fully opaque.
func NewEncoder() Encoder {
	return Encoder{
		Alive: color.RGBA{A: 0xff},
		Dead:  color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
}

// Encode writes an RGBA group for every masked cell and returns how many
// cells were touched. Pixels of unmasked cells are left as they were, so the
// buffer must persist between calls.
func (e Encoder) Encode(cells, mask []bool, pix []byte) int {
	if len(cells) != len(mask) || len(pix) != 4*len(cells) {
		panic("render: cell, mask and pixel buffers disagree on size")
	}
	touched := 0
	for i, changed := range mask {
		if !changed {
			continue
		}
		c := e.Dead
		if cells[i] {
			c = e.Alive
		}
		base := i * 4
		pix[base+0] = c.R
		pix[base+1] = c.G
		pix[base+2] = c.B
		pix[base+3] = c.A
		touched++
	}
	return touched
}

// Fill stamps every cell regardless of any mask, priming a fresh pixel
// buffer with a complete frame.
func (e Encoder) Fill(cells []bool, pix []byte) {
	if len(pix) != 4*len(cells) {
		panic("render: cell and pixel buffers disagree on size")
	}
	for i, alive := range cells {
		c := e.Dead
		if alive {
			c = e.Alive
		}
		base := i * 4
		pix[base+0] = c.R
		pix[base+1] = c.G
		pix[base+2] = c.B
		pix[base+3] = c.A
	}
}
