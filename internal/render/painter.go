//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps one RGBA image in sync with the grid, uploading pixels
// only on ticks where something changed.
type GridPainter struct {
	enc Encoder
	img *ebiten.Image
	buf []byte
}

// NewGridPainter allocates a painter for a side x side grid, primed with an
// all-dead frame.
func NewGridPainter(side int) *GridPainter {
	gp := &GridPainter{enc: NewEncoder(), buf: make([]byte, 4*side*side)}
	gp.img = ebiten.NewImage(side, side)
	gp.enc.Fill(make([]bool, side*side), gp.buf)
	gp.img.ReplacePixels(gp.buf)
	return gp
}

// Apply encodes the masked cells into the cached frame and returns the
// touched count. The GPU upload is skipped when nothing changed.
func (gp *GridPainter) Apply(cells, mask []bool) int {
	touched := gp.enc.Encode(cells, mask, gp.buf)
	if touched > 0 {
		gp.img.ReplacePixels(gp.buf)
	}
	return touched
}

// Draw blits the cached frame to dst at the given integer magnification.
func (gp *GridPainter) Draw(dst *ebiten.Image, scale int) {
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
