//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"diff-life/internal/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD draws the per-tick telemetry readout in the top-left corner.
type HUD struct {
	stats   life.TickStats
	running bool
}

// NewHUD constructs an empty HUD; it shows zeros until the first tick.
func NewHUD() *HUD { return &HUD{} }

// SetStats records the latest tick telemetry for display.
func (h *HUD) SetStats(stats life.TickStats, running bool) {
	h.stats = stats
	h.running = running
}

// Draw paints the telemetry lines onto the screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	state := "running"
	if !h.running {
		state = "paused"
	}
	lines := []string{
		fmt.Sprintf("gen %d (%s)  %.1f tps", h.stats.Generation, state, h.stats.TPS),
		fmt.Sprintf("changed %d/%d (%.1f%%)  pop %d",
			h.stats.Changed, h.stats.Total, h.stats.Ratio, h.stats.Population),
	}
	face := basicfont.Face7x13
	for i, line := range lines {
		y := 14 + i*14
		// Shadow keeps the text readable over the white dead cells.
		text.Draw(screen, line, face, 7, y+1, color.Black)
		text.Draw(screen, line, face, 6, y, color.RGBA{R: 220, G: 60, B: 60, A: 255})
	}
}
