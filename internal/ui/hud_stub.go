//go:build !ebiten

package ui

import "diff-life/internal/life"

// HUD is a placeholder for the headless build.
type HUD struct{}

// NewHUD returns an inert HUD.
func NewHUD() *HUD { return &HUD{} }

// SetStats is a no-op placeholder.
func (h *HUD) SetStats(life.TickStats, bool) {}

// Draw is a no-op placeholder.
func (h *HUD) Draw(any) {}
