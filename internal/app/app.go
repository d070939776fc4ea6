//go:build ebiten

package app

import (
	"diff-life/internal/core"
	"diff-life/internal/life"
	"diff-life/internal/render"
	"diff-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a life session to the ebiten.Game interface. Ebiten runs the
// host loop at its own frame rate; the session ticks on the FixedStep
// cadence inside Update, so input stays responsive at any simulation speed.
type Game struct {
	sess    *life.Session
	painter *render.GridPainter
	hud     *ui.HUD
	fixed   *core.FixedStep

	scale int
}

// New constructs a Game around the provided session.
func New(sess *life.Session, scale, tps int) *Game {
	if scale <= 0 {
		scale = 1
	}
	return &Game{
		sess:    sess,
		painter: render.NewGridPainter(sess.Side()),
		hud:     ui.NewHUD(),
		fixed:   core.NewFixedStep(tps),
		scale:   scale,
	}
}

// Update handles input and advances the session on its fixed cadence.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sess.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.sess.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sess.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.sess.Randomize()
	}
	g.handlePaint()

	if g.fixed.ShouldStep() {
		stats := g.sess.Tick()
		g.painter.Apply(g.sess.Cells(), g.sess.Changed())
		g.hud.SetStats(stats, g.sess.Running())
	}
	return nil
}

// handlePaint maps the cursor into grid coordinates and forces the cell
// under it: left button draws, right button erases.
func (g *Game) handlePaint() {
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !left && !right {
		return
	}
	mx, my := ebiten.CursorPosition()
	x := mx / g.scale
	y := my / g.scale
	side := g.sess.Side()
	if x < 0 || x >= side || y < 0 || y >= side {
		return
	}
	g.sess.Paint(y*side+x, !right)
}

// Draw renders the cached grid frame and the telemetry readout.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.scale)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	px := g.sess.Side() * g.scale
	return px, px
}
