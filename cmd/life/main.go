//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"diff-life/internal/app"
	"diff-life/internal/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.File != "" {
		if err := cfg.LoadFile(cfg.File); err != nil {
			log.Fatal(err)
		}
	}
	if cfg.Side <= 0 {
		log.Fatalf("invalid grid side %d", cfg.Side)
	}

	sess := life.NewSession(cfg.Side, cfg.Seed)
	sess.Randomize()
	sess.SetRunning(true)

	game := app.New(sess, cfg.Scale, cfg.TPS)
	px := cfg.Side * cfg.Scale

	ebiten.SetWindowTitle("diff-life")
	ebiten.SetWindowSize(px, px)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
