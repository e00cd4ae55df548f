//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"life-ca/internal/app"
	"life-ca/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	seeder, err := cfg.Seeder()
	if err != nil {
		log.Fatal(err)
	}

	uni := life.NewSeeded(cfg.Width, cfg.Height, seeder)
	game := app.New(uni, cfg.Scale, cfg.Seed)

	ebiten.SetWindowTitle("life-ca")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(uni.Width()*cfg.Scale, uni.Height()*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
