//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"lifegrid/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, session, err := app.Setup(os.Args[0], os.Args[1:], log.Default())
	if errors.Is(err, app.ErrUsage) {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		app.PrintUsage(os.Stderr, os.Args[0])
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(session, cfg.Scale, log.Default())
	size := session.World().Size()

	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	_, code := session.Done()
	os.Exit(code)
}
