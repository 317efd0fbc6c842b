//go:build !ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"lifegrid/internal/app"
)

// Without the ebiten tag the program runs headless: it evolves the world up
// to the generation limit and exits with the limit as its status.
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
	if cfg.GenerationLimit == app.NoLimit {
		fmt.Fprintln(os.Stderr, "The GUI build requires the ebiten build tag; headless runs need a generation limit.")
		fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/life` or pass <generation-limit>.")
		os.Exit(2)
	}

	code := app.RunHeadless(session)
	if _, err := session.World().DumpSnapshot(); err != nil {
		log.Fatal(err)
	}
	os.Exit(code)
}
