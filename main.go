package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"pokeview/internal/config"
	"pokeview/internal/logging"
	"pokeview/internal/pokeapi"
	"pokeview/ui/tui"
)

// app is everything the TUI needs, built from one loaded config.
type app struct {
	cfg      config.Config
	provider pokeapi.CreatureProvider
	sprites  pokeapi.SpriteLoader
	sugar    *zap.SugaredLogger
	flush    func()
}

func newApp(cfg config.Config) app {
	sugar, flush, err := logging.New(cfg)
	if err != nil {
		fmt.Printf("Warning: logging disabled: %v\n", err)
		sugar, flush = logging.Nop(), func() {}
	}

	// The client serves both records and sprites
	client := pokeapi.NewClient(cfg.API, sugar)

	a := app{cfg: cfg, provider: client, sugar: sugar, flush: flush}
	if cfg.Sprites.Enabled {
		a.sprites = client
	}
	return a
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	a := newApp(*cfg)
	err = tui.Start(a.provider, a.sprites, a.cfg, a.sugar)
	a.flush()
	if err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
