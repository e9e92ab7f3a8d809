package main

import (
	"flag"
	"log"

	"roomba/internal/config"
	"roomba/internal/game"
	"roomba/internal/simulation"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	log.Println("Starting program.")

	// Load configuration
	cfg := config.MustLoadConfig(*configPath)

	// Lay out the grid and spawn entities
	sim, err := simulation.New(cfg)
	if err != nil {
		log.Fatalf("Setup failed: %v", err)
	}
	defer sim.Close()

	// Set window properties from config
	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.Display.TPS > 0 {
		ebiten.SetTPS(cfg.Display.TPS)
	}

	if err := ebiten.RunGame(game.NewGame(sim)); err != nil {
		log.Fatal(err)
	}

	log.Println("Terminating program.")
}
