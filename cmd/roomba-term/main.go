package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"roomba/internal/config"
	"roomba/internal/simulation"
	"roomba/internal/terminal"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	logPath := flag.String("log", "", "write log output to this file")
	flag.Parse()

	// The screen owns stdout while running
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	sim, err := simulation.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Setup failed: %v\n", err)
		os.Exit(1)
	}
	defer sim.Close()

	frontend, err := terminal.NewFrontend(sim)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer frontend.Close()

	frontend.Run()
}
