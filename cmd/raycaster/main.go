package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"chosenoffset.com/raycaster/internal/cli"
	"chosenoffset.com/raycaster/internal/game"
	ebitenrender "chosenoffset.com/raycaster/internal/render/ebiten"
)

func main() {
	var flags cli.Flags
	flags.Register(flag.CommandLine)
	flag.Parse()

	cfg, grid, err := flags.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize the renderer backend (ebiten)
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	g := game.New(cfg, grid, inputMgr)

	// Set up the window
	engine.SetWindowSize(cfg.Viewport.Width, cfg.Viewport.Height)
	engine.SetWindowTitle("Raycasting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Println("Starting game...")
	if err := engine.RunGame(ctx, g); err != nil {
		log.Fatal(err)
	}
}
