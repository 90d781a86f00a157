package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/raycaster/internal/cli"
	"chosenoffset.com/raycaster/internal/game"
	"chosenoffset.com/raycaster/internal/render/term"
)

func main() {
	var flags cli.Flags
	flags.Register(flag.CommandLine)
	logPath := flag.String("log", "", "write logs to this file; without it logs are discarded while the terminal is in use")
	flag.Parse()

	cfg, grid, err := flags.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// The terminal belongs to tcell from here on.
	closeLog, err := cli.RedirectLog(*logPath)
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start tcell: %v\n", err)
		os.Exit(1)
	}

	inputMgr := term.NewInputManager()
	engine := term.NewEngine(screen, inputMgr)
	engine.SetWindowTitle("Raycasting - w/a/s/d to move, q to quit")

	g := game.New(cfg, grid, inputMgr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runErr := engine.RunGame(ctx, g)
	screen.Fini()
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
