package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"mad-life/internal/app"
	"mad-life/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	fps := flag.Int("fps", 30, "terminal redraws per second")
	logPath := flag.String("log", "", "write state changes to this file (the terminal is busy drawing)")
	flag.Parse()

	var logger *log.Logger
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("opening log: %v", err)
		}
		defer f.Close()
		logger = log.New(f, "life: ", log.LstdFlags)
		cfg.Verbose = true
	}

	loop, err := cfg.Build(logger)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}
	screen.EnableMouse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = term.New(screen, loop).Run(ctx, *fps)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
