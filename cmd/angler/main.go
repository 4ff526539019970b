package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mossreef/angler/internal/config"
	"github.com/mossreef/angler/internal/fish"
	"github.com/mossreef/angler/internal/game"
	"github.com/mossreef/angler/internal/store"
	"github.com/mossreef/angler/internal/ui"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatal("failed to load config:", err)
	}

	// the terminal belongs to the game; logs go to a file
	logFile, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.Fatal("failed to open log file:", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	tuning, err := config.Load(cfg.TuningPath)
	if err != nil {
		log.Fatal(err)
	}

	reg, err := fish.LoadRegistryFromJSON(cfg.ZonesJson)
	if err != nil {
		log.Fatal(err)
	}

	st, err := store.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal(err)
	}
	defer st.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, err := game.New(ctx, reg, st, tuning, nil)
	if err != nil {
		log.Fatal(err)
	}

	app, err := ui.NewApp(g,
		time.Duration(cfg.BiteWaitMin)*time.Second,
		time.Duration(cfg.BiteWaitMax)*time.Second,
	)
	if err != nil {
		log.Fatal(err)
	}

	log.Println("session started")
	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
	log.Println("session ended")
}
