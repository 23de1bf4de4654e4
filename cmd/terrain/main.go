package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/OCharnyshevich/diamond-terrain/internal/server"
	"github.com/OCharnyshevich/diamond-terrain/internal/server/config"
	"github.com/OCharnyshevich/diamond-terrain/internal/server/storage"
)

func main() {
	cfg := config.DefaultConfig()

	var (
		seed    int64
		source  = flag.String("config", "", "config file path or go-getter URL")
		workDir = flag.String("work-dir", filepath.Join(os.TempDir(), "diamond-terrain"), "directory for fetched files")
	)
	flag.Int64Var(&seed, "seed", 0, "generation seed (random if unset)")
	flag.IntVar(&cfg.ChunkWidth, "chunk-width", cfg.ChunkWidth, "tiles per chunk side, power of two")
	flag.IntVar(&cfg.BaseGridDistance, "base-grid-distance", cfg.BaseGridDistance, "tiles between anchor points, power of two")
	flag.Float64Var(&cfg.BaseGridMaxValue, "max-value", cfg.BaseGridMaxValue, "amplitude of anchor values")
	flag.IntVar(&cfg.Radius, "radius", cfg.Radius, "pre-generation radius in chunks")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	flag.Parse()

	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	if explicit["seed"] {
		cfg.Seed = &seed
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *source != "" {
		store, err := storage.New(*workDir, log)
		if err != nil {
			log.Error("create storage", "error", err)
			os.Exit(1)
		}
		fromFile, err := store.LoadConfig(ctx, *source)
		if err != nil {
			log.Error("load config", "error", err)
			os.Exit(1)
		}
		config.Merge(cfg, fromFile, explicit)
	}

	level, err := cfg.Level()
	if err != nil {
		log.Error("invalid config", "error", err)
		os.Exit(1)
	}
	log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	if s, random := cfg.ResolveSeed(); random {
		log.Info("no seed configured, using a random one", "seed", s)
	}

	srv, err := server.New(cfg, log)
	if err != nil {
		log.Error("invalid config", "error", err)
		os.Exit(1)
	}
	if err := srv.Start(ctx); err != nil {
		log.Error("generation error", "error", err)
		os.Exit(1)
	}
}
