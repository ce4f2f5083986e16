package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	cfg "github.com/automoto/codesymphony/config"
	"github.com/automoto/codesymphony/server/core"
	"github.com/automoto/codesymphony/shared/protocol"
)

func parseDifficulty(s string) cfg.BotDifficulty {
	switch strings.ToLower(s) {
	case "easy":
		return cfg.BotDifficultyEasy
	case "hard":
		return cfg.BotDifficultyHard
	default:
		return cfg.BotDifficultyNormal
	}
}

func main() {
	port := flag.Uint("port", 7373, "Server port")
	tickRate := flag.Int("tps", cfg.C.TPS, "Server tick rate (updates per second)")
	seed := flag.Uint64("seed", 1, "Battle seed")
	difficulty := flag.String("difficulty", "normal", "Bot difficulty: easy, normal or hard")
	name := flag.String("name", "Code Symphony Arena", "Server display name")
	version := flag.String("version", "", "Expected spectator version (empty = accept any)")
	directoryURL := flag.String("directory", "", "Battle directory URL (empty = unlisted)")
	address := flag.String("address", "", "Public host:port advertised to the directory")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	server, err := core.NewServer(core.Config{
		Name:       *name,
		Version:    *version,
		TickRate:   *tickRate,
		Seed:       *seed,
		Difficulty: parseDifficulty(*difficulty),
		Logger:     logger,
	})
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	var reg *core.Registration
	if *directoryURL != "" && *address != "" {
		reg = core.NewRegistration(*directoryURL, *name, *address, *version, server, logger)
		reg.Start()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("shutting down server")
		if reg != nil {
			reg.Stop()
		}
		server.Stop()
		os.Exit(0)
	}()

	logger.Info("starting server", "name", *name, "port", *port, "tps", *tickRate,
		"seed", *seed, "difficulty", *difficulty)
	if err := server.Start(*port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
