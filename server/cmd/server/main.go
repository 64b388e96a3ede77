package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/doomerang-actions/config"
	"github.com/automoto/doomerang-actions/server/core"
	"github.com/automoto/doomerang-actions/shared/protocol"
)

func main() {
	env, err := config.LoadServerConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	port := flag.Uint("port", uint(env.Port), "Server port")
	tickRate := flag.Int("tickrate", env.TickRate, "Server tick rate (updates per second)")
	workers := flag.Int("workers", env.Workers, "Behavior workers per tick (0 = GOMAXPROCS)")
	combosDir := flag.String("combos", env.CombosDir, "Directory of combo tables (empty = embedded)")
	assetsDir := flag.String("assets", env.AssetsDir, "Assets directory holding arenas/ (empty = embedded)")
	arena := flag.String("arena", env.Arena, "Arena name")
	watch := flag.Bool("watch", env.Watch, "Reload combo tables when they change on disk")
	bots := flag.Int("bots", env.Bots, "Number of bots to spawn")
	botDifficulty := flag.String("bot-difficulty", env.BotDifficulty, "Bot difficulty (easy, normal, hard)")
	flag.Parse()

	if *tickRate <= 0 {
		log.Fatalf("Tick rate must be positive, got %d", *tickRate)
	}
	config.Sim.TickRate = *tickRate
	config.Sim.Workers = *workers

	combos, err := config.NewComboRegistry(config.CombosFS(*combosDir))
	if err != nil {
		var cfgErr *config.ConfigurationError
		if errors.As(err, &cfgErr) {
			log.Fatalf("Invalid combo table %s: %v", cfgErr.Combo, err)
		}
		log.Fatalf("Failed to load combo tables: %v", err)
	}
	if _, ok := combos.Lookup(config.Combat.DefaultCombo); !ok {
		log.Fatalf("Default combo %q not found in %v", config.Combat.DefaultCombo, combos.Names())
	}
	log.Printf("[combos] Loaded %v", combos.Names())

	if *watch && (*combosDir == "" || !config.IsComboDir(*combosDir)) {
		log.Printf("[combos] Not watching: embedded tables are in use")
	}
	if *watch && *combosDir != "" && config.IsComboDir(*combosDir) {
		watcher, err := config.NewWatcher(*combosDir)
		if err != nil {
			log.Fatalf("Failed to watch %s: %v", *combosDir, err)
		}
		defer watcher.Close()
		go config.WatchRegistry(watcher, combos)
		log.Printf("[combos] Watching %s", *combosDir)
	}

	arenaName, arenaData, err := core.LoadArena(*assetsDir, *arena)
	if err != nil {
		log.Fatalf("Failed to load arena: %v", err)
	}

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	server := core.NewServer(*tickRate, combos, arenaName, arenaData)
	server.SetStatsInterval(env.StatsLog)

	if *bots > 0 {
		difficulty, ok := config.ParseBotDifficulty(*botDifficulty)
		if !ok {
			log.Fatalf("Unknown bot difficulty %q", *botDifficulty)
		}
		if err := server.SpawnBots(*bots, difficulty); err != nil {
			log.Fatalf("Failed to spawn bots: %v", err)
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		server.Stop()
		os.Exit(0)
	}()

	log.Printf("Starting Doomerang action server on port %d (tick rate: %d/s, arena: %s)",
		*port, *tickRate, arenaName)
	if err := server.Start(*port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
