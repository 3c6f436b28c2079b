package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/stomp-mp/config"
	"github.com/automoto/stomp-mp/server/core"
	"github.com/automoto/stomp-mp/shared/protocol"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Fatalf("Failed to load environment: %v", err)
	}

	cfg := config.Default()

	port := flag.Uint("port", cfg.Server.Port, "Server port")
	tickRate := flag.Int("tickrate", cfg.Server.TickRate, "Server tick rate (updates per second)")
	name := flag.String("name", cfg.Server.Name, "Server display name")
	levelPath := flag.String("level", cfg.Server.LevelPath, "TMX level to host")
	flag.Parse()

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	levelName, level, err := core.LoadLevel(*levelPath)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	server, err := core.NewServer(cfg, levelName, level, *name, *tickRate)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		server.Stop()
		os.Exit(0)
	}()

	log.Printf("Starting %q on port %d (tick rate: %d/s, level: %s)", *name, *port, *tickRate, levelName)
	if err := server.Start(*port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
