package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/stomp-mp/config"
	"github.com/automoto/stomp-mp/network"
	"github.com/automoto/stomp-mp/scenes"
	"github.com/automoto/stomp-mp/shared/protocol"
	"github.com/yohamta/donburi"
)

const frameRate = 60

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Fatalf("Failed to load environment: %v", err)
	}

	cfg := config.Default()

	address := flag.String("addr", fmt.Sprintf("localhost:%d", cfg.Server.Port), "Server address (host:port)")
	localPlayer := flag.Int("player", -1, "Player index this peer controls, -1 to spectate")
	autoplay := flag.Bool("autoplay", false, "Send scripted input to the server")
	verbose := flag.Bool("sounds", false, "Log every sound played")
	flag.Parse()

	// Register network components for snapshot deserialization
	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register network components: %v", err)
	}

	client := network.NewClient()
	client.Connect(*address)

	scene := scenes.NewObserverScene(cfg, client, *localPlayer, *autoplay)
	if *verbose {
		scene.Play = func(id config.SoundID) { log.Printf("[observer] sound %s", id) }
		scene.Stop = func(entity donburi.Entity) { log.Printf("[observer] sounds cut for entity %v", entity) }
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(time.Second / frameRate)
	defer ticker.Stop()
	report := time.NewTicker(5 * time.Second)
	defer report.Stop()

	last := time.Now()
	for {
		select {
		case <-sigChan:
			log.Println("[observer] shutting down")
			client.Disconnect()
			return
		case now := <-ticker.C:
			scene.Update(now.Sub(last).Seconds())
			last = now

			if client.State() == network.StateError {
				log.Fatalf("[observer] %v", client.LastError())
			}
		case <-report.C:
			st := scene.Stats()
			log.Printf("[observer] %s tick=%d players=%d entities=%d alive=%d effects=%d sounds=%d stops=%d snapshots=%d",
				client.State(), st.Tick, st.Players, st.Entities, st.Alive, st.Effects, st.Sounds, st.Stops, client.SnapshotsReceived())
		}
	}
}
