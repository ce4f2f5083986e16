package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/codesymphony/shared/protocol"
	"github.com/automoto/codesymphony/spectator"
)

func main() {
	address := flag.String("address", "localhost:7373", "Battle server host:port")
	name := flag.String("name", "watcher", "Name shown in the server logs")
	version := flag.String("version", "", "Client version sent to the server")
	every := flag.Duration("every", time.Second, "How often to print the battle")
	flag.Parse()

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	client := spectator.NewClient()
	client.Connect(*address, *version, *name)
	defer client.Disconnect()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(*every)
	defer ticker.Stop()

	for {
		select {
		case <-sigChan:
			return
		case <-ticker.C:
			if client.State() == spectator.StateError {
				log.Printf("[spectator] %v", client.LastError())
				return
			}
			if view, ok := client.LatestView(); ok {
				log.Println(spectator.Summary(view))
			}
		}
	}
}
