package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/automoto/codesymphony/server/directory"
)

func main() {
	port := flag.Int("port", 8080, "HTTP listen port")
	ttl := flag.Duration("ttl", 3*directory.HeartbeatEvery, "Listing TTL before expiry")
	flag.Parse()

	reg := directory.NewRegistry(*ttl, nil)
	go reg.Run(directory.HeartbeatEvery)

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("[directory] starting on %s (TTL=%s)", addr, *ttl)
	if err := http.ListenAndServe(addr, directory.NewMux(reg)); err != nil {
		log.Fatalf("[directory] fatal: %v", err)
	}
}
