package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"

	"energy_env/internal/env"
	"energy_env/internal/trace"
	"energy_env/internal/ws"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	configPath := flag.String("config", "", "optional YAML config file (defaults used when empty)")
	seed := flag.Int64("seed", 0, "RNG seed for episode initialization (0 = random)")
	flag.Parse()

	cfg := env.DefaultConfig()
	if *configPath != "" {
		loaded, err := env.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
		log.Printf("Config loaded from %s", *configPath)
	}

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewSource(*seed))
		log.Printf("Episode initialization seeded with %d", *seed)
	}

	// Set up WebSocket hub and environment
	hub := ws.NewHub()
	bridge := ws.NewBridge(hub)
	history := trace.NewHistory()

	e := env.New(cfg, rng)
	e.SetRecorder(env.MultiRecorder{history, bridge})

	handler := ws.NewHandler(hub, e, history)

	// Routes
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
	mux.Handle("/ws", handler)

	log.Printf("Environment ready: %d actions, %d steps per episode", env.NumActions, cfg.EpisodeSteps)
	log.Printf("Starting server on %s", *addr)
	if err := http.ListenAndServe(*addr, mux); err != nil {
		log.Fatal(err)
	}
}
