package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"energy_env/internal/env"
	"energy_env/internal/trace"
)

// Runs random-policy episodes against the environment through its public
// Reset/Step contract and writes the trajectories to a CSV file. Useful for
// sanity-checking dynamics and reward scales before attaching a learner.
func main() {
	episodes := flag.Int("episodes", 3, "number of episodes to run")
	seed := flag.Int64("seed", 1, "RNG seed for both policy and episode initialization")
	configPath := flag.String("config", "", "optional YAML config file")
	outPath := flag.String("out", "rollout.csv", "trajectory CSV output path")
	flag.Parse()

	cfg := env.DefaultConfig()
	if *configPath != "" {
		loaded, err := env.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	f, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *outPath, err)
	}
	defer f.Close()

	writer := trace.NewCSVWriter(f)

	e := env.New(cfg, rand.New(rand.NewSource(*seed)))
	e.SetRecorder(writer)

	policy := rand.New(rand.NewSource(*seed + 1))

	for ep := 0; ep < *episodes; ep++ {
		e.Reset()

		var ret, energy, comfort, peak, cycle float64
		steps := 0
		for {
			_, reward, done, info, err := e.Step(policy.Intn(env.NumActions))
			if err != nil {
				log.Fatalf("Step failed: %v", err)
			}
			ret += reward
			energy += info.Costs.EnergyCost
			comfort += info.Costs.ComfortCost
			peak += info.Costs.PeakCost
			cycle += info.Costs.BatteryCycleCost
			steps++
			if done {
				break
			}
		}

		fmt.Printf("episode %d (%s): %d steps, return %.3f\n", ep+1, e.EpisodeID(), steps, ret)
		n := float64(steps)
		fmt.Printf("  mean costs: energy %.5f, comfort %.5f, peak %.5f, cycle %.5f\n",
			energy/n, comfort/n, peak/n, cycle/n)
	}

	if err := writer.Flush(); err != nil {
		log.Fatalf("Failed to write %s: %v", *outPath, err)
	}
	log.Printf("Trajectories written to %s", *outPath)
}
