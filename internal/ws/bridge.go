package ws

import (
	"log"

	"energy_env/internal/env"
)

// Bridge implements env.Recorder and broadcasts environment events to the
// WebSocket hub, so every connected client sees each reset and transition.
type Bridge struct {
	hub *Hub
}

func NewBridge(hub *Hub) *Bridge {
	return &Bridge{hub: hub}
}

func (b *Bridge) OnReset(ev env.ResetEvent) {
	msg, err := NewEnvelope(TypeEnvObs, ObsPayload{
		EpisodeID: ev.EpisodeID,
		Obs:       ev.Obs,
	})
	if err != nil {
		log.Printf("Error marshaling reset observation: %v", err)
		return
	}
	b.hub.Broadcast(msg)
}

func (b *Bridge) OnTransition(tr env.Transition) {
	msg, err := NewEnvelope(TypeEnvTransition, TransitionFromEnv(tr))
	if err != nil {
		log.Printf("Error marshaling transition: %v", err)
		return
	}
	b.hub.Broadcast(msg)
}
