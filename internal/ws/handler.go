package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"energy_env/internal/env"
	"energy_env/internal/trace"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler manages WebSocket connections and routes control messages to the
// environment. The environment itself is single-threaded; envMu serializes
// Reset/Step calls arriving from different connections.
type Handler struct {
	hub     *Hub
	envMu   sync.Mutex
	env     *env.Env
	history *trace.History
}

func NewHandler(hub *Hub, e *env.Env, history *trace.History) *Handler {
	return &Handler{hub: hub, env: e, history: history}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	client := &Client{
		hub:  h.hub,
		conn: conn,
		send: make(chan []byte, 256),
	}

	h.hub.Register(client)
	go client.writePump()

	// Describe the environment, then replay the episode so far so a
	// late-joining client catches up before live events arrive.
	h.sendConfig(client)
	h.sendHistory(client)

	h.readPump(client)
}

func (h *Handler) readPump(c *Client) {
	defer func() {
		h.hub.Unregister(c)
		c.conn.Close()
	}()

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			return
		}

		h.handleMessage(c, msg)
	}
}

func (h *Handler) handleMessage(c *Client, msg []byte) {
	var envelope Envelope
	if err := json.Unmarshal(msg, &envelope); err != nil {
		log.Printf("Invalid message: %v", err)
		return
	}

	switch envelope.Type {
	case TypeEnvReset:
		h.envMu.Lock()
		h.env.Reset()
		h.envMu.Unlock()
		// The bridge recorder broadcasts the initial observation.

	case TypeEnvStep:
		var p StepPayload
		if err := json.Unmarshal(envelope.Payload, &p); err != nil {
			log.Printf("Invalid step payload: %v", err)
			return
		}
		h.envMu.Lock()
		_, _, _, _, err := h.env.Step(p.Action)
		h.envMu.Unlock()
		if err != nil {
			h.sendError(c, err.Error())
		}

	default:
		log.Printf("Unknown message type: %s", envelope.Type)
	}
}

func (h *Handler) sendConfig(c *Client) {
	msg, err := NewEnvelope(TypeEnvConfig, ConfigPayload{
		NumActions:      env.NumActions,
		ObservationSize: env.ObservationSize,
		Config:          h.env.Config(),
	})
	if err != nil {
		log.Printf("Error marshaling config: %v", err)
		return
	}
	c.Send(msg)
}

func (h *Handler) sendHistory(c *Client) {
	reset, transitions, ok := h.history.Snapshot()
	if !ok {
		return
	}
	if msg, err := NewEnvelope(TypeEnvObs, ObsPayload{EpisodeID: reset.EpisodeID, Obs: reset.Obs}); err == nil {
		c.Send(msg)
	}
	for _, tr := range transitions {
		msg, err := NewEnvelope(TypeEnvTransition, TransitionFromEnv(tr))
		if err != nil {
			log.Printf("Error marshaling history transition: %v", err)
			return
		}
		c.Send(msg)
	}
}

func (h *Handler) sendError(c *Client, message string) {
	msg, err := NewEnvelope(TypeEnvError, ErrorPayload{Message: message})
	if err != nil {
		log.Printf("Error marshaling error payload: %v", err)
		return
	}
	c.Send(msg)
}
