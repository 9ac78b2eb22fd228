package ws

import (
	"encoding/json"

	"energy_env/internal/env"
)

// Envelope wraps all WebSocket messages with a type discriminator.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Message type constants
const (
	// Client -> Server
	TypeEnvReset = "env:reset"
	TypeEnvStep  = "env:step"

	// Server -> Client
	TypeEnvConfig     = "env:config"
	TypeEnvObs        = "env:obs"
	TypeEnvTransition = "env:transition"
	TypeEnvError      = "env:error"
)

// Client -> Server payloads

type StepPayload struct {
	Action int `json:"action"`
}

// Server -> Client payloads

// ConfigPayload describes the environment's contract to a connecting
// agent: action-space size, observation length and the tunable set.
type ConfigPayload struct {
	NumActions      int        `json:"num_actions"`
	ObservationSize int        `json:"observation_size"`
	Config          env.Config `json:"config"`
}

type ObsPayload struct {
	EpisodeID string          `json:"episode_id"`
	Obs       env.Observation `json:"obs"`
}

type TransitionPayload struct {
	EpisodeID string          `json:"episode_id"`
	Step      int             `json:"step"`
	Action    int             `json:"action"`
	Obs       env.Observation `json:"obs"`
	Reward    float64         `json:"reward"`
	Done      bool            `json:"done"`
	Info      env.StepInfo    `json:"info"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

func NewEnvelope(msgType string, payload any) ([]byte, error) {
	var raw json.RawMessage
	if payload != nil {
		var err error
		raw, err = json.Marshal(payload)
		if err != nil {
			return nil, err
		}
	}
	return json.Marshal(Envelope{Type: msgType, Payload: raw})
}

func TransitionFromEnv(tr env.Transition) TransitionPayload {
	return TransitionPayload{
		EpisodeID: tr.EpisodeID,
		Step:      tr.Step,
		Action:    tr.Action,
		Obs:       tr.Obs,
		Reward:    tr.Reward,
		Done:      tr.Done,
		Info:      tr.Info,
	}
}
