package ws

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"energy_env/internal/env"
)

func newTestBridge() (*Bridge, *Client) {
	hub := NewHub()
	client := &Client{hub: hub, send: make(chan []byte, 256)}
	hub.Register(client)
	bridge := NewBridge(hub)
	return bridge, client
}

func receiveEnvelope(t *testing.T, c *Client) Envelope {
	t.Helper()
	msg := <-c.send
	var envelope Envelope
	require.NoError(t, json.Unmarshal(msg, &envelope))
	return envelope
}

func TestBridge_OnReset(t *testing.T) {
	bridge, client := newTestBridge()

	bridge.OnReset(env.ResetEvent{
		EpisodeID: "ep-1",
		Obs:       env.Observation{21, 7, 0.5, 0, 1, 0.1, 0},
	})

	envelope := receiveEnvelope(t, client)
	assert.Equal(t, TypeEnvObs, envelope.Type)

	var p ObsPayload
	require.NoError(t, json.Unmarshal(envelope.Payload, &p))
	assert.Equal(t, "ep-1", p.EpisodeID)
	assert.InDelta(t, 21, p.Obs[0], 0.001)
	assert.InDelta(t, 0.5, p.Obs[2], 0.001)
}

func TestBridge_OnTransition(t *testing.T) {
	bridge, client := newTestBridge()

	bridge.OnTransition(env.Transition{
		EpisodeID: "ep-1",
		Step:      42,
		Action:    17,
		Reward:    -1.25,
		Done:      true,
		Info: env.StepInfo{
			EpisodeID:   "ep-1",
			GridPowerKW: 10.1,
			Costs:       env.RewardBreakdown{PeakCost: 2.05},
		},
	})

	envelope := receiveEnvelope(t, client)
	assert.Equal(t, TypeEnvTransition, envelope.Type)

	var p TransitionPayload
	require.NoError(t, json.Unmarshal(envelope.Payload, &p))
	assert.Equal(t, "ep-1", p.EpisodeID)
	assert.Equal(t, 42, p.Step)
	assert.Equal(t, 17, p.Action)
	assert.InDelta(t, -1.25, p.Reward, 0.001)
	assert.True(t, p.Done)
	assert.InDelta(t, 10.1, p.Info.GridPowerKW, 0.001)
	assert.InDelta(t, 2.05, p.Info.Costs.PeakCost, 0.001)
}

func TestBridge_BroadcastsToAllClients(t *testing.T) {
	hub := NewHub()
	c1 := &Client{hub: hub, send: make(chan []byte, 16)}
	c2 := &Client{hub: hub, send: make(chan []byte, 16)}
	hub.Register(c1)
	hub.Register(c2)
	bridge := NewBridge(hub)

	bridge.OnReset(env.ResetEvent{EpisodeID: "ep-1"})

	e1 := receiveEnvelope(t, c1)
	e2 := receiveEnvelope(t, c2)
	assert.Equal(t, TypeEnvObs, e1.Type)
	assert.Equal(t, TypeEnvObs, e2.Type)
}
