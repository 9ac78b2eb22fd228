package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"energy_env/internal/env"
)

func sampleTransition(id string, step int) env.Transition {
	return env.Transition{
		EpisodeID: id,
		Step:      step,
		Action:    step % env.NumActions,
		Reward:    -0.5,
		Info:      env.StepInfo{EpisodeID: id, GridPowerKW: 3.6},
	}
}

func TestHistory_EmptyBeforeReset(t *testing.T) {
	h := NewHistory()
	_, _, ok := h.Snapshot()
	assert.False(t, ok)
	assert.Equal(t, 0, h.Len())
}

func TestHistory_BuffersEpisode(t *testing.T) {
	h := NewHistory()
	h.OnReset(env.ResetEvent{EpisodeID: "ep-1"})
	h.OnTransition(sampleTransition("ep-1", 1))
	h.OnTransition(sampleTransition("ep-1", 2))

	reset, transitions, ok := h.Snapshot()
	require.True(t, ok)
	assert.Equal(t, "ep-1", reset.EpisodeID)
	require.Len(t, transitions, 2)
	assert.Equal(t, 1, transitions[0].Step)
	assert.Equal(t, 2, transitions[1].Step)
}

func TestHistory_ResetDropsPreviousEpisode(t *testing.T) {
	h := NewHistory()
	h.OnReset(env.ResetEvent{EpisodeID: "ep-1"})
	h.OnTransition(sampleTransition("ep-1", 1))

	h.OnReset(env.ResetEvent{EpisodeID: "ep-2"})

	reset, transitions, ok := h.Snapshot()
	require.True(t, ok)
	assert.Equal(t, "ep-2", reset.EpisodeID)
	assert.Empty(t, transitions)
}

func TestHistory_SnapshotIsACopy(t *testing.T) {
	h := NewHistory()
	h.OnReset(env.ResetEvent{EpisodeID: "ep-1"})
	h.OnTransition(sampleTransition("ep-1", 1))

	_, transitions, _ := h.Snapshot()
	transitions[0].Step = 99

	_, again, _ := h.Snapshot()
	assert.Equal(t, 1, again[0].Step)
}
