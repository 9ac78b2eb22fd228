package env

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// ErrEpisodeDone is returned by Step once the episode has reached its
// fixed length; the caller must Reset before stepping again.
var ErrEpisodeDone = errors.New("episode is terminal")

// ErrNoEpisode is returned by Step before the first Reset.
var ErrNoEpisode = errors.New("no active episode, call Reset first")

// EpisodeState is the mutable record advanced by Step. It is owned
// exclusively by one Env and never shared across instances.
type EpisodeState struct {
	IndoorTempC           float64
	BatterySoC            float64
	ApplianceRemainingMin int
	TimeStep              int // 1-based; terminal once > Config.EpisodeSteps
	LastGridPowerKW       float64
	Profiles              Profiles
}

// StepInfo carries per-transition diagnostics. None of its fields are part
// of the core contract; they exist so harnesses can audit the reward.
type StepInfo struct {
	EpisodeID   string          `json:"episode_id"`
	GridPowerKW float64         `json:"grid_power_kw"`
	Costs       RewardBreakdown `json:"costs"`
}

// Transition is the full record of one Step, as delivered to recorders.
type Transition struct {
	EpisodeID string      `json:"episode_id"`
	Step      int         `json:"step"`
	Action    int         `json:"action"`
	Obs       Observation `json:"obs"`
	Reward    float64     `json:"reward"`
	Done      bool        `json:"done"`
	Info      StepInfo    `json:"info"`
}

// ResetEvent is delivered to recorders when a new episode begins.
type ResetEvent struct {
	EpisodeID string      `json:"episode_id"`
	Obs       Observation `json:"obs"`
}

// Recorder receives environment events. Implementations must not call back
// into the Env.
type Recorder interface {
	OnReset(ev ResetEvent)
	OnTransition(tr Transition)
}

// MultiRecorder fans every event out to each recorder in order.
type MultiRecorder []Recorder

func (m MultiRecorder) OnReset(ev ResetEvent) {
	for _, r := range m {
		r.OnReset(ev)
	}
}

func (m MultiRecorder) OnTransition(tr Transition) {
	for _, r := range m {
		r.OnTransition(tr)
	}
}

// Env is a single-home energy control environment: HVAC, battery and a
// flexible appliance behind one grid connection, driven through Reset and
// Step by an external agent. Not safe for concurrent use.
type Env struct {
	cfg       Config
	rng       *rand.Rand
	state     EpisodeState
	episodeID string
	recorder  Recorder
}

// New creates an environment with the given configuration and random
// source. The rng seeds only the two initial-state draws in Reset;
// everything else is deterministic. A nil rng gets a random seed.
func New(cfg Config, rng *rand.Rand) *Env {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Env{cfg: cfg, rng: rng}
}

// Config returns the environment's immutable configuration.
func (e *Env) Config() Config { return e.cfg }

// EpisodeID returns the identifier of the current episode, or "" before
// the first Reset.
func (e *Env) EpisodeID() string { return e.episodeID }

// State returns a copy of the current episode state (profiles shared).
func (e *Env) State() EpisodeState { return e.state }

// SetRecorder installs an optional event recorder. Pass nil to detach.
func (e *Env) SetRecorder(r Recorder) { e.recorder = r }

// Reset starts a fresh episode: profiles are regenerated, the indoor
// temperature is drawn uniformly in T_pref ± 0.5 °C and the SOC uniformly
// in 0.5 ± 0.05, and the initial observation is returned.
func (e *Env) Reset() Observation {
	e.episodeID = uuid.NewString()
	e.state = EpisodeState{
		IndoorTempC: e.cfg.PreferredTempC + (e.rng.Float64() - 0.5),
		BatterySoC:  0.5 + (e.rng.Float64()-0.5)*0.1,
		TimeStep:    1,
		Profiles:    GenerateProfiles(e.cfg),
	}
	obs := encodeObservation(e.cfg, &e.state)
	if e.recorder != nil {
		e.recorder.OnReset(ResetEvent{EpisodeID: e.episodeID, Obs: obs})
	}
	return obs
}

// Step decodes the joint action, advances the dynamics one step and
// returns the new observation, the reward, the termination flag and
// per-step diagnostics. Stepping a terminal episode or passing an action
// outside [0, NumActions) is a contract violation and returns an error
// without touching the state.
func (e *Env) Step(action int) (Observation, float64, bool, StepInfo, error) {
	if e.state.TimeStep == 0 {
		return Observation{}, 0, false, StepInfo{}, ErrNoEpisode
	}
	if e.state.TimeStep > e.cfg.EpisodeSteps {
		return Observation{}, 0, true, StepInfo{}, fmt.Errorf("step %d: %w", e.state.TimeStep, ErrEpisodeDone)
	}
	act, err := DecodeAction(action)
	if err != nil {
		return Observation{}, 0, false, StepInfo{}, err
	}

	outside, price := e.state.Profiles.At(e.state.TimeStep)
	socOld := e.state.BatterySoC
	transitionStep := e.state.TimeStep

	gridKW := stepDynamics(e.cfg, &e.state, act, outside)
	costs := computeReward(e.cfg, socOld, e.state.BatterySoC, e.state.IndoorTempC, gridKW, price)
	reward := costs.Total()

	e.state.TimeStep++
	done := e.state.TimeStep > e.cfg.EpisodeSteps
	obs := encodeObservation(e.cfg, &e.state)

	info := StepInfo{EpisodeID: e.episodeID, GridPowerKW: gridKW, Costs: costs}
	if e.recorder != nil {
		e.recorder.OnTransition(Transition{
			EpisodeID: e.episodeID,
			Step:      transitionStep,
			Action:    action,
			Obs:       obs,
			Reward:    reward,
			Done:      done,
			Info:      info,
		})
	}
	return obs, reward, done, info, nil
}
