package env

import "math"

// ObservationSize is the fixed length of the observation vector.
const ObservationSize = 7

// Observation is the externally visible projection of the episode state:
// [indoor temp, outside temp, SOC, sin(time), cos(time), price,
// appliance remaining minutes]. It is recomputed fresh on every call.
type Observation [ObservationSize]float64

// encodeObservation projects the current state. The time-of-day encoding
// assumes one-minute steps (time_step/60 hours) independently of
// Config.StepSeconds; profile lookups clamp so a terminal observation
// reuses the final profile entry.
func encodeObservation(cfg Config, st *EpisodeState) Observation {
	tHours := float64(st.TimeStep-1) / 60
	outside, price := st.Profiles.At(st.TimeStep)
	return Observation{
		st.IndoorTempC,
		outside,
		st.BatterySoC,
		math.Sin(2 * math.Pi * tHours / 24),
		math.Cos(2 * math.Pi * tHours / 24),
		price,
		float64(st.ApplianceRemainingMin),
	}
}
