package env

import "math"

// Profiles holds the fixed per-episode exogenous series. Index 0 corresponds
// to time step 1; both slices have length Config.EpisodeSteps.
type Profiles struct {
	OutsideTempC []float64
	PriceKWh     []float64
}

// GenerateProfiles builds the episode's outside-temperature and tariff
// series from configuration alone. The temperature is a diurnal sinusoid
// phased so the episode starts at its coldest point (base - amplitude at
// midnight); the price follows a three-level time-of-use tariff. Callers
// regenerate on every reset.
func GenerateProfiles(cfg Config) Profiles {
	p := Profiles{
		OutsideTempC: make([]float64, cfg.EpisodeSteps),
		PriceKWh:     make([]float64, cfg.EpisodeSteps),
	}
	for i := 0; i < cfg.EpisodeSteps; i++ {
		tHours := float64(i) * cfg.StepSeconds / 3600
		p.OutsideTempC[i] = cfg.OutsideBaseC + cfg.OutsideAmpC*math.Sin(2*math.Pi/24*(tHours-6))
		p.PriceKWh[i] = tariffAt(cfg, tHours)
	}
	return p
}

// tariffAt returns the TOU price for a fractional hour since episode start.
// Bands: [0,6) offpeak, [6,16) mid, [16,20) peak, [20,24) mid.
func tariffAt(cfg Config, tHours float64) float64 {
	hour := math.Mod(tHours, 24)
	switch {
	case hour < 6:
		return cfg.PriceOffpeak
	case hour < 16:
		return cfg.PriceMid
	case hour < 20:
		return cfg.PricePeak
	default:
		return cfg.PriceMid
	}
}

// At returns the profile values for a 1-based time step, clamped into the
// valid range so a terminal lookup reuses the final entry.
func (p Profiles) At(timeStep int) (outsideTempC, priceKWh float64) {
	i := timeStep - 1
	if i < 0 {
		i = 0
	}
	if i >= len(p.OutsideTempC) {
		i = len(p.OutsideTempC) - 1
	}
	return p.OutsideTempC[i], p.PriceKWh[i]
}
