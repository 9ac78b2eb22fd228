package env

import "math"

// RewardBreakdown holds the individual cost terms of one transition.
// Reward is the negated sum; each term is recomputable from the logged
// transition alone.
type RewardBreakdown struct {
	EnergyCost       float64 `json:"energy_cost"`
	ComfortCost      float64 `json:"comfort_cost"`
	PeakCost         float64 `json:"peak_cost"`
	BatteryCycleCost float64 `json:"battery_cycle_cost"`
}

// Total returns the scalar reward for the transition.
func (r RewardBreakdown) Total() float64 {
	return -(r.EnergyCost + r.ComfortCost + r.PeakCost + r.BatteryCycleCost)
}

// computeReward prices the step's grid energy at the current tariff (net
// export earns the same rate), penalizes temperature deviation beyond the
// comfort deadband, grid draw beyond the peak threshold, and battery
// throughput regardless of direction.
func computeReward(cfg Config, socOld, socNew, indoorNextC, gridPowerKW, priceKWh float64) RewardBreakdown {
	energyKWh := gridPowerKW * cfg.dtHours()
	return RewardBreakdown{
		EnergyCost:       energyKWh * priceKWh,
		ComfortCost:      cfg.AlphaComfort * max0(math.Abs(indoorNextC-cfg.PreferredTempC)-cfg.ComfortDeadbandC),
		PeakCost:         cfg.BetaPeak * max0(gridPowerKW-cfg.PeakThresholdKW),
		BatteryCycleCost: cfg.GammaBattery * math.Abs(socNew-socOld) * cfg.BatteryCapacityKWh,
	}
}
