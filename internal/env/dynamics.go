package env

// Thermal model constants: first-order lumped capacitance with a
// proportional-feedback HVAC term. Illustrative tuning values, not
// calibrated physics.
const (
	thermalCapacitance = 1.0 // C
	thermalResistanceK = 3.0 // R, K per kW of leakage
	hvacGain           = 0.2 // per kW of HVAC power
)

// stepDynamics advances the mutable episode state by one step given the
// decoded commands and the current outside temperature, and returns the
// realized grid power in kW. The SOC is silently clamped to [0,1]; energy
// commanded beyond the boundary is discarded.
func stepDynamics(cfg Config, st *EpisodeState, act Action, outsideTempC float64) (gridPowerKW float64) {
	hvacKW := act.hvacPowerKW(cfg)
	batteryKW := act.batteryCommandKW(cfg)

	// Thermal: heat leakage toward outside plus HVAC drive toward the
	// preferred temperature, scaled to the step length in minutes.
	dtScale := cfg.StepSeconds / 60
	heatLoss := -(st.IndoorTempC - outsideTempC) / thermalResistanceK
	hvacEffect := (cfg.PreferredTempC - st.IndoorTempC) * (hvacKW * hvacGain)
	st.IndoorTempC += dtScale * (heatLoss + hvacEffect) / thermalCapacitance

	// Battery: integrate the commanded power over the step and clamp.
	energyKWh := batteryKW * cfg.dtHours()
	st.BatterySoC = clamp01(st.BatterySoC + energyKWh/cfg.BatteryCapacityKWh)

	// Appliance: START only triggers a new job when idle; a running job
	// ignores the command entirely. A job started this step draws power
	// and is decremented within the same step.
	if act.Appliance == ApplianceStart && st.ApplianceRemainingMin <= 0 {
		st.ApplianceRemainingMin = cfg.ApplianceJobMinutes
	}
	applianceKW := 0.0
	if st.ApplianceRemainingMin > 0 {
		applianceKW = cfg.AppliancePowerKW
		st.ApplianceRemainingMin--
	}

	// Grid draw. Discharge offsets load (subtracted once, floored at zero
	// contribution); charge adds load (added once). The asymmetry is part
	// of the model contract and must not be collapsed into a signed term.
	buildingKW := cfg.BaseLoadKW + hvacKW
	gridPowerKW = buildingKW + applianceKW - max0(-batteryKW)
	if batteryKW > 0 {
		gridPowerKW += batteryKW
	}

	st.LastGridPowerKW = gridPowerKW
	return gridPowerKW
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func max0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
