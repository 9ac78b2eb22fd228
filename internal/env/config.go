package env

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable of the environment. It is fixed for the
// lifetime of an Env; changing values alters the dynamics quantitatively
// but never the transition contract.
type Config struct {
	StepSeconds  float64 `yaml:"step_seconds"`
	EpisodeSteps int     `yaml:"episode_steps"`

	OutsideBaseC   float64 `yaml:"outside_base_c"`
	OutsideAmpC    float64 `yaml:"outside_amp_c"`
	PreferredTempC float64 `yaml:"preferred_temp_c"`

	// HVAC electrical power per level: [OFF, ECO, COMFORT].
	HVACPowerKW [3]float64 `yaml:"hvac_power_kw"`

	BatteryMaxPowerKW  float64 `yaml:"battery_max_power_kw"`
	BatteryCapacityKWh float64 `yaml:"battery_capacity_kwh"`

	AppliancePowerKW    float64 `yaml:"appliance_power_kw"`
	ApplianceJobMinutes int     `yaml:"appliance_job_minutes"`

	// Time-of-use tariff levels (currency per kWh).
	PriceOffpeak float64 `yaml:"price_offpeak"`
	PriceMid     float64 `yaml:"price_mid"`
	PricePeak    float64 `yaml:"price_peak"`

	// Reward shaping weights.
	AlphaComfort float64 `yaml:"alpha_comfort"`
	BetaPeak     float64 `yaml:"beta_peak"`
	GammaBattery float64 `yaml:"gamma_battery"`

	BaseLoadKW       float64 `yaml:"base_load_kw"`
	PeakThresholdKW  float64 `yaml:"peak_threshold_kw"`
	ComfortDeadbandC float64 `yaml:"comfort_deadband_c"`
}

// DefaultConfig returns the standard single-home setup: one-minute steps
// over a full day, a 2/5 kW two-stage HVAC, a 10 kWh battery and a one-hour
// flexible appliance job.
func DefaultConfig() Config {
	return Config{
		StepSeconds:         60,
		EpisodeSteps:        1440,
		OutsideBaseC:        15,
		OutsideAmpC:         8,
		PreferredTempC:      21,
		HVACPowerKW:         [3]float64{0, 2, 5},
		BatteryMaxPowerKW:   3,
		BatteryCapacityKWh:  10,
		AppliancePowerKW:    1.5,
		ApplianceJobMinutes: 60,
		PriceOffpeak:        0.10,
		PriceMid:            0.20,
		PricePeak:           0.35,
		AlphaComfort:        0.5,
		BetaPeak:            0.5,
		GammaBattery:        0.05,
		BaseLoadKW:          0.6,
		PeakThresholdKW:     6,
		ComfortDeadbandC:    0.5,
	}
}

// LoadConfig reads a YAML config file and overlays it on the defaults.
// Fields left out of the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s invalid: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the dynamics cannot run on.
func (c Config) Validate() error {
	if c.StepSeconds <= 0 {
		return errors.New("step_seconds must be positive")
	}
	if c.EpisodeSteps <= 0 {
		return errors.New("episode_steps must be positive")
	}
	if c.BatteryCapacityKWh <= 0 {
		return errors.New("battery_capacity_kwh must be positive")
	}
	if c.BatteryMaxPowerKW < 0 {
		return errors.New("battery_max_power_kw must not be negative")
	}
	if c.AppliancePowerKW < 0 {
		return errors.New("appliance_power_kw must not be negative")
	}
	if c.ApplianceJobMinutes <= 0 {
		return errors.New("appliance_job_minutes must be positive")
	}
	if c.ComfortDeadbandC < 0 {
		return errors.New("comfort_deadband_c must not be negative")
	}
	return nil
}

// dtHours is the step duration in hours.
func (c Config) dtHours() float64 {
	return c.StepSeconds / 3600
}
