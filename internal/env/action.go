package env

import "fmt"

// NumActions is the size of the joint discrete action space:
// 3 HVAC levels x 3 battery modes x 2 appliance commands.
const NumActions = 18

// ErrInvalidAction is returned when a joint action index falls outside
// [0, NumActions). There is no recovery: no joint action exists to execute.
var ErrInvalidAction = fmt.Errorf("action index out of range [0,%d)", NumActions)

type HVACLevel int

const (
	HVACOff HVACLevel = iota
	HVACEco
	HVACComfort
)

type BatteryMode int

const (
	BatteryDischarge BatteryMode = iota
	BatteryHold
	BatteryCharge
)

type ApplianceCommand int

const (
	ApplianceNoop ApplianceCommand = iota
	ApplianceStart
)

// Action is the decoded form of a joint action index.
type Action struct {
	HVAC      HVACLevel
	Battery   BatteryMode
	Appliance ApplianceCommand
}

// DecodeAction splits a joint index into its three sub-commands:
// hvac = a/6, battery = (a%6)/2, appliance = a%2.
func DecodeAction(a int) (Action, error) {
	if a < 0 || a >= NumActions {
		return Action{}, fmt.Errorf("%w: %d", ErrInvalidAction, a)
	}
	rem := a % 6
	return Action{
		HVAC:      HVACLevel(a / 6),
		Battery:   BatteryMode(rem / 2),
		Appliance: ApplianceCommand(rem % 2),
	}, nil
}

// EncodeAction is the exact inverse of DecodeAction.
func EncodeAction(act Action) int {
	return int(act.HVAC)*6 + int(act.Battery)*2 + int(act.Appliance)
}

// hvacPowerKW returns the electrical draw for the decoded HVAC level.
func (a Action) hvacPowerKW(cfg Config) float64 {
	return cfg.HVACPowerKW[a.HVAC]
}

// batteryCommandKW returns the signed battery power command:
// negative = discharge, zero = hold, positive = charge.
func (a Action) batteryCommandKW(cfg Config) float64 {
	switch a.Battery {
	case BatteryDischarge:
		return -cfg.BatteryMaxPowerKW
	case BatteryCharge:
		return cfg.BatteryMaxPowerKW
	default:
		return 0
	}
}
