package env

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAction_Endpoints(t *testing.T) {
	act, err := DecodeAction(0)
	require.NoError(t, err)
	assert.Equal(t, HVACOff, act.HVAC)
	assert.Equal(t, BatteryDischarge, act.Battery)
	assert.Equal(t, ApplianceNoop, act.Appliance)

	act, err = DecodeAction(17)
	require.NoError(t, err)
	assert.Equal(t, HVACComfort, act.HVAC)
	assert.Equal(t, BatteryCharge, act.Battery)
	assert.Equal(t, ApplianceStart, act.Appliance)
}

func TestDecodeAction_RoundTrip(t *testing.T) {
	seen := make(map[Action]bool)
	for a := 0; a < NumActions; a++ {
		act, err := DecodeAction(a)
		require.NoError(t, err)
		assert.Equal(t, a, EncodeAction(act))
		seen[act] = true
	}
	// All 18 joint actions are distinct.
	assert.Len(t, seen, NumActions)
}

func TestDecodeAction_OutOfRange(t *testing.T) {
	for _, a := range []int{-1, 18, 100} {
		_, err := DecodeAction(a)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidAction))
	}
}

func TestAction_BatteryCommand(t *testing.T) {
	cfg := DefaultConfig()
	assert.InDelta(t, -3, Action{Battery: BatteryDischarge}.batteryCommandKW(cfg), 0.001)
	assert.InDelta(t, 0, Action{Battery: BatteryHold}.batteryCommandKW(cfg), 0.001)
	assert.InDelta(t, 3, Action{Battery: BatteryCharge}.batteryCommandKW(cfg), 0.001)
}

func TestAction_HVACPower(t *testing.T) {
	cfg := DefaultConfig()
	assert.InDelta(t, 0, Action{HVAC: HVACOff}.hvacPowerKW(cfg), 0.001)
	assert.InDelta(t, 2, Action{HVAC: HVACEco}.hvacPowerKW(cfg), 0.001)
	assert.InDelta(t, 5, Action{HVAC: HVACComfort}.hvacPowerKW(cfg), 0.001)
}
