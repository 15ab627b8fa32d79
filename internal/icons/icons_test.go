package icons

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignalStrengthIcon(t *testing.T) {
	for level := 1; level <= 4; level++ {
		got := SignalStrengthIcon(level)
		assert.True(t, strings.HasSuffix(got, "signal-strength-"+string(rune('0'+level))+".svg"), got)
	}
	assert.True(t, strings.HasSuffix(SignalStrengthIcon(3), "signal-strength-3.svg"))

	for _, level := range []int{0, -1, 5, 9} {
		assert.Equal(t, NoSignal, SignalStrengthIcon(level))
	}
	assert.True(t, strings.HasSuffix(SignalStrengthIcon(9), "signal-strength-0.svg"))
}

func TestBatteryIcon(t *testing.T) {
	assert.Equal(t, BatteryCharging, BatteryIcon("Grid Power", 5))
	assert.Equal(t, BatteryCharging, BatteryIcon("Grid Power", 100))

	assert.Equal(t, BatteryHigh, BatteryIcon("Battery", 61))
	assert.Equal(t, BatteryMedium, BatteryIcon("Battery", 60))
	assert.Equal(t, BatteryMedium, BatteryIcon("Battery", 31))
	assert.Equal(t, BatteryLow, BatteryIcon("Battery", 30))
	assert.Equal(t, BatteryLow, BatteryIcon("Battery", 0))
	assert.Equal(t, BatteryLow, BatteryIcon("", -5))
}
