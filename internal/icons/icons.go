// Package icons picks the status image shown for the modem signal and the UPS battery.
package icons

import "fmt"

const (
	imgBase = "/static/imgs/"

	// GridPower is the power source reported while the UPS runs on mains.
	GridPower = "Grid Power"

	NoSignal        = imgBase + "signal-strength-0.svg"
	BatteryCharging = imgBase + "battery-charging.svg"
	BatteryHigh     = imgBase + "battery-3.svg"
	BatteryMedium   = imgBase + "battery-2.svg"
	BatteryLow      = imgBase + "battery-1.svg"
)

// SignalStrengthIcon maps a 1-4 bar level to its asset; anything else is "no signal".
func SignalStrengthIcon(level int) string {
	if level < 1 || level > 4 {
		return NoSignal
	}
	return fmt.Sprintf("%ssignal-strength-%d.svg", imgBase, level)
}

// BatteryIcon returns the charging icon on grid power, otherwise one of
// three tiers: above 60, above 30, or the rest.
func BatteryIcon(powerSource string, batteryPct float64) string {
	if powerSource == GridPower {
		return BatteryCharging
	}
	switch {
	case batteryPct > 60:
		return BatteryHigh
	case batteryPct > 30:
		return BatteryMedium
	default:
		return BatteryLow
	}
}
