package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// SensorConfig payload of GET /sensor-config
type SensorConfig struct {
	Temp            float64       `json:"temp"`
	MaxTemp         float64       `json:"max_temp"`
	Hysteresis      float64       `json:"hys"`
	Interval        float64       `json:"interval"` // report interval, minutes
	Armed           bool          `json:"armed"`
	Location        string        `json:"location"`
	SignalStrength  int           `json:"signal_strength"` // 0-4 bars
	SignalType      string        `json:"signal_type"`
	DailyReportTime string        `json:"daily_report_time"` // "HH:MM", 24-hour
	SendDailyReport bool          `json:"send_daily_report"`
	RepeatAlerts    bool          `json:"repeat_alerts"`
	PowerSource     string        `json:"power"`   // "Grid Power" while on mains
	BatteryLevel    float64       `json:"battery"` // UPS charge, percent; null reads as 0
	HighTemperature bool          `json:"high_temperature"`
	Numbers         []PhoneEntry  `json:"numbers"`
	Sensors         []SensorEntry `json:"sensors"`
}

// SensorEntry one temperature sensor with a current reading
type SensorEntry struct {
	Name        string  `json:"name"`
	Sensor      string  `json:"sensor"`  // sensor serial
	Trigger     Number  `json:"trigger"` // alarm threshold, °C
	Temperature float64 `json:"temperature"`
}

// PhoneEntry SMS recipient as listed by the backend
type PhoneEntry struct {
	ID       EntryID `json:"id,omitempty"`
	Name     string  `json:"name"`
	Number   string  `json:"number"`
	DailySMS bool    `json:"daily_sms"`
	Admin    bool    `json:"admin"`
}

// DeleteKey identifier used by /delete-number/{key}. A backend-supplied
// stable id wins; otherwise the 1-based list position, which shifts
// whenever an earlier entry is removed.
func (p PhoneEntry) DeleteKey(index int) string {
	if p.ID != "" {
		return string(p.ID)
	}
	return strconv.Itoa(index + 1)
}

// EntryID accepts both JSON strings and numbers.
type EntryID string

func (id *EntryID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = EntryID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = EntryID(n.String())
	return nil
}

// Number float that also accepts numeric strings ("30") and null.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("invalid number %q: %w", s, err)
		}
		*n = Number(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = Number(f)
	return nil
}
