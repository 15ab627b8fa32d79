package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSensorConfig_DecodesBackendPayload(t *testing.T) {
	raw := `{
	  "temp": 24.5, "max_temp": 30, "hys": 2, "interval": 15,
	  "armed": true, "location": "Lab 2", "signal_strength": 3, "signal_type": "LTE",
	  "daily_report_time": "08:30", "send_daily_report": false, "repeat_alerts": true,
	  "power": "Grid Power", "battery": 87,
	  "numbers": [
	    {"name": "Ana", "number": "15551234567", "daily_sms": true},
	    {"id": 42, "name": "Bo", "number": "15557654321", "daily_sms": false},
	    {"id": "a7", "name": "Cy", "number": "15550000000"}
	  ]
	}`

	var cfg SensorConfig
	require.NoError(t, json.Unmarshal([]byte(raw), &cfg))

	assert.Equal(t, 24.5, cfg.Temp)
	assert.Equal(t, 2.0, cfg.Hysteresis)
	assert.Equal(t, 3, cfg.SignalStrength)
	assert.Equal(t, "08:30", cfg.DailyReportTime)
	require.Len(t, cfg.Numbers, 3)
	assert.Equal(t, EntryID(""), cfg.Numbers[0].ID)
	assert.Equal(t, EntryID("42"), cfg.Numbers[1].ID)
	assert.Equal(t, EntryID("a7"), cfg.Numbers[2].ID)
	assert.Equal(t, "Grid Power", cfg.PowerSource)
	assert.Equal(t, 87.0, cfg.BatteryLevel)
}

// Payload as the monitor writes it: power/battery keys, a
// sensors list, admin flags and a null battery when the UPS is absent.
func TestSensorConfig_DecodesMonitorConfig(t *testing.T) {
	raw := `{
	  "high_temperature": true, "location": "Cold room", "hys": 1.5, "interval": 5.0,
	  "daily_report_time": "07:00", "armed": true, "send_daily_report": true,
	  "repeat_alerts": false, "signal_strength": 2, "signal_type": "LTE",
	  "pi_time": "2024-05-01 10:00:00",
	  "numbers": [{"name": "Ana", "number": "15551234567", "daily_sms": true, "admin": true}],
	  "power": "Battery", "battery": null,
	  "sensors": [
	    {"name": "Freezer", "sensor": "28-0316a2", "trigger": 30, "temperature": 31.25},
	    {"name": "Bench", "sensor": "28-0416b7", "trigger": "27.5", "temperature": 22}
	  ]
	}`

	var cfg SensorConfig
	require.NoError(t, json.Unmarshal([]byte(raw), &cfg))

	assert.True(t, cfg.HighTemperature)
	assert.Equal(t, "Battery", cfg.PowerSource)
	assert.Zero(t, cfg.BatteryLevel)
	require.Len(t, cfg.Numbers, 1)
	assert.True(t, cfg.Numbers[0].Admin)
	assert.Equal(t, []SensorEntry{
		{Name: "Freezer", Sensor: "28-0316a2", Trigger: 30, Temperature: 31.25},
		{Name: "Bench", Sensor: "28-0416b7", Trigger: 27.5, Temperature: 22},
	}, cfg.Sensors)
}

func TestNumber_RejectsNonNumericString(t *testing.T) {
	var n Number
	assert.Error(t, json.Unmarshal([]byte(`"hot"`), &n))
}

func TestUpdateSensorRequest_FormData(t *testing.T) {
	req := UpdateSensorRequest{Sensor: "28-01", Name: "Fridge", Trigger: "8"}
	assert.Equal(t, map[string]string{"sensor": "28-01", "name": "Fridge", "trigger": "8"}, req.FormData())
}

func TestPhoneEntry_DeleteKey(t *testing.T) {
	assert.Equal(t, "1", PhoneEntry{Name: "Ana"}.DeleteKey(0))
	assert.Equal(t, "3", PhoneEntry{Name: "Cy"}.DeleteKey(2))
	assert.Equal(t, "42", PhoneEntry{ID: "42"}.DeleteKey(0))
}

func TestAlarmConfigRequest_OmitsUnsetOptionals(t *testing.T) {
	body, err := json.Marshal(AlarmConfigRequest{MaxTemp: "30", Hysteresis: "2", Interval: "15"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"max_temp":"30","hys":"2","interval":"15"}`, string(body))
}
