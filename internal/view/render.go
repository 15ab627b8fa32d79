package view

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/omkarsindha/GSM-Alarm/internal/format"
	"github.com/omkarsindha/GSM-Alarm/internal/icons"
	"github.com/omkarsindha/GSM-Alarm/internal/models"
)

// amberBand degrees below max_temp where the reading turns amber
const amberBand = 4

// TemperatureColor green below max-4, amber from max-4 up to max, red at or above max.
func TemperatureColor(temp, maxTemp float64) Color {
	switch {
	case temp >= maxTemp:
		return ColorRed
	case temp >= maxTemp-amberBand:
		return ColorAmber
	default:
		return ColorGreen
	}
}

// RenderSensorConfig writes cfg into every bound element. Values that
// cannot be formatted (a phone number, the report time) are shown raw and
// reported in the returned error; the rest of the page is still rendered.
func RenderSensorConfig(cfg *models.SensorConfig, b ConfigBindings) error {
	if cfg == nil {
		return errors.New("no sensor config to render")
	}
	var errs []error

	if b.Temperature != nil {
		b.Temperature.SetText(formatNumber(cfg.Temp) + "°C")
		b.Temperature.SetColor(TemperatureColor(cfg.Temp, cfg.MaxTemp))
	}
	if b.HighTemperature != nil {
		if cfg.HighTemperature {
			b.HighTemperature.SetText("HIGH TEMPERATURE")
			b.HighTemperature.SetColor(ColorRed)
		} else {
			b.HighTemperature.SetText("Normal")
			b.HighTemperature.SetColor(ColorGreen)
		}
	}

	b.MaxTemp.set(formatNumber(cfg.MaxTemp))
	b.Hysteresis.set(formatNumber(cfg.Hysteresis))
	b.ReportInterval.set(formatNumber(cfg.Interval))
	b.Location.set(cfg.Location)

	if b.DailyReport.Input != nil {
		b.DailyReport.Input.SetValue(cfg.DailyReportTime)
	}
	if b.DailyReport.Text != nil {
		text := cfg.DailyReportTime
		if text != "" {
			t12, err := format.ConvertTo12Hour(cfg.DailyReportTime)
			if err != nil {
				errs = append(errs, fmt.Errorf("daily report time: %w", err))
			} else {
				text = t12
			}
		}
		b.DailyReport.Text.SetText(text)
	}

	b.Armed.set(cfg.Armed, "ARMED", "UN-ARMED", true)
	b.SendDailyReport.set(cfg.SendDailyReport, "Yes", "No", true)
	b.RepeatAlerts.set(cfg.RepeatAlerts, "Yes", "No", false)

	if b.SignalIcon != nil {
		b.SignalIcon.SetSrc(icons.SignalStrengthIcon(cfg.SignalStrength))
	}
	if b.SignalType != nil {
		b.SignalType.SetText(cfg.SignalType)
	}
	if b.PowerSource != nil {
		b.PowerSource.SetText(cfg.PowerSource)
	}
	if b.BatteryIcon != nil {
		b.BatteryIcon.SetSrc(icons.BatteryIcon(cfg.PowerSource, cfg.BatteryLevel))
	}
	if b.BatteryLevel != nil {
		b.BatteryLevel.SetText(formatNumber(cfg.BatteryLevel) + "%")
	}

	if b.PhoneNumbers != nil {
		if err := RenderPhoneNumbers(cfg.Numbers, b.PhoneNumbers, b.DeleteLinks); err != nil {
			errs = append(errs, err)
		}
	}
	if b.Sensors != nil {
		RenderSensors(cfg.Sensors, b.Sensors)
	}

	return errors.Join(errs...)
}

// RenderPhoneNumbers rebuilds the phone table: one row per entry in list
// order with name, formatted number, daily SMS yes/no, admin yes/no and
// optionally a delete link.
func RenderPhoneNumbers(numbers []models.PhoneEntry, table TableElement, deleteLinks bool) error {
	table.Clear()
	var errs []error
	for i, n := range numbers {
		shown, err := displayNumber(n.Number)
		if err != nil {
			errs = append(errs, fmt.Errorf("phone entry %d (%s): %w", i+1, n.Name, err))
			shown = n.Number
		}
		cells := []Cell{
			{Text: n.Name},
			{Text: shown},
			{Text: yesNo(n.DailySMS)},
			{Text: yesNo(n.Admin)},
		}
		if deleteLinks {
			cells = append(cells, Cell{Text: "Delete", Href: "/delete-number/" + url.PathEscape(n.DeleteKey(i))})
		}
		table.AppendRow(cells...)
	}
	return errors.Join(errs...)
}

// RenderSensors rebuilds the sensor table: name, serial, trigger and the
// current reading coloured against that sensor's trigger.
func RenderSensors(sensors []models.SensorEntry, table TableElement) {
	table.Clear()
	for _, s := range sensors {
		trigger := float64(s.Trigger)
		table.AppendRow(
			Cell{Text: s.Name},
			Cell{Text: s.Sensor},
			Cell{Text: formatNumber(trigger) + "°C"},
			Cell{Text: formatNumber(s.Temperature) + "°C", Color: TemperatureColor(s.Temperature, trigger)},
		)
	}
}

// RenderHistory rebuilds the history table with one message row per entry, in received order.
func RenderHistory(entries []models.HistoryEntry, b HistoryBindings) {
	if b.Table == nil {
		return
	}
	b.Table.Clear()
	for _, h := range entries {
		b.Table.AppendRow(Cell{Text: h.Message})
	}
}

func displayNumber(raw string) (string, error) {
	normalized, err := format.NormalizePhoneNumber(raw)
	if err != nil {
		return "", err
	}
	return format.FormatPhoneNumber(normalized)
}

func (f Field) set(v string) {
	if f.Input != nil {
		f.Input.SetValue(v)
	}
	if f.Text != nil {
		f.Text.SetText(v)
	}
}

func (t Toggle) set(on bool, onText, offText string, colored bool) {
	if t.Checkbox != nil {
		t.Checkbox.SetChecked(on)
	}
	if t.Status == nil {
		return
	}
	if on {
		t.Status.SetText(onText)
	} else {
		t.Status.SetText(offText)
	}
	if !colored {
		return
	}
	if on {
		t.Status.SetColor(ColorGreen)
	} else {
		t.Status.SetColor(ColorRed)
	}
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
