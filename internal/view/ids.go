package view

// Element ids shared by the page templates and the bindings below.
const (
	IDLabTemperature     = "lab-temperature"
	IDMaxTemp            = "max-temp"
	IDHysteresis         = "hysteresis"
	IDReportInterval     = "report-interval"
	IDLocation           = "location"
	IDDailyReport        = "daily-report"
	IDDailyReportText    = "daily-report-text"
	IDArmed              = "armed"
	IDArmedStatus        = "armed-status"
	IDSendDailyReport    = "send-daily-report"
	IDSendDailyReportTxt = "send-daily-report-status"
	IDRepeatAlerts       = "repeat-alerts"
	IDRepeatAlertsStatus = "repeat-alerts-status"
	IDSignalIcon         = "signal-icon"
	IDSignalType         = "signal-type"
	IDPowerSource        = "power-source"
	IDBatteryIcon        = "battery-icon"
	IDBatteryLevel       = "battery-level"
	IDPhoneNumbers       = "phone-numbers"
	IDHistory            = "history"
	IDHighTemperature    = "high-temperature"
	IDSensors            = "sensors"
)

// IndexBindings the read-only status page.
func IndexBindings(d *Document) ConfigBindings {
	return ConfigBindings{
		Temperature:     d.Text(IDLabTemperature),
		HighTemperature: d.Text(IDHighTemperature),
		MaxTemp:         Field{Text: d.Text(IDMaxTemp)},
		Hysteresis:      Field{Text: d.Text(IDHysteresis)},
		ReportInterval:  Field{Text: d.Text(IDReportInterval)},
		Location:        Field{Text: d.Text(IDLocation)},
		DailyReport:     Field{Text: d.Text(IDDailyReportText)},
		Armed:           Toggle{Status: d.Text(IDArmedStatus)},
		SendDailyReport: Toggle{Status: d.Text(IDSendDailyReportTxt)},
		RepeatAlerts:    Toggle{Status: d.Text(IDRepeatAlertsStatus)},
		SignalIcon:      d.Image(IDSignalIcon),
		SignalType:      d.Text(IDSignalType),
		PowerSource:     d.Text(IDPowerSource),
		BatteryIcon:     d.Image(IDBatteryIcon),
		BatteryLevel:    d.Text(IDBatteryLevel),
		PhoneNumbers:    d.Table(IDPhoneNumbers),
		Sensors:         d.Table(IDSensors),
	}
}

// SettingsBindings the settings page: editable inputs plus the phone table with delete links.
func SettingsBindings(d *Document) ConfigBindings {
	return ConfigBindings{
		Temperature:     d.Text(IDLabTemperature),
		MaxTemp:         Field{Input: d.Input(IDMaxTemp)},
		Hysteresis:      Field{Input: d.Input(IDHysteresis)},
		ReportInterval:  Field{Input: d.Input(IDReportInterval)},
		Location:        Field{Input: d.Input(IDLocation)},
		DailyReport:     Field{Input: d.Input(IDDailyReport), Text: d.Text(IDDailyReportText)},
		Armed:           Toggle{Checkbox: d.Checkbox(IDArmed), Status: d.Text(IDArmedStatus)},
		SendDailyReport: Toggle{Checkbox: d.Checkbox(IDSendDailyReport), Status: d.Text(IDSendDailyReportTxt)},
		RepeatAlerts:    Toggle{Checkbox: d.Checkbox(IDRepeatAlerts)},
		PhoneNumbers:    d.Table(IDPhoneNumbers),
		DeleteLinks:     true,
		Sensors:         d.Table(IDSensors),
	}
}

// HistoryPageBindings the history page.
func HistoryPageBindings(d *Document) HistoryBindings {
	return HistoryBindings{Table: d.Table(IDHistory)}
}
