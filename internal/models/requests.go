package models

// AlarmConfigRequest body of POST /configure-alarm. Numeric fields carry
// the form input text unchanged; the backend owns their validation.
type AlarmConfigRequest struct {
	MaxTemp         string  `json:"max_temp"`
	Hysteresis      string  `json:"hys"`
	Interval        string  `json:"interval"`
	DailyReportTime *string `json:"daily_report_time,omitempty"`
	SendDailyReport *bool   `json:"send_daily_report,omitempty"`
	Armed           *bool   `json:"armed,omitempty"`
	RepeatAlerts    *bool   `json:"repeat_alerts,omitempty"`
	Location        *string `json:"location,omitempty"`
}

// PhoneNumberRequest body of POST /add-phone-number
type PhoneNumberRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"` // digits only
	DailySMS *bool  `json:"daily_sms,omitempty"`
	Admin    *bool  `json:"admin,omitempty"`
}

// UpdateSensorRequest form fields of POST /update_sensor
type UpdateSensorRequest struct {
	Sensor  string // sensor serial
	Name    string
	Trigger string
}

// FormData form encoding expected by the backend.
func (r UpdateSensorRequest) FormData() map[string]string {
	return map[string]string{"sensor": r.Sensor, "name": r.Name, "trigger": r.Trigger}
}

// SubmitResponse reply of both form endpoints
type SubmitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
