// Package view renders backend values into element bindings. Bindings are
// plain interfaces so rendering can run against the in-memory Document
// used by the HTTP pages or against test doubles.
package view

// Color display colour of a text element
type Color string

const (
	ColorNone  Color = ""
	ColorGreen Color = "green"
	ColorAmber Color = "amber"
	ColorRed   Color = "red"
)

// Cell one table cell; Href turns it into a link.
type Cell struct {
	Text  string `json:"text"`
	Href  string `json:"href,omitempty"`
	Color Color  `json:"color,omitempty"`
}

type TextElement interface {
	SetText(text string)
	SetColor(c Color)
}

type InputElement interface {
	SetValue(value string)
}

type CheckboxElement interface {
	SetChecked(checked bool)
}

type ImageElement interface {
	SetSrc(src string)
}

type TableElement interface {
	Clear()
	AppendRow(cells ...Cell)
}

// ErrorDisplay surfaces failures to the user instead of only logging them.
type ErrorDisplay interface {
	ShowError(err error)
}

// Alerter shows a blocking message (client-side validation failures).
type Alerter interface {
	Alert(message string)
}

// Field a value shown either as an editable input, as text, or both.
type Field struct {
	Input InputElement
	Text  TextElement
}

// Toggle a boolean shown as a checkbox and/or a status text.
type Toggle struct {
	Checkbox CheckboxElement
	Status   TextElement
}

// ConfigBindings every element the sensor config is rendered into. Nil
// members are skipped, so a page binds only what it shows.
type ConfigBindings struct {
	Temperature     TextElement
	HighTemperature TextElement // any sensor at or above its trigger
	MaxTemp         Field
	Hysteresis      Field
	ReportInterval  Field
	Location        Field
	DailyReport     Field // input gets "HH:MM", text gets the 12-hour form
	Armed           Toggle
	SendDailyReport Toggle
	RepeatAlerts    Toggle
	SignalIcon      ImageElement
	SignalType      TextElement
	PowerSource     TextElement
	BatteryIcon     ImageElement
	BatteryLevel    TextElement
	PhoneNumbers    TableElement
	DeleteLinks     bool // add a delete link column to the phone table
	Sensors         TableElement
}

// Empty reports whether nothing is bound, i.e. the page has no config section.
func (b ConfigBindings) Empty() bool {
	return b == ConfigBindings{}
}

// HistoryBindings elements the alarm history is rendered into.
type HistoryBindings struct {
	Table TableElement
}
