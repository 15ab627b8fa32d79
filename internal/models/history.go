package models

// HistoryEntry one element of GET /get-history. Only Message is rendered;
// Temperature and Time are carried when the backend writes them.
type HistoryEntry struct {
	Message     string   `json:"message"`
	Temperature *float64 `json:"temperature,omitempty"`
	Time        string   `json:"time,omitempty"`
}
