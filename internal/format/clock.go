package format

import (
	"fmt"
	"strconv"
	"strings"
)

// ConvertTo12Hour turns "HH:MM" (24-hour) into "hh:mm AM|PM".
// Hour 0 becomes 12 AM, 12 stays 12 PM and 13-23 become 1-11 PM; both
// fields are zero padded. Malformed or out-of-range input is an error.
func ConvertTo12Hour(time24 string) (string, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(time24), ":")
	if !ok {
		return "", &FormatError{Kind: "time", Value: time24, Reason: "expected HH:MM"}
	}
	hours, err := strconv.Atoi(h)
	if err != nil || hours < 0 || hours > 23 {
		return "", &FormatError{Kind: "time", Value: time24, Reason: "hour must be 0-23"}
	}
	minutes, err := strconv.Atoi(m)
	if err != nil || minutes < 0 || minutes > 59 {
		return "", &FormatError{Kind: "time", Value: time24, Reason: "minute must be 0-59"}
	}

	period := "AM"
	if hours >= 12 {
		period = "PM"
	}
	hours %= 12
	if hours == 0 {
		hours = 12
	}
	return fmt.Sprintf("%02d:%02d %s", hours, minutes, period), nil
}
