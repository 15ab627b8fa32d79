package format

import (
	"fmt"
	"strings"
)

// Digits strips every non-digit character.
func Digits(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatPhoneNumber renders an 11-digit, leading-1 number as "+1 (AAA) EEE-LLLL".
// Punctuation and whitespace in raw are ignored. Any other digit count,
// including a bare 10-digit number, is an InvalidFormat error; use
// NormalizePhoneNumber first when 10-digit input is acceptable.
func FormatPhoneNumber(raw string) (string, error) {
	d := Digits(raw)
	if len(d) != 11 || d[0] != '1' {
		return "", &FormatError{Kind: "phone number", Value: raw, Reason: "expected 11 digits starting with 1"}
	}
	return fmt.Sprintf("+%s (%s) %s-%s", d[:1], d[1:4], d[4:7], d[7:11]), nil
}

// NormalizePhoneNumber returns the 11-digit form of raw: 10-digit numbers
// get the leading country code 1, 11-digit numbers must already start with 1.
func NormalizePhoneNumber(raw string) (string, error) {
	d := Digits(raw)
	switch {
	case len(d) == 10:
		return "1" + d, nil
	case len(d) == 11 && d[0] == '1':
		return d, nil
	default:
		return "", &FormatError{Kind: "phone number", Value: raw, Reason: "expected 10 digits, or 11 starting with 1"}
	}
}
