// Package phone normalises North American phone numbers the way the
// registration form displays them.
package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const (
	defaultRegion      = "US"
	northAmericanCode  = 1
	nationalNumberSize = 10
)

// Formatter turns raw user input into the form's phone representation
type Formatter interface {
	Format(raw string) string
}

// NANPFormatter formats numbers of the North American Numbering Plan
type NANPFormatter struct{}

// NewNANPFormatter creates a NANP formatter
func NewNANPFormatter() *NANPFormatter {
	return &NANPFormatter{}
}

// Format returns "+1 (AAA) XXX-XXXX" for North American numbers.
// Input it cannot place in the plan is returned trimmed, unchanged,
// so validation can reject it.
func (f *NANPFormatter) Format(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	num, err := phonenumbers.Parse(raw, defaultRegion)
	if err != nil {
		return raw
	}
	if num.GetCountryCode() != northAmericanCode {
		return raw
	}
	if len(phonenumbers.GetNationalSignificantNumber(num)) != nationalNumberSize {
		return raw
	}

	return "+1 " + phonenumbers.Format(num, phonenumbers.NATIONAL)
}
