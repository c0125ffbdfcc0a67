package handler

import (
	"fmt"
	"strings"

	"watermyplants/internal/domain"
	"watermyplants/internal/service"
)

const (
	emptyValue = "—"
	maskRune   = "•"
)

const usage = "Set a field by sending its command followed by the value:\n" +
	"/username bob-1\n" +
	"/email bob@example.com\n" +
	"/phone 415 555 1234\n" +
	"/password …\n" +
	"/verify …\n\n" +
	"/reset clears the form."

// renderForm builds the form card text. Each field line carries its
// error in the label, the way the web form annotated its inputs.
func renderForm(state domain.FormState, errs domain.ValidationErrors) string {
	var b strings.Builder

	b.WriteString("🌱 Registration\n\n")
	for _, field := range domain.Fields {
		value, _ := state.Value(field)
		fmt.Fprintf(&b, "%s: %s\n", service.FormatLabel(field, errs), displayValue(field, value))
	}
	fmt.Fprintf(&b, "Strength: %d/%d\n", state.PasswordScore, domain.MaxPasswordScore)

	if errs.Status() == domain.StatusClean {
		b.WriteString("\nAll set. Press Register! to sign up.")
	} else {
		b.WriteString("\n")
		b.WriteString(usage)
	}

	return b.String()
}

// displayValue masks secrets and marks empty values
func displayValue(field domain.Field, value string) string {
	if value == "" {
		return emptyValue
	}
	if field.Secret() {
		return strings.Repeat(maskRune, len([]rune(value)))
	}
	return value
}
