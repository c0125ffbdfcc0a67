package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNANPFormatter_Format(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bare digits",
			input:    "4155551234",
			expected: "+1 (415) 555-1234",
		},
		{
			name:     "with country code",
			input:    "+1 415 555 1234",
			expected: "+1 (415) 555-1234",
		},
		{
			name:     "already formatted",
			input:    "+1 (415) 555-1234",
			expected: "+1 (415) 555-1234",
		},
		{
			name:     "empty",
			input:    "   ",
			expected: "",
		},
		{
			name:     "not a number",
			input:    " call me ",
			expected: "call me",
		},
		{
			name:     "outside north america",
			input:    "+44 20 7946 0958",
			expected: "+44 20 7946 0958",
		},
		{
			name:     "too short",
			input:    "555-1234",
			expected: "555-1234",
		},
	}

	f := NewNANPFormatter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, f.Format(tt.input))
		})
	}
}
