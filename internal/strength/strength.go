// Package strength scores passwords on the 0-4 scale used by the form.
package strength

import (
	"unicode/utf8"

	"watermyplants/internal/domain"

	"github.com/nbutton23/zxcvbn-go"
)

// Estimator scores a password from 0 (weakest) to 4 (strongest)
type Estimator interface {
	Score(password string, userInputs ...string) int
}

// scoredRunes bounds the prefix handed to zxcvbn. Its matching cost
// grows much faster than the input length.
const scoredRunes = 64

// Zxcvbn estimates strength with the zxcvbn algorithm
type Zxcvbn struct{}

// NewZxcvbn creates a zxcvbn backed estimator
func NewZxcvbn() *Zxcvbn {
	return &Zxcvbn{}
}

// Score returns the clamped zxcvbn score. User inputs (username, email)
// count against the password when it reuses them. Passwords longer than
// the form accepts score 0 without being analysed.
func (z *Zxcvbn) Score(password string, userInputs ...string) int {
	if password == "" || utf8.RuneCountInString(password) > domain.MaxPasswordLength {
		return domain.MinPasswordScore
	}
	score := zxcvbn.PasswordStrength(truncate(password, scoredRunes), userInputs).Score
	if score < domain.MinPasswordScore {
		return domain.MinPasswordScore
	}
	if score > domain.MaxPasswordScore {
		return domain.MaxPasswordScore
	}
	return score
}

// truncate returns at most n leading runes of s
func truncate(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
