package domain

import "errors"

// Field names a single input of the registration form
type Field string

const (
	FieldUsername       Field = "username"
	FieldEmail          Field = "email"
	FieldPhone          Field = "phone"
	FieldPassword       Field = "password"
	FieldVerifyPassword Field = "verifyPassword"
)

// Fields lists the form inputs in display order
var Fields = []Field{
	FieldUsername,
	FieldEmail,
	FieldPhone,
	FieldPassword,
	FieldVerifyPassword,
}

// DisplayName returns the human readable field label
func (f Field) DisplayName() string {
	switch f {
	case FieldUsername:
		return "Username"
	case FieldEmail:
		return "Email"
	case FieldPhone:
		return "Phone Number"
	case FieldPassword:
		return "Password"
	case FieldVerifyPassword:
		return "Verify Password"
	}
	return string(f)
}

// Secret reports whether the field value must be masked when shown
func (f Field) Secret() bool {
	return f == FieldPassword || f == FieldVerifyPassword
}

// Password score bounds as reported by a strength estimator
const (
	MinPasswordScore    = 0
	MaxPasswordScore    = 4
	StrongPasswordScore = 3
)

// MaxPasswordLength is the longest password the form accepts
const MaxPasswordLength = 320

var (
	ErrUnknownField       = errors.New("unknown form field")
	ErrScoreOutOfRange    = errors.New("password score out of range")
	ErrRegistrationFailed = errors.New("registration request failed")
)

// FormState holds the current values of the registration form.
// It is a value type: every change produces a new copy.
type FormState struct {
	Username       string
	Email          string
	Phone          string
	Password       string
	VerifyPassword string
	PasswordScore  int
}

// EmptyForm returns the initial form state
func EmptyForm() FormState {
	return FormState{}
}

// Value returns the text value of a field
func (s FormState) Value(field Field) (string, error) {
	switch field {
	case FieldUsername:
		return s.Username, nil
	case FieldEmail:
		return s.Email, nil
	case FieldPhone:
		return s.Phone, nil
	case FieldPassword:
		return s.Password, nil
	case FieldVerifyPassword:
		return s.VerifyPassword, nil
	}
	return "", ErrUnknownField
}

// With returns a copy of the state with one text field replaced
func (s FormState) With(field Field, value string) (FormState, error) {
	switch field {
	case FieldUsername:
		s.Username = value
	case FieldEmail:
		s.Email = value
	case FieldPhone:
		s.Phone = value
	case FieldPassword:
		s.Password = value
	case FieldVerifyPassword:
		s.VerifyPassword = value
	default:
		return s, ErrUnknownField
	}
	return s, nil
}

// WithScore returns a copy of the state with a new password score
func (s FormState) WithScore(score int) (FormState, error) {
	if score < MinPasswordScore || score > MaxPasswordScore {
		return s, ErrScoreOutOfRange
	}
	s.PasswordScore = score
	return s, nil
}

// Payload projects the state onto the data sent to the registration API
func (s FormState) Payload() NewUserPayload {
	return NewUserPayload{
		Username: s.Username,
		Email:    s.Email,
		Phone:    s.Phone,
		Password: s.Password,
	}
}

// NewUserPayload is the body of a registration request
type NewUserPayload struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}
