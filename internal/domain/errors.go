package domain

// ErrorKind classifies why a field failed validation
type ErrorKind string

const (
	KindRequired      ErrorKind = "required"
	KindInvalidFormat ErrorKind = "invalid_format"
	KindTooLong       ErrorKind = "too_long"
	KindTooWeak       ErrorKind = "too_weak"
	KindMismatch      ErrorKind = "mismatch"
)

// Messages shown next to a failing field
const (
	MsgRequired        = "Required"
	MsgUsernameFormat  = "Alphanumeric characters and dashes only"
	MsgEmailFormat     = "Invalid email address"
	MsgPhoneFormat     = "Invalid phone number"
	MsgPasswordTooLong = "Why so long?"
	MsgPasswordWeak    = "Too weak"
	MsgPasswordsDiffer = "Passwords must match"
)

// ValidationErrors maps a failing field to its message.
// A field without an entry is valid.
type ValidationErrors map[Field]string

// Empty reports whether no field failed
func (e ValidationErrors) Empty() bool {
	return len(e) == 0
}

// Has reports whether the field failed
func (e ValidationErrors) Has(field Field) bool {
	_, ok := e[field]
	return ok
}

// Clone returns an independent copy
func (e ValidationErrors) Clone() ValidationErrors {
	out := make(ValidationErrors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// FormStatus aggregates field validity for the whole form
type FormStatus string

const (
	StatusClean FormStatus = "clean"
	StatusDirty FormStatus = "dirty"
)

// Status derives the form status from its errors
func (e ValidationErrors) Status() FormStatus {
	if e.Empty() {
		return StatusClean
	}
	return StatusDirty
}
