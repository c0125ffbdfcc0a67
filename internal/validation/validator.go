// Package validation checks registration form values field by field.
package validation

import (
	"regexp"
	"unicode/utf8"

	"watermyplants/internal/domain"

	"github.com/go-playground/validator/v10"
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	phonePattern    = regexp.MustCompile(`^$|^(\+1\s?)?((\([0-9]{3}\))|[0-9]{3})[\s-]?[0-9]{3}[\s-]?[0-9]{4}$`)
)

// Result is the outcome of a single field rule
type Result struct {
	OK      bool
	Kind    domain.ErrorKind
	Message string
}

// Ok is a passing result
func Ok() Result {
	return Result{OK: true}
}

// Err is a failing result
func Err(kind domain.ErrorKind, message string) Result {
	return Result{Kind: kind, Message: message}
}

// rule checks one field of a form state
type rule struct {
	field domain.Field
	check func(domain.FormState) Result
}

// Validator evaluates every rule against a form state
type Validator struct {
	rules []rule
	tags  *validator.Validate
}

// New creates a validator with the registration rule set
func New() *Validator {
	v := &Validator{tags: validator.New()}
	v.rules = []rule{
		{field: domain.FieldUsername, check: v.checkUsername},
		{field: domain.FieldEmail, check: v.checkEmail},
		{field: domain.FieldPhone, check: v.checkPhone},
		{field: domain.FieldPassword, check: v.checkPassword},
		{field: domain.FieldVerifyPassword, check: v.checkVerifyPassword},
	}
	return v
}

// Validate returns one entry per failing field. Every rule runs; none
// short-circuits another. The strength gate is applied after the field
// rules and only fills the password entry when no field rule claimed it.
func (v *Validator) Validate(state domain.FormState) domain.ValidationErrors {
	errs := make(domain.ValidationErrors)

	for _, r := range v.rules {
		if res := r.check(state); !res.OK {
			errs[r.field] = res.Message
		}
	}

	if res := CheckStrength(state); !res.OK && !errs.Has(domain.FieldPassword) {
		errs[domain.FieldPassword] = res.Message
	}

	return errs
}

func (v *Validator) checkUsername(s domain.FormState) Result {
	if s.Username == "" {
		return Err(domain.KindRequired, domain.MsgRequired)
	}
	if !usernamePattern.MatchString(s.Username) {
		return Err(domain.KindInvalidFormat, domain.MsgUsernameFormat)
	}
	return Ok()
}

func (v *Validator) checkEmail(s domain.FormState) Result {
	if s.Email == "" {
		return Err(domain.KindRequired, domain.MsgRequired)
	}
	if err := v.tags.Var(s.Email, "email"); err != nil {
		return Err(domain.KindInvalidFormat, domain.MsgEmailFormat)
	}
	return Ok()
}

// Phone is optional: an empty value passes.
func (v *Validator) checkPhone(s domain.FormState) Result {
	if !phonePattern.MatchString(s.Phone) {
		return Err(domain.KindInvalidFormat, domain.MsgPhoneFormat)
	}
	return Ok()
}

func (v *Validator) checkPassword(s domain.FormState) Result {
	if utf8.RuneCountInString(s.Password) > domain.MaxPasswordLength {
		return Err(domain.KindTooLong, domain.MsgPasswordTooLong)
	}
	if s.Password == "" {
		return Err(domain.KindRequired, domain.MsgRequired)
	}
	return Ok()
}

func (v *Validator) checkVerifyPassword(s domain.FormState) Result {
	if s.VerifyPassword != s.Password {
		return Err(domain.KindMismatch, domain.MsgPasswordsDiffer)
	}
	return Ok()
}

// CheckStrength fails when the estimator score is below the accepted minimum
func CheckStrength(s domain.FormState) Result {
	if s.PasswordScore < domain.StrongPasswordScore {
		return Err(domain.KindTooWeak, domain.MsgPasswordWeak)
	}
	return Ok()
}
