package components

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Credentials is the login form model.
type Credentials struct {
	Email      string `validate:"required,email"`
	Password   string `validate:"required,min=6"`
	RememberMe bool
}

const (
	FieldEmail    = "Email"
	FieldPassword = "Password"
)

var fieldMessages = map[string]map[string]string{
	FieldEmail: {
		"required": "Email is required",
		"email":    "Please enter a valid email address",
	},
	FieldPassword: {
		"required": "Password is required",
		"min":      "Password must be at least 6 characters",
	},
}

var (
	formValidator     *validator.Validate
	formValidatorOnce sync.Once
)

func loginValidator() *validator.Validate {
	formValidatorOnce.Do(func() {
		formValidator = validator.New(validator.WithRequiredStructEnabled())
	})
	return formValidator
}

// LoginForm binds an email input and a password input to Credentials through
// their ValueAccessor side and validates on demand.
type LoginForm struct {
	Email    *Input
	Password *PasswordInput

	values  Credentials
	touched map[string]bool
	success string
}

// NewLoginForm wires fresh inputs to an empty form.
func NewLoginForm() *LoginForm {
	f := &LoginForm{
		Email:    NewInput(InputOptions{Type: "email", Placeholder: "you@example.com"}),
		Password: NewPasswordInput(PasswordInputOptions{Placeholder: "Password"}),
		touched:  map[string]bool{},
	}
	bind(f.Email, func(v string) {
		f.values.Email = v
		f.refresh()
	}, func() { f.touch(FieldEmail) })
	bind(f.Password, func(v string) {
		f.values.Password = v
		f.refresh()
	}, func() { f.touch(FieldPassword) })
	return f
}

func bind(a ValueAccessor, onChange func(string), onTouched func()) {
	a.WriteValue("")
	a.RegisterOnChange(onChange)
	a.RegisterOnTouched(onTouched)
}

// Values returns the current model.
func (f *LoginForm) Values() Credentials { return f.values }

// SetRememberMe updates the remember-me checkbox.
func (f *LoginForm) SetRememberMe(v bool) { f.values.RememberMe = v }

// Touched reports whether the named field has been blurred.
func (f *LoginForm) Touched(field string) bool { return f.touched[field] }

// Success is the message of the last successful submit.
func (f *LoginForm) Success() string { return f.success }

func (f *LoginForm) touch(field string) {
	f.touched[field] = true
	f.refresh()
}

// Errors returns the first failing rule message per field, ignoring touch
// state.
func (f *LoginForm) Errors() map[string]string {
	out := map[string]string{}
	err := loginValidator().Struct(f.values)
	if err == nil {
		return out
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		out[""] = err.Error()
		return out
	}
	for _, fe := range fieldErrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		msg, ok := fieldMessages[fe.Field()][fe.Tag()]
		if !ok {
			msg = fmt.Sprintf("%s is invalid", fe.Field())
		}
		out[fe.Field()] = msg
	}
	return out
}

// Valid reports whether every rule passes.
func (f *LoginForm) Valid() bool {
	return len(f.Errors()) == 0
}

// FieldError returns the message for a touched, invalid field, or "".
func (f *LoginForm) FieldError(field string) string {
	if !f.touched[field] {
		return ""
	}
	return f.Errors()[field]
}

// Submit validates the form. A failed submit marks every field touched so
// all errors show; a successful one records the welcome message and resets
// the form.
func (f *LoginForm) Submit() (string, bool) {
	f.success = ""
	if !f.Valid() {
		f.touched[FieldEmail] = true
		f.touched[FieldPassword] = true
		f.refresh()
		return "", false
	}

	f.success = fmt.Sprintf("Login successful! Welcome, %s", f.values.Email)
	f.reset()
	return f.success, true
}

func (f *LoginForm) reset() {
	f.values = Credentials{}
	f.touched = map[string]bool{}
	f.Email.WriteValue("")
	f.Password.WriteValue("")
	f.refresh()
}

// refresh mirrors field errors onto the inputs' validation state.
func (f *LoginForm) refresh() {
	f.Email.WithValidation(validationFor(f.FieldError(FieldEmail)))
	f.Password.WithValidation(validationFor(f.FieldError(FieldPassword)))
}

func validationFor(msg string) Validation {
	if msg != "" {
		return ValidationInvalid
	}
	return ValidationNormal
}
