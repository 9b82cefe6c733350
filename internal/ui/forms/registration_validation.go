package forms

import (
	"strings"
	"time"

	"github.com/Its-donkey/cinecraft-moderation/internal/ui/toast"
)

// Registration holds the values of the sign-up form fields.
type Registration struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// RegistrationErrors flags the checks a registration failed.
type RegistrationErrors struct {
	Missing  bool
	Mismatch bool
}

// OK reports whether the form may be submitted.
func (e RegistrationErrors) OK() bool {
	return !e.Missing && !e.Mismatch
}

// Message returns the text shown to the user for the first failed check.
func (e RegistrationErrors) Message() string {
	switch {
	case e.Missing:
		return "Please fill all required fields."
	case e.Mismatch:
		return "Passwords do not match."
	default:
		return ""
	}
}

// ValidateRegistration checks required fields and that both passwords match.
// Username and email are trimmed; passwords are compared as typed.
func ValidateRegistration(form Registration) RegistrationErrors {
	var errs RegistrationErrors
	if strings.TrimSpace(form.Username) == "" || strings.TrimSpace(form.Email) == "" || form.Password == "" {
		errs.Missing = true
		return errs
	}
	if form.Password != form.ConfirmPassword {
		errs.Mismatch = true
	}
	return errs
}

// MessageTimeout returns how long a flash message with the given classes
// stays on screen.
func MessageTimeout(classes []string) time.Duration {
	for _, class := range classes {
		if class == toast.LongLivedClass {
			return toast.LongDelay
		}
	}
	return toast.ShortDelay
}
