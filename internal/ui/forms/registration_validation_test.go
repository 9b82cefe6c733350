package forms

import (
	"testing"

	"github.com/Its-donkey/cinecraft-moderation/internal/ui/toast"
)

func TestValidateRegistration(t *testing.T) {
	cases := []struct {
		name    string
		form    Registration
		message string
	}{
		{"empty", Registration{}, "Please fill all required fields."},
		{"blank username", Registration{Username: "  ", Email: "a@b.c", Password: "pw", ConfirmPassword: "pw"}, "Please fill all required fields."},
		{"missing password", Registration{Username: "ana", Email: "a@b.c"}, "Please fill all required fields."},
		{"mismatch", Registration{Username: "ana", Email: "a@b.c", Password: "pw", ConfirmPassword: "pw "}, "Passwords do not match."},
		{"valid", Registration{Username: "ana", Email: "a@b.c", Password: " pw", ConfirmPassword: " pw"}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := ValidateRegistration(tc.form)
			if got := errs.Message(); got != tc.message {
				t.Fatalf("message = %q, want %q", got, tc.message)
			}
			if errs.OK() != (tc.message == "") {
				t.Fatalf("OK() = %v for %+v", errs.OK(), errs)
			}
		})
	}
}

func TestMessageTimeout(t *testing.T) {
	if got := MessageTimeout([]string{"message", "show", "otp"}); got != toast.LongDelay {
		t.Fatalf("otp messages should stay %s, got %s", toast.LongDelay, got)
	}
	if got := MessageTimeout([]string{"message", "show", "error"}); got != toast.ShortDelay {
		t.Fatalf("ordinary messages should stay %s, got %s", toast.ShortDelay, got)
	}
}
