package validator

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestParseError(t *testing.T) {
	type loginForm struct {
		Email    string `validate:"required,email"`
		Password string `validate:"required"`
	}

	v := validator.New()

	t.Run("one entry per failing field", func(t *testing.T) {
		fields := ParseError(v.Struct(loginForm{Email: "not-an-email"}))
		if len(fields) != 2 {
			t.Fatalf("fields = %v, want entries for Email and Password", fields)
		}
		if msg := fields["Email"]; !strings.Contains(msg, "'email'") {
			t.Errorf("Email message = %q, want the failed tag named", msg)
		}
		if msg := fields["Password"]; !strings.Contains(msg, "'required'") {
			t.Errorf("Password message = %q, want the failed tag named", msg)
		}
	})

	t.Run("non-validator error becomes a single entry", func(t *testing.T) {
		fields := ParseError(errors.New("unexpected EOF"))
		if len(fields) != 1 || fields["error"] != "unexpected EOF" {
			t.Errorf("fields = %v, want one generic entry", fields)
		}
	})

	t.Run("nil error yields an empty map", func(t *testing.T) {
		if fields := ParseError(nil); len(fields) != 0 {
			t.Errorf("fields = %v, want empty", fields)
		}
	})
}
