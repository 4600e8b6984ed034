// Package validation implements the client-side signup rules: a 10-digit
// mobile number and a strong password. Name and email are only required.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"unicode/utf16"

	"github.com/dmitrijs2005/bookapp/internal/client/models"
	"github.com/go-playground/validator/v10"
)

const (
	MsgMobile   = "Mobile number must be exactly 10 digits."
	MsgPassword = "Min 8 chars, with 1 uppercase, 1 digit, & 1 special char."
	MsgRequired = "This field is required."
)

var mobileRe = regexp.MustCompile(`^[0-9]{10}$`)

// FieldErrors maps a wire field name (e.g. "mobile_no") to its message.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+": "+fe[k])
	}
	return strings.Join(lines, "\n")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
		return IsMobileNumber(fl.Field().String())
	})
	_ = v.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
		return IsStrongPassword(fl.Field().String())
	})
	return v
}

// IsMobileNumber reports whether s is exactly ten ASCII digits.
func IsMobileNumber(s string) bool {
	return mobileRe.MatchString(s)
}

// IsStrongPassword reports whether s has at least 8 characters including an
// ASCII lowercase letter, an ASCII uppercase letter, an ASCII digit and any
// other character. Length is counted in UTF-16 code units and line breaks
// are not allowed, so the result agrees with the web signup form.
func IsStrongPassword(s string) bool {
	var n int
	var lower, upper, digit, special bool
	for _, r := range s {
		switch r {
		case '\n', '\r', '\u2028', '\u2029':
			return false
		}
		n += utf16.RuneLen(r)
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			special = true
		}
	}
	return n >= 8 && lower && upper && digit && special
}

// ValidateRegistration checks a signup form. It returns nil when the form may
// be sent.
func ValidateRegistration(r models.Registration) FieldErrors {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"": err.Error()}
	}

	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = message(fe.Tag())
	}
	return out
}

// ValidateField checks a single signup field as it is typed, returning the
// message to show or "" when the value is acceptable. Fields without a rule
// always pass.
func ValidateField(field, value string) string {
	var tag string
	switch field {
	case "mobile_no":
		tag = "mobile"
	case "password":
		tag = "strongpassword"
	default:
		return ""
	}
	if err := validate.Var(value, tag); err != nil {
		return message(tag)
	}
	return ""
}

func message(tag string) string {
	switch tag {
	case "mobile":
		return MsgMobile
	case "strongpassword":
		return MsgPassword
	default:
		return MsgRequired
	}
}
