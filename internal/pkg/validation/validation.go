package validation

import (
	"net/url"
	"regexp"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Phone: digits, spaces, dashes, parens, plus, dots only.
var phoneRe = regexp.MustCompile(`^[\d\s\-\(\)\+\.]+$`)

func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// IsValidPhone checks characters only; length limits are enforced by the
// field schema.
func IsValidPhone(phone string) bool {
	return phoneRe.MatchString(phone)
}

// IsValidURL requires an absolute http(s) URL with a host.
func IsValidURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// FieldErrors is a field-keyed set of validation messages, returned
// synchronously to callers and never persisted.
type FieldErrors map[string][]string

func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

func (f FieldErrors) Empty() bool {
	return len(f) == 0
}
