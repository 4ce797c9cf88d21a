// Package validation holds the predicate checks applied to raw request input
// before shaping. Every failure is a *apperr.ValidationError naming the field,
// which handlers translate to a 400 response.
package validation

import (
	"strings"

	"github.com/tinselworks/noel/internal/apperr"
)

// Required fails when v is nil or an empty string.
func Required(v any, field string) error {
	if v == nil {
		return apperr.Validationf(field, "%s is required", field)
	}
	s, ok := v.(string)
	if ok && strings.TrimSpace(s) == "" {
		return apperr.Validationf(field, "%s is required", field)
	}
	return nil
}

// Email checks a simple local@domain.tld shape: no whitespace, exactly one
// @, and at least one dot in the domain part.
func Email(v string) error {
	if v == "" || strings.ContainsAny(v, " \t\r\n") {
		return apperr.Validation("email", "invalid email address")
	}
	at := strings.Index(v, "@")
	if at <= 0 || at != strings.LastIndex(v, "@") || at == len(v)-1 {
		return apperr.Validation("email", "invalid email address")
	}
	domain := v[at+1:]
	dot := strings.Index(domain, ".")
	if dot <= 0 || dot == len(domain)-1 {
		return apperr.Validation("email", "invalid email address")
	}
	return nil
}

// Length fails when the rune length of v is outside [min, max].
func Length(v string, min, max int, field string) error {
	n := len([]rune(v))
	if n < min || n > max {
		return apperr.Validationf(field, "%s must be between %d and %d characters", field, min, max)
	}
	return nil
}

// ByteLength fails when the byte length of v is outside [min, max]. Length
// counts runes; this exists for fields whose downstream bound is bytes, like
// bcrypt's 72-byte password cap.
func ByteLength(v string, min, max int, field string) error {
	if len(v) < min || len(v) > max {
		return apperr.Validationf(field, "%s must be between %d and %d bytes", field, min, max)
	}
	return nil
}

// Enum fails when v is not a member of allowed. This is the enforcing policy;
// the silent-default counterpart is transform.CoerceEnum.
func Enum(v string, allowed []string, field string) error {
	for _, a := range allowed {
		if v == a {
			return nil
		}
	}
	return apperr.Validationf(field, "%s must be one of: %s", field, strings.Join(allowed, ", "))
}
