// Package phone normalizes phone numbers for dedup and dispatch.
package phone

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Canonical returns the dedup key for a raw phone number within a
// workspace. Numbers that parse cleanly are canonicalized to E.164;
// anything else falls back to its digit-only form so that two
// differently punctuated copies of the same number still collide.
func Canonical(raw, defaultRegion string) string {
	if defaultRegion == "" {
		defaultRegion = "IN"
	}
	parsed, err := phonenumbers.Parse(raw, defaultRegion)
	if err == nil && phonenumbers.IsValidNumber(parsed) {
		return phonenumbers.Format(parsed, phonenumbers.E164)
	}
	return Digits(raw)
}

// Digits strips every non-digit character.
func Digits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DispatchFormat converts a stored phone number into the form the
// messaging provider expects: digit-only, with the workspace default
// country code prefixed when the number is exactly 10 digits. Numbers
// of any other length pass through unchanged; a bad number surfaces as
// a provider delivery failure rather than a local rejection.
func DispatchFormat(raw, defaultCountryCode string) string {
	digits := Digits(raw)
	if len(digits) == 10 {
		return defaultCountryCode + digits
	}
	return digits
}

// Validate reports whether a raw number parses as a valid number for
// the region, returning the E.164 form when it does.
func Validate(raw, defaultRegion string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("phone number cannot be empty")
	}
	if defaultRegion == "" {
		defaultRegion = "IN"
	}
	parsed, err := phonenumbers.Parse(raw, defaultRegion)
	if err != nil {
		return "", fmt.Errorf("failed to parse phone number: %w", err)
	}
	if !phonenumbers.IsValidNumber(parsed) {
		return "", fmt.Errorf("invalid phone number: %s", raw)
	}
	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}
