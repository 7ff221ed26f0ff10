// Package email provides helpers for presenting and shielding email
// addresses. Matching against stored payer emails is always exact and
// case-sensitive; nothing here is used on the comparison path.
package email

import (
	"strings"
	"unicode"
)

// Masked hides most of the local part so an address can appear in logs and
// the audit trail without exposing the full identity. "carol@example.com"
// becomes "c***@example.com". Strings without an @ are masked wholesale.
func Masked(email string) string {
	if email == "" {
		return ""
	}

	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return "***"
	}

	return email[:1] + "***" + email[at:]
}

// DeriveNameFromEmail guesses a display name from the local part of an
// address, splitting on common separators. "jan.kowalski@example.com" yields
// ("Jan", "Kowalski"). Addresses that defeat the heuristic fall back to
// ("User", "User").
func DeriveNameFromEmail(email string) (string, string) {
	localPart := email
	if at := strings.IndexByte(email, '@'); at >= 0 {
		localPart = email[:at]
	}

	parts := strings.FieldsFunc(localPart, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})

	if len(parts) == 0 {
		return "User", "User"
	}

	first := capitalize(parts[0])
	last := "User"
	if len(parts) > 1 {
		last = capitalize(parts[len(parts)-1])
	}

	return first, last
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
