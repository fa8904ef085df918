package errors

import (
	"math"
	"net/mail"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ValidateStarCount rejects negative counts and counts above limit.
// A limit of zero or less disables the upper bound.
func ValidateStarCount(n, limit int) error {
	if n < 0 {
		return New(ErrCodeInvalidStarCount, "star count must not be negative: %d", n)
	}
	if limit > 0 && n > limit {
		return New(ErrCodeInvalidStarCount, "star count %d exceeds limit of %d", n, limit)
	}
	return nil
}

// ValidateDimension checks that a frame dimension is a finite positive number.
func ValidateDimension(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidDimensions, "%s must be a finite number", name)
	}
	if v <= 0 {
		return New(ErrCodeInvalidDimensions, "%s must be positive, got %g", name, v)
	}
	return nil
}

// ValidateEmail checks that s is a bare address such as "ada@example.com".
// Display-name forms like "Ada <ada@example.com>" are rejected.
func ValidateEmail(s string) error {
	if s == "" {
		return New(ErrCodeInvalidLead, "email cannot be empty")
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s || addr.Name != "" {
		return New(ErrCodeInvalidLead, "invalid email address: %q", s)
	}
	if !strings.Contains(addr.Address[strings.LastIndex(addr.Address, "@")+1:], ".") {
		return New(ErrCodeInvalidLead, "email domain must contain a dot: %q", s)
	}
	return nil
}

// ValidateURL accepts absolute http(s) URLs with a host, such as
// "https://github.com/ada". Whitespace anywhere in the string is rejected.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}
	if strings.IndexFunc(rawURL, unicode.IsSpace) >= 0 {
		return New(ErrCodeInvalidInput, "URL must not contain whitespace")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return New(ErrCodeInvalidInput, "malformed URL: %q", rawURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}
	if u.Host == "" {
		return New(ErrCodeInvalidInput, "URL must include a host")
	}
	return nil
}

// ValidateText checks a free-text field: valid UTF-8, at most limit runes and
// no control characters other than newlines and tabs.
func ValidateText(field, s string, limit int) error {
	if !utf8.ValidString(s) {
		return New(ErrCodeInvalidInput, "%s is not valid UTF-8", field)
	}
	if n := utf8.RuneCountInString(s); n > limit {
		return New(ErrCodeInvalidInput, "%s too long (%d characters, max %d)", field, n, limit)
	}
	for _, r := range s {
		if r == '\n' || r == '\r' || r == '\t' {
			continue
		}
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "%s contains invalid control characters", field)
		}
	}
	return nil
}
