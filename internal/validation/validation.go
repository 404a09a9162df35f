// Package validation contains field checks shared by the admin client
// and the server. Checks return a descriptive error; callers decide how
// to surface it.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	slugRegexp  = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	colorRegexp = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// ValidateEmail checks basic email shape.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if len(email) > 254 {
		return fmt.Errorf("email is too long")
	}
	if !emailRegexp.MatchString(email) {
		return fmt.Errorf("email format is invalid")
	}
	return nil
}

// ValidatePassword checks the minimal password policy for console accounts.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password is required")
	}
	if len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}
	return nil
}

// ValidateRequired checks that a free-text field is non-blank.
func ValidateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

// ValidateSlug checks a URL slug (lowercase, digits, single hyphens).
func ValidateSlug(slug string) error {
	if slug == "" {
		return fmt.Errorf("slug is required")
	}
	if !slugRegexp.MatchString(slug) {
		return fmt.Errorf("slug may contain lowercase letters, digits and hyphens only")
	}
	return nil
}

// ValidateHexColor checks a #RRGGBB color value.
func ValidateHexColor(color string) error {
	if color == "" {
		return nil // optional
	}
	if !colorRegexp.MatchString(color) {
		return fmt.Errorf("color must be in #RRGGBB format")
	}
	return nil
}

// ValidateOneOf checks that value is one of the allowed enum members.
func ValidateOneOf(field, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("%s must be one of: %s", field, strings.Join(allowed, ", "))
}
