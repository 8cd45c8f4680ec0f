package goAuthClient

import (
	"regexp"
	"unicode"
)

// Field names accepted by [ValidateField]. They match the JSON field names
// of [RegistrationProfile].
const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldEmail    = "email"
	FieldPhone    = "phone"
)

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,}$`)
	emailRe    = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phoneRe    = regexp.MustCompile(`^[0-9]{10}$`)
)

// ValidateField maps a field name and raw value to a validation message, or
// "" when the value passes. It is pure: no I/O, no state.
func ValidateField(name, value string) string {
	switch name {
	case FieldUsername:
		if value == "" {
			return "Username is required."
		}
		if !usernameRe.MatchString(value) {
			return "Username must be at least 3 characters long and no spaces."
		}
	case FieldPassword:
		if value == "" {
			return "Password is required."
		}
		if !passwordOK(value) {
			return "Password must be at least 8 characters with 1 uppercase and 1 number."
		}
	case FieldEmail:
		if value == "" {
			return "Email is required."
		}
		if !emailRe.MatchString(value) {
			return "Please enter a valid email address."
		}
	case FieldPhone:
		if value == "" {
			return "Phone number is required."
		}
		if !phoneRe.MatchString(value) {
			return "Phone number must be exactly 10 digits."
		}
	}
	return ""
}

// passwordOK enforces length >= 8 with at least one uppercase letter and one
// digit. RE2 has no lookahead, so the rule is spelled out.
func passwordOK(value string) bool {
	if len(value) < 8 {
		return false
	}
	var upper, digit bool
	for _, r := range value {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && digit
}

// ValidateForm applies every field rule to profile. The outcome is valid iff
// every message is empty. Errors always carries all four keys so callers can
// surface per-field state without existence checks.
func ValidateForm(profile RegistrationProfile) ValidationResult {
	errs := FieldErrors{
		FieldUsername: ValidateField(FieldUsername, profile.Username),
		FieldPassword: ValidateField(FieldPassword, profile.Password),
		FieldEmail:    ValidateField(FieldEmail, profile.Email),
		FieldPhone:    ValidateField(FieldPhone, profile.Phone),
	}
	return ValidationResult{
		IsValid: !errs.HasErrors(),
		Errors:  errs,
	}
}
