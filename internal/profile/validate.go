package profile

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Username limits.
const (
	UsernameMinLength = 3
	UsernameMaxLength = 20
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9 _-]+$`)

// Rule is one validation step. Transform, if set, rewrites the value before
// Test runs and the rewritten value carries on to later rules.
type Rule struct {
	Test      func(string) bool
	Transform func(string) string
	Message   string
}

// Validation is the outcome of running a Validator.
type Validation struct {
	Valid   bool
	Errors  []string
	Trimmed string // Value after all transforms
}

// Validator runs its rules in order and collects every failure.
type Validator []Rule

// Validate applies all rules to value.
func (v Validator) Validate(value string) Validation {
	var errs []string
	for _, r := range v {
		if r.Transform != nil {
			value = r.Transform(value)
		}
		if r.Test != nil && !r.Test(value) {
			errs = append(errs, r.Message)
		}
	}
	return Validation{Valid: len(errs) == 0, Errors: errs, Trimmed: value}
}

// Trim strips surrounding whitespace.
func Trim() Rule {
	return Rule{Transform: strings.TrimSpace}
}

// Required fails on an empty value.
func Required(message string) Rule {
	return Rule{Test: func(s string) bool { return s != "" }, Message: message}
}

// MinLength fails when the value has fewer than n characters.
func MinLength(n int) Rule {
	return Rule{
		Test:    func(s string) bool { return utf8.RuneCountInString(s) >= n },
		Message: fmt.Sprintf("Must be at least %d characters", n),
	}
}

// MaxLength fails when the value has more than n characters.
func MaxLength(n int) Rule {
	return Rule{
		Test:    func(s string) bool { return utf8.RuneCountInString(s) <= n },
		Message: fmt.Sprintf("Must be at most %d characters", n),
	}
}

// Pattern fails when the value does not match re.
func Pattern(re *regexp.Regexp, message string) Rule {
	return Rule{Test: re.MatchString, Message: message}
}

var usernameValidator = Validator{
	Trim(),
	Required("Username is required"),
	MinLength(UsernameMinLength),
	MaxLength(UsernameMaxLength),
	Pattern(usernamePattern, "Username can only contain letters, numbers, spaces, underscores, and hyphens"),
}

// ValidateUsername checks a username and returns its trimmed form.
func ValidateUsername(username string) Validation {
	return usernameValidator.Validate(username)
}

// ValidationError carries every message of a failed validation.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}
