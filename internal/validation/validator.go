package validation

import (
	"regexp"
	"strings"
	"time"
)

// DateFormat is the format accepted for cutoff dates on the CLI.
const DateFormat = "2006-01-02"

// Validator provides common validation utilities
type Validator struct {
	controlCharRegex *regexp.Regexp
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		// Reject newlines, tabs, and other control characters; comments
		// are otherwise free text.
		controlCharRegex: regexp.MustCompile(`[\x00-\x08\x0a-\x1f\x7f]`),
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if a string length is within the specified range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := len(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsFreeText checks that a string contains no control characters
func (v *Validator) IsFreeText(s string) bool {
	return !v.controlCharRegex.MatchString(s)
}

// IsValidEntryID checks if an entry ID is valid (positive)
func (v *Validator) IsValidEntryID(id int64) bool {
	return id > 0
}

// IsValidDate checks if a string parses as a YYYY-MM-DD date
func (v *Validator) IsValidDate(s string) bool {
	_, err := time.ParseInLocation(DateFormat, s, time.Local)
	return err == nil
}

// TrimString trims surrounding whitespace and returns the cleaned string
func (v *Validator) TrimString(s string) string {
	return strings.TrimSpace(s)
}
