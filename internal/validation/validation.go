// Package validation holds input checks shared by the CLI and TUI.
package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/tallyhq/tally/internal/constants"
)

// HabitName rejects names that are empty after trimming.
func HabitName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("habit name cannot be empty")
	}
	return nil
}

// UID rejects empty identifiers and identifiers containing whitespace.
func UID(uid string) error {
	trimmed := strings.TrimSpace(uid)
	if trimmed == "" {
		return fmt.Errorf("username cannot be empty")
	}
	if strings.ContainsAny(trimmed, " \t") {
		return fmt.Errorf("username cannot contain whitespace")
	}
	return nil
}

// Password rejects empty passwords.
func Password(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	return nil
}

// Date checks for the canonical YYYY-MM-DD format.
func Date(date string) error {
	if _, err := time.Parse(constants.DateFormat, date); err != nil {
		return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", date)
	}
	return nil
}

// Month accepts 1-12, or 0 meaning no month filter.
func Month(month int) error {
	if month < 0 || month > 12 {
		return fmt.Errorf("invalid month: %d (expected 1-12, or 0 for all)", month)
	}
	return nil
}
