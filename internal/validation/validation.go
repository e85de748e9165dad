// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks basic email format
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}

	if len(email) > 254 {
		return fmt.Errorf("email must not exceed 254 characters")
	}

	return nil
}

// ValidateName checks the display name used on posts and comments.
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("name is required")
	}
	if len(trimmed) > 250 {
		return fmt.Errorf("name must not exceed 250 characters")
	}
	return nil
}

// ValidatePassword checks if a password meets minimum requirements
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}

	if len(password) > 128 {
		return fmt.Errorf("password must not exceed 128 characters")
	}

	return nil
}

// ValidatePostInput checks the required fields of a post create/edit payload.
func ValidatePostInput(title, subtitle, body string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title is required")
	}
	if len(title) > 250 {
		return fmt.Errorf("title must not exceed 250 characters")
	}
	if strings.TrimSpace(subtitle) == "" {
		return fmt.Errorf("subtitle is required")
	}
	if len(subtitle) > 250 {
		return fmt.Errorf("subtitle must not exceed 250 characters")
	}
	if strings.TrimSpace(body) == "" {
		return fmt.Errorf("body is required")
	}
	return nil
}

// ValidateCommentInput checks the required fields of a comment payload.
func ValidateCommentInput(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("comment text is required")
	}
	if len(text) > 10000 {
		return fmt.Errorf("comment must not exceed 10000 characters")
	}
	return nil
}
