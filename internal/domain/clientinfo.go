package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// emailPattern matches the email shape the contact form has always accepted:
// something@something.tld, no whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ClientInfo is the free-form client block attached to bookings and shared
// with the contact form. Name and Email are the only mandatory fields.
type ClientInfo struct {
	Name    string
	Email   string
	Phone   *string
	Company *string
	Message *string
}

// Normalize trims whitespace and lowercases the email in place.
func (c *ClientInfo) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.Phone = trimPtr(c.Phone)
	c.Company = trimPtr(c.Company)
	c.Message = trimPtr(c.Message)
}

// Validate проверяет обязательные поля. Единая функция для формы и для
// авторитетного пути бронирования, чтобы контракты не расходились.
func (c *ClientInfo) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(c.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if !emailPattern.MatchString(strings.TrimSpace(c.Email)) {
		return fmt.Errorf("invalid email address")
	}
	if c.Phone != nil && len(*c.Phone) > MaxPhoneLength {
		return fmt.Errorf("phone number is too long")
	}
	if c.Company != nil && len(*c.Company) > MaxCompanyLength {
		return fmt.Errorf("company name is too long")
	}
	return nil
}

// ValidEmail reports whether s looks like an acceptable email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(strings.TrimSpace(s))
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
