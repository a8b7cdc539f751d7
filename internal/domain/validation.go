package domain

import (
	"fmt"
	"regexp"
	"strings"
)

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

var bloodGroups = map[string]bool{
	"A+": true, "A-": true,
	"B+": true, "B-": true,
	"AB+": true, "AB-": true,
	"O+": true, "O-": true,
}

// BloodGroups lists the accepted groups in display order.
func BloodGroups() []string {
	return []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}
}

// ValidatePhone checks that phone is exactly ten digits.
func ValidatePhone(phone string) error {
	if !phonePattern.MatchString(phone) {
		return ErrInvalidPhoneFormat
	}
	return nil
}

// NormalizeBloodGroup trims and upper-cases group and rejects unknown values.
func NormalizeBloodGroup(group string) (string, error) {
	g := strings.ToUpper(strings.TrimSpace(group))
	if !bloodGroups[g] {
		return "", fmt.Errorf("%w: unknown blood group %q", ErrInvalidInput, group)
	}
	return g, nil
}

// RequireText returns the trimmed value or an ErrInvalidInput naming the field.
func RequireText(field, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}
	return v, nil
}
