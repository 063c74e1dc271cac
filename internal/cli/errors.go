package cli

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	numericOnly = regexp.MustCompile(`^\d+$`)
	integer     = regexp.MustCompile(`^-?\d+$`)
)

// ValidationError reports user input that was rejected before reaching the store.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// ValidateLabel checks a name-like field: it must be present and not purely numeric.
func ValidateLabel(field, value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", &ValidationError{Field: field, Message: "is required."}
	}
	if numericOnly.MatchString(value) {
		return "", &ValidationError{Field: field, Message: "cannot be numeric."}
	}
	return value, nil
}

// ParseStat parses a signed integer stat such as goals or plus/minus.
func ParseStat(field, value string) (int, error) {
	value = strings.TrimSpace(value)
	if !integer.MatchString(value) {
		return 0, &ValidationError{Field: field, Message: "must be an integer value."}
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &ValidationError{Field: field, Message: "is out of range."}
	}
	return n, nil
}
