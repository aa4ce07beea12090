package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"tasklist/internal/domain"
)

const (
	minYear = 0
	maxYear = 9999
)

// Validator parses and checks the raw text a user types for each task field.
type Validator struct {
	canonicalDate *regexp.Regexp
	canonicalTime *regexp.Regexp
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		canonicalDate: regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
		canonicalTime: regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d(:00)?$`),
	}
}

// ParsePriority upper-cases the input and accepts exactly one of C, H, N, L.
func (v *Validator) ParsePriority(input string) (domain.Priority, error) {
	p := domain.Priority(strings.ToUpper(strings.TrimSpace(input)))
	if !p.IsValid() {
		ve := NewValidationError()
		ve.AddInvalidValueError("priority", input, "must be one of C, H, N, L")
		return "", ve
	}
	return p, nil
}

// ParseDate reads year-month-day integers separated by '-' and returns the
// date as yyyy-mm-dd. The triple must name a real calendar day.
func (v *Validator) ParseDate(input string) (string, error) {
	ve := NewValidationError()
	parts := strings.Split(strings.TrimSpace(input), "-")
	if len(parts) != 3 {
		ve.AddInvalidFormatError("date", input, "yyyy-mm-dd")
		return "", ve
	}
	nums, ok := atoiAll(parts)
	if !ok {
		ve.AddInvalidFormatError("date", input, "yyyy-mm-dd")
		return "", ve
	}
	year, month, day := nums[0], nums[1], nums[2]
	switch {
	case year < minYear || year > maxYear:
		ve.AddInvalidRangeError("date", input, fmt.Sprintf("year must be between %d and %d", minYear, maxYear))
	case month < 1 || month > 12:
		ve.AddInvalidRangeError("date", input, "month must be between 1 and 12")
	case day < 1 || day > DaysInMonth(year, time.Month(month)):
		ve.AddInvalidRangeError("date", input, "day does not exist in that month")
	}
	if ve.HasErrors() {
		return "", ve
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), nil
}

// ParseTime reads hour:minute integers and returns the clock value as hh:mm.
func (v *Validator) ParseTime(input string) (string, error) {
	ve := NewValidationError()
	parts := strings.Split(strings.TrimSpace(input), ":")
	if len(parts) != 2 {
		ve.AddInvalidFormatError("time", input, "hh:mm")
		return "", ve
	}
	nums, ok := atoiAll(parts)
	if !ok {
		ve.AddInvalidFormatError("time", input, "hh:mm")
		return "", ve
	}
	hour, minute := nums[0], nums[1]
	if hour < 0 || hour > 23 {
		ve.AddInvalidRangeError("time", input, "hour must be between 0 and 23")
	}
	if minute < 0 || minute > 59 {
		ve.AddInvalidRangeError("time", input, "minute must be between 0 and 59")
	}
	if ve.HasErrors() {
		return "", ve
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

// ParseTaskNumber accepts an integer in [1, size].
func (v *Validator) ParseTaskNumber(input string, size int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		ve := NewValidationError()
		ve.AddInvalidFormatError("task_number", input, "an integer")
		return 0, ve
	}
	if n < 1 || n > size {
		ve := NewValidationError()
		ve.AddInvalidRangeError("task_number", input, fmt.Sprintf("must be between 1 and %d", size))
		return 0, ve
	}
	return n, nil
}

// ParseField lower-cases the input and accepts one of the editable field names.
func (v *Validator) ParseField(input string) (domain.Field, error) {
	f := domain.Field(strings.ToLower(strings.TrimSpace(input)))
	if !f.IsValid() {
		ve := NewValidationError()
		ve.AddInvalidValueError("field", input, "must be one of priority, date, time, task")
		return "", ve
	}
	return f, nil
}

// IsCanonicalDate reports whether s is a real date written as yyyy-mm-dd.
func (v *Validator) IsCanonicalDate(s string) bool {
	if !v.canonicalDate.MatchString(s) {
		return false
	}
	parsed, err := v.ParseDate(s)
	return err == nil && parsed == s
}

// IsCanonicalTime reports whether s is a clock value written as hh:mm or hh:mm:00.
func (v *Validator) IsCanonicalTime(s string) bool {
	return v.canonicalTime.MatchString(s)
}

// DaysInMonth returns the number of days in the month, accounting for leap years.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func atoiAll(parts []string) ([]int, bool) {
	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, false
		}
		nums[i] = n
	}
	return nums, true
}
