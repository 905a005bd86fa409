package utils

import (
	"strconv"
	"strings"

	"feedback-desk/pkg/apperror"
)

// ErrNotNumber is returned wherever a numeric answer was expected.
var ErrNotNumber = apperror.New(apperror.KindInvalidInput, "Enter numbers only")

// ParseInt converts a typed answer to int.
func ParseInt(value string) (int, error) {
	result, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, ErrNotNumber
	}
	return result, nil
}

// ParseID converts a typed answer to a row id.
func ParseID(value string) (int64, error) {
	result, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, ErrNotNumber
	}
	return result, nil
}
