package font

import (
	"errors"
	"strconv"
)

var (
	ErrNotANumber  = errors.New("font size is not a number")
	ErrNotPositive = errors.New("font size must be positive")
)

// ParseSize validates font size input, which must be a positive base-10
// integer with no surrounding text.
func ParseSize(input string) (int, error) {
	size, err := strconv.Atoi(input)
	if err != nil {
		return 0, ErrNotANumber
	}
	if size <= 0 {
		return 0, ErrNotPositive
	}
	return size, nil
}

// SizeErrorMessage is the text shown to the user for a rejected size.
func SizeErrorMessage(err error) string {
	if errors.Is(err, ErrNotPositive) {
		return "Invalid font size. Please enter a positive integer."
	}
	return "Invalid font size. Please enter a valid number."
}
