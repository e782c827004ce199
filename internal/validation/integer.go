package validation

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrEmpty is returned when the input holds nothing but whitespace.
var ErrEmpty = errors.New("input is empty")

// ErrNotInteger is returned when the input does not denote a whole number
// representable as an int.
var ErrNotInteger = errors.New("input is not an integer")

// maxInputLength bounds the raw text accepted from a form field.
const maxInputLength = 32

// ParseInteger converts user-entered text into an int.
//
// Plain decimal integers with an optional sign are accepted, as are decimal
// or exponent notations that denote a whole number ("3.0", "1e2"). Fractions,
// NaN, infinities and values that overflow int are rejected.
func ParseInteger(raw string) (int, error) {
	input := strings.TrimSpace(raw)
	if input == "" {
		return 0, ErrEmpty
	}
	if len(input) > maxInputLength {
		return 0, fmt.Errorf("%w: %q is too long", ErrNotInteger, truncate(input))
	}

	n, err := strconv.Atoi(input)
	if err == nil {
		return n, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %q overflows", ErrNotInteger, input)
	}

	// Hex, octal and underscore forms are valid Go literals but not numbers a
	// learner would type into a form.
	if strings.ContainsAny(input, "xXoObB_") {
		return 0, fmt.Errorf("%w: %q", ErrNotInteger, input)
	}

	f, err := strconv.ParseFloat(input, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q", ErrNotInteger, input)
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: %q has a fractional part", ErrNotInteger, input)
	}
	if f >= float64(math.MaxInt) || f < float64(math.MinInt) {
		return 0, fmt.Errorf("%w: %q overflows", ErrNotInteger, input)
	}
	return int(f), nil
}

// ParseOptionalInteger behaves like ParseInteger but treats empty input as
// "no value" rather than an error.
func ParseOptionalInteger(raw string) (value int, present bool, err error) {
	if strings.TrimSpace(raw) == "" {
		return 0, false, nil
	}
	value, err = ParseInteger(raw)
	if err != nil {
		return 0, false, err
	}
	return value, true, nil
}

func truncate(s string) string {
	if len(s) <= maxInputLength {
		return s
	}
	return s[:maxInputLength] + "…"
}
