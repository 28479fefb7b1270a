// Package query turns raw command-line arguments into a models.Query.
// Malformed input never fails; it degrades to defaults.
package query

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"weather-report/models"
)

// Normalize builds a Query from the positional arguments <city> [days|scale] [scale|days].
// The two optional tokens may come in either order: when the first one is numeric it is
// the day count and the second is the scale, otherwise the first is the scale and the
// second is the day count.
func Normalize(args []string) models.Query {
	var city, first, second string
	if len(args) > 0 {
		city = args[0]
	}
	if len(args) > 1 {
		first = args[1]
	}
	if len(args) > 2 {
		second = args[2]
	}

	daysArg, scaleArg := first, second
	if !isNumeric(first) {
		daysArg, scaleArg = second, first
	}

	return models.Query{
		City:  city,
		Days:  ParseDays(daysArg),
		Scale: ParseScale(scaleArg),
	}
}

// ParseDays reads the leading integer of s ("3", "3abc" and "3.9" are all 3)
// and clamps it into [MinDays, MaxDays]. Input without a leading integer yields MinDays.
func ParseDays(s string) int {
	s = strings.TrimSpace(s)

	sign := 1
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}

	digits := 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		digits++
	}
	if digits == 0 {
		return models.MinDays
	}

	n, err := strconv.Atoi(s[:digits])
	if err != nil {
		// only overflow gets here
		n = math.MaxInt
	}
	n *= sign

	switch {
	case n < models.MinDays:
		return models.MinDays
	case n > models.MaxDays:
		return models.MaxDays
	default:
		return n
	}
}

// ParseScale selects Fahrenheit for "F" (any case) and Celsius for everything else.
func ParseScale(s string) models.Scale {
	if strings.EqualFold(strings.TrimSpace(s), "F") {
		return models.Fahrenheit
	}
	return models.Celsius
}

// isNumeric accepts integers and finite decimals, including literals too
// large for float64. NaN and Inf are not numbers here.
func isNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if _, err := strconv.Atoi(s); err == nil {
		return true
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		return errors.As(err, &numErr) && numErr.Err == strconv.ErrRange
	}
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
