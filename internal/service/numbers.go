package service

import (
	"regexp"
	"strconv"
	"strings"
)

var firstNumberRe = regexp.MustCompile(`[-+]?[0-9]*\.?[0-9]+`)

// extractFloat pulls the first numeric token out of a loose scalar, so
// inputs like "82.5kg" and "180 lb" still parse. Returns false when no
// number is present.
func extractFloat(value string) (float64, bool) {
	match := firstNumberRe.FindString(strings.TrimSpace(value))
	if match == "" {
		return 0, false
	}

	parsed, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}

	return parsed, true
}
