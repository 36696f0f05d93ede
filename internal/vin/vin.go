// Package vin validates Vehicle Identification Numbers.
package vin

import (
	"fmt"
	"regexp"
)

// A VIN is exactly 17 characters of digits and capital letters,
// excluding I, O and Q.
var pattern = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]{17}$`)

// Valid reports whether s is a well-formed VIN.
func Valid(s string) bool {
	return pattern.MatchString(s)
}

// Validate returns an error naming the offending string verbatim so the
// caller can see what the vision model actually produced.
func Validate(s string) error {
	if !pattern.MatchString(s) {
		return fmt.Errorf("invalid VIN format detected: %s. Please try again with a clearer photo", s)
	}
	return nil
}
