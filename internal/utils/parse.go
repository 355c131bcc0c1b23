package utils

import (
	"fmt"
	"strconv"
)

// ParseOptionalFloat parses an optional numeric flag value. An empty string
// means the value was never given and yields nil rather than a zero, so
// callers can tell "unset" apart from any real number.
func ParseOptionalFloat(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("not a number: %q", s)
	}
	return &v, nil
}
