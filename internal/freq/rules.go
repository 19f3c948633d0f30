//
// Package freq holds the frequency planning arithmetic used to check
// channel segments, point-to-point links and virtual subnets.
// All checks are pure; parsing is separate so callers can report
// values that are not numbers.
//
package freq

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Tolerance for comparing derived frequencies.
const Tolerance = 1e-6

// ErrNotNumber is returned by the parsers for non-numeric input.
var ErrNotNumber = errors.New("value is not a number")

// ParseNumber parses a decimal value, ignoring surrounding space.
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.Wrap(ErrNotNumber, "value is empty")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Wrapf(ErrNotNumber, "%q", s)
	}
	return v, nil
}

// ParseInt parses a whole number; "64" and "64.0" are both accepted.
func ParseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	v, err := ParseNumber(s)
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		return 0, errors.Wrapf(ErrNotNumber, "%q is not a whole number", s)
	}
	return int(v), nil
}

// InRange reports whether min <= v <= max.
func InRange(v, min, max float64) bool {
	return v >= min && v <= max
}

// Offset reports whether a equals b + offset within Tolerance.
func Offset(a, b, offset float64) bool {
	return math.Abs(a-(b+offset)) < Tolerance
}

// Equal reports whether a equals b within Tolerance.
func Equal(a, b float64) bool {
	return Offset(a, b, 0)
}

//
// Ordered reports whether the uplink band ends at or below the start of
// the downlink band. The uplink end must never exceed the downlink start.
//
func Ordered(downlinkStart, uplinkEnd float64) bool {
	return uplinkEnd <= downlinkStart
}

// Overlap reports whether the downlink and uplink bands intersect.
func Overlap(dlStart, dlEnd, ulStart, ulEnd float64) bool {
	return math.Max(dlStart, ulStart) < math.Min(dlEnd, ulEnd)
}

// Inverted reports whether a band starts above its end.
func Inverted(start, end float64) bool {
	return start > end
}

// Format renders a frequency for messages, rounded to six decimals
// and without trailing zeros.
func Format(v float64) string {
	return strconv.FormatFloat(math.Round(v*1e6)/1e6, 'f', -1, 64)
}
