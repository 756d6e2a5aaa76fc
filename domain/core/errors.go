package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Data shape errors
	ErrYearOutOfRange    = errors.New("year outside dataset window")
	ErrDuplicateRecord   = errors.New("duplicate country-year record")
	ErrMissingYearColumn = errors.New("missing year column")
	ErrNonNumericValue   = errors.New("non-numeric rate value")

	// Computation errors
	ErrUndefinedImpact  = errors.New("impact undefined: near-zero denominator")
	ErrInsufficientData = errors.New("insufficient data for analysis")
)

// Error constructors with context
func NewDuplicateRecordError(country string, year int) error {
	return fmt.Errorf("%w: %s/%d", ErrDuplicateRecord, country, year)
}

func NewMissingYearError(year int) error {
	return fmt.Errorf("%w: %d", ErrMissingYearColumn, year)
}

func NewNonNumericValueError(country string, year int, raw string) error {
	return fmt.Errorf("%w: %q for %s/%d", ErrNonNumericValue, raw, country, year)
}

func NewUndefinedImpactError(country string, denominator float64) error {
	return fmt.Errorf("%w: %s (denominator %g)", ErrUndefinedImpact, country, denominator)
}

// Error checking helpers
func IsUndefinedImpact(err error) bool {
	return errors.Is(err, ErrUndefinedImpact)
}

func IsInsufficientData(err error) bool {
	return errors.Is(err, ErrInsufficientData)
}
