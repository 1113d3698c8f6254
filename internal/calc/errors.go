package calc

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is wrapped by every range check in the calculators.
var ErrInvalidInput = errors.New("invalid input")

func Invalid(field string, value float64, want string) error {
	return fmt.Errorf("%w: %s = %g, expected %s", ErrInvalidInput, field, value, want)
}

// Finite rejects NaN and ±Inf. The range helpers below call it first since
// NaN fails every comparison.
func Finite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Invalid(field, v, "a finite number")
	}
	return nil
}

func Positive(field string, v float64) error {
	if err := Finite(field, v); err != nil {
		return err
	}
	if v <= 0 {
		return Invalid(field, v, "> 0")
	}
	return nil
}

func NonNegative(field string, v float64) error {
	if err := Finite(field, v); err != nil {
		return err
	}
	if v < 0 {
		return Invalid(field, v, ">= 0")
	}
	return nil
}

// Fraction checks a dimensionless share such as porosity or saturation.
func Fraction(field string, v float64) error {
	if err := Finite(field, v); err != nil {
		return err
	}
	if v < 0 || v > 1 {
		return Invalid(field, v, "in [0,1]")
	}
	return nil
}
