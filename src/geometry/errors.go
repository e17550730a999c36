package geometry

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroMagnitude is reported by Normalize when the receiver is
	// the null vector.
	ErrZeroMagnitude = errors.New("zero magnitude")

	// ErrNegativePrecision is reported by Round when asked for a
	// negative number of decimal places.
	ErrNegativePrecision = errors.New("negative precision")
)

func newZeroMagnitudeError(v Vector) error {
	return fmt.Errorf("geometry: cannot normalize %s: %w", v, ErrZeroMagnitude)
}

func newNegativePrecisionError(decimals int) error {
	return fmt.Errorf("geometry: cannot round to %d decimal places: %w",
		decimals, ErrNegativePrecision)
}
