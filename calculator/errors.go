package calculator

import (
	"errors"
	"fmt"

	"ppdmap/model"
)

// ErrInvalidParameter is returned by Validate. The field kernels themselves
// never check their input.
var ErrInvalidParameter = errors.New("invalid parameter")

// Validate checks model parameters once, before any field is built.
func Validate(p model.Params) error {
	switch {
	case p.Dim <= 0:
		return fmt.Errorf("%w: dim must be positive, got %d", ErrInvalidParameter, p.Dim)
	case p.PixelAngle <= 0:
		return fmt.Errorf("%w: pixel angle must be positive, got %g", ErrInvalidParameter, p.PixelAngle)
	case p.Wavelength <= 0:
		return fmt.Errorf("%w: wavelength must be positive, got %g", ErrInvalidParameter, p.Wavelength)
	case p.Elliptic && p.Elong <= 0:
		return fmt.Errorf("%w: elong must be positive, got %g", ErrInvalidParameter, p.Elong)
	case p.Disk.ConstTemperature && p.Star.Temperature <= 0:
		return fmt.Errorf("%w: stellar temperature must be positive, got %g", ErrInvalidParameter, p.Star.Temperature)
	case !p.Disk.ConstTemperature && p.Disk.InnerTemperature <= 0:
		return fmt.Errorf("%w: inner temperature must be positive, got %g", ErrInvalidParameter, p.Disk.InnerTemperature)
	}
	return nil
}

// ValidateDim rejects grids larger than maxDim x maxDim. Every map allocates
// dim*dim values, so callers taking dim from outside must bound it.
func ValidateDim(p model.Params, maxDim int) error {
	if p.Dim > maxDim {
		return fmt.Errorf("%w: dim %d exceeds the limit %d", ErrInvalidParameter, p.Dim, maxDim)
	}
	return nil
}
