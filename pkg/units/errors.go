package units

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidValue is returned when an input cannot be read as a finite number.
	ErrInvalidValue = errors.New("invalid numeric value")
	// ErrUnknownType is returned when a conversion type is not a known family.
	ErrUnknownType = errors.New("unknown type")
	// ErrUnsupportedConversion is returned when a family has no formula for a unit pair.
	ErrUnsupportedConversion = errors.New("unsupported conversion")
	// ErrUnknownUnit is returned when a unit symbol belongs to no family.
	ErrUnknownUnit = errors.New("unknown unit")
	// ErrIncompatibleFamilies is returned when compared units belong to different families.
	ErrIncompatibleFamilies = errors.New("incompatible unit families")
)
