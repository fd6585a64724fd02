package matrix

import "errors"

var (
	// ErrInvalidDimensions is returned by New for negative dimensions.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange is returned by At and Set for coordinates outside the
	// matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch is returned when operand shapes are incompatible.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrRowLengthMismatch is returned by Read when a serialized row does not
	// hold exactly the number of values the header promised.
	ErrRowLengthMismatch = errors.New("matrix: row length mismatch")

	// ErrInsufficientRows is returned by Read when the input ends before the
	// number of rows the header promised.
	ErrInsufficientRows = errors.New("matrix: insufficient rows")
)
