package physics

import "errors"

var (
	// ErrParameterBounds indicates a parameter value is outside valid range.
	ErrParameterBounds = errors.New("physics: parameter out of valid bounds")

	// ErrInvalidState indicates a body with NaN or Inf in its position or velocity.
	ErrInvalidState = errors.New("physics: invalid body state (NaN or Inf detected)")
)
