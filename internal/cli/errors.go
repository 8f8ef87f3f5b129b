package cli

import "errors"

// ErrInvalidArgument indicates command-line input the calculator cannot
// work with: a missing or non-numeric voltage, a target outside (0, vin),
// or an unknown output format.
var ErrInvalidArgument = errors.New("invalid argument")
