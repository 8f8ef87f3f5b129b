package divider

import "errors"

// Sentinel errors for search input validation.
// Use errors.Is to check: errors.Is(err, divider.ErrVoutOutOfRange).
var (
	// ErrEmptyCatalog indicates a search over zero resistor values.
	ErrEmptyCatalog = errors.New("divider: catalog has no resistor values")
	// ErrInvalidVin indicates a non-positive or non-finite input voltage.
	ErrInvalidVin = errors.New("divider: vin must be a positive voltage")
	// ErrVoutOutOfRange indicates a target outside the open interval (0, vin).
	// A plain resistive divider can only approach 0 or vin in the limit, so
	// such targets are rejected rather than matched by an extreme pair.
	ErrVoutOutOfRange = errors.New("divider: vout must be greater than zero and less than vin")
)
