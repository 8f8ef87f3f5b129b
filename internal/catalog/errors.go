package catalog

import "errors"

// Sentinel errors for catalog construction.
// Use errors.Is to check: errors.Is(err, catalog.ErrUnknownSeries).
var (
	// ErrUnknownSeries indicates a series name outside E3..E192.
	ErrUnknownSeries = errors.New("catalog: unknown E-series name")
	// ErrCatalogSource indicates the resistor value file could not be read.
	ErrCatalogSource = errors.New("catalog: cannot read resistor value file")
	// ErrCatalogParse indicates a token that is not a valid resistor value.
	ErrCatalogParse = errors.New("catalog: invalid resistor value")
	// ErrEmptyCatalog indicates a source that produced no usable values.
	ErrEmptyCatalog = errors.New("catalog: no usable resistor values")
	// ErrDecadeRange indicates an invalid decade range for series expansion.
	ErrDecadeRange = errors.New("catalog: invalid decade range")
)
