package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ohmtools/ohmoracle/internal/logging"
)

// LoadCSV reads a resistor value file. Every CSV field (one value per line,
// or several per line separated by commas) is parsed with ParseValue; blank
// lines and empty fields are skipped. The file is opened, read fully, and
// closed on all paths.
//
// Errors: ErrCatalogSource when the file cannot be opened or read,
// ErrCatalogParse for the first invalid token (identifying it), and
// ErrEmptyCatalog when no usable values were found.
func LoadCSV(ctx context.Context, path string) (Catalog, error) {
	log := logging.FromContext(ctx)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCatalogSource, pathError(err, path))
	}
	defer f.Close()

	cat, err := parseCSV(f)
	if err != nil {
		if errors.Is(err, ErrEmptyCatalog) {
			return nil, fmt.Errorf("%w: %s has no resistor values", ErrEmptyCatalog, path)
		}
		return nil, err
	}

	log.Debug().
		Ctx(ctx).
		Str("path", path).
		Int("values", len(cat)).
		Msg("loaded resistor value file")

	return cat, nil
}

// parseCSV parses resistor values from r in file order.
func parseCSV(r io.Reader) (Catalog, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var cat Catalog
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCatalogSource, err)
		}
		for _, field := range record {
			if strings.TrimSpace(field) == "" {
				continue
			}
			v, parseErr := ParseValue(field)
			if parseErr != nil {
				return nil, parseErr
			}
			cat = append(cat, v)
		}
	}

	if len(cat) == 0 {
		return nil, ErrEmptyCatalog
	}
	return cat, nil
}

// pathError unwraps *os.PathError noise so messages read "no such file"
// instead of repeating the path twice.
func pathError(err error, path string) string {
	var pe *os.PathError
	if errors.As(err, &pe) {
		return fmt.Sprintf("%s: %v", path, pe.Err)
	}
	return err.Error()
}
