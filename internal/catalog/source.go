package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// ReadSource reads and validates the static JSON hours file. Every record
// fault is collected before failing so one pass reports them all; any
// failure yields a *LoadError and no records.
func ReadSource(path string) ([]RawRestaurant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	var records []RawRestaurant
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("malformed JSON: %w", err)}
	}

	var result *multierror.Error
	for i, record := range records {
		if strings.TrimSpace(record.Name) == "" {
			result = multierror.Append(result, fmt.Errorf("record %d: missing name", i))
		}
		if len(record.Times) == 0 {
			result = multierror.Append(result, fmt.Errorf("record %d (%s): no hour clauses", i, record.Name))
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	return records, nil
}
