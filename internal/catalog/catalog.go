// Package catalog loads the static restaurant hours source, seeds it into
// the state store and produces parsed restaurants for querying.
package catalog

import (
	"fmt"

	"github.com/ravico/dinefinder/internal/hours"
)

// RawRestaurant is one record of the static source: a display name plus
// its free-text weekly hour clauses, in source order.
type RawRestaurant struct {
	Name  string   `json:"name"`
	Times []string `json:"times"`
}

// Restaurant is a parsed catalog entry. Immutable after construction.
type Restaurant struct {
	Name     string
	Schedule hours.Schedule
}

// LoadError reports that the catalog source could not be read or carried
// malformed records. It is fatal: no partial catalog is ever produced.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load restaurant catalog from %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
