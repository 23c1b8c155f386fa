// Package constants provides shared constants for the dinefinder application
package constants

// AppIdentifier is the name used in page titles, logs and metrics namespaces
const AppIdentifier = "dinefinder"

// EnvPrefix is the prefix for environment variable configuration overrides
const EnvPrefix = "DINEFINDER_"
