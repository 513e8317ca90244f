// Package config provides configuration loading, merging, and validation
// facilities for the stamp gateway.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig]. Validation fails fast at
// startup when the upstream node URL is missing or malformed.
package config
