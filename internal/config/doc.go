// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON config file (path from CONFIG or -c/-config)
//  3. Environment variables
//  4. Command-line flags
//
// The main entry point is [GetStructuredConfig]. Individual values can be
// looked up by their environment key with [StructuredConfig.Get].
package config
