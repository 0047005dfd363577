// Package configs provides the embedded example configuration for rotolog.
//
// The template is embedded at build time using Go's //go:embed directive,
// so it ships inside every binary that wants to write a starter config
// for its users. It parses cleanly with logger.ParseConfig and documents
// every key logger.Setup understands.
package configs

import _ "embed"

// ConfigTemplate is the example logging configuration.
//
//go:embed config.example.yaml
var ConfigTemplate string
