// Package cli implements the command-line interface for cfp-radar.
//
// The cli package provides the Cobra-based CLI that reads the research
// abstract, validates flags and credentials, and wires the scraper, scorer,
// sink, and runner together. It owns process concerns: .env loading, logger
// construction, and exit codes.
package cli
