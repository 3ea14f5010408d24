// Package cli implements the command-line interface for scratchrank.
//
// The cli package provides the Cobra-based CLI that runs the scraping
// pipeline, renders the HTML report, and writes the run artifacts. It
// coordinates the config, analyzer, report, and storage packages and
// maps run outcomes to process exit codes for the scheduled runner.
package cli
