// Package analyzer runs the full scraping pipeline for one invocation:
// claims-period set, listing parse, per-game price enrichment, and
// ranking. Execution is strictly sequential — one request at a time,
// with a pacing delay before each detail-page fetch.
package analyzer
