// Package storage writes the run's artifacts to disk: the HTML report
// and a rankings.json snapshot for downstream consumers. Both files are
// overwritten on every run; nothing is ever read back.
package storage
