package logger

import (
	"sync"
	"time"
)

// Stats tracks counters and timings for a single pipeline run.
// All operations are safe for concurrent use, though the pipeline
// itself is sequential.
type Stats struct {
	mu       sync.Mutex
	started  time.Time
	counters map[string]int64
	timings  map[string][]time.Duration
}

var defaultStats = NewStats()

// NewStats creates an empty stats tracker stamped with the start time.
func NewStats() *Stats {
	return &Stats{
		started:  time.Now(),
		counters: make(map[string]int64),
		timings:  make(map[string][]time.Duration),
	}
}

// Incr increments a named counter by 1.
func (s *Stats) Incr(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[name]++
}

// Add increments a named counter by n.
func (s *Stats) Add(name string, n int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[name] += n
}

// Time records a duration measurement under name.
func (s *Stats) Time(name string, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timings[name] = append(s.timings[name], d)
}

// Summary returns the run's counters plus aggregated timing figures
// (count, total, average, min, max per timing name), suitable for a
// single end-of-run log entry.
func (s *Stats) Summary() Fields {
	s.mu.Lock()
	defer s.mu.Unlock()

	counters := make(map[string]int64, len(s.counters))
	for k, v := range s.counters {
		counters[k] = v
	}

	timings := make(map[string]Fields, len(s.timings))
	for name, durations := range s.timings {
		if len(durations) == 0 {
			continue
		}
		var total time.Duration
		min, max := durations[0], durations[0]
		for _, d := range durations {
			total += d
			if d < min {
				min = d
			}
			if d > max {
				max = d
			}
		}
		timings[name] = Fields{
			"count":   len(durations),
			"total":   total.String(),
			"average": (total / time.Duration(len(durations))).String(),
			"min":     min.String(),
			"max":     max.String(),
		}
	}

	return Fields{
		"elapsed":  time.Since(s.started).String(),
		"counters": counters,
		"timings":  timings,
	}
}

// Package-level stats functions using the default tracker

func Incr(name string)                  { defaultStats.Incr(name) }
func Add(name string, n int64)          { defaultStats.Add(name, n) }
func Time(name string, d time.Duration) { defaultStats.Time(name, d) }
func StatsSummary() Fields              { return defaultStats.Summary() }
