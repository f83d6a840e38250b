// Package metric provides Prometheus metrics for omap tooling.
//
// This package implements metrics collection for the benchmark
// harness:
//
//   - Operation counters (set, get, delete) per workload phase
//   - Current map length gauge
//   - Iteration duration histograms per direction
//
// The harness runs one-shot, so metrics are gathered and reported at
// the end of a run instead of being exposed over HTTP.
package metric
