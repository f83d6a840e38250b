// Package main provides the entry point for the omap tool.
//
// The tool exercises the ordered map library from the command line:
//
//   - Workload benchmarking with order verification
//   - Traversal demos over ad-hoc key=value input
//
// Usage:
//
//	omap [command] [flags]
//	omap bench --entries 100000 --seed 42
//	omap demo One=1 Two=2 Three=3
package main
