// Package bench provides the workload harness for omap benchmarking.
//
// This package drives an ordered map through configurable workload
// phases and verifies its ordering guarantees:
//
//   - fill: insert ULID keys, recording the expected order
//   - update: re-set a fraction of keys in place
//   - delete: remove a fraction of keys across list positions
//   - iterate: full forward and backward traversals
//
// Verification compares murmur3 digests of the traversed key sequences
// against digests of the expected order, so large runs are checked
// without materializing expectations per step. Op pacing is optional
// via a token-bucket rate limit.
package bench
