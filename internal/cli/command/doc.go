// Package command provides CLI command definitions for the omap tool.
//
// Commands:
//
//   - bench: runs the configurable ordered map workload benchmark
//   - demo: builds a map from key=value arguments and prints its
//     forward, backward, and snapshot traversals
//
// Configuration resolves with priority flags > env > file > defaults,
// using the confloader package for the file and env layers.
package command
