// Package stats provides the lock-free statistics collector pools accept
// as their sink, and a zerolog reporter that renders snapshots off the
// hot path.
// License: Apache-2.0
package stats
