// Package api
// License: Apache-2.0
//
// Public contracts of the fastalloc library.
// Defines the pool capability surface, element lifecycle hooks, the error
// taxonomy and the statistics sink consumed by every pool variant.
// Implementations live in the pool, stats and internal packages.
package api
