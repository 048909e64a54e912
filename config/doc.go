// Package config holds validated pool configuration, the fluent builder
// that produces it, and the growth policies consumed by growable pools.
// License: Apache-2.0
package config
