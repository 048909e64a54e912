// Package mem provides aligned slab allocation for chunked pool storage.
// License: Apache-2.0
package mem
