// File: stats/collector.go
// License: Apache-2.0

package stats

import (
	"sync/atomic"

	"github.com/TIVerse/fastalloc/api"
)

// Collector counts pool lifecycle events with atomics. It is safe for
// concurrent use and never blocks, so it can sit on the allocate and
// release paths of any pool variant. One collector serves one pool;
// sharing it across pools merges their numbers.
type Collector struct {
	allocations atomic.Uint64
	releases    atomic.Uint64
	failures    atomic.Uint64
	growths     atomic.Uint64
	current     atomic.Int64
	peak        atomic.Int64
	capacity    atomic.Int64
}

var _ api.Sink = (*Collector)(nil)

// NewCollector returns a zeroed collector.
func NewCollector() *Collector {
	return &Collector{}
}

// RecordAllocation counts one allocation and advances the peak if the
// live count passed it.
func (c *Collector) RecordAllocation() {
	c.allocations.Add(1)
	cur := c.current.Add(1)
	for {
		peak := c.peak.Load()
		if cur <= peak || c.peak.CompareAndSwap(peak, cur) {
			return
		}
	}
}

// RecordRelease counts one release.
func (c *Collector) RecordRelease() {
	c.releases.Add(1)
	c.current.Add(-1)
}

// RecordFailure counts one failed allocation attempt.
func (c *Collector) RecordFailure() {
	c.failures.Add(1)
}

// RecordGrowth counts one growth event and remembers the new capacity.
func (c *Collector) RecordGrowth(newCapacity int) {
	c.growths.Add(1)
	c.capacity.Store(int64(newCapacity))
}

// Snapshot returns a view of the counters. Each field is read atomically;
// the snapshot as a whole is only as consistent as a quiescent moment
// allows, which is what reporting needs.
func (c *Collector) Snapshot() api.Snapshot {
	return api.Snapshot{
		TotalAllocations:   c.allocations.Load(),
		TotalReleases:      c.releases.Load(),
		AllocationFailures: c.failures.Load(),
		GrowthCount:        c.growths.Load(),
		CurrentUsage:       int(c.current.Load()),
		PeakUsage:          int(c.peak.Load()),
		Capacity:           int(c.capacity.Load()),
	}
}

// Reset zeroes every counter.
func (c *Collector) Reset() {
	c.allocations.Store(0)
	c.releases.Store(0)
	c.failures.Store(0)
	c.growths.Store(0)
	c.current.Store(0)
	c.peak.Store(0)
	c.capacity.Store(0)
}
