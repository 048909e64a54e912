// File: api/stats.go
// License: Apache-2.0
//
// Statistics sink contract and the point-in-time snapshot type.
// Pools treat the sink as an external collaborator: a nil sink disables
// collection entirely and the hot paths pay nothing for it.

package api

// Sink receives pool lifecycle events. Implementations must be safe for
// concurrent use and must not block: every method sits on an allocate or
// release path.
type Sink interface {
	// RecordAllocation is called after a slot becomes live.
	RecordAllocation()

	// RecordRelease is called after a slot returns to the free set.
	RecordRelease()

	// RecordFailure is called when an allocation attempt fails.
	RecordFailure()

	// RecordGrowth is called after a growable pool commits a new chunk.
	RecordGrowth(newCapacity int)
}

// Snapshot is a consistent point-in-time view of pool activity.
type Snapshot struct {
	TotalAllocations   uint64
	TotalReleases      uint64
	AllocationFailures uint64
	GrowthCount        uint64
	CurrentUsage       int
	PeakUsage          int
	Capacity           int
}

// Available returns the number of free slots implied by the snapshot.
func (s Snapshot) Available() int {
	if s.CurrentUsage > s.Capacity {
		return 0
	}
	return s.Capacity - s.CurrentUsage
}

// UtilizationRate returns current usage as a percentage of capacity.
func (s Snapshot) UtilizationRate() float64 {
	if s.Capacity == 0 {
		return 0
	}
	return float64(s.CurrentUsage) / float64(s.Capacity) * 100
}

// PeakUtilizationRate returns peak usage as a percentage of capacity.
func (s Snapshot) PeakUtilizationRate() float64 {
	if s.Capacity == 0 {
		return 0
	}
	return float64(s.PeakUsage) / float64(s.Capacity) * 100
}

// HitRate returns the fraction of allocation attempts that succeeded.
func (s Snapshot) HitRate() float64 {
	attempts := s.TotalAllocations + s.AllocationFailures
	if attempts == 0 {
		return 1
	}
	return float64(s.TotalAllocations) / float64(attempts)
}
