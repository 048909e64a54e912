package stats

import (
	"bytes"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorCounts(t *testing.T) {
	c := NewCollector()
	c.RecordGrowth(10)
	for i := 0; i < 3; i++ {
		c.RecordAllocation()
	}
	c.RecordRelease()
	c.RecordFailure()

	snap := c.Snapshot()
	assert.Equal(t, uint64(3), snap.TotalAllocations)
	assert.Equal(t, uint64(1), snap.TotalReleases)
	assert.Equal(t, uint64(1), snap.AllocationFailures)
	assert.Equal(t, uint64(1), snap.GrowthCount)
	assert.Equal(t, 2, snap.CurrentUsage)
	assert.Equal(t, 3, snap.PeakUsage)
	assert.Equal(t, 10, snap.Capacity)
}

func TestCollectorPeakSurvivesReleases(t *testing.T) {
	c := NewCollector()
	for i := 0; i < 5; i++ {
		c.RecordAllocation()
	}
	for i := 0; i < 5; i++ {
		c.RecordRelease()
	}
	c.RecordAllocation()

	snap := c.Snapshot()
	assert.Equal(t, 1, snap.CurrentUsage)
	assert.Equal(t, 5, snap.PeakUsage)
}

func TestCollectorReset(t *testing.T) {
	c := NewCollector()
	c.RecordAllocation()
	c.RecordFailure()
	c.Reset()
	assert.Zero(t, c.Snapshot())
}

func TestCollectorConcurrent(t *testing.T) {
	const workers = 8
	const perWorker = 10000

	c := NewCollector()
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				c.RecordAllocation()
				c.RecordRelease()
			}
		}()
	}
	wg.Wait()

	snap := c.Snapshot()
	assert.Equal(t, uint64(workers*perWorker), snap.TotalAllocations)
	assert.Equal(t, uint64(workers*perWorker), snap.TotalReleases)
	assert.Zero(t, snap.CurrentUsage)
	assert.GreaterOrEqual(t, snap.PeakUsage, 1)
	assert.LessOrEqual(t, snap.PeakUsage, workers)
}

func TestSnapshotRates(t *testing.T) {
	c := NewCollector()
	c.RecordGrowth(10)
	for i := 0; i < 4; i++ {
		c.RecordAllocation()
	}
	c.RecordFailure()

	snap := c.Snapshot()
	assert.InDelta(t, 40.0, snap.UtilizationRate(), 0.001)
	assert.InDelta(t, 0.8, snap.HitRate(), 0.001)
	assert.Equal(t, 6, snap.Available())
}

func TestReporterEmitsLeakWarning(t *testing.T) {
	c := NewCollector()
	c.RecordGrowth(4)
	c.RecordAllocation()

	var buf bytes.Buffer
	NewReporter(&buf, "test").Report(c.Snapshot())

	var ev map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &ev))
	assert.Equal(t, "warn", ev["level"])
	assert.Equal(t, float64(1), ev["leaked"])
	assert.Equal(t, "test", ev["pool"])
}

func TestReporterInfoWhenClean(t *testing.T) {
	c := NewCollector()
	c.RecordGrowth(4)
	c.RecordAllocation()
	c.RecordRelease()

	var buf bytes.Buffer
	NewReporter(&buf, "test").Report(c.Snapshot())

	var ev map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &ev))
	assert.Equal(t, "info", ev["level"])
	assert.NotContains(t, ev, "leaked")
}
