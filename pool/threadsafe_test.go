package pool

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TIVerse/fastalloc/api"
	"github.com/TIVerse/fastalloc/config"
	"github.com/TIVerse/fastalloc/stats"
)

func TestThreadSafeBasics(t *testing.T) {
	p, err := NewThreadSafe[int](2, 4)
	require.NoError(t, err)

	h, err := p.Allocate(42)
	require.NoError(t, err)
	assert.Equal(t, 42, h.Value())
	assert.Equal(t, 1, p.Allocated())

	h.Release()
	assert.Equal(t, 0, p.Allocated())
}

func TestThreadSafeGrowsToCeiling(t *testing.T) {
	p, err := NewThreadSafeWithConfig(config.Config[int]{
		Capacity:    1,
		MaxCapacity: 2,
		Growth:      config.Linear{Step: 1},
	})
	require.NoError(t, err)

	p.Allocate(1)
	p.Allocate(2)
	_, err = p.Allocate(3)
	assert.ErrorIs(t, err, api.ErrMaxCapacity)
	assert.Equal(t, 2, p.Capacity())
}

func TestThreadSafe_Concurrent(t *testing.T) {
	p, err := NewThreadSafe[int64](64, 0)
	if err != nil {
		t.Fatal(err)
	}

	workers := 10
	itemsPerWorker := 10000

	var wg sync.WaitGroup
	var storedSum int64
	var readSum int64

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(wid int) {
			defer wg.Done()
			for i := 0; i < itemsPerWorker; i++ {
				val := int64(wid*itemsPerWorker + i + 1)
				var h *Handle[int64]
				for {
					var err error
					h, err = p.Allocate(val)
					if err == nil {
						break
					}
					runtime.Gosched()
				}
				atomic.AddInt64(&storedSum, val)
				atomic.AddInt64(&readSum, h.Value())
				h.Release()
			}
		}(w)
	}
	wg.Wait()

	if storedSum != readSum {
		t.Errorf("Checksum mismatch: stored %d, read %d", storedSum, readSum)
	}
	if p.Allocated() != 0 {
		t.Errorf("Leaked slots: %d still allocated", p.Allocated())
	}
}

func TestThreadSafe_ConcurrentTinyPool(t *testing.T) {
	// Capacity 1 with no growth forces every worker through the same slot.
	p, err := NewThreadSafeWithConfig(config.Config[int64]{Capacity: 1, MaxCapacity: 1})
	if err != nil {
		t.Fatal(err)
	}

	workers := 8
	itemsPerWorker := 5000

	var wg sync.WaitGroup
	var storedSum int64
	var readSum int64

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(wid int) {
			defer wg.Done()
			for i := 0; i < itemsPerWorker; i++ {
				val := int64(wid*itemsPerWorker + i + 1)
				var h *Handle[int64]
				for {
					var ok bool
					h, ok = p.TryAllocate(val)
					if ok {
						break
					}
					runtime.Gosched()
				}
				atomic.AddInt64(&storedSum, val)
				atomic.AddInt64(&readSum, h.Value())
				h.Release()
			}
		}(w)
	}
	wg.Wait()

	if storedSum != readSum {
		t.Errorf("Checksum mismatch: stored %d, read %d", storedSum, readSum)
	}
	if p.Capacity() != 1 {
		t.Errorf("Capacity changed: %d", p.Capacity())
	}
}

func TestThreadSafe_ConcurrentGrowth(t *testing.T) {
	c := stats.NewCollector()
	p, err := NewThreadSafeWithConfig(config.Config[int]{
		Capacity: 2,
		Growth:   config.Exponential{Factor: 2},
		Sink:     c,
	})
	if err != nil {
		t.Fatal(err)
	}

	workers := 8
	perWorker := 100

	var wg sync.WaitGroup
	handles := make([][]*Handle[int], workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(wid int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				h, err := p.Allocate(wid)
				if err != nil {
					t.Errorf("unexpected allocation failure: %v", err)
					return
				}
				handles[wid] = append(handles[wid], h)
			}
		}(w)
	}
	wg.Wait()

	if got := p.Allocated(); got != workers*perWorker {
		t.Fatalf("Allocated = %d, want %d", got, workers*perWorker)
	}

	// Every handle still resolves to its worker's value after all growth.
	for wid, hs := range handles {
		for _, h := range hs {
			if h.Value() != wid {
				t.Fatalf("slot moved or corrupted: got %d, want %d", h.Value(), wid)
			}
			h.Release()
		}
	}
	if snap := c.Snapshot(); snap.CurrentUsage != 0 {
		t.Errorf("collector reports %d live after release", snap.CurrentUsage)
	}
}
