package pool

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TIVerse/fastalloc/api"
	"github.com/TIVerse/fastalloc/config"
	"github.com/TIVerse/fastalloc/stats"
)

func TestFixedRejectsInvalidCapacity(t *testing.T) {
	_, err := New[int](0)
	assert.ErrorIs(t, err, api.ErrInvalidCapacity)
}

func TestFixedCapacityBound(t *testing.T) {
	p, err := New[int](3)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := p.Allocate(i)
		require.NoError(t, err)
	}
	require.True(t, p.Full())

	_, err = p.Allocate(99)
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrPoolExhausted)

	var exhausted *api.ExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, 3, exhausted.Capacity)
	assert.Equal(t, 3, exhausted.Allocated)

	// The failed call mutated nothing.
	assert.Equal(t, 3, p.Allocated())
	assert.Zero(t, p.Available())
}

func TestFixedExhaustionIsDeterministic(t *testing.T) {
	p, _ := New[int](2)
	p.Allocate(1)
	p.Allocate(2)

	_, err1 := p.Allocate(3)
	_, err2 := p.Allocate(3)
	assert.Equal(t, err1, err2)
}

func TestFixedLIFOReuse(t *testing.T) {
	p, _ := New[string](4)

	a, _ := p.Allocate("a")
	b, _ := p.Allocate("b")
	c, _ := p.Allocate("c")
	require.Equal(t, 0, a.Index())
	require.Equal(t, 1, b.Index())
	require.Equal(t, 2, c.Index())

	b.Release()
	d, _ := p.Allocate("d")
	assert.Equal(t, 1, d.Index(), "most recently released slot is reused first")
}

func TestFixedRoundTrip(t *testing.T) {
	p, _ := New[int](1)

	h, err := p.Allocate(42)
	require.NoError(t, err)
	assert.Equal(t, 42, h.Value())

	h.Release()
	assert.True(t, p.Empty())

	h2, err := p.Allocate(7)
	require.NoError(t, err)
	assert.Equal(t, 7, h2.Value())
	assert.Equal(t, 0, h2.Index())
}

func TestFixedReleaseZeroesSlot(t *testing.T) {
	p, _ := New[int](1)
	h, _ := p.Allocate(42)
	ptr := h.Get()
	h.Release()
	assert.Zero(t, *ptr)
}

func TestFixedResetFunc(t *testing.T) {
	p, err := NewWithConfig(config.Config[int]{
		Capacity:  1,
		ResetFunc: func(v *int) { *v = -1 },
	})
	require.NoError(t, err)

	h, _ := p.Allocate(42)
	ptr := h.Get()
	h.Release()
	assert.Equal(t, -1, *ptr)
}

func TestFixedTryAllocate(t *testing.T) {
	p, _ := New[int](1)

	h, ok := p.TryAllocate(1)
	require.True(t, ok)
	_, ok = p.TryAllocate(2)
	assert.False(t, ok)

	h.Release()
	_, ok = p.TryAllocate(3)
	assert.True(t, ok)
}

func TestFixedAllocateDefault(t *testing.T) {
	p, err := NewWithConfig(config.Config[int]{
		Capacity: 2,
		NewFunc:  func() int { return 7 },
	})
	require.NoError(t, err)

	h, err := p.AllocateDefault()
	require.NoError(t, err)
	assert.Equal(t, 7, h.Value())

	// Without a constructor the default is the zero value.
	q, _ := New[int](1)
	h2, err := q.AllocateDefault()
	require.NoError(t, err)
	assert.Zero(t, h2.Value())
}

func TestFixedAllocateBatch(t *testing.T) {
	p, _ := New[int](4)

	handles, err := p.AllocateBatch([]int{10, 20, 30})
	require.NoError(t, err)
	require.Len(t, handles, 3)
	for i, h := range handles {
		assert.Equal(t, (i+1)*10, h.Value())
	}

	// Batch bigger than what is left fails whole; the three stay live.
	_, err = p.AllocateBatch([]int{1, 2})
	assert.ErrorIs(t, err, api.ErrPoolExhausted)
	assert.Equal(t, 3, p.Allocated())
}

func TestFixedPreInitialize(t *testing.T) {
	built := 0
	p, err := NewWithConfig(config.Config[int]{
		Capacity:      3,
		PreInitialize: true,
		NewFunc:       func() int { built++; return built },
	})
	require.NoError(t, err)
	assert.Equal(t, 3, built)
	assert.True(t, p.Empty())
}

type hooked struct {
	events *[]string
	id     int
}

func (h *hooked) OnAcquire() { *h.events = append(*h.events, "acquire") }
func (h *hooked) OnRelease() { *h.events = append(*h.events, "release") }

func TestFixedPoolableHooks(t *testing.T) {
	var events []string
	p, _ := New[hooked](1)

	h, err := p.Allocate(hooked{events: &events, id: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"acquire"}, events)

	h.Release()
	assert.Equal(t, []string{"acquire", "release"}, events)
}

func TestFixedStatsThroughSink(t *testing.T) {
	c := stats.NewCollector()
	p, err := NewWithConfig(config.Config[int]{Capacity: 2, Sink: c})
	require.NoError(t, err)

	h, _ := p.Allocate(1)
	p.Allocate(2)
	p.Allocate(3) // fails
	h.Release()

	snap := p.Stats()
	assert.Equal(t, uint64(2), snap.TotalAllocations)
	assert.Equal(t, uint64(1), snap.TotalReleases)
	assert.Equal(t, uint64(1), snap.AllocationFailures)
	assert.Equal(t, 1, snap.CurrentUsage)
	assert.Equal(t, 2, snap.PeakUsage)
	assert.Equal(t, 2, snap.Capacity)
}

func TestFixedStatsWithoutSink(t *testing.T) {
	p, _ := New[int](4)
	p.Allocate(1)

	snap := p.Stats()
	assert.Equal(t, 1, snap.CurrentUsage)
	assert.Equal(t, 4, snap.Capacity)
	assert.Equal(t, 3, snap.Available())
}

func TestFixedStrategies(t *testing.T) {
	// Allocate 0,1,2 then release 0 and 2; the next index issued tells
	// the strategies apart.
	setup := func(s config.Strategy) (*FixedPool[int], *Handle[int]) {
		p, err := NewWithConfig(config.Config[int]{Capacity: 3, Strategy: s})
		require.NoError(t, err)
		a, _ := p.Allocate(0)
		b, _ := p.Allocate(1)
		c, _ := p.Allocate(2)
		a.Release()
		c.Release()
		return p, b
	}

	t.Run("stack reuses last released", func(t *testing.T) {
		p, _ := setup(config.StrategyStack)
		h, _ := p.Allocate(9)
		assert.Equal(t, 2, h.Index())
	})
	t.Run("freelist reuses first released", func(t *testing.T) {
		p, _ := setup(config.StrategyFreeList)
		h, _ := p.Allocate(9)
		assert.Equal(t, 0, h.Index())
	})
	t.Run("bitmap reuses lowest index", func(t *testing.T) {
		p, _ := setup(config.StrategyBitmap)
		h, _ := p.Allocate(9)
		assert.Equal(t, 0, h.Index())
	})
}

func TestAccessGuardPanicsOnOverlap(t *testing.T) {
	var g accessGuard
	g.enter()
	assert.Panics(t, func() { g.enter() })
	g.exit()
	assert.NotPanics(t, func() { g.enter() })
}

func TestFixedPointerStability(t *testing.T) {
	p, _ := New[int64](8)
	h, _ := p.Allocate(5)
	ptr := h.Get()

	// Fill the rest, release, refill; the original slot never moves.
	var rest []*Handle[int64]
	for i := 0; i < 7; i++ {
		hh, err := p.Allocate(int64(i))
		require.NoError(t, err)
		rest = append(rest, hh)
	}
	for _, hh := range rest {
		hh.Release()
	}
	assert.Same(t, ptr, h.Get())
	assert.Equal(t, int64(5), *ptr)
}

func TestFixedErrorsIsChain(t *testing.T) {
	p, _ := New[int](1)
	p.Allocate(1)
	_, err := p.Allocate(2)
	assert.True(t, errors.Is(err, api.ErrPoolExhausted))
}
