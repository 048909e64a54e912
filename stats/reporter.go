// File: stats/reporter.go
// License: Apache-2.0

package stats

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/TIVerse/fastalloc/api"
)

// Reporter renders snapshots as structured log events. It lives entirely
// off the allocate/release paths: pools feed a Collector, callers decide
// when a snapshot is worth a log line.
type Reporter struct {
	log zerolog.Logger
}

// NewReporter writes JSON events to w, tagged with the pool name.
func NewReporter(w io.Writer, pool string) *Reporter {
	return &Reporter{
		log: zerolog.New(w).With().Timestamp().Str("pool", pool).Logger(),
	}
}

// NewReporterWithLogger reuses an existing zerolog logger, for callers
// that already carry one through their application.
func NewReporterWithLogger(log zerolog.Logger) *Reporter {
	return &Reporter{log: log}
}

// Report emits one event for the snapshot, at info level normally and at
// warn level when live slots remain, which at shutdown time means leaked
// handles.
func (r *Reporter) Report(snap api.Snapshot) {
	ev := r.log.Info()
	if snap.CurrentUsage != 0 {
		ev = r.log.Warn().Int("leaked", snap.CurrentUsage)
	}
	ev.
		Uint64("allocations", snap.TotalAllocations).
		Uint64("releases", snap.TotalReleases).
		Uint64("failures", snap.AllocationFailures).
		Uint64("growths", snap.GrowthCount).
		Int("current", snap.CurrentUsage).
		Int("peak", snap.PeakUsage).
		Int("capacity", snap.Capacity).
		Float64("utilization_pct", snap.UtilizationRate()).
		Float64("hit_rate", snap.HitRate()).
		Msg("pool stats")
}

// ReportGrowth emits one event for a growth step, for callers that want
// growth visible as it happens rather than only in totals.
func (r *Reporter) ReportGrowth(oldCapacity, newCapacity int) {
	r.log.Info().
		Int("old_capacity", oldCapacity).
		Int("new_capacity", newCapacity).
		Msg("pool grew")
}
