// Package metrics exposes the engine's ingest and fan-out counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EventsApplied counts lifecycle records applied to a book.
	EventsApplied = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "hpns",
		Name:      "events_applied_total",
		Help:      "Order lifecycle records successfully applied.",
	})

	// MalformedRecords counts full-width records dropped for bad fields.
	MalformedRecords = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "hpns",
		Name:      "malformed_records_total",
		Help:      "Records skipped for failing field validation.",
	})

	// UnknownMarketEvents counts records for untracked markets.
	UnknownMarketEvents = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "hpns",
		Name:      "unknown_market_events_total",
		Help:      "Records dropped because their market is not tracked.",
	})

	// DuplicateEvents counts terminal replays for already-removed orders.
	DuplicateEvents = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "hpns",
		Name:      "duplicate_events_total",
		Help:      "Terminal events replayed for already-removed orders.",
	})

	// SnapshotsPushed counts snapshots delivered to subscribers.
	SnapshotsPushed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "hpns",
		Name:      "snapshots_pushed_total",
		Help:      "Snapshots delivered to streaming subscribers.",
	})

	// SnapshotsCoalesced counts snapshots displaced from saturated
	// subscriber queues.
	SnapshotsCoalesced = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "hpns",
		Name:      "snapshots_coalesced_total",
		Help:      "Snapshots dropped in favor of newer ones on slow consumers.",
	})

	// SegmentBytesRead counts raw bytes consumed from event segments.
	SegmentBytesRead = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "hpns",
		Name:      "segment_bytes_read_total",
		Help:      "Raw bytes read from event log segments.",
	})
)
