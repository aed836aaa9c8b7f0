// Package metrics exposes prometheus counters for ingest observability.
// Counters are registered on the default registry and served by the
// promhttp handler when the metrics endpoint is enabled.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RecordsRead counts raw records loaded per source.
	RecordsRead = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "railnorm_records_read_total",
		Help: "Raw records read from client sources",
	}, []string{"source"})

	// ElementsBuilt counts successfully constructed elements per kind.
	ElementsBuilt = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "railnorm_elements_built_total",
		Help: "Canonical elements built",
	}, []string{"kind"})

	// BuildFailures counts records that did not become elements.
	BuildFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "railnorm_build_failures_total",
		Help: "Records that failed conversion or construction",
	}, []string{"source"})

	// ReferencesMirrored counts backward edges created by the linker.
	ReferencesMirrored = promauto.NewCounter(prometheus.CounterOpts{
		Name: "railnorm_references_mirrored_total",
		Help: "Bidirectional references mirrored during resolution",
	})

	// DanglingReferences counts references whose target was missing.
	DanglingReferences = promauto.NewCounter(prometheus.CounterOpts{
		Name: "railnorm_dangling_references_total",
		Help: "Bidirectional references with unresolvable targets",
	})
)
