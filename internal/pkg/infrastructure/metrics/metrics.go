package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReadingsIngested = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "greenhouse",
		Name:      "readings_ingested_total",
		Help:      "Number of readings persisted, by kind.",
	}, []string{"kind"})

	VendorFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "greenhouse",
		Name:      "vendor_fallbacks_total",
		Help:      "Number of failed vendor calls that were answered with a placeholder.",
	}, []string{"vendor", "call"})

	EventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "greenhouse",
		Name:      "events_published_total",
		Help:      "Number of reading events handed to the broker, by outcome.",
	}, []string{"type", "outcome"})
)
