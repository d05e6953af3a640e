// Package metrics exposes the service's Prometheus instruments.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// TurnsTotal counts processed chat turns by routing outcome (onboarding, flow,
// greeting, menu, intent, fallback).
var TurnsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "mitra_turns_total",
	Help: "Chat turns processed, labeled by which router guard handled them.",
}, []string{"outcome"})
