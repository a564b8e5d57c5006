package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var enrichmentFailures = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "order_placement",
	Subsystem: "carts",
	Name:      "enrichment_failures_total",
	Help:      "Total number of carts dropped from listings because the user lookup failed",
})
