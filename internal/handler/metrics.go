package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	cartsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_placement",
			Subsystem: "carts",
			Name:      "created_total",
			Help:      "Total number of carts created",
		},
	)

	ordersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_placement",
			Subsystem: "orders",
			Name:      "created_total",
			Help:      "Total number of orders created",
		},
	)

	statusAdvanced = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_placement",
			Subsystem: "orders",
			Name:      "status_advanced_total",
			Help:      "Total number of order status transitions, labelled by the status reached",
		},
		[]string{"to"},
	)

	softDeletes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_placement",
			Subsystem: "store",
			Name:      "soft_deletes_total",
			Help:      "Total number of soft deletions, labelled by entity",
		},
		[]string{"entity"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		cartsCreated,
		ordersCreated,
		statusAdvanced,
		softDeletes,
	)
}
