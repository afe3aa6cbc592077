package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "astroportal_orders_created_total",
		Help: "Orders accepted and debited.",
	})

	OrdersCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "astroportal_orders_cancelled_total",
		Help: "Pending orders cancelled and refunded.",
	})

	GenerationsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "astroportal_generations_completed_total",
		Help: "Horoscopes generated and persisted.",
	})

	// Failed generations leave the order in processing; this counter is
	// the only signal that reconciliation is needed.
	GenerationsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "astroportal_generations_failed_total",
		Help: "Generation pipeline failures.",
	})
)
