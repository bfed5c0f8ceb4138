// Package monitoring exposes Prometheus metrics for the order and
// booking flows.
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "restaurant_orders_created_total",
		Help: "Number of orders placed.",
	})

	OrdersCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "restaurant_orders_served_total",
		Help: "Number of orders marked served.",
	})

	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "restaurant_bookings_created_total",
		Help: "Number of remote bookings created.",
	})

	tablesByStatus = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "restaurant_tables",
		Help: "Number of tables per status.",
	}, []string{"status"})
)

// SetTableCount records the current number of tables in a status. The
// dashboard aggregator refreshes these on every stats request.
func SetTableCount(status string, n int64) {
	tablesByStatus.WithLabelValues(status).Set(float64(n))
}
