// Package prometheus registers the service metrics and exposes helpers
// for recording them.
package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inventory_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Entity operation metrics
	EntityOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_entity_operations_total",
			Help: "Total number of create/update/delete/activate operations per entity",
		},
		[]string{"entity", "operation"},
	)

	// Cascade metrics
	CascadeDeactivatedProducts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "inventory_cascade_deactivated_products_total",
			Help: "Total number of products deactivated by supplier cascades",
		},
	)

	CascadeFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "inventory_cascade_failures_total",
			Help: "Total number of supplier cascades that failed to apply",
		},
	)

	// Notification metrics
	LowStockAlerts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "inventory_low_stock_alerts_total",
			Help: "Total number of low stock alert notifications sent",
		},
	)

	// Database operation metrics
	DbOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inventory_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)
)

// RecordEntityOperation increments the counter for an entity operation.
func RecordEntityOperation(entity, operation string) {
	EntityOperations.WithLabelValues(entity, operation).Inc()
}

// TrackDBOperation returns a function that records the duration of a
// database operation when deferred.
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}
