package observability

import (
	"database/sql"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// DatabaseQueryLatency records data access latency by operation and table.
var DatabaseQueryLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "codebook_database_query_latency_seconds",
	Help:    "Database query latency in seconds",
	Buckets: prometheus.DefBuckets,
}, []string{"operation", "table"})

// DatabaseErrors counts classified data access failures by operation and error code.
var DatabaseErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "codebook_database_errors_total",
	Help: "Total number of failed data access operations by error code",
}, []string{"operation", "code"})

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}

// RegisterDatabaseMetrics registers the query metrics and, when sqlDB is non-nil, the
// connection pool statistics (open, in use, idle, wait count) under dbName.
func RegisterDatabaseMetrics(reg prometheus.Registerer, sqlDB *sql.DB, dbName string) error {
	for _, c := range []prometheus.Collector{DatabaseQueryLatency, DatabaseErrors} {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return err
			}
		}
	}
	if sqlDB == nil {
		return nil
	}
	return reg.Register(collectors.NewDBStatsCollector(sqlDB, dbName))
}
