package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	DocumentsIngested = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "policy_transfer",
		Name:      "documents_ingested_total",
		Help:      "Total JSON documents accepted by the ingest endpoint.",
	})
	PoliciesStored = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "policy_transfer",
		Name:      "policies_stored_total",
		Help:      "Total policy rows written to the relational sink.",
	})
	IngestFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "policy_transfer",
		Name:      "ingest_failures_total",
		Help:      "Total ingest requests that failed after parsing.",
	})
	MigrationsCompleted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "policy_transfer",
		Name:      "migrations_completed_total",
		Help:      "Total objects copied from the source to the destination store.",
	})
	MigrationFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "policy_transfer",
		Name:      "migration_failures_total",
		Help:      "Total object copies that failed.",
	})
)

// Init registers collectors; call once from main.
func Init() {
	prometheus.MustRegister(
		DocumentsIngested,
		PoliciesStored,
		IngestFailures,
		MigrationsCompleted,
		MigrationFailures,
	)
}

// Serve starts a /metrics server on the given addr (e.g., ":9090"). Non-blocking when run in goroutine.
func Serve(addr string) error {
	http.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(addr, nil)
}
