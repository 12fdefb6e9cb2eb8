package metrics

import (
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	GraphQLRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "xclone_graphql_requests_total",
		Help: "Total GraphQL operations sent",
	}, []string{"operation"})
	GraphQLErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "xclone_graphql_errors_total",
		Help: "Total GraphQL operations that failed",
	}, []string{"operation"})
	GraphQLDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "xclone_graphql_request_duration_seconds",
		Help:    "GraphQL request duration seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	CacheHits = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "xclone_cache_hits_total",
		Help: "Total cache reads served from a stored entry",
	}, []string{"key"})
	CacheMisses = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "xclone_cache_misses_total",
		Help: "Total cache reads that required a fetch",
	}, []string{"key"})
	CacheInvalidations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "xclone_cache_invalidations_total",
		Help: "Total cache keys marked stale",
	}, []string{"key"})
	UploadRuns = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "xclone_upload_runs_total",
		Help: "Total asset upload flows started",
	})
	UploadErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "xclone_upload_errors_total",
		Help: "Total asset upload flows that failed",
	})
	CommandRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "xclone_command_runs_total",
		Help: "Total CLI command runs",
	}, []string{"command"})
	CommandErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "xclone_command_errors_total",
		Help: "Total CLI command failures",
	}, []string{"command"})
)

func init() {
	prometheus.MustRegister(
		GraphQLRequests, GraphQLErrors, GraphQLDuration,
		CacheHits, CacheMisses, CacheInvalidations,
		UploadRuns, UploadErrors,
		CommandRuns, CommandErrors,
	)
}

// StartServer starts a metrics HTTP server on addr (e.g., ":9090").
func StartServer(addr string) {
	if addr == "" {
		addr = os.Getenv("METRICS_ADDR")
	}
	if addr == "" {
		return
	}
	http.Handle("/metrics", promhttp.Handler())
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	go func() { _ = http.ListenAndServe(addr, nil) }()
}

// ObserveGraphQLDuration records one operation's duration.
func ObserveGraphQLDuration(operation string, start time.Time) {
	GraphQLDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func IncGraphQLRequest(operation string) { GraphQLRequests.WithLabelValues(operation).Inc() }
func IncGraphQLError(operation string)   { GraphQLErrors.WithLabelValues(operation).Inc() }

func IncCacheHit(key string)          { CacheHits.WithLabelValues(key).Inc() }
func IncCacheMiss(key string)         { CacheMisses.WithLabelValues(key).Inc() }
func IncCacheInvalidation(key string) { CacheInvalidations.WithLabelValues(key).Inc() }

func IncCommandRun(cmd string)   { CommandRuns.WithLabelValues(cmd).Inc() }
func IncCommandError(cmd string) { CommandErrors.WithLabelValues(cmd).Inc() }
