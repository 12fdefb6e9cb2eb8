package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func TestMetricsExposure(t *testing.T) {
	IncGraphQLRequest("GetAllTweets")
	IncGraphQLError("GetAllTweets")
	ObserveGraphQLDuration("GetAllTweets", time.Now().Add(-150*time.Millisecond))
	IncCacheHit("all-tweets")
	IncCacheMiss("all-tweets")
	IncCacheInvalidation("all-tweets")
	UploadRuns.Inc()
	UploadErrors.Inc()
	IncCommandRun("feed")
	IncCommandError("feed")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	promhttp.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rec.Code)
	}
	body := rec.Body.String()
	for _, m := range []string{
		"xclone_graphql_requests_total",
		"xclone_graphql_errors_total",
		"xclone_graphql_request_duration_seconds",
		"xclone_cache_hits_total",
		"xclone_cache_misses_total",
		"xclone_cache_invalidations_total",
		"xclone_upload_runs_total",
		"xclone_upload_errors_total",
		"xclone_command_runs_total",
		"xclone_command_errors_total",
	} {
		if !strings.Contains(body, m) {
			t.Fatalf("expected metric %s in body", m)
		}
	}
}
