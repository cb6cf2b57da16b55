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
	ReportRuns.Inc()
	ReportErrors.Inc()
	UsersRanked.Add(3)
	ZeroFollowerSkips.Inc()
	IncCommandRun("report")
	IncCommandError("report")
	ObserveReportDuration(time.Now().Add(-1500 * time.Millisecond))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	promhttp.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rec.Code)
	}
	body := rec.Body.String()
	for _, m := range []string{
		"brandlens_report_runs_total",
		"brandlens_report_errors_total",
		"brandlens_report_duration_seconds",
		"brandlens_users_ranked_total",
		"brandlens_zero_follower_skips_total",
		"brandlens_command_runs_total",
	} {
		if !strings.Contains(body, m) {
			t.Fatalf("expected metric %s in body", m)
		}
	}
}
