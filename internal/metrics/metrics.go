package metrics

import (
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ReportRuns = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "brandlens_report_runs_total",
		Help: "Total report pipeline runs",
	})
	ReportErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "brandlens_report_errors_total",
		Help: "Total failed report runs",
	})
	ReportDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "brandlens_report_duration_seconds",
		Help:    "Report pipeline duration seconds",
		Buckets: prometheus.DefBuckets,
	})
	UsersRanked = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "brandlens_users_ranked_total",
		Help: "Total users that made it into a report",
	})
	ZeroFollowerSkips = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "brandlens_zero_follower_skips_total",
		Help: "Users skipped because their follower count is zero",
	})
	CommandRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "brandlens_command_runs_total",
		Help: "CLI command invocations",
	}, []string{"command"})
	CommandErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "brandlens_command_errors_total",
		Help: "CLI command failures",
	}, []string{"command"})
)

func init() {
	prometheus.MustRegister(ReportRuns, ReportErrors, ReportDuration, UsersRanked, ZeroFollowerSkips, CommandRuns, CommandErrors)
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

// ObserveReportDuration records a run duration.
func ObserveReportDuration(start time.Time) {
	ReportDuration.Observe(time.Since(start).Seconds())
}

// IncCommandRun counts one CLI command invocation.
func IncCommandRun(cmd string) { CommandRuns.WithLabelValues(cmd).Inc() }

// IncCommandError counts one failed CLI command.
func IncCommandError(cmd string) { CommandErrors.WithLabelValues(cmd).Inc() }
