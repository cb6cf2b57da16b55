package jobs

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"brandlens/internal/aggregate"
	"brandlens/internal/config"
	"brandlens/internal/dataset"
	"brandlens/internal/derive"
	"brandlens/internal/filter"
	"brandlens/internal/logging"
	"brandlens/internal/metrics"
	"brandlens/internal/model"
	"brandlens/internal/rank"
	"brandlens/internal/report"
	"brandlens/internal/schedule"
	"brandlens/internal/store/reportdb"
)

// LoadDatasets loads and validates both input tables.
func LoadDatasets(cfg config.Config) ([]model.User, []model.Post, error) {
	users, err := dataset.LoadUsers(cfg.Inputs.UsersCSV)
	if err != nil {
		return nil, nil, fmt.Errorf("load users: %w", err)
	}
	posts, err := dataset.LoadPosts(cfg.Inputs.PostsCSV)
	if err != nil {
		return nil, nil, fmt.Errorf("load posts: %w", err)
	}
	return users, posts, nil
}

// BuildRanking runs the in-memory part of the pipeline: load both
// tables, filter, derive, aggregate, join and rank. Any error aborts
// the whole run; there is no partial result.
func BuildRanking(cfg config.Config) ([]model.RankedUser, error) {
	users, posts, err := LoadDatasets(cfg)
	if err != nil {
		return nil, err
	}
	w, err := filter.ParseWindow(cfg.Window.Start, cfg.Window.End)
	if err != nil {
		return nil, fmt.Errorf("parse window: %w", err)
	}
	posts = filter.ByDate(posts, w)
	posts = filter.ByBrand(posts, cfg.Brand.Tags)
	posts = derive.Decorate(posts, cfg.Brand.Mention, cfg.Brand.Hashtag)
	ranked, skipped := rank.Rank(users, aggregate.ByAuthor(posts))
	if skipped > 0 {
		metrics.ZeroFollowerSkips.Add(float64(skipped))
		logging.Warn("zero_follower_skip", map[string]any{"skipped": skipped})
	}
	return ranked, nil
}

// RunReportOnce executes the full pipeline and renders the document,
// then records the run. db may be nil to skip history.
func RunReportOnce(ctx context.Context, db *reportdb.DB, cfg config.Config, renderer report.Renderer) (string, error) {
	start := time.Now().UTC()
	metrics.ReportRuns.Inc()
	out, err := runReport(ctx, db, cfg, renderer, start)
	if err != nil {
		metrics.ReportErrors.Inc()
		logging.Error("report_error", map[string]any{"error": err.Error()})
		return "", err
	}
	metrics.ObserveReportDuration(start)
	logging.Info("report_done", map[string]any{"output": out})
	return out, nil
}

func runReport(ctx context.Context, db *reportdb.DB, cfg config.Config, renderer report.Renderer, started time.Time) (string, error) {
	ranked, err := BuildRanking(cfg)
	if err != nil {
		return "", err
	}
	metrics.UsersRanked.Add(float64(len(ranked)))
	out, err := renderer.Render(ranked, report.OptionsFrom(cfg.Report, cfg.Window.Start, cfg.Window.End))
	if err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	if db != nil {
		if _, err := db.SaveRun(ctx, started, cfg.Window.Start, cfg.Window.End, out, ranked); err != nil {
			return "", fmt.Errorf("save run: %w", err)
		}
	}
	return out, nil
}

// RunReportLoop re-runs the report on a ticker until ctx is cancelled,
// honoring quiet hours and the daily run budget. A failed run is
// logged and the loop keeps ticking.
func RunReportLoop(ctx context.Context, db *reportdb.DB, cfg config.Config, renderer report.Renderer, interval time.Duration) error {
	var lim *rate.Limiter
	if cfg.Loop.MaxPerDay > 0 {
		lim = rate.NewLimiter(rate.Every(24*time.Hour/time.Duration(cfg.Loop.MaxPerDay)), 1)
	}
	run := func(now time.Time) {
		if next := schedule.NextWindow(now, cfg.Loop.QuietHours); !next.Equal(now) {
			logging.Info("report_quiet_hours", map[string]any{"next": next.Format(time.RFC3339)})
			return
		}
		if lim != nil && !lim.Allow() {
			logging.Info("report_budget_exhausted", nil)
			return
		}
		_, _ = RunReportOnce(ctx, db, cfg, renderer)
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	run(time.Now().UTC())
	for {
		select {
		case <-ctx.Done():
			logging.Info("report_loop_stop", nil)
			return ctx.Err()
		case now := <-t.C:
			run(now.UTC())
		}
	}
}
