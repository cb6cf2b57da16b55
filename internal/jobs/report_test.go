package jobs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"brandlens/internal/config"
	"brandlens/internal/dataset"
	"brandlens/internal/model"
	"brandlens/internal/report"
	"brandlens/internal/store/reportdb"
)

type fakeRenderer struct {
	rows []model.RankedUser
	err  error
}

func (f *fakeRenderer) Render(rows []model.RankedUser, opts report.Options) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.rows = rows
	return filepath.Join(opts.OutDir, "report.pdf"), nil
}

func writeFixtures(t *testing.T) config.Config {
	t.Helper()
	dir := t.TempDir()
	users := "id,ig_username,ig_num_followers\n1,one,100\n2,two,50\n3,silent,10\n"
	posts := "person_id,taken_at,caption_text,caption_tags,like_count,comment_count\n" +
		"1,2021-01-10,love @brand,,10,5\n" +
		"1,2021-01-20,more @brand love,,10,5\n" +
		"2,2021-01-25,plain #brand day,,1,1\n" +
		"3,2020-06-01,old @brand post,,9,9\n"
	if err := os.WriteFile(filepath.Join(dir, "users.csv"), []byte(users), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "posts.csv"), []byte(posts), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.Inputs.UsersCSV = filepath.Join(dir, "users.csv")
	cfg.Inputs.PostsCSV = filepath.Join(dir, "posts.csv")
	cfg.Window.Start = "2021-01-01"
	cfg.Window.End = "2021-02-01"
	cfg.Brand.Tags = []string{"@brand", "#brand"}
	cfg.Brand.Mention = "@brand"
	cfg.Brand.Hashtag = "#brand"
	cfg.Report.OutDir = dir
	return cfg
}

func TestBuildRankingEndToEnd(t *testing.T) {
	cfg := writeFixtures(t)
	ranked, err := BuildRanking(cfg)
	if err != nil {
		t.Fatal(err)
	}
	// User 3's only post predates the window, so the join drops it.
	if len(ranked) != 2 {
		t.Fatalf("expected 2 ranked users, got %d", len(ranked))
	}
	if ranked[0].Username != "one" || ranked[0].Score != 4 {
		t.Fatalf("unexpected leader: %+v", ranked[0])
	}
	if ranked[0].EngagementSpecific != 30.0 {
		t.Fatalf("expected engagement_specific 30.0, got %v", ranked[0].EngagementSpecific)
	}
	if ranked[1].Username != "two" || ranked[1].Score != 2 {
		t.Fatalf("unexpected runner-up: %+v", ranked[1])
	}
}

func TestBuildRankingSurfacesLoadErrors(t *testing.T) {
	cfg := writeFixtures(t)
	if err := os.WriteFile(cfg.Inputs.UsersCSV, []byte("id,ig_username,ig_num_followers\n1,,100\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := BuildRanking(cfg)
	var verr *dataset.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestRunReportOncePersistsRun(t *testing.T) {
	cfg := writeFixtures(t)
	db, err := reportdb.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	ctx := context.Background()
	r := &fakeRenderer{}
	out, err := RunReportOnce(ctx, db, cfg, r)
	if err != nil {
		t.Fatal(err)
	}
	if out == "" || len(r.rows) != 2 {
		t.Fatalf("renderer not invoked with ranked rows: out=%q rows=%d", out, len(r.rows))
	}
	runs, err := db.LoadRuns(ctx, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].RowCount != 2 || runs[0].WindowStart != "2021-01-01" {
		t.Fatalf("run not recorded: %+v", runs)
	}
	rows, err := db.LoadRunRows(ctx, runs[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 || rows[0].Username != "one" {
		t.Fatalf("ranked rows not persisted in order: %+v", rows)
	}
}

func TestRunReportOnceNoOutputOnRenderFailure(t *testing.T) {
	cfg := writeFixtures(t)
	db, err := reportdb.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	r := &fakeRenderer{err: errors.New("browser gone")}
	if _, err := RunReportOnce(context.Background(), db, cfg, r); err == nil {
		t.Fatal("expected render failure to propagate")
	}
	runs, err := db.LoadRuns(context.Background(), 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Fatalf("failed run must not be recorded: %+v", runs)
	}
}
