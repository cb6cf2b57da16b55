package reportdb

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"brandlens/internal/model"
)

// DB wraps the SQLite database holding report run history.
type DB struct{ sql *sql.DB }

func Open(path string) (*DB, error) {
	d, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := d.Exec(`PRAGMA journal_mode=WAL; PRAGMA synchronous=NORMAL;`); err != nil {
		return nil, err
	}
	db := &DB{sql: d}
	if err := db.migrate(); err != nil {
		_ = d.Close()
		return nil, err
	}
	return db, nil
}

func (d *DB) Close() error { return d.sql.Close() }

func (d *DB) migrate() error {
	_, err := d.sql.Exec(`
	CREATE TABLE IF NOT EXISTS runs (
	  id INTEGER PRIMARY KEY AUTOINCREMENT,
	  started_at INTEGER NOT NULL,
	  window_start TEXT NOT NULL,
	  window_end TEXT NOT NULL,
	  row_count INTEGER NOT NULL,
	  output TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
	CREATE TABLE IF NOT EXISTS run_rows (
	  run_id INTEGER NOT NULL,
	  pos INTEGER NOT NULL,
	  user_id TEXT NOT NULL,
	  username TEXT NOT NULL,
	  followers INTEGER NOT NULL,
	  posts INTEGER NOT NULL,
	  mentions INTEGER NOT NULL,
	  hashtags INTEGER NOT NULL,
	  likes INTEGER NOT NULL,
	  comments INTEGER NOT NULL,
	  likes_with_mention INTEGER NOT NULL,
	  comments_with_mention INTEGER NOT NULL,
	  engagement_general REAL NOT NULL,
	  engagement_specific REAL NOT NULL,
	  score INTEGER NOT NULL,
	  PRIMARY KEY(run_id, pos)
	);
	`)
	return err
}

// Run is one recorded report execution.
type Run struct {
	ID          int64
	StartedAt   time.Time
	WindowStart string
	WindowEnd   string
	RowCount    int
	Output      string
}

// SaveRun records a finished run and its ranked rows in rank order.
func (d *DB) SaveRun(ctx context.Context, startedAt time.Time, windowStart, windowEnd, output string, rows []model.RankedUser) (int64, error) {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()
	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs(started_at, window_start, window_end, row_count, output) VALUES(?,?,?,?,?)`,
		startedAt.Unix(), windowStart, windowEnd, len(rows), output)
	if err != nil {
		return 0, err
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	for i, r := range rows {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO run_rows(run_id, pos, user_id, username, followers, posts, mentions, hashtags,
			   likes, comments, likes_with_mention, comments_with_mention,
			   engagement_general, engagement_specific, score)
			 VALUES(?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
			runID, i, r.ID, r.Username, r.Followers, r.Posts, r.Mentions, r.Hashtags,
			r.Likes, r.Comments, r.LikesWithMention, r.CommentsWithMention,
			r.EngagementGeneral, r.EngagementSpecific, r.Score); err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return runID, nil
}

// LoadRuns returns the most recent runs, newest first.
func (d *DB) LoadRuns(ctx context.Context, limit int) ([]Run, error) {
	rows, err := d.sql.QueryContext(ctx,
		`SELECT id, started_at, window_start, window_end, row_count, COALESCE(output,'') FROM runs ORDER BY started_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Run
	for rows.Next() {
		var r Run
		var started int64
		if err := rows.Scan(&r.ID, &started, &r.WindowStart, &r.WindowEnd, &r.RowCount, &r.Output); err != nil {
			return nil, err
		}
		r.StartedAt = time.Unix(started, 0).UTC()
		out = append(out, r)
	}
	return out, rows.Err()
}

// LoadRunRows returns the ranked rows of a run in rank order.
func (d *DB) LoadRunRows(ctx context.Context, runID int64) ([]model.RankedUser, error) {
	rows, err := d.sql.QueryContext(ctx,
		`SELECT user_id, username, followers, posts, mentions, hashtags,
		   likes, comments, likes_with_mention, comments_with_mention,
		   engagement_general, engagement_specific, score
		 FROM run_rows WHERE run_id=? ORDER BY pos`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.RankedUser
	for rows.Next() {
		var r model.RankedUser
		if err := rows.Scan(&r.User.ID, &r.Username, &r.Followers, &r.Posts, &r.Mentions, &r.Hashtags,
			&r.Likes, &r.Comments, &r.LikesWithMention, &r.CommentsWithMention,
			&r.EngagementGeneral, &r.EngagementSpecific, &r.Score); err != nil {
			return nil, err
		}
		r.AuthorID = r.User.ID
		out = append(out, r)
	}
	return out, rows.Err()
}

// CountRunsSince counts runs started at or after since.
func (d *DB) CountRunsSince(ctx context.Context, since time.Time) (int, error) {
	row := d.sql.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs WHERE started_at>=?`, since.Unix())
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
