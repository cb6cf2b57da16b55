package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"brandlens/internal/cmdlog"
	"brandlens/internal/config"
	"brandlens/internal/jobs"
	"brandlens/internal/metrics"
	"brandlens/internal/model"
	"brandlens/internal/report"
	"brandlens/internal/store/reportdb"
	"brandlens/internal/theme"
)

func main() {
	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	switch cmd {
	case "init":
		cmdInit()
	case "validate":
		cmdValidate()
	case "rank":
		cmdRank()
	case "report":
		cmdReport()
	case "history":
		cmdHistory()
	case "watch":
		cmdWatch()
	default:
		printHelp()
	}
}

func printHelp() {
	theme.PrintBanner()
	fmt.Println("Usage: brandlens <command> [options]")
	fmt.Println("Commands:")
	fmt.Println("  init        Create a config file at ./brandlens.yaml")
	fmt.Println("  validate    Load and validate the users and posts tables")
	fmt.Println("  rank        Print the ranked engagement table")
	fmt.Println("  report      Build the full PDF report")
	fmt.Println("  history     Show recent report runs")
	fmt.Println("  watch       Re-run the report on an interval")
}

func loadConfig(path string) config.Config {
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
	return cfg
}

func cmdInit() {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	path := fs.String("path", "./brandlens.yaml", "path to write config")
	_ = fs.Parse(os.Args[2:])
	cfg := config.Default()
	if err := config.Save(*path, cfg); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
	abs, _ := filepath.Abs(*path)
	theme.PrintBanner()
	fmt.Println("Config written to:", abs)
}

func cmdValidate() {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	cfgPath := fs.String("config", "./brandlens.yaml", "config path")
	_ = fs.Parse(os.Args[2:])
	cfg := loadConfig(*cfgPath)
	err := cmdlog.Run("validate", func() error {
		users, posts, err := jobs.LoadDatasets(cfg)
		if err != nil {
			return err
		}
		fmt.Printf("users: %d rows ok\n", len(users))
		fmt.Printf("posts: %d rows ok\n", len(posts))
		return nil
	})
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func cmdRank() {
	fs := flag.NewFlagSet("rank", flag.ExitOnError)
	cfgPath := fs.String("config", "./brandlens.yaml", "config path")
	top := fs.Int("top", 0, "only print the first N rows (0 = all)")
	_ = fs.Parse(os.Args[2:])
	cfg := loadConfig(*cfgPath)
	err := cmdlog.Run("rank", func() error {
		ranked, err := jobs.BuildRanking(cfg)
		if err != nil {
			return err
		}
		if *top > 0 && len(ranked) > *top {
			ranked = ranked[:*top]
		}
		printRanking(ranked)
		return nil
	})
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func printRanking(ranked []model.RankedUser) {
	fmt.Printf("%-4s %-20s %10s %6s %9s %9s %10s %10s %6s\n",
		"#", "username", "followers", "posts", "mentions", "hashtags", "eng%", "brand%", "score")
	for i, r := range ranked {
		fmt.Printf("%-4d %-20s %10d %6d %9d %9d %10.2f %10.2f %6d\n",
			i+1, r.Username, r.Followers, r.Posts, r.Mentions, r.Hashtags,
			r.EngagementGeneral, r.EngagementSpecific, r.Score)
	}
}

func cmdReport() {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	cfgPath := fs.String("config", "./brandlens.yaml", "config path")
	_ = fs.Parse(os.Args[2:])
	cfg := loadConfig(*cfgPath)
	metrics.StartServer(cfg.Metrics.Addr)
	db := openHistory(cfg)
	if db != nil {
		defer db.Close()
	}
	err := cmdlog.Run("report", func() error {
		out, err := jobs.RunReportOnce(context.Background(), db, cfg, report.PDFRenderer{})
		if err != nil {
			return err
		}
		fmt.Println("Report written to:", out)
		return nil
	})
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func cmdHistory() {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	cfgPath := fs.String("config", "./brandlens.yaml", "config path")
	limit := fs.Int("limit", 10, "runs to show")
	_ = fs.Parse(os.Args[2:])
	cfg := loadConfig(*cfgPath)
	db := openHistory(cfg)
	if db == nil {
		fmt.Println("error: no dbPath configured")
		os.Exit(1)
	}
	defer db.Close()
	runs, err := db.LoadRuns(context.Background(), *limit)
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
	for _, r := range runs {
		fmt.Printf("run %d  %s  window %s..%s  rows=%d  %s\n",
			r.ID, r.StartedAt.Format(time.RFC3339), r.WindowStart, r.WindowEnd, r.RowCount, r.Output)
	}
}

func cmdWatch() {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	cfgPath := fs.String("config", "./brandlens.yaml", "config path")
	_ = fs.Parse(os.Args[2:])
	cfg := loadConfig(*cfgPath)
	interval, err := time.ParseDuration(cfg.Loop.Interval)
	if err != nil {
		fmt.Println("error: bad loop interval:", err)
		os.Exit(1)
	}
	metrics.StartServer(cfg.Metrics.Addr)
	db := openHistory(cfg)
	if db != nil {
		defer db.Close()
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	_ = jobs.RunReportLoop(ctx, db, cfg, report.PDFRenderer{}, interval)
}

func openHistory(cfg config.Config) *reportdb.DB {
	if cfg.Storage.DBPath == "" {
		return nil
	}
	db, err := reportdb.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Println("warning: cannot open history db:", err)
		return nil
	}
	return db
}
