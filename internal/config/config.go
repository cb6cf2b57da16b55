package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the application's configuration model. It captures input
// locations, the report window, brand literals, rendering layout, and
// storage. Every knob the pipeline uses lives here; nothing is
// hard-coded in the components.
type Config struct {
	Inputs  InputsConfig  `yaml:"inputs"`
	Window  WindowConfig  `yaml:"window"`
	Brand   BrandConfig   `yaml:"brand"`
	Report  ReportConfig  `yaml:"report"`
	Storage StorageConfig `yaml:"storage"`
	Metrics MetricsConfig `yaml:"metrics"`
	Loop    LoopConfig    `yaml:"loop"`
}

type InputsConfig struct {
	UsersCSV string `yaml:"usersCsv"`
	PostsCSV string `yaml:"postsCsv"`
}

type WindowConfig struct {
	// Inclusive calendar dates, YYYY-MM-DD
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

type BrandConfig struct {
	// Literal substrings that qualify a caption, e.g. "@brand", "#brand"
	Tags []string `yaml:"tags"`
	// Literals counted per caption for the score
	Mention string `yaml:"mention"`
	Hashtag string `yaml:"hashtag"`
}

type ReportConfig struct {
	OutDir      string `yaml:"outDir"`
	TemplateDir string `yaml:"templateDir"` // optional override of the built-in templates
	Title       string `yaml:"title"`
	Subtitle    string `yaml:"subtitle"`

	// Page layout, inches
	Landscape    bool    `yaml:"landscape"`
	PaperWidth   float64 `yaml:"paperWidth"`
	PaperHeight  float64 `yaml:"paperHeight"`
	MarginTop    float64 `yaml:"marginTop"`
	MarginRight  float64 `yaml:"marginRight"`
	MarginBottom float64 `yaml:"marginBottom"`
	MarginLeft   float64 `yaml:"marginLeft"`
}

type StorageConfig struct {
	DBPath string `yaml:"dbPath"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

type LoopConfig struct {
	// Interval between watch-mode runs, Go duration string
	Interval string `yaml:"interval"`
	// Hours (UTC) in which watch mode does not run
	QuietHours []int `yaml:"quietHours"`
	// Cap on watch-mode runs per day; 0 means unlimited
	MaxPerDay int `yaml:"maxPerDay"`
}

// Default returns a sensible default configuration.
func Default() Config {
	return Config{
		Inputs: InputsConfig{UsersCSV: "./data/users.csv", PostsCSV: "./data/user_posts.csv"},
		Window: WindowConfig{Start: "2021-01-01", End: "2021-02-01"},
		Brand: BrandConfig{
			Tags:    []string{"@bubbleroom", "#bubbleroom", "#bubbleroomstyle"},
			Mention: "@bubbleroom",
			Hashtag: "#bubbleroom",
		},
		Report: ReportConfig{
			OutDir:       "./data",
			Title:        "Brand Engagement Report",
			Subtitle:     "Ranked creator activity",
			Landscape:    true,
			PaperWidth:   8.5,
			PaperHeight:  11,
			MarginTop:    1.1,
			MarginRight:  0.9,
			MarginBottom: 1.1,
			MarginLeft:   0.9,
		},
		Storage: StorageConfig{DBPath: "./brandlens.db"},
		Metrics: MetricsConfig{Addr: ""},
		Loop:    LoopConfig{Interval: "24h", QuietHours: []int{0, 1, 2, 3, 4, 5}, MaxPerDay: 4},
	}
}

// ResolveEnv fills in config fields from environment variables if not set.
func (c *Config) ResolveEnv() {
	if v := os.Getenv("BRANDLENS_USERS_CSV"); v != "" {
		c.Inputs.UsersCSV = v
	}
	if v := os.Getenv("BRANDLENS_POSTS_CSV"); v != "" {
		c.Inputs.PostsCSV = v
	}
	if v := os.Getenv("BRANDLENS_DB"); v != "" {
		c.Storage.DBPath = v
	}
	if c.Metrics.Addr == "" {
		c.Metrics.Addr = os.Getenv("METRICS_ADDR")
	}
}

// Load reads YAML config from path.
func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	cfg.ResolveEnv()
	return cfg, nil
}

// Save writes YAML config to path, creating directories as needed.
func Save(path string, cfg Config) error {
	if path == "" {
		return errors.New("empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
