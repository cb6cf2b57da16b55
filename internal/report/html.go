package report

import (
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"brandlens/internal/config"
	"brandlens/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer is the collaborator that turns ranked rows into a document
// and returns the path of the produced file.
type Renderer interface {
	Render(rows []model.RankedUser, opts Options) (string, error)
}

// Options configures a single render. Everything is passed per call;
// the package keeps no state between runs.
type Options struct {
	OutDir      string
	TemplateDir string // optional override for the embedded templates
	Title       string
	Subtitle    string
	WindowStart string
	WindowEnd   string

	// Page layout, inches
	Landscape    bool
	PaperWidth   float64
	PaperHeight  float64
	MarginTop    float64
	MarginRight  float64
	MarginBottom float64
	MarginLeft   float64
}

// OptionsFrom builds render options from the report config section.
func OptionsFrom(rc config.ReportConfig, windowStart, windowEnd string) Options {
	return Options{
		OutDir:       rc.OutDir,
		TemplateDir:  rc.TemplateDir,
		Title:        rc.Title,
		Subtitle:     rc.Subtitle,
		WindowStart:  windowStart,
		WindowEnd:    windowEnd,
		Landscape:    rc.Landscape,
		PaperWidth:   rc.PaperWidth,
		PaperHeight:  rc.PaperHeight,
		MarginTop:    rc.MarginTop,
		MarginRight:  rc.MarginRight,
		MarginBottom: rc.MarginBottom,
		MarginLeft:   rc.MarginLeft,
	}
}

type pageData struct {
	Title       string
	Subtitle    string
	WindowStart string
	WindowEnd   string
	GeneratedAt string
	Rows        []model.RankedUser
}

// RenderHTML writes the report body and title page as HTML files under
// opts.OutDir and returns their paths.
func RenderHTML(rows []model.RankedUser, opts Options) (bodyPath, titlePath string, err error) {
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return "", "", err
	}
	data := pageData{
		Title:       opts.Title,
		Subtitle:    opts.Subtitle,
		WindowStart: opts.WindowStart,
		WindowEnd:   opts.WindowEnd,
		GeneratedAt: time.Now().UTC().Format("2006-01-02 15:04 UTC"),
		Rows:        rows,
	}
	bodyPath = filepath.Join(opts.OutDir, "report.html")
	if err := renderTemplate("report.html", opts.TemplateDir, bodyPath, data); err != nil {
		return "", "", err
	}
	titlePath = filepath.Join(opts.OutDir, "title_page.html")
	if err := renderTemplate("title_page.html", opts.TemplateDir, titlePath, data); err != nil {
		return "", "", err
	}
	return bodyPath, titlePath, nil
}

var funcs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}

func renderTemplate(name, dir, outPath string, data pageData) error {
	t, err := loadTemplate(name, dir)
	if err != nil {
		return fmt.Errorf("load template %s: %w", name, err)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := t.ExecuteTemplate(f, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}

func loadTemplate(name, dir string) (*template.Template, error) {
	if dir != "" {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return template.New(name).Funcs(funcs).ParseFiles(p)
		}
	}
	return template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/"+name)
}

// snippet returns a raw template fragment (header/footer), preferring
// an override file in dir.
func snippet(name, dir string) (string, error) {
	if dir != "" {
		p := filepath.Join(dir, name)
		if b, err := os.ReadFile(p); err == nil {
			return string(b), nil
		}
	}
	b, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
