package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"brandlens/internal/model"
)

// PDFRenderer renders ranked rows to HTML, prints title page and body
// through a headless browser, and merges both into one PDF.
type PDFRenderer struct{}

// Render produces OutDir/report.pdf and returns its path.
func (PDFRenderer) Render(rows []model.RankedUser, opts Options) (string, error) {
	bodyHTML, titleHTML, err := RenderHTML(rows, opts)
	if err != nil {
		return "", err
	}

	u, err := launcher.New().Headless(true).Launch()
	if err != nil {
		return "", fmt.Errorf("launch browser: %w", err)
	}
	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		return "", fmt.Errorf("connect browser: %w", err)
	}
	defer browser.Close()

	titleReq, err := titlePrintRequest(opts)
	if err != nil {
		return "", err
	}
	bodyReq, err := bodyPrintRequest(opts)
	if err != nil {
		return "", err
	}

	titlePDF := filepath.Join(opts.OutDir, "title_page.pdf")
	if err := printPage(browser, titleHTML, titlePDF, titleReq); err != nil {
		return "", fmt.Errorf("print title page: %w", err)
	}
	bodyPDF := filepath.Join(opts.OutDir, "report_body.pdf")
	if err := printPage(browser, bodyHTML, bodyPDF, bodyReq); err != nil {
		return "", fmt.Errorf("print report body: %w", err)
	}

	out := filepath.Join(opts.OutDir, "report.pdf")
	if err := api.MergeCreateFile([]string{titlePDF, bodyPDF}, out, false, nil); err != nil {
		return "", fmt.Errorf("merge pdfs: %w", err)
	}
	return out, nil
}

// titlePrintRequest covers the full page with no margins or chrome.
func titlePrintRequest(opts Options) (*proto.PagePrintToPDF, error) {
	return &proto.PagePrintToPDF{
		Landscape:       opts.Landscape,
		PrintBackground: true,
		PaperWidth:      f64(opts.PaperWidth),
		PaperHeight:     f64(opts.PaperHeight),
		MarginTop:       f64(0),
		MarginRight:     f64(0),
		MarginBottom:    f64(0),
		MarginLeft:      f64(0),
	}, nil
}

// bodyPrintRequest applies the configured margins and the header and
// footer snippets with page x/y numbering.
func bodyPrintRequest(opts Options) (*proto.PagePrintToPDF, error) {
	header, err := snippet("header.html", opts.TemplateDir)
	if err != nil {
		return nil, fmt.Errorf("load header: %w", err)
	}
	footer, err := snippet("footer.html", opts.TemplateDir)
	if err != nil {
		return nil, fmt.Errorf("load footer: %w", err)
	}
	return &proto.PagePrintToPDF{
		Landscape:           opts.Landscape,
		PrintBackground:     true,
		PaperWidth:          f64(opts.PaperWidth),
		PaperHeight:         f64(opts.PaperHeight),
		MarginTop:           f64(opts.MarginTop),
		MarginRight:         f64(opts.MarginRight),
		MarginBottom:        f64(opts.MarginBottom),
		MarginLeft:          f64(opts.MarginLeft),
		DisplayHeaderFooter: true,
		HeaderTemplate:      header,
		FooterTemplate:      footer,
	}, nil
}

func printPage(browser *rod.Browser, htmlPath, pdfPath string, req *proto.PagePrintToPDF) error {
	abs, err := filepath.Abs(htmlPath)
	if err != nil {
		return err
	}
	page, err := browser.Page(proto.TargetCreateTarget{URL: "file://" + abs})
	if err != nil {
		return fmt.Errorf("open page: %w", err)
	}
	defer page.Close()
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("wait load: %w", err)
	}
	r, err := page.PDF(req)
	if err != nil {
		return fmt.Errorf("print pdf: %w", err)
	}
	f, err := os.Create(pdfPath)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return err
	}
	return nil
}

func f64(v float64) *float64 { return &v }
