package site

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Bitlatte/tripcard/internal/dom"
	"github.com/Bitlatte/tripcard/internal/render"
)

// Error panel texts.
const (
	ErrorTitle = "页面加载失败"
	ErrorHint  = "请确认 data.json 与页面在同一目录，且通过 Web 服务器访问（不要直接双击打开 html）。"
)

// ShowErrorPanel replaces the body with the load failure panel.
func ShowErrorPanel(doc *dom.Document, err error) {
	body := doc.Body()
	if body == nil {
		return
	}
	doc.Clear(body)
	doc.Append(body, doc.El("div", dom.Attrs{"class": "card error-panel"},
		doc.El("h2", nil, ErrorTitle),
		doc.El("p", nil, ErrorHint),
		doc.El("pre", nil, err.Error()),
	))
}

// Build writes the page and its snapshots into opts.OutputDir. A document
// that fails to load still produces index.html with the error panel, and
// the load error is returned.
func Build(ctx context.Context, opts Options) (*Page, error) {
	log := opts.logger()
	outputDir := opts.OutputDir
	if outputDir == "" {
		return nil, fmt.Errorf("output directory not configured")
	}

	log.Info("cleaning output directory", zap.String("dir", outputDir))
	if err := os.RemoveAll(outputDir); err != nil {
		return nil, fmt.Errorf("failed to clean output directory %s: %w", outputDir, err)
	}
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	if opts.StaticDir != "" {
		if _, err := os.Stat(opts.StaticDir); err == nil {
			if err := copyDirContents(opts.StaticDir, outputDir); err != nil {
				return nil, fmt.Errorf("failed to copy static assets: %w", err)
			}
			log.Info("static assets copied", zap.String("from", opts.StaticDir))
		} else {
			log.Debug("static directory not found, skipping copy", zap.String("dir", opts.StaticDir))
		}
	}

	page, err := Bootstrap(ctx, opts)
	if page == nil {
		return nil, err
	}
	if werr := writePage(page.Doc, filepath.Join(outputDir, "index.html")); werr != nil {
		return nil, werr
	}
	if err != nil {
		return page, err
	}
	if err := page.WriteSnapshots(outputDir); err != nil {
		return page, err
	}
	log.Info("site built",
		zap.String("dir", outputDir),
		zap.Int("days", len(page.Data.Itinerary)),
		zap.String("hero", page.Hero.Title),
	)
	return page, nil
}

// WriteSnapshots writes day/<n>/index.html for every day chip and
// moodboard/index.html with the moodboard revealed. The page is left with
// the "all" filter active and the moodboard revealed. A layout without
// chips gets no day snapshots.
func (p *Page) WriteSnapshots(outputDir string) error {
	if len(p.Doc.QueryAll(p.chips, ".chip")) > 0 {
		for day := range p.Data.Itinerary {
			if err := p.SelectDay(day); err != nil {
				return err
			}
			if err := writePage(p.Doc, filepath.Join(outputDir, filepath.FromSlash(DayURL(day)), "index.html")); err != nil {
				return err
			}
		}
		if err := p.SelectDay(render.AllDays); err != nil {
			return err
		}
	}
	p.RevealMoodboard()
	return writePage(p.Doc, filepath.Join(outputDir, "moodboard", "index.html"))
}

func writePage(doc *dom.Document, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()
	if err := doc.Render(f); err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}
	return nil
}

func copyDirContents(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(src, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path for %s: %w", path, err)
		}
		dstPath := filepath.Join(dst, relPath)
		if d.IsDir() {
			return os.MkdirAll(dstPath, os.ModePerm)
		}
		return copyFile(path, dstPath)
	})
}

func copyFile(srcFile, dstFile string) error {
	srcF, err := os.Open(srcFile)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", srcFile, err)
	}
	defer srcF.Close()

	dstF, err := os.Create(dstFile)
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", dstFile, err)
	}
	defer dstF.Close()

	if _, err := io.Copy(dstF, srcF); err != nil {
		return fmt.Errorf("failed to copy data from %s to %s: %w", srcFile, dstFile, err)
	}
	return nil
}
