package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/Bitlatte/tripcard/internal/dom"
	"github.com/Bitlatte/tripcard/internal/model"
)

const conventionalBaseLayout = "base.html"

//go:embed layouts/base.html
var defaultLayouts embed.FS

// loadLayout parses layoutsDir/base.html when present, else the built-in
// layout.
func loadLayout(layoutsDir string) (*template.Template, error) {
	if layoutsDir != "" {
		path := filepath.Join(layoutsDir, conventionalBaseLayout)
		if _, err := os.Stat(path); err == nil {
			tpl, err := template.ParseFiles(path)
			if err != nil {
				return nil, fmt.Errorf("failed to parse layout %s: %w", path, err)
			}
			return tpl, nil
		}
	}
	tpl, err := template.ParseFS(defaultLayouts, "layouts/"+conventionalBaseLayout)
	if err != nil {
		return nil, fmt.Errorf("failed to parse built-in layout: %w", err)
	}
	return tpl, nil
}

// newDocument executes the layout and parses the result into a live document.
func newDocument(tpl *template.Template, data model.PageData) (*dom.Document, error) {
	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, conventionalBaseLayout, data); err != nil {
		return nil, fmt.Errorf("failed to execute layout %s: %w", conventionalBaseLayout, err)
	}
	return dom.Parse(&buf)
}
