// Package notes loads extra advisory cards from Markdown files with YAML
// frontmatter.
package notes

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
	"go.uber.org/zap"

	"github.com/Bitlatte/tripcard/internal/model"
)

// Sections a note file can target.
const (
	SectionStay    = "stay"
	SectionPacking = "packing"
)

// Front is the frontmatter of a note file.
type Front struct {
	Title   string       `yaml:"title"`
	Section string       `yaml:"section"`
	Badge   *model.Badge `yaml:"badge"`
	Order   int          `yaml:"order"`
}

// Sections holds the notes found for each advice block.
type Sections struct {
	Stay    []model.Note
	Packing []model.Note
}

type parsed struct {
	front Front
	name  string
	note  model.Note
}

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// LoadDir reads every *.md file under dir. A missing dir is not an error;
// unreadable or malformed files and files with an unknown section are
// skipped with a warning.
func LoadDir(dir string, log *zap.Logger) (Sections, error) {
	if log == nil {
		log = zap.NewNop()
	}
	var out Sections
	if dir == "" {
		return out, nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return out, nil
	}

	var all []parsed
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			return nil
		}
		src, err := os.ReadFile(path)
		if err != nil {
			log.Warn("skipping unreadable note", zap.String("file", path), zap.Error(err))
			return nil
		}
		front, note, err := Parse(src)
		if err != nil {
			log.Warn("skipping malformed note", zap.String("file", path), zap.Error(err))
			return nil
		}
		if note.Title == "" {
			note.Title = strings.TrimSuffix(d.Name(), filepath.Ext(d.Name()))
		}
		all = append(all, parsed{front: front, name: path, note: note})
		return nil
	})
	if err != nil {
		return out, err
	}

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].front.Order != all[j].front.Order {
			return all[i].front.Order < all[j].front.Order
		}
		return all[i].name < all[j].name
	})
	for _, p := range all {
		switch p.front.Section {
		case SectionStay:
			out.Stay = append(out.Stay, p.note)
		case SectionPacking:
			out.Packing = append(out.Packing, p.note)
		default:
			log.Warn("skipping note with unknown section",
				zap.String("file", p.name), zap.String("section", p.front.Section))
		}
	}
	return out, nil
}

// Parse splits frontmatter from body and turns each list item (or loose
// paragraph) of the body into one content line.
func Parse(src []byte) (Front, model.Note, error) {
	var front Front
	body, err := frontmatter.Parse(bytes.NewReader(src), &front)
	if err != nil {
		return front, model.Note{}, err
	}

	note := model.Note{Title: front.Title, Badge: front.Badge}
	root := md.Parser().Parse(text.NewReader(body))
	err = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindListItem, ast.KindParagraph:
			if line := plainText(n, body); line != "" {
				note.Content = append(note.Content, line)
			}
			return ast.WalkSkipChildren, nil
		case ast.KindHeading, ast.KindFencedCodeBlock, ast.KindCodeBlock:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return front, note, err
}

func plainText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		case *ast.Paragraph, *ast.TextBlock:
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.Join(strings.Fields(b.String()), " ")
}
