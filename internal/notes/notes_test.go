package notes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const packingNote = `---
title: 防晒三件套
section: packing
order: 2
badge:
  type: warn
  text: 必带
---
高原紫外线强：

- 防晒霜 **SPF50**
- 墨镜
- 帽子，最好
  带帽檐
`

func TestParse(t *testing.T) {
	front, note, err := Parse([]byte(packingNote))
	require.NoError(t, err)

	assert.Equal(t, SectionPacking, front.Section)
	assert.Equal(t, 2, front.Order)
	assert.Equal(t, "防晒三件套", note.Title)
	require.NotNil(t, note.Badge)
	assert.Equal(t, "warn", note.Badge.Type)
	assert.Equal(t, "必带", note.Badge.Text)
	assert.Equal(t, []string{"高原紫外线强：", "防晒霜 SPF50", "墨镜", "帽子，最好 带帽檐"}, note.Content)
}

func TestLoadDirSortsAndRoutes(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	write("b.md", packingNote)
	write("a.md", "---\nsection: packing\norder: 1\n---\n- 充电宝\n")
	write("stay.md", "---\ntitle: 住洱海边\nsection: stay\n---\n- 看日出\n")
	write("other.md", "---\ntitle: 无处安放\nsection: food\n---\n- x\n")
	write("readme.txt", "ignored")

	got, err := LoadDir(dir, nil)
	require.NoError(t, err)

	require.Len(t, got.Packing, 2)
	assert.Equal(t, "a", got.Packing[0].Title)
	assert.Equal(t, []string{"充电宝"}, got.Packing[0].Content)
	assert.Equal(t, "防晒三件套", got.Packing[1].Title)
	require.Len(t, got.Stay, 1)
	assert.Equal(t, "住洱海边", got.Stay[0].Title)
}

func TestLoadDirMissing(t *testing.T) {
	got, err := LoadDir(filepath.Join(t.TempDir(), "nope"), nil)
	require.NoError(t, err)
	assert.Empty(t, got.Stay)
	assert.Empty(t, got.Packing)
}

func TestLoadDirSkipsMalformedNote(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.md"), []byte("---\ntitle: [unterminated\nsection: packing\n---\n- x\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "good.md"), []byte("---\ntitle: 雨具\nsection: packing\n---\n- 雨衣\n"), 0o644))

	got, err := LoadDir(dir, nil)
	require.NoError(t, err)
	require.Len(t, got.Packing, 1)
	assert.Equal(t, "雨具", got.Packing[0].Title)
}
