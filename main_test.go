package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSiteParams(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("description: 七日云南\nbaseURL: /trip/\n"), 0o644))

	params, err := loadSiteParams(path)
	require.NoError(t, err)
	assert.Equal(t, "七日云南", params["description"])
	assert.Equal(t, "/trip/", params["baseURL"])
}

func TestLoadSiteParamsMissingFile(t *testing.T) {
	params, err := loadSiteParams(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Nil(t, params)
}

func TestLoadSiteParamsBrokenYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: [1, 2"), 0o644))
	_, err := loadSiteParams(path)
	assert.Error(t, err)
}
