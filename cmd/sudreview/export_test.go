package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sudreview/internal/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReport_ExplicitPath(t *testing.T) {
	out := filepath.Join(t.TempDir(), "review.html")
	path, err := writeReport(report.Default(), report.FormatHTML, out, "")
	require.NoError(t, err)
	assert.Equal(t, out, path)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "<html"))
}

func TestWriteReport_DefaultsToExportDir(t *testing.T) {
	dir := t.TempDir()
	path, err := writeReport(report.Default(), report.FormatMarkdown, "", dir)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.Equal(t, ".md", filepath.Ext(path))
}

func TestWriteReport_BadPath(t *testing.T) {
	_, err := writeReport(report.Default(), report.FormatMarkdown, filepath.Join(t.TempDir(), "missing", "x.md"), "")
	assert.Error(t, err)
}
