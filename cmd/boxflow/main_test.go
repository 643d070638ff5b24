package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMarkdownToPNG(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.render")
	defer teardown()
	//
	dir := t.TempDir()
	in := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(in, []byte("# Hello\n\nA *short* document.\n"), 0o644))
	out, err := run(options{in: in, width: 200, height: 100})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "doc.png"), out)
	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG", string(b[:4]))
}

func TestRunHTMLWithStyleSheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.render")
	defer teardown()
	//
	dir := t.TempDir()
	in := filepath.Join(dir, "doc.html")
	css := filepath.Join(dir, "extra.css")
	require.NoError(t, os.WriteFile(in, []byte(`<p>Hello</p>`), 0o644))
	require.NoError(t, os.WriteFile(css, []byte(`p { color: green }`), 0o644))
	out := filepath.Join(dir, "out.png")
	dot := filepath.Join(dir, "out.dot")
	got, err := run(options{in: in, css: css, out: out, dot: dot, width: 100, height: 50})
	require.NoError(t, err)
	assert.Equal(t, out, got)
	assert.FileExists(t, out)
	b, err := os.ReadFile(dot)
	require.NoError(t, err)
	assert.Contains(t, string(b), "digraph")
}

func TestRunMissingInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.render")
	defer teardown()
	//
	_, err := run(options{in: filepath.Join(t.TempDir(), "none.md"), width: 100, height: 50})
	require.Error(t, err)
	assert.Equal(t, core.EMISSING, core.Code(err))
}
