package html

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<html><head>
<link rel="stylesheet" href="base.css">
<link rel="icon" href="favicon.ico">
<link rel="alternate stylesheet" href="css/alt.css">
<link rel="stylesheet" href="https://example.com/remote.css">
<link rel="stylesheet" href="missing.css">
</head><body><p>Hello</p></body></html>`

func TestReadFileWithLinkedStyleSheets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.input")
	defer teardown()
	//
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "doc.html"), []byte(page), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base.css"), []byte("p { color: red }"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "css", "alt.css"), []byte("p { color: blue }"), 0o644))
	src, err := ReadFile(filepath.Join(dir, "doc.html"))
	require.NoError(t, err)
	assert.Equal(t, []string{"base.css", "css/alt.css", "https://example.com/remote.css", "missing.css"},
		LinkedStyleSheets(src.Document))
	assert.Equal(t, []string{"p { color: red }", "p { color: blue }"}, src.StyleSheets)
}

func TestReadMissingFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.input")
	defer teardown()
	//
	_, err := ReadFile(filepath.Join(t.TempDir(), "nothing.html"))
	require.Error(t, err)
	assert.Equal(t, core.EMISSING, core.Code(err))
}
