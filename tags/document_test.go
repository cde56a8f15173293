package tags_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/htmltree"
	"github.com/npillmayer/htmltree/tags"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestNewDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.core")
	defer teardown()
	//
	doc := tags.NewDocument(tags.H1("Welcome"))
	var sb strings.Builder
	_, err := doc.WriteTo(&sb)
	require.NoError(t, err)
	want := `<!DOCTYPE html><html><head><meta charset="utf-8"><title>Title of the page</title></head>` +
		`<body><h1>Welcome</h1></body></html>`
	require.Equal(t, want, sb.String())
}

func TestDocumentSetTitle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.core")
	defer teardown()
	//
	doc := tags.NewDocument()
	doc.SetTitle("Home")
	hits := htmltree.Find(doc.Root(), htmltree.Contains("Home"))
	require.Len(t, hits, 1)
	require.NotContains(t, doc.String(), "Title of the page")
}

func TestDocumentAdd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.core")
	defer teardown()
	//
	doc := tags.NewDocument()
	require.NoError(t, doc.Add(tags.P("content")))
	require.Equal(t, 1, doc.Body().Len())
	require.Contains(t, htmltree.RenderCompact(doc.Root()), "<p>content</p>")
}
